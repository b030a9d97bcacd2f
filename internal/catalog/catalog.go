// Package catalog holds the built-in breathing methods.
// The list is a compile-time constant: it is validated once when the
// package loads and never changes afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

const generalInstructions = `## How to practice

- Find a quiet, comfortable place to sit
- Keep your back straight and your shoulders relaxed
- Follow the prompts on screen
- A pulse and a tone mark every change of rhythm
- Focus on your breath and let your thoughts settle
`

const morningInstructions = `## Morning practice

1. Find a quiet, comfortable place to sit
2. Keep your back straight and your shoulders relaxed
3. Take three deep breaths to prepare
4. Follow the prompts on screen
5. When the practice ends, do a body scan:
   - Move your attention from head to toe
   - Notice your head, eyes, nose and mouth
   - Feel your throat, shoulders, chest and stomach
   - Observe any tension or discomfort
6. Stay in this calm state for a few minutes
`

var methods = mustValidate([]domain.BreathingMethod{
	{
		ID:           "1",
		Name:         "4-7-8 Breathing",
		Description:  "Classic relaxation: inhale 4s, hold 7s, exhale 8s",
		Inhale:       4,
		Hold:         7,
		Exhale:       8,
		Cycles:       5,
		Color:        "#4A90E2",
		Instructions: generalInstructions,
	},
	{
		ID:           "2",
		Name:         "Simple Relax",
		Description:  "An easy 5 second breathing loop for a quick reset",
		Inhale:       5,
		Hold:         0,
		Exhale:       5,
		Cycles:       10,
		Color:        "#7ED321",
		Instructions: generalInstructions,
	},
	{
		ID:           "3",
		Name:         "Deep Relax",
		Description:  "Deep breathing: inhale 6s, hold 3s, exhale 8s",
		Inhale:       6,
		Hold:         3,
		Exhale:       8,
		Cycles:       6,
		Color:        "#F5A623",
		Instructions: generalInstructions,
	},
	{
		ID:           "4",
		Name:         "Meditation",
		Description:  "Slow breathing for meditation: inhale 8s, hold 4s, exhale 8s",
		Inhale:       8,
		Hold:         4,
		Exhale:       8,
		Cycles:       4,
		Color:        "#9B59B6",
		Instructions: generalInstructions,
	},
	{
		ID:           "5",
		Name:         "Resonance",
		Description:  "Six breaths a minute: inhale 4s, exhale 6s, calms the nervous system",
		Inhale:       4,
		Hold:         0,
		Exhale:       6,
		Cycles:       8,
		Color:        "#E74C3C",
		Instructions: generalInstructions,
	},
	{
		ID:           "6",
		Name:         "Morning Practice",
		Description:  "A full morning routine: deep breathing followed by a body scan",
		Inhale:       4,
		Hold:         2,
		Exhale:       6,
		Cycles:       6,
		Color:        "#8E44AD",
		Instructions: morningInstructions,
	},
})

// mustValidate panics on a malformed built-in method. Bad catalog data is a
// programming error, not something a session should have to handle.
func mustValidate(list []domain.BreathingMethod) []domain.BreathingMethod {
	seen := make(map[string]bool, len(list))
	for _, m := range list {
		if err := m.Validate(); err != nil {
			panic(err)
		}
		if seen[m.ID] {
			panic(fmt.Sprintf("catalog: duplicate method id %q", m.ID))
		}
		seen[m.ID] = true
	}
	return list
}

// Catalog is a read-only view over an ordered list of methods.
type Catalog struct {
	methods []domain.BreathingMethod
}

// Ensure Catalog implements ports.MethodCatalog.
var _ ports.MethodCatalog = (*Catalog)(nil)

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{methods: methods}
}

// New builds a catalog from the given methods, validating each one.
func New(list []domain.BreathingMethod) (*Catalog, error) {
	for _, m := range list {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	cp := make([]domain.BreathingMethod, len(list))
	copy(cp, list)
	return &Catalog{methods: cp}, nil
}

// List returns every method in display order. The slice is a copy.
func (c *Catalog) List() []domain.BreathingMethod {
	out := make([]domain.BreathingMethod, len(c.methods))
	copy(out, c.methods)
	return out
}

// Get looks a method up by id.
func (c *Catalog) Get(id string) (domain.BreathingMethod, error) {
	for _, m := range c.methods {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.BreathingMethod{}, fmt.Errorf("%w: %q", domain.ErrMethodNotFound, id)
}

// IDs returns the known method ids, in order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.methods))
	for i, m := range c.methods {
		ids[i] = m.ID
	}
	return ids
}

// Search returns the indices of methods whose name fuzzily matches query,
// best match first. An empty query matches everything in catalog order.
func (c *Catalog) Search(query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(c.methods))
		for i := range all {
			all[i] = i
		}
		return all
	}

	names := make([]string, len(c.methods))
	for i, m := range c.methods {
		names[i] = m.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}
