// Package ports defines the interfaces (driven and driving ports)
// for the breathe application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import "github.com/xvierd/breathe-cli/internal/domain"

// MethodCatalog provides the breathing methods a user can pick from.
// This is a driven port (implemented by the catalog package).
type MethodCatalog interface {
	// List returns every method in display order.
	List() []domain.BreathingMethod

	// Get looks a method up by id. It returns domain.ErrMethodNotFound
	// when the id is unknown.
	Get(id string) (domain.BreathingMethod, error)

	// Search returns the indexes into List of methods whose name fuzzily
	// matches query, best match first. An empty query matches everything.
	Search(query string) []int
}
