// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/breathe-cli/internal/config"
)

// NotifyFunc delivers a desktop notification.
type NotifyFunc func(title, message string) error

func beeepNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify NotifyFunc
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, notify: beeepNotify}
}

// NewWith creates a notifier that delivers through fn instead of the desktop.
func NewWith(cfg *config.NotificationConfig, fn NotifyFunc) *Notifier {
	return &Notifier{cfg: cfg, notify: fn}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.notify(title, message)
}

// NotifySessionComplete displays a notification when a practice finishes.
func (n *Notifier) NotifySessionComplete(methodName string, cycles int) error {
	title := "🫁 Practice Complete"
	noun := "cycles"
	if cycles == 1 {
		noun = "cycle"
	}
	message := fmt.Sprintf("You finished %d %s of %s.", cycles, noun, methodName)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
