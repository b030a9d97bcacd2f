package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/xvierd/breathe-cli/internal/adapters/audio"
	"github.com/xvierd/breathe-cli/internal/adapters/notification"
	"github.com/xvierd/breathe-cli/internal/adapters/tui"
	"github.com/xvierd/breathe-cli/internal/catalog"
	"github.com/xvierd/breathe-cli/internal/config"
	"github.com/xvierd/breathe-cli/internal/debug"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
	"github.com/xvierd/breathe-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	catalog  *catalog.Catalog
	notifier *notification.Notifier
	emitter  *audio.Emitter
	timer    *tui.Timer
	logFile  io.Closer
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	if debugFlag {
		debug.SetEnabled(true)
	}
	if debug.Enabled() {
		if err := os.MkdirAll(app.config.Data.Dir, 0750); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		app.logFile, err = debug.ToFile(config.GetLogPath(app.config))
		if err != nil {
			return err
		}
		debug.Log("breathe %s starting, config %+v", Version, *app.config)
	}

	app.catalog = catalog.Default()
	app.notifier = notification.New(&app.config.Notifications)

	// The TUI doubles as the haptic device, so it is built before the
	// emitter and given the session factory that closes over it.
	app.timer = tui.NewTimer(app.catalog, newSession, &app.config.Theme)

	var haptics ports.Haptics = audio.NoHaptics{}
	if !plainMode {
		haptics = app.timer
	}
	app.emitter = audio.NewEmitter(audio.BeepPlayer{}, haptics)
	app.emitter.SetSoundEnabled(app.config.Sound.Enabled && !muteFlag)
	app.emitter.SetHapticsEnabled(app.config.Haptics.Enabled)

	return nil
}

// newSession opens a session wired to the shared emitter and notifier.
func newSession(methodID string) (ports.Session, error) {
	s, err := services.NewSessionService(app.catalog, methodID, app.emitter, sessionOptions()...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func sessionOptions() []services.SessionOption {
	return []services.SessionOption{
		services.WithPalette(app.config.Theme.Palette()),
		services.WithOnFinish(notifyFinished),
	}
}

func notifyFinished(m domain.BreathingMethod) {
	if app.notifier == nil || !app.notifier.IsEnabled() {
		return
	}
	if err := app.notifier.NotifySessionComplete(m.Name, m.Cycles); err != nil {
		debug.Log("notification failed: %v", err)
	}
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.emitter != nil {
		app.emitter.Wait()
	}
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
