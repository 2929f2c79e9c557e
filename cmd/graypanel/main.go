// Gray Logic Panel - Wall Panel UI Runtime
//
// This is the main entry point for the Gray Logic Panel application, the
// screen runtime that runs on wall-mounted touch panels. It connects to
// the site's MQTT broker, registers the builtin screens, and drives the
// screen lifecycle manager:
//   - One screen active at a time
//   - Only the active screen holds bus subscriptions
//   - Navigation via the panel's graylogic/ui/{id}/screen/set topic
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-panel/internal/panel"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
	"github.com/nerrad567/gray-logic-panel/internal/screens"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - shutdown: Cancels ctx; wired to the runtime's fatal callback so a
//     screen contract violation halts the process
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, shutdown context.CancelFunc) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Gray Logic Panel",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT, cfg.Panel.ID)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	mqttClient.SetLogger(log)
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"panel_id", cfg.Panel.ID,
	)

	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Build the screen registry
	registry := screen.NewRegistry()
	manager := screen.NewManager(registry)
	manager.SetLogger(log.With("component", "screen"))
	manager.SetDestroyOnDeactivate(cfg.Panel.DestroyOnDeactivate)

	deps := screens.Deps{
		Toolkit:  newToolkit(log),
		Bus:      mqttClient,
		Dispatch: manager.DispatchMessage,
	}
	if err := screens.RegisterBuiltin(registry, deps); err != nil {
		return fmt.Errorf("registering screens: %w", err)
	}

	var ids []string
	for id := range registry.All() {
		ids = append(ids, id)
	}
	log.Info("screen registry initialised", "screens", ids)

	// Resolve the startup screen: config wins, else first registered
	panelCfg := cfg.Panel
	if panelCfg.DefaultScreen == "" {
		if first, ok := registry.First(); ok {
			panelCfg.DefaultScreen = first
		}
	}

	// Start the panel runtime
	runtime := panel.NewRuntime(panelCfg, mqttClient, manager)
	runtime.SetLogger(log.With("component", "panel"))
	runtime.SetOnFatal(func(err error) {
		log.Error("fatal screen integrity failure, shutting down", "error", err)
		shutdown()
	})

	if err := runtime.Start(); err != nil {
		return fmt.Errorf("starting panel runtime: %w", err)
	}
	defer func() {
		log.Info("stopping panel runtime")
		runtime.Stop()
	}()
	log.Info("panel runtime started",
		"default_screen", panelCfg.DefaultScreen,
		"session", runtime.SessionID(),
	)

	// Verify the bus connection is healthy
	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal (or fatal callback)
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred calls run in reverse order:
	// 1. Panel runtime (deactivates and destroys screens)
	// 2. MQTT (publishes graceful offline presence)

	log.Info("Gray Logic Panel stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses GRAYPANEL_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("GRAYPANEL_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
