// Package main provides the entry point for the RGB Manager application.
// RGB Manager is a GTK4-based control surface for four-zone keyboard
// backlights on Linux.
//
// Features:
//   - Per-zone color, effect, speed, brightness and direction control
//   - Named lighting profiles with a global cycle hotkey
//   - Custom stepped effects loaded from YAML files
//   - System tray indicator for background operation
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	rgb-manager [options]
//
// Environment:
//
//	The application needs read access to /dev/hidraw* for the lighting
//	controller and to /dev/input/event* for the global hotkey.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/rgb-manager/cli"
	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	listProfiles = flag.Bool("list", false, "List all saved lighting profiles")
	applyProfile = flag.String("profile", "", "Start with the named saved profile")
	playEffect   = flag.String("effect", "", "Start with a custom effect file queued")
	headless     = flag.Bool("headless", false, "Apply --profile or play --effect without the GUI")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	// Setup graceful shutdown context for CLI mode
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	// Check if any CLI mode flag is set
	if *listProfiles || (*headless && (*applyProfile != "" || *playEffect != "")) {
		runCLI(ctx)
		return
	}

	// Start the GTK application (GUI mode). A profile or effect given
	// on the command line becomes the initial lighting state.
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion, ui.StartupOptions{
		ProfileName: *applyProfile,
		EffectPath:  *playEffect,
	})
	exitCode := app.Run(os.Args)

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

// runCLI handles command-line interface operations.
func runCLI(ctx context.Context) {
	cliApp, err := cli.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cliErr error

	switch {
	case *listProfiles:
		cliErr = cliApp.ListProfiles()
	case *applyProfile != "":
		cliErr = cliApp.ApplyProfile(*applyProfile)
	case *playEffect != "":
		cliErr = cliApp.PlayEffect(ctx, *playEffect)
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down...", sig)
		cancel()
		// In GUI mode GTK handles shutdown via the quit message
	}()
}
