// Jobboard is a terminal job board.
//
// Featured jobs, hiring companies, similar jobs and recommendations scroll in
// carousels that fit as many cards as the terminal width allows and advance
// on their own until paused.
//
// Usage:
//
//	jobboard [flags]
//	jobboard jobs [--query Q] [--location L] [--type T] [--experience E]
//	jobboard config init [--force]
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/eventbus"
	"jobboard/internal/logging"
	"jobboard/internal/logic"
	"jobboard/internal/ui"
	"jobboard/internal/version"
)

// e2eEnvVar makes the binary announce readiness for the PTY test suite
const e2eEnvVar = "JOBBOARD_E2E_TEST"

func main() {
	// A missing .env file is fine; real environment variables still apply
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath string
	logLevel   string
	noAutoplay bool
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Browse jobs in the terminal",
	Long: `A terminal job board.

Browse featured jobs and top companies, search and filter listings, save jobs
and track applications. Carousels fit 1, 2 or 4 cards depending on the
terminal width and advance automatically until paused with space.`,
	Version:      version.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel, "")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/jobboard/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to jobboard.log")
	rootCmd.Flags().BoolVar(&noAutoplay, "no-autoplay", false, "Start with carousel autoplay turned off")

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg := loadConfig(config.NewConfigServiceWithBus(configPath, bus))
	if noAutoplay {
		cfg.Carousel.Autoplay = false
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	shortlist := logic.NewMemoryShortlist(bus)

	logging.Info("Creating UI model", zap.Int("jobs", len(cat.Jobs())), zap.Bool("autoplay", cfg.Carousel.Autoplay))
	model := ui.NewModel(bus, cfg, cat, shortlist)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Bus handlers run on the dispatcher goroutine; hand the events to the
	// program so the model sees them on the update loop
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventJobSaved,
		eventbus.EventJobUnsaved,
		eventbus.EventJobApplied,
		eventbus.EventLoggedOut,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}

	if os.Getenv(e2eEnvVar) == "1" {
		fmt.Println("__READY__")
	}

	logging.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		logging.Error("Error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Info("UI exited normally")

	return nil
}

// loadConfig loads the config file, falling back to defaults when it is unreadable
func loadConfig(svc config.ConfigService) *config.Config {
	cfg, err := svc.Load()
	if err != nil {
		logging.Warn("Failed to load config, using defaults", zap.String("path", svc.Path()), zap.Error(err))
		return config.DefaultConfig()
	}
	logging.Info("Loaded config", zap.String("path", svc.Path()))
	return cfg
}
