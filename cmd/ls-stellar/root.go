package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-stellar/internal/config"
	"github.com/litescript/ls-stellar/internal/logging"
	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/stellar"
	"github.com/litescript/ls-stellar/internal/ui"
)

var (
	cfg     config.Config
	logger  = logging.Discard()
	initErr error
)

// stdoutIsTerminal decides between the scrubber and the plain summary.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "ls-stellar",
	Short: "Analytic stellar evolution for star populations",
	Long: `ls-stellar evolves a population of stars along closed-form single-star
tracks. On a terminal it opens an interactive time scrubber; otherwise it
prints a population summary at the final clock age.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runRoot,
}

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"catalog":   "catalog",
	"watch":     "watch",
	"seed":      "population.seed",
	"size":      "population.size",
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default ./ls-stellar.toml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("catalog", "", "TOML star catalog to use instead of sampling")
	pf.Bool("watch", false, "reload the catalog when it changes")
	pf.Uint64("seed", 1, "seed for the sampled population")
	pf.Int("size", 1000, "number of stars to sample")
}

func initConfig() {
	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
	path, _ := rootCmd.PersistentFlags().GetString("config")
	initErr = config.Init(path)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if initErr != nil {
		return initErr
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	logger = logging.New(logging.ParseLevel(cfg.LogLevel))
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file %s", used)
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return runSummary(cmd.Context(), cmd.OutOrStdout(), cfg.Clock.MaxAge)
	}
	return runTUI(cmd.Context())
}

func runTUI(ctx context.Context) error {
	pop, err := loadPopulation(ctx)
	if err != nil {
		return err
	}

	mgr := state.NewManager(stateConfig())
	if err := mgr.SetPopulation(ctx, pop); err != nil {
		return err
	}

	var opts []ui.Option
	if cfg.Watch {
		if cfg.Catalog == "" {
			logger.Warn("--watch needs --catalog; ignoring")
		} else {
			w, err := population.NewCatalogWatcher(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("watch catalog: %w", err)
			}
			if err := w.Start(); err != nil {
				return fmt.Errorf("watch catalog: %w", err)
			}
			defer w.Stop()
			logger.Info("Watching %s", cfg.Catalog)
			opts = append(opts, ui.WithCatalogUpdates(w.Updates, buildQuiet))
		}
	}

	// stderr shares the terminal with the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	p := tea.NewProgram(ui.New(ctx, mgr, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func stateConfig() state.Config {
	sc := state.DefaultConfig()
	sc.MaxAge = cfg.Clock.MaxAge
	sc.Step = cfg.Clock.Step
	sc.TickInterval = time.Duration(cfg.Clock.TickMS) * time.Millisecond
	return sc
}

// loadSpecs reads the configured catalog or samples a population.
func loadSpecs() ([]population.Spec, error) {
	if cfg.Catalog != "" {
		specs, err := population.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		logger.Debug("Loaded %d stars from %s", len(specs), cfg.Catalog)
		return specs, nil
	}
	specs, err := cfg.Population.Sampler().Sample(cfg.Population.Size)
	if err != nil {
		return nil, fmt.Errorf("sample population: %w", err)
	}
	logger.Debug("Sampled %d stars with seed %d", len(specs), cfg.Population.Seed)
	return specs, nil
}

func loadPopulation(ctx context.Context) (*population.Population, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}
	return build(ctx, specs)
}

// build constructs the population and logs any model diagnostics.
func build(ctx context.Context, specs []population.Spec) (*population.Population, error) {
	start := time.Now()
	var diags stellar.Diagnostics
	pop, err := population.Build(ctx, specs, cfg.Population.Workers, &diags)
	if err != nil {
		return nil, err
	}
	logger.Debug("Built %d stars in %v", pop.Len(), time.Since(start).Round(time.Microsecond))
	reportDiagnostics(&diags)
	return pop, nil
}

// buildQuiet constructs a population without logging; the scrubber
// reports failures itself.
func buildQuiet(ctx context.Context, specs []population.Spec) (*population.Population, error) {
	return population.Build(ctx, specs, cfg.Population.Workers, nil)
}

func reportDiagnostics(diags *stellar.Diagnostics) {
	if diags.Len() == 0 {
		return
	}
	log := logger.Named("stellar")
	if log.Enabled(logging.LevelDebug) {
		for _, d := range diags.All() {
			log.ReportDiagnostic(d)
		}
		return
	}
	log.Warn("%d model diagnostics (use --log-level debug to list them)", diags.Len())
}
