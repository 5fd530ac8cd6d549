package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/stellar"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a population summary at an age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := ageFlag(cmd)
		if err != nil {
			return err
		}
		return runSummary(cmd.Context(), cmd.OutOrStdout(), age)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export every star at an age as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := ageFlag(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		return withOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
			return runSnapshot(cmd.Context(), w, age)
		})
	},
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Print the evolutionary track of a single star",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, _ := cmd.Flags().GetFloat64("mass")
		z, _ := cmd.Flags().GetFloat64("metallicity")
		points, _ := cmd.Flags().GetInt("points")

		var diags stellar.Diagnostics
		s, err := stellar.New(mass, z, stellar.WithReporter(&diags))
		if err != nil {
			return err
		}
		reportDiagnostics(&diags)
		population.WriteTrack(cmd.OutOrStdout(), s, population.Track(s, points))
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sampled population as a TOML catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		if n <= 0 {
			n = cfg.Population.Size
		}
		specs, err := cfg.Population.Sampler().Sample(n)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		return withOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
			return population.WriteCatalog(w, specs)
		})
	},
}

func init() {
	summaryCmd.Flags().Float64("age", -1, "age in Myr (default clock.max_age)")

	snapshotCmd.Flags().Float64("age", -1, "age in Myr (default clock.max_age)")
	snapshotCmd.Flags().StringP("out", "o", "-", "output file (- for stdout)")

	trackCmd.Flags().Float64("mass", 1, "zero-age mass in Msun")
	trackCmd.Flags().Float64("metallicity", stellar.SolarMetallicity, "metallicity Z")
	trackCmd.Flags().Int("points", 60, "number of evenly spaced ages")

	sampleCmd.Flags().Int("n", 0, "number of stars (default population.size)")
	sampleCmd.Flags().StringP("out", "o", "-", "output file (- for stdout)")

	rootCmd.AddCommand(summaryCmd, snapshotCmd, trackCmd, sampleCmd)
}

// ageFlag returns --age, defaulting to the end of the clock.
func ageFlag(cmd *cobra.Command) (float64, error) {
	age, _ := cmd.Flags().GetFloat64("age")
	if !cmd.Flags().Changed("age") {
		return cfg.Clock.MaxAge, nil
	}
	if age < 0 {
		return 0, fmt.Errorf("--age must not be negative, got %g", age)
	}
	return age, nil
}

// withOutput runs write against stdout or the named file.
func withOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func runSummary(ctx context.Context, w io.Writer, age float64) error {
	_, ticks, err := evaluate(ctx, age)
	if err != nil {
		return err
	}
	population.WriteSummaryTable(w, population.Summarize(age, ticks))
	return nil
}

func runSnapshot(ctx context.Context, w io.Writer, age float64) error {
	pop, ticks, err := evaluate(ctx, age)
	if err != nil {
		return err
	}
	return population.ExportSnapshot(pop, age, ticks).WriteJSON(w)
}

func evaluate(ctx context.Context, age float64) (*population.Population, []stellar.Tick, error) {
	pop, err := loadPopulation(ctx)
	if err != nil {
		return nil, nil, err
	}
	ticks, err := pop.EvaluateAll(ctx, age)
	if err != nil {
		return nil, nil, err
	}
	return pop, ticks, nil
}
