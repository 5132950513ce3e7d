package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jyotish/internal/chart"
	"jyotish/internal/config"
	"jyotish/internal/ephemeris"
)

var (
	// Global flags
	verbose    bool
	configPath string
	snapshot   string
	timeout    time.Duration

	// Birth flags
	date      string
	clock     string
	gmtOffset float64
	latitude  float64
	longitude float64

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "jyotish - Vedic derived-chart computation engine",
	Long: `jyotish derives the full Vedic profile of a birth moment: divisional
charts with KP lord chains, the Vimshottari dasha tree, Shadbala and
Ashtakavarga strength scores, Panchadha Maitri relationships, yoga
detection and the panchang.

Raw sidereal positions come from a snapshot file produced by an external
ephemeris run (--snapshot); the engine computes everything above it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// chartCmd computes the assembled profile.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute the full derived chart for a birth moment",
	RunE: func(cmd *cobra.Command, args []string) error {
		vargas, _ := cmd.Flags().GetString("vargas")
		sections, _ := cmd.Flags().GetStringSlice("sections")

		engine, m, err := buildEngine()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		res, err := engine.ComputeChart(ctx, m, chart.Options{
			Vargas:   vargas,
			Sections: sections,
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

// dashaCmd resolves the running dasha path.
var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Resolve the Vimshottari period running at an instant",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, _ := cmd.Flags().GetString("at")
		instant := time.Now().UTC()
		if at != "" {
			var err error
			instant, err = time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("invalid --at instant: %w", err)
			}
		}

		engine, m, err := buildEngine()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		path, err := engine.CurrentDasha(ctx, m, instant)
		if err != nil {
			return err
		}
		return printJSON(path)
	},
}

// panchangCmd prints the five limbs for the birth moment. It runs the
// same engine section the chart command does, so the vara follows the
// sunrise-to-sunrise day here too.
var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Compute tithi, vara, nakshatra, yoga and karana",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, m, err := buildEngine()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		res, err := engine.ComputeChart(ctx, m, chart.Options{
			Sections: []string{chart.SectionPanchang},
		})
		if err != nil {
			return err
		}
		return printJSON(res.Panchang)
	},
}

func buildMoment() (ephemeris.BirthMoment, error) {
	var m ephemeris.BirthMoment
	if _, err := fmt.Sscanf(date, "%d-%d-%d", &m.Year, &m.Month, &m.Day); err != nil {
		return m, fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
	}
	if _, err := fmt.Sscanf(clock, "%d:%d", &m.Hour, &m.Minute); err != nil {
		return m, fmt.Errorf("invalid --time (want HH:MM): %w", err)
	}
	m.GMTOffset = gmtOffset
	m.Latitude = latitude
	m.Longitude = longitude
	return m, m.Validate()
}

func buildAdapter(cfg *config.Config) (ephemeris.Adapter, error) {
	path := snapshot
	if path == "" && cfg != nil {
		path = cfg.Ephemeris.SnapshotPath
	}
	if path == "" {
		return nil, fmt.Errorf("no position source: pass --snapshot or set ephemeris.snapshot_path")
	}
	var adapter ephemeris.Adapter = &ephemeris.FileAdapter{Path: path}
	if cfg != nil && cfg.Ephemeris.CachePath != "" {
		cached, err := ephemeris.NewCache(adapter, cfg.Ephemeris.CachePath)
		if err != nil {
			return nil, err
		}
		adapter = cached
	}
	return adapter, nil
}

func buildEngine() (*chart.Engine, ephemeris.BirthMoment, error) {
	m, err := buildMoment()
	if err != nil {
		return nil, m, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, m, err
	}
	adapter, err := buildAdapter(cfg)
	if err != nil {
		return nil, m, err
	}
	engine, err := chart.New(adapter, cfg, logger)
	if err != nil {
		return nil, m, err
	}
	return engine, m, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "jyotish.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&snapshot, "snapshot", "", "Ephemeris snapshot yaml")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.PersistentFlags().StringVar(&date, "date", "", "Birth date YYYY-MM-DD")
	rootCmd.PersistentFlags().StringVar(&clock, "time", "12:00", "Birth time HH:MM")
	rootCmd.PersistentFlags().Float64Var(&gmtOffset, "offset", 0, "GMT offset in hours")
	rootCmd.PersistentFlags().Float64Var(&latitude, "lat", 0, "Latitude in degrees")
	rootCmd.PersistentFlags().Float64Var(&longitude, "lon", 0, "Longitude in degrees")

	chartCmd.Flags().String("vargas", "", "Divisional chart selector, e.g. D1,D9")
	chartCmd.Flags().StringSlice("sections", nil, "Sections to compute (default all)")
	dashaCmd.Flags().String("at", "", "Query instant, RFC3339 (default now)")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(dashaCmd)
	rootCmd.AddCommand(panchangCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
