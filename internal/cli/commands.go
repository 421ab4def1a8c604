package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kvbadhan/timeinmarket/config"
	"github.com/kvbadhan/timeinmarket/internal/sip"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "timeinmarket",
		Short: "Time In Market - systematic investment plan simulator",
		Long: `Time In Market simulates a Systematic Investment Plan (SIP): recurring
fixed-amount purchases of an instrument at historical market prices,
showing how the position would have grown over time.

Run without arguments for the guided interactive mode, or use the
simulate subcommand directly with flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveMode(cfg)
		},
	}

	rootCmd.AddCommand(newSimulateCmd(cfg))
	rootCmd.AddCommand(newHistoryCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// newSimulateCmd creates the non-interactive simulate command.
func newSimulateCmd(cfg *config.Config) *cobra.Command {
	var (
		amount  float64
		freq    string
		day     int
		weekday string
		start   string
		end     string
	)

	cmd := &cobra.Command{
		Use:   "simulate [ISIN or ticker]",
		Short: "Run a SIP simulation for an instrument",
		Long: `Run a Systematic Investment Plan simulation for an instrument identified
by ISIN or ticker symbol.

Example:
  timeinmarket simulate IE00B4L5Y983 --amount 250 --freq monthly --day 1 --start 2015-01-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cfg, args[0], amount, freq, day, weekday, start, end)
			if err != nil {
				return err
			}
			return runSimulation(cfg, params)
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 100, "investment amount per period")
	cmd.Flags().StringVarP(&freq, "freq", "f", "monthly", "investment frequency (monthly, weekly)")
	cmd.Flags().IntVarP(&day, "day", "d", 1, "monthly: calendar day of month to invest (1-31)")
	cmd.Flags().StringVarP(&weekday, "weekday", "w", "Monday", "weekly: day of week to invest")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (default: lookback window ago)")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD (default: today)")

	return cmd
}

func paramsFromFlags(cfg *config.Config, identifier string, amount float64, freq string, day int, weekday, start, end string) (SimulationParams, error) {
	var p SimulationParams
	p.Identifier = strings.TrimSpace(strings.ToUpper(identifier))

	if amount <= 0 {
		return p, fmt.Errorf("amount must be positive, got %v", amount)
	}
	p.Amount = decimal.NewFromFloat(amount)

	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "monthly", "m":
		p.Frequency = sip.Monthly
		p.DayOfMonth = day
	case "weekly", "w":
		p.Frequency = sip.Weekly
		wd, err := parseWeekday(weekday)
		if err != nil {
			return p, err
		}
		p.Weekday = wd
	default:
		return p, fmt.Errorf("unknown frequency %q (supported: monthly, weekly)", freq)
	}

	var err error
	if p.End, err = parseDateOrDefault(end, time.Now()); err != nil {
		return p, err
	}
	if p.Start, err = parseDateOrDefault(start, p.End.AddDate(-cfg.DefaultYears, 0, 0)); err != nil {
		return p, err
	}
	if !p.Start.Before(p.End) {
		return p, fmt.Errorf("start date %s must be before end date %s",
			p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	}
	return p, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q (markets trade Monday-Friday)", s)
	}
}

func parseDateOrDefault(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sip.DateOnly(def), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// newHistoryCmd lists past simulation runs.
func newHistoryCmd(cfg *config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(cfg, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")
	return cmd
}

// newConfigCmd shows the active configuration.
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Results dir:    %s\n", cfg.ResultsDir)
			fmt.Printf("Data cache dir: %s\n", cfg.DataCacheDir)
			fmt.Printf("History DB:     %s\n", cfg.HistoryDB)
			fmt.Printf("Cache enabled:  %v\n", cfg.CacheEnabled)
			fmt.Printf("Online tools:   %v\n", cfg.OnlineTools)
			fmt.Printf("Lookback years: %d\n", cfg.DefaultYears)
		},
	})

	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Time In Market v1.0.0")
			fmt.Println("Systematic Investment Plan simulator")
		},
	}
}
