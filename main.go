// Command mortgage-calc serves the mortgage calculators over HTTP and runs
// them from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mortgage-calc/config"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var cfg *config.Config

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "mortgage-calc",
	Short:         "Mortgage repayment calculators",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			loaded.Logging.Level = level
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(repaymentCmd)
	rootCmd.AddCommand(repaymentTimeCmd)
	rootCmd.AddCommand(extraCmd)
	rootCmd.AddCommand(compareCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mortgage-calc %s (%s)\n", version, commit)
	},
}

func newLogger(c config.LoggingConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	logger.SetLevel(level)

	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

func serviceOptions(c *config.Config) service.Options {
	opts := service.DefaultOptions()
	opts.Limits = service.Limits{
		MaxLoanAmount:   c.Limits.MaxLoanAmount,
		MaxInterestRate: c.Limits.MaxInterestRate,
		MaxTermYears:    c.Limits.MaxTermYears,
	}
	opts.Serviceability.BufferRate = c.Serviceability.BufferRate
	opts.Serviceability.MaxRepaymentRatio = c.Serviceability.MaxRepaymentRatio
	opts.CacheTTL = c.Cache.TTL
	return opts
}

// newLocalService builds a LoanService for one-shot CLI commands, with
// memory-only cache and history.
func newLocalService(log *logrus.Logger) *service.LoanService {
	return service.NewLoanService(
		repository.NewCalculationRepositoryMemory(cfg.History.MaxRecords),
		repository.NewMemoryCache(),
		log,
		serviceOptions(cfg),
	)
}
