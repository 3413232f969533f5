package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/logging"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/pricing"
	"github.com/chrisdamba/foodfleet/internal/repositories/memory"
	pgrepo "github.com/chrisdamba/foodfleet/internal/repositories/postgres"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfg     *models.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "foodfleet",
	Short: "Browse restaurants, build carts and price orders for a food delivery service",
	Long: `foodfleet is a CLI around a food delivery storefront: it lists and searches the
restaurant catalog, shows menus with their customization options, prices carts
with promotions, delivery fee and tax, and exports checkouts to files, Kafka,
S3 or Postgres.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading .env file: %w", err)
		}

		var err error
		cfg, err = models.LoadConfig(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./foodfleet.yaml or $HOME/foodfleet.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openCatalog returns the configured catalog source and a function releasing
// its resources.
func openCatalog(ctx context.Context) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case "postgres":
		pool, err := pgrepo.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pgrepo.NewCatalog(pool), pool.Close, nil
	default:
		return memory.NewSeedCatalog(), func() {}, nil
	}
}

func newEngine() *pricing.Engine {
	return pricing.NewEngine(pricing.RulesFromConfig(cfg.Pricing))
}
