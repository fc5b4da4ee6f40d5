// Package commands is the estimator command line: stateless quotes, the
// service list and the interactive wizard, all priced locally.
package commands

import (
	"github.com/spf13/cobra"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/infrastructure/catalog"
	"agency_estimator/internal/infrastructure/config"
	"agency_estimator/internal/infrastructure/logger"
)

var (
	configFile  string
	catalogPath string
	rangeBand   float64
	verbose     bool

	estimator *pricing.Estimator
	log       logger.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "estimator",
		Short:         "Price agency projects from the service catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("catalog") {
				cfg.Catalog.Path = catalogPath
			}
			if cmd.Flags().Changed("band") {
				cfg.Pricing.RangeBand = rangeBand
			}

			level := "error"
			if verbose {
				level = "debug"
			}
			log = logger.NewStructured(level, "console")

			var cat *entities.Catalog
			if cfg.Catalog.Path == "" {
				cat, err = catalog.Default()
			} else {
				cat, err = catalog.Load(cfg.Catalog.Path)
			}
			if err != nil {
				return err
			}
			estimator, err = pricing.NewEstimator(cat, cfg.Pricing.RangeBand)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog)")
	root.PersistentFlags().Float64Var(&rangeBand, "band", 0, "± fraction around the point estimate")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(quoteCmd(), catalogCmd(), wizardCmd())
	return root
}
