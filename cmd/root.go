package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pdx-civic/zonelookup/internal/arcgis"
	"github.com/pdx-civic/zonelookup/internal/config"
	"github.com/pdx-civic/zonelookup/internal/geocoding"
	"github.com/pdx-civic/zonelookup/internal/metrics"
	"github.com/pdx-civic/zonelookup/internal/zoning"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zonelookup",
	Short: "Zoning and building lookup for Portland street addresses",
	Long: "Geocodes a street address and queries the PortlandMaps feature layers " +
		"for zoning, building and taxlot attributes at that point.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		logger = setupLogger(cfg.Env)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService wires the geocoding provider, the feature-service client and
// metrics into a lookup service.
func newService(reg *prometheus.Registry) (*zoning.Service, error) {
	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.ProviderType),
		APIKey: cfg.APIKey,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create geocoding provider: %w", err)
	}

	gis := arcgis.NewClient(cfg.QueryTimeout, logger)

	return zoning.NewService(logger, provider, gis, metrics.NewMetrics(reg)), nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
