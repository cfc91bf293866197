package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	fixturesDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "contractsd",
	Short: "Contract portfolio dashboard",
	Long: `contractsd serves and browses a portfolio of contracts.

Available subcommands:
  serve  - Run the HTTP API and fixture server
  browse - Browse contracts in the terminal
  report - Generate a report to stdout`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&fixturesDir, "fixtures-dir", "", "override fixtures.dir")

	rootCmd.AddCommand(serveCmd, browseCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config. A missing file falls back to the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	if fixturesDir != "" {
		cfg.Fixtures.Dir = fixturesDir
	}
	return cfg, nil
}

// newObjectStore connects to MinIO when it is configured, otherwise it
// returns nil and uploads and reports stay local
func newObjectStore(cfg *config.Config) (*service.MinioService, error) {
	if !cfg.Minio.Enabled() {
		return nil, nil
	}
	return service.NewMinioService(&cfg.Minio)
}

// buildSource picks the fixture source named by fixtures.source
func buildSource(cfg *config.Config, objects service.ObjectReader) (service.FixtureSource, error) {
	fixtures := cfg.Fixtures
	switch fixtures.Source {
	case config.SourceHTTP:
		fixtures.BaseURL = cfg.FixturesURL()
		return service.NewHTTPFixtureSource(&fixtures), nil
	case config.SourceFile:
		return service.NewFileFixtureSource(&fixtures), nil
	case config.SourceMinio:
		if objects == nil {
			return nil, errors.New("fixtures.source is minio but no object store is configured")
		}
		return service.NewMinioFixtureSource(objects, &fixtures), nil
	default:
		return nil, fmt.Errorf("unknown fixtures.source %q", fixtures.Source)
	}
}

func fixtureTimeout(cfg *config.FixturesConfig) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
