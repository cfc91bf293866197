package main

import (
	"fmt"
	"os"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/tui"
	"github.com/spf13/cobra"
)

var (
	browseSource  string
	browseLimit   int
	browseHorizon int
)

// browseCmd opens the terminal browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse contracts in the terminal",
	Long: `Browse the contract portfolio in a full-screen terminal UI.

Search with /, cycle the status and risk filters with s and r, page with
n and p, open a contract with enter and show insights with i.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseSource, "source", config.SourceFile, "fixture source: file, http or minio")
	browseCmd.Flags().IntVar(&browseLimit, "limit", service.DefaultPageLimit, "contracts per page")
	browseCmd.Flags().IntVar(&browseHorizon, "horizon", service.DefaultHorizonDays, "expiring-soon window in days")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Fixtures.Source = browseSource

	// the alternate screen owns stdout, so logs go to a file
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = "contractsd.log"
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logFile,
	})

	var reader service.ObjectReader
	if cfg.Fixtures.Source == config.SourceMinio {
		minioSvc, err := newObjectStore(cfg)
		if err != nil {
			return fmt.Errorf("initialize minio: %w", err)
		}
		if minioSvc != nil {
			reader = minioSvc
		}
	}
	source, err := buildSource(cfg, reader)
	if err != nil {
		return err
	}

	return tui.Run(service.NewContractService(source), tui.Options{
		PageLimit:   browseLimit,
		HorizonDays: browseHorizon,
		Timeout:     fixtureTimeout(&cfg.Fixtures),
	})
}
