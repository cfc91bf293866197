package main

import (
	"fmt"
	"io"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	reportSource string
	reportType   string
	reportRange  string
	reportFormat string
	reportSearch string
	reportStatus string
	reportRisk   string
	reportRaw    bool
)

// reportCmd generates one report and writes it to stdout
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report to stdout",
	Long: `Generate an overview, risk, renewal, compliance or custom report.

Markdown is rendered for the terminal unless --raw is given. Custom reports
take --search, --status and --risk filters.`,
	Example: `  contractsd report --type renewal --range 90d
  contractsd report --type custom --status Active --format csv`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportSource, "source", config.SourceFile, "fixture source: file, http or minio")
	f.StringVarP(&reportType, "type", "t", model.ReportOverview, "report type")
	f.StringVarP(&reportRange, "range", "r", "30d", "date range: 7d, 30d, 90d or 1y")
	f.StringVarP(&reportFormat, "format", "f", model.FormatMarkdown, "output format: markdown, json or csv")
	f.StringVar(&reportSearch, "search", "", "custom report: name or parties contains")
	f.StringVar(&reportStatus, "status", "", "custom report: exact status")
	f.StringVar(&reportRisk, "risk", "", "custom report: exact risk level")
	f.BoolVar(&reportRaw, "raw", false, "print markdown without terminal styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Fixtures.Source = reportSource

	// keep stdout for the report itself
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
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

	reports := service.NewReportService(service.NewContractService(source), nil)
	report, err := reports.Generate(cmd.Context(), service.ReportRequest{
		Type:      reportType,
		DateRange: reportRange,
		Format:    reportFormat,
		Filter:    service.Filter{Search: reportSearch, Status: reportStatus, Risk: reportRisk},
	})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, reportFormat, reportRaw)
}

func writeReport(w io.Writer, report *model.Report, format string, raw bool) error {
	if format == model.FormatMarkdown && !raw {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := renderer.Render(service.RenderMarkdown(report))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}

	data, _, _, err := service.Render(report, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
