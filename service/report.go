package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// summaryRows is how many contracts the overview table lists
const summaryRows = 5

var (
	ErrUnsupportedReport = errors.New("unsupported report type")
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

var reportTitles = map[string]string{
	model.ReportOverview:   "Overview Report",
	model.ReportRisk:       "Risk Analysis",
	model.ReportRenewal:    "Renewal Report",
	model.ReportCompliance: "Compliance Report",
	model.ReportCustom:     "Custom Report",
}

var dateRanges = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// ReportRequest selects what to generate
type ReportRequest struct {
	Type      string `json:"type"`
	DateRange string `json:"date_range"`
	Format    string `json:"format"`
	Filter    Filter `json:"filter"`
}

// ParseDateRange converts a range label to days. Empty means 30d.
func ParseDateRange(label string) (int, error) {
	if label == "" {
		return DefaultHorizonDays, nil
	}
	days, ok := dateRanges[label]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidDateRange, label)
	}
	return days, nil
}

// ValidateFormat accepts json, csv and markdown
func ValidateFormat(format string) error {
	switch format {
	case model.FormatJSON, model.FormatCSV, model.FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// ReportService builds portfolio reports from the contract fixtures
type ReportService struct {
	contracts *ContractService
	objects   ObjectStore // nil disables archiving
	now       func() time.Time
}

func NewReportService(contracts *ContractService, objects ObjectStore) *ReportService {
	return &ReportService{
		contracts: contracts,
		objects:   objects,
		now:       time.Now,
	}
}

// Generate fetches fresh fixtures and assembles the requested report
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*model.Report, error) {
	title, ok := reportTitles[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedReport, req.Type)
	}
	if req.Format == "" {
		req.Format = model.FormatJSON
	}
	if err := ValidateFormat(req.Format); err != nil {
		return nil, err
	}
	rangeDays, err := ParseDateRange(req.DateRange)
	if err != nil {
		return nil, err
	}
	if req.DateRange == "" {
		req.DateRange = "30d"
	}

	var (
		all     []model.Contract
		details map[string]model.ContractDetail
	)
	if req.Type == model.ReportCompliance {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			all, err = s.contracts.All(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			details, err = s.contracts.Details(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		all, err = s.contracts.All(ctx)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	utc := now.UTC()
	report := &model.Report{
		ID:          uuid.New().String(),
		Type:        req.Type,
		Title:       title,
		DateRange:   req.DateRange,
		AsOf:        model.NewDate(utc.Year(), utc.Month(), utc.Day()),
		GeneratedAt: now,
	}
	fillTotals(report, all)

	switch req.Type {
	case model.ReportOverview:
		n := min(summaryRows, len(all))
		report.Rows = rowsOf(all[:n])
	case model.ReportRisk:
		report.Rows = rowsOf(Query(all, Filter{Risk: model.RiskHigh}))
	case model.ReportRenewal:
		for _, c := range ExpiringSoon(all, now, rangeDays) {
			days := DaysUntilExpiry(c.Expiry, now)
			report.Rows = append(report.Rows, model.ReportRow{Contract: c, DaysLeft: &days})
		}
	case model.ReportCompliance:
		report.Rows = complianceRows(all, details)
	case model.ReportCustom:
		report.Rows = rowsOf(Query(all, req.Filter))
		report.Filter = &model.ReportFilter{
			Search: req.Filter.Search,
			Status: req.Filter.Status,
			Risk:   req.Filter.Risk,
		}
	}
	if report.Rows == nil {
		report.Rows = []model.ReportRow{}
	}

	logger.Info(ctx, "report generated", "report_id", report.ID, "type", report.Type, "rows", len(report.Rows))
	return report, nil
}

// Archive renders the report and stores it in object storage, setting report.URL.
// It is a no-op without an object store.
func (s *ReportService) Archive(ctx context.Context, report *model.Report, format string) error {
	if s.objects == nil {
		return nil
	}
	data, contentType, ext, err := Render(report, format)
	if err != nil {
		return err
	}
	objectName := fmt.Sprintf("reports/%s/%s%s", report.Type, report.ID, ext)
	if err := s.objects.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}
	url, err := s.objects.GetPresignedURL(ctx, objectName)
	if err != nil {
		return fmt.Errorf("archive report: %w", err)
	}
	report.URL = url
	return nil
}

func fillTotals(report *model.Report, all []model.Contract) {
	risk := ComputeRiskStats(all)
	status := ComputeStatusStats(all)

	report.Totals = model.ReportTotals{
		Contracts:  len(all),
		Active:     status.Active,
		Expired:    status.Expired,
		RenewalDue: status.RenewalDue,
		HighRisk:   risk.High,
		MediumRisk: risk.Medium,
		LowRisk:    risk.Low,
	}
	report.RiskBreakdown = []model.Breakdown{
		{Label: model.RiskHigh, Count: risk.High, Percent: Percent(risk.High, risk.Total)},
		{Label: model.RiskMedium, Count: risk.Medium, Percent: Percent(risk.Medium, risk.Total)},
		{Label: model.RiskLow, Count: risk.Low, Percent: Percent(risk.Low, risk.Total)},
	}
	report.StatusBreakdown = []model.Breakdown{
		{Label: model.StatusActive, Count: status.Active, Percent: Percent(status.Active, status.Total)},
		{Label: model.StatusExpired, Count: status.Expired, Percent: Percent(status.Expired, status.Total)},
		{Label: model.StatusRenewalDue, Count: status.RenewalDue, Percent: Percent(status.RenewalDue, status.Total)},
	}
}

func rowsOf(contracts []model.Contract) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, model.ReportRow{Contract: c})
	}
	return rows
}

// complianceRows counts insights per contract. Contracts missing from the
// detail fixture keep nil counts rather than zero.
func complianceRows(all []model.Contract, details map[string]model.ContractDetail) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(all))
	for _, c := range all {
		row := model.ReportRow{Contract: c}
		if d, ok := details[c.ID]; ok {
			count := len(d.Insights)
			high := 0
			for _, in := range d.Insights {
				if in.Risk == model.RiskHigh {
					high++
				}
			}
			row.InsightCount = &count
			row.HighInsights = &high
		}
		rows = append(rows, row)
	}
	return rows
}

// Render encodes the report. It returns the bytes, content type and file extension.
func Render(report *model.Report, format string) ([]byte, string, string, error) {
	switch format {
	case model.FormatJSON, "":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, "", "", fmt.Errorf("encode report: %w", err)
		}
		return data, "application/json", ".json", nil
	case model.FormatCSV:
		data, err := renderCSV(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, "text/csv", ".csv", nil
	case model.FormatMarkdown:
		return []byte(RenderMarkdown(report)), "text/markdown", ".md", nil
	default:
		return nil, "", "", fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

func rowColumns(report *model.Report) (days, insights bool) {
	switch report.Type {
	case model.ReportRenewal:
		return true, false
	case model.ReportCompliance:
		return false, true
	}
	return false, false
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func renderCSV(report *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	days, insights := rowColumns(report)
	header := []string{"id", "name", "parties", "status", "risk", "start", "expiry"}
	if days {
		header = append(header, "days_left")
	}
	if insights {
		header = append(header, "insight_count", "high_insights")
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	for _, r := range report.Rows {
		record := []string{r.ID, r.Name, r.Parties, r.Status, r.Risk, r.Start.String(), r.Expiry.String()}
		if days {
			record = append(record, optInt(r.DaysLeft))
		}
		if insights {
			record = append(record, optInt(r.InsightCount), optInt(r.HighInsights))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMarkdown formats the report as a markdown document
func RenderMarkdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	fmt.Fprintf(&b, "Generated %s · range %s\n\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), report.DateRange)
	if report.Filter != nil {
		fmt.Fprintf(&b, "Filter: search=%q status=%q risk=%q\n\n", report.Filter.Search, report.Filter.Status, report.Filter.Risk)
	}

	t := report.Totals
	b.WriteString("## Summary\n\n")
	b.WriteString("| Total | Active | Renewal Due | Expired | High Risk |\n")
	b.WriteString("| ---: | ---: | ---: | ---: | ---: |\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n\n", t.Contracts, t.Active, t.RenewalDue, t.Expired, t.HighRisk)

	b.WriteString("## Risk distribution\n\n")
	for _, br := range report.RiskBreakdown {
		fmt.Fprintf(&b, "- **%s**: %d (%d%%)\n", br.Label, br.Count, br.Percent)
	}
	b.WriteString("\n## Status distribution\n\n")
	for _, br := range report.StatusBreakdown {
		fmt.Fprintf(&b, "- **%s**: %d (%d%%)\n", br.Label, br.Count, br.Percent)
	}

	b.WriteString("\n## Contracts\n\n")
	if len(report.Rows) == 0 {
		b.WriteString("_No contracts match this report._\n")
		return b.String()
	}

	days, insights := rowColumns(report)
	b.WriteString("| Contract | Parties | Status | Risk | Expiry |")
	sep := "| --- | --- | --- | --- | --- |"
	if days {
		b.WriteString(" Days Left |")
		sep += " ---: |"
	}
	if insights {
		b.WriteString(" Insights | High |")
		sep += " ---: | ---: |"
	}
	b.WriteString("\n" + sep + "\n")
	for _, r := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |", mdEscape(r.Name), mdEscape(r.Parties), r.Status, r.Risk, r.Expiry.String())
		if days {
			label := ""
			if r.DaysLeft != nil {
				label = ExpiryLabel(*r.DaysLeft)
			}
			fmt.Fprintf(&b, " %s |", label)
		}
		if insights {
			fmt.Fprintf(&b, " %s | %s |", optInt(r.InsightCount), optInt(r.HighInsights))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
