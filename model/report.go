package model

import "time"

// Report types
const (
	ReportOverview   = "overview"
	ReportRisk       = "risk"
	ReportRenewal    = "renewal"
	ReportCompliance = "compliance"
	ReportFinancial  = "financial"
	ReportCustom     = "custom"
)

// Report output formats
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
	FormatExcel    = "excel"
)

// Report is a generated portfolio report
type Report struct {
	ID              string        `json:"id"`
	Type            string        `json:"type"`
	Title           string        `json:"title"`
	DateRange       string        `json:"date_range"`
	AsOf            Date          `json:"as_of"`
	GeneratedAt     time.Time     `json:"generated_at"`
	Totals          ReportTotals  `json:"totals"`
	RiskBreakdown   []Breakdown   `json:"risk_breakdown"`
	StatusBreakdown []Breakdown   `json:"status_breakdown"`
	Rows            []ReportRow   `json:"rows"`
	Filter          *ReportFilter `json:"filter,omitempty"`
	URL             string        `json:"url,omitempty"`
}

type ReportTotals struct {
	Contracts  int `json:"contracts"`
	Active     int `json:"active"`
	Expired    int `json:"expired"`
	RenewalDue int `json:"renewal_due"`
	HighRisk   int `json:"high_risk"`
	MediumRisk int `json:"medium_risk"`
	LowRisk    int `json:"low_risk"`
}

// Breakdown is one bar of a distribution chart
type Breakdown struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// ReportRow is one contract line in a report table
type ReportRow struct {
	Contract
	DaysLeft     *int `json:"days_left,omitempty"`
	InsightCount *int `json:"insight_count,omitempty"`
	HighInsights *int `json:"high_insights,omitempty"`
}

// ReportFilter records the criteria of a custom report
type ReportFilter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
	Risk   string `json:"risk,omitempty"`
}
