package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestReportService(src *fakeSource, objects ObjectStore) *ReportService {
	svc := NewReportService(NewContractService(src), objects)
	svc.now = func() time.Time { return asOf.Add(9 * time.Hour) }
	return svc
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"", 30, false},
		{"7d", 7, false},
		{"30d", 30, false},
		{"90d", 90, false},
		{"1y", 365, false},
		{"2w", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseDateRange(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateRejectsUnsupportedRequests(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, ReportRequest{Type: model.ReportFinancial})
	assert.ErrorIs(t, err, ErrUnsupportedReport)

	_, err = svc.Generate(ctx, ReportRequest{Type: "quarterly"})
	assert.ErrorIs(t, err, ErrUnsupportedReport)

	_, err = svc.Generate(ctx, ReportRequest{Type: model.ReportRisk, Format: model.FormatPDF})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = svc.Generate(ctx, ReportRequest{Type: model.ReportRisk, Format: model.FormatExcel})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = svc.Generate(ctx, ReportRequest{Type: model.ReportRisk, DateRange: "2w"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGenerateOverview(t *testing.T) {
	all := append(sampleContracts(), contract("c6", "Extra", "X", model.StatusActive, model.RiskLow, model.NewDate(2027, time.January, 1)))
	svc := newTestReportService(&fakeSource{contracts: all}, nil)

	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportOverview})
	require.NoError(t, err)

	assert.Equal(t, "Overview Report", r.Title)
	assert.Equal(t, "30d", r.DateRange)
	assert.Equal(t, "2025-06-01", r.AsOf.String())
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, rowIDs(r.Rows))
	assert.Equal(t, model.ReportTotals{Contracts: 6, Active: 4, Expired: 1, RenewalDue: 1, HighRisk: 2, MediumRisk: 1, LowRisk: 3}, r.Totals)
	assert.Equal(t, model.Breakdown{Label: model.RiskHigh, Count: 2, Percent: 33}, r.RiskBreakdown[0])
	assert.Equal(t, model.Breakdown{Label: model.StatusActive, Count: 4, Percent: 67}, r.StatusBreakdown[0])
}

func TestGenerateRisk(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)

	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRisk})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c5"}, rowIDs(r.Rows))
}

func TestGenerateRenewal(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)

	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRenewal, DateRange: "30d"})
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c3", "c5"}, rowIDs(r.Rows))
	assert.Equal(t, 14, *r.Rows[0].DaysLeft)
	assert.Equal(t, 30, *r.Rows[1].DaysLeft)
	assert.Equal(t, 0, *r.Rows[2].DaysLeft)

	r, err = svc.Generate(context.Background(), ReportRequest{Type: model.ReportRenewal, DateRange: "7d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c5"}, rowIDs(r.Rows))
}

func TestGenerateCompliance(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)

	src := &fakeSource{contracts: sampleContracts(), details: sampleDetails()}
	svc := newTestReportService(src, nil)

	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportCompliance})
	require.NoError(t, err)
	require.Len(t, r.Rows, 5)

	assert.Equal(t, 1, *r.Rows[0].InsightCount)
	assert.Equal(t, 1, *r.Rows[0].HighInsights)
	assert.Nil(t, r.Rows[1].InsightCount, "no detail record for c2")
	assert.Equal(t, 0, *r.Rows[2].InsightCount)
	assert.Equal(t, 1, src.listCalls)
	assert.Equal(t, 1, src.detailCalls)
}

func TestGenerateComplianceDetailFailure(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)

	svc := newTestReportService(&fakeSource{contracts: sampleContracts(), detailErr: errBoom}, nil)

	_, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportCompliance})
	assert.ErrorIs(t, err, ErrFetchDetails)
}

func TestGenerateCustom(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)

	r, err := svc.Generate(context.Background(), ReportRequest{
		Type:   model.ReportCustom,
		Filter: Filter{Search: "vandelay", Status: model.StatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c4", "c5"}, rowIDs(r.Rows))
	require.NotNil(t, r.Filter)
	assert.Equal(t, "vandelay", r.Filter.Search)

	r, err = svc.Generate(context.Background(), ReportRequest{Type: model.ReportCustom, Filter: Filter{Search: "nothing"}})
	require.NoError(t, err)
	assert.NotNil(t, r.Rows)
	assert.Empty(t, r.Rows)
}

func TestGenerateFetchError(t *testing.T) {
	svc := newTestReportService(&fakeSource{contractErr: errBoom}, nil)

	_, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportOverview})
	assert.True(t, IsFetchError(err))
}

func TestRenderJSON(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRisk})
	require.NoError(t, err)

	data, contentType, ext, err := Render(r, model.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, ".json", ext)

	var decoded model.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	assert.Len(t, decoded.Rows, 2)
}

func TestRenderCSV(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts(), details: sampleDetails()}, nil)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportCompliance})
	require.NoError(t, err)

	data, contentType, ext, err := Render(r, model.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, ".csv", ext)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"id", "name", "parties", "status", "risk", "start", "expiry", "insight_count", "high_insights"}, records[0])
	assert.Equal(t, []string{"c1", "Acme Corp Master Services", "Acme Corp & Initech", "Active", "High", "2023-01-01", "2025-06-15", "1", "1"}, records[1])
	assert.Equal(t, "", records[2][7])
}

func TestRenderMarkdown(t *testing.T) {
	all := append(sampleContracts(), contract("c6", "Pipe | Co", "A & B", model.StatusActive, model.RiskLow, model.NewDate(2025, time.June, 2)))
	svc := newTestReportService(&fakeSource{contracts: all}, nil)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRenewal})
	require.NoError(t, err)

	md := RenderMarkdown(r)
	assert.True(t, strings.HasPrefix(md, "# Renewal Report\n"))
	assert.Contains(t, md, "| 6 | 4 | 1 | 1 | 2 |")
	assert.Contains(t, md, "- **High**: 2 (33%)")
	assert.Contains(t, md, "| Acme Corp Master Services | Acme Corp & Initech | Active | High | 2025-06-15 | 14 days left |")
	assert.Contains(t, md, `Pipe \| Co`)
	assert.Contains(t, md, "| 1 day left |")
	assert.Contains(t, md, "| Expired |")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: []model.Contract{}}, nil)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportOverview})
	require.NoError(t, err)

	assert.Contains(t, RenderMarkdown(r), "_No contracts match this report._")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, _, _, err := Render(&model.Report{}, model.FormatPDF)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestArchive(t *testing.T) {
	objects := newFakeObjectStore()
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, objects)

	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRisk, Format: model.FormatCSV})
	require.NoError(t, err)
	require.NoError(t, svc.Archive(context.Background(), r, model.FormatCSV))

	name := "reports/risk/" + r.ID + ".csv"
	assert.Contains(t, objects.objects, name)
	assert.Equal(t, "text/csv", objects.types[name])
	assert.Equal(t, "https://objects.test/"+name, r.URL)
}

func TestArchiveWithoutObjectStore(t *testing.T) {
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, nil)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRisk})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(context.Background(), r, model.FormatJSON))
	assert.Empty(t, r.URL)
}

func TestArchiveUploadError(t *testing.T) {
	objects := newFakeObjectStore()
	objects.uploadErr = errBoom
	svc := newTestReportService(&fakeSource{contracts: sampleContracts()}, objects)
	r, err := svc.Generate(context.Background(), ReportRequest{Type: model.ReportRisk})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Archive(context.Background(), r, model.FormatJSON), errBoom)
}

func rowIDs(rows []model.ReportRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
