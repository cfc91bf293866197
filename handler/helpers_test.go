package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/gin-gonic/gin"
)

// stubSource serves fixed fixtures, or fails when err is set
type stubSource struct {
	contracts []model.Contract
	details   map[string]model.ContractDetail
	err       error
}

func (s *stubSource) Contracts(ctx context.Context) ([]model.Contract, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.contracts, nil
}

func (s *stubSource) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.details, nil
}

var errUnreachable = errors.New("connection refused")

var testNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

func testSource() *stubSource {
	contracts := []model.Contract{
		{ID: "c1", Name: "MSA with Acme Corp", Parties: "Acme Corp & Initech", Status: model.StatusActive, Risk: model.RiskHigh,
			Start: model.NewDate(2024, time.January, 1), Expiry: model.NewDate(2025, time.June, 20)},
		{ID: "c2", Name: "Globex NDA", Parties: "Globex", Status: model.StatusExpired, Risk: model.RiskLow,
			Start: model.NewDate(2023, time.January, 1), Expiry: model.NewDate(2024, time.December, 31)},
		{ID: "c3", Name: "Office Lease", Parties: "Hooli Realty", Status: model.StatusRenewalDue, Risk: model.RiskMedium,
			Start: model.NewDate(2022, time.July, 1), Expiry: model.NewDate(2025, time.July, 1)},
	}
	details := map[string]model.ContractDetail{
		"c1": {
			Contract: contracts[0],
			Clauses:  []model.Clause{{Title: "Termination", Summary: "90 days notice", Confidence: 0.82}},
			Insights: []model.Insight{{Risk: model.RiskHigh, Message: "Uncapped liability."}},
			Evidence: []model.Evidence{{Source: "Section 4", Snippet: "Either party may terminate", Relevance: 0.9}},
		},
	}
	return &stubSource{contracts: contracts, details: details}
}

// withUser stands in for the auth middleware
func withUser(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("username", username)
		c.Next()
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
}
