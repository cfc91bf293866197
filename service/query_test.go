package service

import (
	"testing"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	all := sampleContracts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter keeps everything in order", Filter{}, []string{"c1", "c2", "c3", "c4", "c5"}},
		{"search on name is case-insensitive", Filter{Search: "ACME CORP"}, []string{"c1"}},
		{"search matches parties too", Filter{Search: "acme"}, []string{"c1", "c3"}},
		{"search substring inside parties", Filter{Search: "vandelay"}, []string{"c4", "c5"}},
		{"status exact match", Filter{Status: model.StatusActive}, []string{"c1", "c4", "c5"}},
		{"status is case-sensitive", Filter{Status: "active"}, []string{}},
		{"status with space", Filter{Status: model.StatusRenewalDue}, []string{"c3"}},
		{"risk exact match", Filter{Risk: model.RiskHigh}, []string{"c1", "c5"}},
		{"risk is case-sensitive", Filter{Risk: "high"}, []string{}},
		{"status and risk intersect", Filter{Status: model.StatusActive, Risk: model.RiskLow}, []string{"c4"}},
		{"all three predicates", Filter{Search: "consulting", Status: model.StatusActive, Risk: model.RiskHigh}, []string{"c5"}},
		{"no match", Filter{Search: "nonexistent"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(all, tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryEmptyCollection(t *testing.T) {
	got := Query(nil, Filter{Search: "x", Status: model.StatusActive})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	all := sampleContracts()
	before := ids(all)

	_ = Query(all, Filter{Risk: model.RiskHigh})

	assert.Equal(t, before, ids(all))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Risk: model.RiskLow}.IsZero())
}
