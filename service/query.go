package service

import (
	"strings"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// Filter holds the list-view criteria. Empty fields do not filter.
type Filter struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
	Risk   string `json:"risk,omitempty"`
}

// IsZero reports whether no criterion is set
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Status == "" && f.Risk == ""
}

// Matches reports whether c satisfies every set criterion.
// Search is a case-insensitive substring test on name or parties;
// status and risk are exact, case-sensitive comparisons.
func (f Filter) Matches(c model.Contract) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Parties), needle) {
			return false
		}
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Risk != "" && c.Risk != f.Risk {
		return false
	}
	return true
}

// Query returns the contracts matching f in their original order.
// The input slice is not modified.
func Query(collection []model.Contract, f Filter) []model.Contract {
	result := make([]model.Contract, 0, len(collection))
	for _, c := range collection {
		if f.Matches(c) {
			result = append(result, c)
		}
	}
	return result
}
