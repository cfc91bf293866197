package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used by the fixtures
const DateLayout = "2006-01-02"

// Date is a calendar date decoded from an ISO-8601 string, held at UTC midnight
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Contract is the list-view record from the contracts fixture
type Contract struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Parties string `json:"parties"`
	Status  string `json:"status"` // Active, Expired, Renewal Due
	Risk    string `json:"risk"`   // Low, Medium, High
	Start   Date   `json:"start"`
	Expiry  Date   `json:"expiry"`
}

// ContractDetail is the detail-view record keyed by id in the details fixture
type ContractDetail struct {
	Contract
	Clauses  []Clause   `json:"clauses"`
	Insights []Insight  `json:"insights"`
	Evidence []Evidence `json:"evidence"`
}

type Clause struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
}

type Insight struct {
	Risk    string `json:"risk"`
	Message string `json:"message"`
}

type Evidence struct {
	Source    string  `json:"source"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

// Contract status values
const (
	StatusActive     = "Active"
	StatusExpired    = "Expired"
	StatusRenewalDue = "Renewal Due"
)

// Risk level values
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Statuses lists the recognized status values in display order
var Statuses = []string{StatusActive, StatusExpired, StatusRenewalDue}

// RiskLevels lists the recognized risk levels in display order
var RiskLevels = []string{RiskHigh, RiskMedium, RiskLow}

// IsKnownStatus reports whether s is one of the recognized status values.
// Unknown values are still accepted from fixtures and rendered with a fallback style.
func IsKnownStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsKnownRisk reports whether r is one of the recognized risk levels
func IsKnownRisk(r string) bool {
	for _, v := range RiskLevels {
		if v == r {
			return true
		}
	}
	return false
}
