package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// DefaultHorizonDays is the look-ahead window for expiring contracts
const DefaultHorizonDays = 30

const day = 24 * time.Hour

// RiskStats counts contracts per risk level. Total is the size of the whole
// collection, so records with an unrecognized risk appear only in Unclassified.
type RiskStats struct {
	High         int `json:"high"`
	Medium       int `json:"medium"`
	Low          int `json:"low"`
	Total        int `json:"total"`
	Unclassified int `json:"unclassified"`
}

// StatusStats counts contracts per lifecycle status, with the same Total rule as RiskStats
type StatusStats struct {
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	RenewalDue   int `json:"renewalDue"`
	Total        int `json:"total"`
	Unclassified int `json:"unclassified"`
}

func ComputeRiskStats(collection []model.Contract) RiskStats {
	stats := RiskStats{Total: len(collection)}
	for _, c := range collection {
		switch c.Risk {
		case model.RiskHigh:
			stats.High++
		case model.RiskMedium:
			stats.Medium++
		case model.RiskLow:
			stats.Low++
		}
	}
	stats.Unclassified = stats.Total - stats.High - stats.Medium - stats.Low
	return stats
}

func ComputeStatusStats(collection []model.Contract) StatusStats {
	stats := StatusStats{Total: len(collection)}
	for _, c := range collection {
		switch c.Status {
		case model.StatusActive:
			stats.Active++
		case model.StatusExpired:
			stats.Expired++
		case model.StatusRenewalDue:
			stats.RenewalDue++
		}
	}
	stats.Unclassified = stats.Total - stats.Active - stats.Expired - stats.RenewalDue
	return stats
}

// ExpiringSoon returns contracts whose expiry lies in [asOf, asOf+horizonDays],
// both ends inclusive, compared by calendar day in UTC. Input order is kept.
func ExpiringSoon(collection []model.Contract, asOf time.Time, horizonDays int) []model.Contract {
	from := startOfDay(asOf)
	to := from.AddDate(0, 0, horizonDays)

	result := make([]model.Contract, 0)
	for _, c := range collection {
		if c.Expiry.IsZero() {
			continue
		}
		expiry := startOfDay(c.Expiry.Time)
		if !expiry.Before(from) && !expiry.After(to) {
			result = append(result, c)
		}
	}
	return result
}

// DaysUntilExpiry is ceil((expiry - asOf) / 1 day). Zero or negative means expired.
func DaysUntilExpiry(expiry model.Date, asOf time.Time) int {
	diff := expiry.Sub(asOf)
	return int(math.Ceil(float64(diff) / float64(day)))
}

// ExpiryLabel renders a days-left count the way list rows and cards show it
func ExpiryLabel(days int) string {
	if days <= 0 {
		return "Expired"
	}
	if days == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", days)
}

// Percent returns count as a whole percentage of total, 0 when total is 0
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
