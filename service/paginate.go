package service

import "github.com/Sathvikcoderr02/saas-contracts-dashboard/model"

// DefaultPageLimit is the page size used when a caller does not ask for one
const DefaultPageLimit = 10

// Page is one slice of a filtered collection plus pagination metadata
type Page struct {
	Items      []model.Contract `json:"contracts"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Paginate slices filtered into page number page of size limit.
// Pages past the end yield no items; page itself is never clamped.
// Callers must reset page to 1 whenever the filter changes.
func Paginate(filtered []model.Contract, page, limit int) Page {
	total := len(filtered)

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	items := []model.Contract{}
	if page >= 1 && page <= totalPages {
		start := (page - 1) * limit
		end := start + limit
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Page{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}
