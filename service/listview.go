package service

import "sync"

// ListView is the state owned by an interactive contract list: the current
// filters, the page, and bookkeeping for the request in flight. A new view
// starts on page 1 with no filters. Every filter change resets the page to 1.
//
// Overlapping requests resolve as last-request-wins: Begin hands out an
// increasing ticket and only the newest ticket is accepted on completion.
type ListView struct {
	mu sync.Mutex

	filter Filter
	page   int
	limit  int

	generation uint64
	loading    bool
	lastErr    error
	result     *Page
	// resultFor is the query result answered; paging forward trusts
	// result only while it still matches the current query
	resultFor ListParams
}

// Ticket identifies one issued request
type Ticket struct {
	Generation uint64
	Params     ListParams
}

func NewListView(limit int) *ListView {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return &ListView{page: 1, limit: limit}
}

// Params returns the query the view currently wants
func (v *ListView) Params() ListParams {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paramsLocked()
}

func (v *ListView) paramsLocked() ListParams {
	return ListParams{Filter: v.filter, Page: v.page, Limit: v.limit}
}

func (v *ListView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *ListView) SetSearch(search string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Search != search {
		v.filter.Search = search
		v.page = 1
	}
}

func (v *ListView) SetStatus(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Status != status {
		v.filter.Status = status
		v.page = 1
	}
}

func (v *ListView) SetRisk(risk string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Risk != risk {
		v.filter.Risk = risk
		v.page = 1
	}
}

// ClearFilters drops every criterion and returns to page 1
func (v *ListView) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{}
	v.page = 1
}

// NextPage advances when the result for the current query reported a next
// page. After a filter or page change it waits for the new result.
func (v *ListView) NextPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.result == nil || v.resultFor != v.paramsLocked() || !v.result.Pagination.HasNext {
		return false
	}
	v.page++
	return true
}

// PrevPage steps back unless already on page 1
func (v *ListView) PrevPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page <= 1 {
		return false
	}
	v.page--
	return true
}

// Begin marks a request as in flight and returns its ticket
func (v *ListView) Begin() Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.loading = true
	return Ticket{Generation: v.generation, Params: v.paramsLocked()}
}

// Accept is true only for the most recently issued ticket
func (v *ListView) Accept(t Ticket) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return t.Generation == v.generation
}

// Complete records the outcome of a request. Stale tickets are ignored and
// Complete reports false for them.
func (v *ListView) Complete(t Ticket, page *Page, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if t.Generation != v.generation {
		return false
	}
	v.loading = false
	v.lastErr = err
	if err == nil {
		v.result = page
		v.resultFor = t.Params
	}
	return true
}

// Retry issues a new ticket for the same params after a failure
func (v *ListView) Retry() Ticket {
	return v.Begin()
}

func (v *ListView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *ListView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Result is the last accepted page, nil before the first successful load
func (v *ListView) Result() *Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}
