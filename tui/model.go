// Package tui is a terminal browser for the contract portfolio: a filterable,
// paginated list, a detail view and an insights panel.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenInsights
)

var detailTabs = []string{"Clauses", "Insights", "Evidence"}

// Options configure the browser
type Options struct {
	PageLimit   int
	HorizonDays int
	Timeout     time.Duration
	Now         func() time.Time
}

type pageLoadedMsg struct {
	ticket service.Ticket
	page   *service.Page
	err    error
}

type detailLoadedMsg struct {
	id     string
	detail *model.ContractDetail
	err    error
}

type insightsLoadedMsg struct {
	insights *service.Insights
	err      error
}

// Model is the bubbletea model behind the browse command
type Model struct {
	svc  *service.ContractService
	view *service.ListView
	opts Options

	screen  screen
	cursor  int
	search  textinput.Model
	typing  bool
	spinner spinner.Model

	detailID      string
	detail        *model.ContractDetail
	detailErr     error
	detailLoading bool
	tab           int

	insights        *service.Insights
	insightsErr     error
	insightsLoading bool

	width, height int
}

func New(svc *service.ContractService, opts Options) Model {
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = service.DefaultHorizonDays
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search by name or parties..."
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:     svc,
		view:    service.NewListView(opts.PageLimit),
		opts:    opts,
		search:  ti,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Run starts the browser in the alternate screen and blocks until it exits
func Run(svc *service.ContractService, opts Options) error {
	_, err := tea.NewProgram(New(svc, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

// reload issues a list request for the current view state. Earlier requests
// still in flight are superseded.
func (m Model) reload() tea.Cmd {
	ticket := m.view.Begin()
	return tea.Batch(m.spinner.Tick, m.fetchPage(ticket))
}

func (m Model) fetchPage(ticket service.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
		defer cancel()
		page, err := m.svc.List(ctx, ticket.Params)
		return pageLoadedMsg{ticket: ticket, page: page, err: err}
	}
}

func (m Model) fetchDetail(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
		defer cancel()
		detail, err := m.svc.Get(ctx, id)
		return detailLoadedMsg{id: id, detail: detail, err: err}
	}
}

func (m Model) fetchInsights() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
		defer cancel()
		in, err := m.svc.Insights(ctx, m.opts.Now(), m.opts.HorizonDays)
		return insightsLoadedMsg{insights: in, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		if m.view.Complete(msg.ticket, msg.page, msg.err) && msg.err == nil {
			m.cursor = clamp(m.cursor, len(msg.page.Items))
		}
		return m, nil

	case detailLoadedMsg:
		if msg.id != m.detailID {
			return m, nil
		}
		m.detailLoading = false
		m.detail, m.detailErr = msg.detail, msg.err
		return m, nil

	case insightsLoadedMsg:
		m.insightsLoading = false
		m.insights, m.insightsErr = msg.insights, msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) && !(m.typing && msg.String() == "q") {
			return m, tea.Quit
		}
		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenInsights:
			return m.updateInsights(msg)
		}
		if m.typing {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) busy() bool {
	return m.view.Loading() || m.detailLoading || m.insightsLoading
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.typing = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == m.view.Filter().Search {
		return m, cmd
	}
	// every keystroke queries; only the newest response is shown
	m.view.SetSearch(m.search.Value())
	m.cursor = 0
	return m, tea.Batch(cmd, m.reload())
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Search):
		m.typing = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.Status):
		m.view.SetStatus(cycle(m.view.Filter().Status, model.Statuses))
		m.cursor = 0
		return m, m.reload()
	case key.Matches(msg, keys.Risk):
		m.view.SetRisk(cycle(m.view.Filter().Risk, model.RiskLevels))
		m.cursor = 0
		return m, m.reload()
	case key.Matches(msg, keys.Clear):
		m.view.ClearFilters()
		m.search.SetValue("")
		m.cursor = 0
		return m, m.reload()
	case key.Matches(msg, keys.Next):
		if m.view.NextPage() {
			m.cursor = 0
			return m, m.reload()
		}
	case key.Matches(msg, keys.Prev):
		if m.view.PrevPage() {
			m.cursor = 0
			return m, m.reload()
		}
	case key.Matches(msg, keys.Retry):
		if m.view.Err() != nil {
			ticket := m.view.Retry()
			return m, tea.Batch(m.spinner.Tick, m.fetchPage(ticket))
		}
	case key.Matches(msg, keys.Open):
		if m.cursor < len(items) {
			return m.openDetail(items[m.cursor].ID)
		}
	case key.Matches(msg, keys.Insights):
		m.screen = screenInsights
		m.insightsLoading = true
		m.insightsErr = nil
		return m, tea.Batch(m.spinner.Tick, m.fetchInsights())
	}
	return m, nil
}

func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.screen = screenDetail
	m.detailID = id
	m.detail = nil
	m.detailErr = nil
	m.detailLoading = true
	m.tab = 0
	return m, tea.Batch(m.spinner.Tick, m.fetchDetail(id))
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenList
		m.detailID = ""
	case key.Matches(msg, keys.Tab):
		m.tab = (m.tab + 1) % len(detailTabs)
	case key.Matches(msg, keys.Retry):
		if m.detailErr != nil && !errors.Is(m.detailErr, service.ErrContractNotFound) {
			return m.openDetail(m.detailID)
		}
	}
	return m, nil
}

func (m Model) updateInsights(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Insights):
		m.screen = screenList
	case key.Matches(msg, keys.Retry):
		if m.insightsErr != nil {
			m.insightsLoading = true
			m.insightsErr = nil
			return m, tea.Batch(m.spinner.Tick, m.fetchInsights())
		}
	}
	return m, nil
}

func (m Model) items() []model.Contract {
	if page := m.view.Result(); page != nil {
		return page.Items
	}
	return nil
}

// cycle steps through "" followed by each option, wrapping back to ""
func cycle(current string, options []string) string {
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
