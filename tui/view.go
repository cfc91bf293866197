package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/charmbracelet/bubbles/key"
)

func (m Model) View() string {
	switch m.screen {
	case screenDetail:
		return panel(m.detailView())
	case screenInsights:
		return panel(m.insightsView())
	}
	return panel(m.listView())
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contracts"))
	f := m.view.Filter()
	fmt.Fprintf(&b, "   %s %s  %s %s\n",
		mutedStyle.Render("status"), orAll(f.Status),
		mutedStyle.Render("risk"), orAll(f.Risk),
	)
	if m.typing || f.Search != "" {
		b.WriteString(m.search.View())
	}
	b.WriteString("\n\n")

	page := m.view.Result()
	switch {
	case m.view.Loading() && page == nil:
		b.WriteString(m.spinner.View() + " Loading contracts...\n")
	case m.view.Err() != nil:
		b.WriteString(errorStyle.Render(service.ErrFetchContracts.Error()) + "\n")
		b.WriteString(mutedStyle.Render(m.view.Err().Error()) + "\n\n")
		b.WriteString("Press R to retry.\n")
	case page == nil || len(page.Items) == 0:
		b.WriteString(mutedStyle.Render("No contracts found.") + "\n")
	default:
		b.WriteString(m.table(page.Items))
	}

	if page != nil {
		p := page.Pagination
		line := fmt.Sprintf("\nPage %d of %d · %d contracts", p.Page, max(p.TotalPages, 1), p.Total)
		if m.view.Loading() {
			line += " " + m.spinner.View()
		}
		b.WriteString(mutedStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + helpLine(keys.listHelp()))
	return b.String()
}

func (m Model) table(items []model.Contract) string {
	nameW := max(20, min(40, m.width/3))
	partyW := max(16, min(32, m.width/4))

	var b strings.Builder
	header := fmt.Sprintf("  %-*s %-*s %-12s %-7s %s", nameW, "Name", partyW, "Parties", "Status", "Risk", "Expiry")
	b.WriteString(mutedStyle.Render(header) + "\n")

	for i, c := range items {
		// pad by raw width, escape codes would skew %-*s
		status := styled(statusStyles, c.Status) + strings.Repeat(" ", max(0, 12-len(c.Status)))
		risk := styled(riskStyles, c.Risk) + strings.Repeat(" ", max(0, 7-len(c.Risk)))
		line := fmt.Sprintf("%-*s %-*s %s %s %s",
			nameW, truncate(c.Name, nameW),
			partyW, truncate(c.Parties, partyW),
			status, risk, c.Expiry.String(),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m Model) detailView() string {
	var b strings.Builder

	switch {
	case m.detailLoading:
		b.WriteString(m.spinner.View() + " Loading contract...\n")
	case errors.Is(m.detailErr, service.ErrContractNotFound):
		b.WriteString(errorStyle.Render("Contract not found") + "\n")
		b.WriteString(mutedStyle.Render("No detail record exists for "+m.detailID) + "\n")
	case m.detailErr != nil:
		b.WriteString(errorStyle.Render(service.ErrFetchDetails.Error()) + "\n")
		b.WriteString(mutedStyle.Render(m.detailErr.Error()) + "\n\nPress R to retry.\n")
	case m.detail != nil:
		d := m.detail
		b.WriteString(titleStyle.Render(d.Name) + "\n")
		fmt.Fprintf(&b, "%s\n%s  %s  %s → %s\n\n",
			mutedStyle.Render(d.Parties),
			styled(statusStyles, d.Status), styled(riskStyles, d.Risk),
			d.Start.String(), d.Expiry.String(),
		)

		for i, name := range detailTabs {
			if i == m.tab {
				b.WriteString(activeTab.Render(name))
			} else {
				b.WriteString(tabStyle.Render(name))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(m.tabContent(d))
	}

	b.WriteString("\n" + helpLine(keys.detailHelp()))
	return b.String()
}

func (m Model) tabContent(d *model.ContractDetail) string {
	var b strings.Builder
	switch m.tab {
	case 0:
		if len(d.Clauses) == 0 {
			return mutedStyle.Render("No clauses extracted.") + "\n"
		}
		for _, c := range d.Clauses {
			fmt.Fprintf(&b, "%s %s\n  %s\n", accentStyle.Render(c.Title), mutedStyle.Render(fmt.Sprintf("(%.0f%%)", c.Confidence*100)), c.Summary)
		}
	case 1:
		if len(d.Insights) == 0 {
			return mutedStyle.Render("No insights.") + "\n"
		}
		for _, in := range d.Insights {
			fmt.Fprintf(&b, "%s %s\n", styled(riskStyles, in.Risk), in.Message)
		}
	case 2:
		if len(d.Evidence) == 0 {
			return mutedStyle.Render("No evidence.") + "\n"
		}
		for _, e := range d.Evidence {
			fmt.Fprintf(&b, "%s %s\n  %q\n", accentStyle.Render(e.Source), mutedStyle.Render(fmt.Sprintf("relevance %.2f", e.Relevance)), e.Snippet)
		}
	}
	return b.String()
}

func (m Model) insightsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Portfolio insights") + "\n\n")

	switch {
	case m.insightsLoading:
		b.WriteString(m.spinner.View() + " Computing...\n")
	case m.insightsErr != nil:
		b.WriteString(errorStyle.Render(service.ErrFetchContracts.Error()) + "\n\nPress R to retry.\n")
	case m.insights != nil:
		in := m.insights
		r, s := in.Risk, in.Status
		fmt.Fprintf(&b, "Risk     %s %d  %s %d  %s %d  of %d\n",
			styled(riskStyles, model.RiskHigh), r.High,
			styled(riskStyles, model.RiskMedium), r.Medium,
			styled(riskStyles, model.RiskLow), r.Low, r.Total)
		fmt.Fprintf(&b, "Status   %s %d  %s %d  %s %d  of %d\n\n",
			styled(statusStyles, model.StatusActive), s.Active,
			styled(statusStyles, model.StatusRenewalDue), s.RenewalDue,
			styled(statusStyles, model.StatusExpired), s.Expired, s.Total)

		fmt.Fprintf(&b, "%s\n", accentStyle.Render(fmt.Sprintf("Expiring within %d days of %s", in.HorizonDays, in.AsOf)))
		if len(in.ExpiringSoon) == 0 {
			b.WriteString(mutedStyle.Render("Nothing expiring soon.") + "\n")
		}
		for _, e := range in.ExpiringSoon {
			fmt.Fprintf(&b, "  %-40s %s  %s\n", truncate(e.Name, 40), e.Expiry, e.Label)
		}
	}

	b.WriteString("\n" + helpLine([]key.Binding{keys.Back, keys.Retry, keys.Quit}))
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

func orAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
