// Package tui is the interactive dashboard: tabbed lists over orders, clients
// and inventory plus a sales report view.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dsv-enterprise/dsvflow/internal/currency"
	"github.com/dsv-enterprise/dsvflow/internal/services"
)

// Deps are the wired repositories the dashboard renders and mutates.
type Deps struct {
	Orders    *services.OrderService
	Clients   *services.ClientService
	Inventory *services.InventoryService
	Reports   *services.ReportService
	Feed      *Feed
}

const (
	tabOrders = iota
	tabClients
	tabInventory
	tabReports
)

var tabNames = []string{"Orders", "Clients", "Inventory", "Reports"}

type model struct {
	deps Deps

	active    int
	orders    table.Model
	clients   table.Model
	inventory table.Model
	report    string

	// ids of the rows currently shown, parallel to the table rows
	orderIDs []string

	search    textinput.Model
	searching bool
	filter    string

	width  int
	height int
}

func newModel(deps Deps) model {
	search := textinput.New()
	search.Placeholder = "type to filter, enter to apply"
	search.CharLimit = 64

	m := model{
		deps:      deps,
		orders:    newTable(orderColumns()),
		clients:   newTable(clientColumns()),
		inventory: newTable(inventoryColumns()),
		search:    search,
	}
	m.refresh()
	return m
}

func newTable(cols []table.Column) table.Model {
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(12))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorText).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func orderColumns() []table.Column {
	return []table.Column{
		{Title: "Order #", Width: 17},
		{Title: "Date", Width: 11},
		{Title: "Client", Width: 18},
		{Title: "Product", Width: 15},
		{Title: "Qty", Width: 6},
		{Title: "Status", Width: 11},
		{Title: "Total", Width: 14},
	}
}

func clientColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Company", Width: 20},
		{Title: "Phone", Width: 14},
		{Title: "Email", Width: 24},
		{Title: "Orders", Width: 7},
		{Title: "Value", Width: 14},
	}
}

func inventoryColumns() []table.Column {
	return []table.Column{
		{Title: "Item", Width: 28},
		{Title: "Category", Width: 12},
		{Title: "Qty", Width: 7},
		{Title: "Min", Width: 6},
		{Title: "Unit Cost", Width: 12},
		{Title: "Updated", Width: 11},
	}
}

func (m *model) refresh() {
	m.refreshOrders()
	m.refreshClients()
	m.refreshInventory()
	m.refreshReport()
}

func (m *model) refreshOrders() {
	q := strings.ToLower(m.filter)
	rows := []table.Row{}
	m.orderIDs = m.orderIDs[:0]
	for _, o := range m.deps.Orders.Orders() {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.OrderNumber), q) &&
			!strings.Contains(strings.ToLower(o.ClientName), q) &&
			!strings.Contains(strings.ToLower(o.ProductType), q) {
			continue
		}
		rows = append(rows, table.Row{
			o.OrderNumber,
			o.CreatedAt.Format("02 Jan 06"),
			o.ClientName,
			o.ProductType,
			currency.FormatCount(o.Quantity),
			o.Status.String(),
			currency.Format(o.Total),
		})
		m.orderIDs = append(m.orderIDs, o.ID)
	}
	m.orders.SetRows(rows)
}

func (m *model) refreshClients() {
	clients := m.deps.Clients.Clients()
	if m.filter != "" {
		clients = m.deps.Clients.Search(m.filter)
	}
	rows := []table.Row{}
	for _, c := range clients {
		rows = append(rows, table.Row{
			c.Name,
			c.Company,
			c.Phone,
			c.Email,
			fmt.Sprintf("%d", c.TotalOrders),
			currency.Format(c.TotalValue),
		})
	}
	m.clients.SetRows(rows)
}

func (m *model) refreshInventory() {
	items := m.deps.Inventory.Items()
	if m.filter != "" {
		items = m.deps.Inventory.Search(m.filter)
	}
	rows := []table.Row{}
	for _, item := range items {
		name := item.Name
		if item.LowStock() {
			name = "! " + name
		}
		rows = append(rows, table.Row{
			name,
			item.Category,
			currency.FormatCount(item.Quantity),
			currency.FormatCount(item.MinStock),
			currency.Format(item.UnitCost),
			item.LastUpdated.Format("02 Jan 06"),
		})
	}
	m.inventory.SetRows(rows)
}

func (m *model) refreshReport() {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	rep := m.deps.Reports.Report(start, now)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sales Report: "+start.Format("2 Jan 2006")+" to "+now.Format("2 Jan 2006")) + "\n\n")
	b.WriteString(fmt.Sprintf("Revenue %s   Orders %d   Completed %d   Avg %s   Units %s\n\n",
		currency.Format(rep.TotalRevenue), rep.TotalOrders, rep.CompletedOrders,
		currency.Format(rep.AverageOrderValue), currency.FormatCount(rep.TotalUnits)))

	b.WriteString(statValueStyle.Render("Revenue by product") + "\n")
	if len(rep.ByProduct) == 0 {
		b.WriteString(subtitleStyle.Render("No orders in selected period") + "\n")
	}
	for _, ps := range rep.ByProduct {
		b.WriteString(fmt.Sprintf("  %-16s %3d orders  %8s units  %s\n",
			ps.ProductType, ps.Orders, currency.FormatCount(ps.Units), currency.Format(ps.Revenue)))
	}
	b.WriteString("\n" + statValueStyle.Render("Orders by status") + "\n")
	for _, sc := range rep.ByStatus {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", FormatStatus(sc.Status), sc.Count))
	}
	m.report = reportStyle.Render(b.String())
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.filter = m.search.Value()
				m.searching = false
				m.search.Blur()
				m.refresh()
				return m, nil
			case "esc":
				m.searching = false
				m.filter = ""
				m.search.SetValue("")
				m.search.Blur()
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right":
			m.active = (m.active + 1) % len(tabNames)
			return m, nil
		case "shift+tab", "left":
			m.active = (m.active + len(tabNames) - 1) % len(tabNames)
			return m, nil
		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case "esc":
			m.filter = ""
			m.search.SetValue("")
			m.refresh()
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		case "a":
			if m.active == tabOrders {
				m.advanceSelected()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case tabOrders:
		m.orders, cmd = m.orders.Update(msg)
	case tabClients:
		m.clients, cmd = m.clients.Update(msg)
	case tabInventory:
		m.inventory, cmd = m.inventory.Update(msg)
	}
	return m, cmd
}

// advanceSelected moves the highlighted order one step forward in the flow.
// Terminal orders stay put; the repository treats that as a no-op.
func (m *model) advanceSelected() {
	i := m.orders.Cursor()
	if i < 0 || i >= len(m.orderIDs) {
		return
	}
	if _, _, err := m.deps.Orders.AdvanceStatus(m.orderIDs[i]); err != nil {
		m.deps.Feed.Warning("Status change failed", err.Error())
	}
	m.refreshOrders()
	m.refreshReport()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DSV Flow") + "  " +
		subtitleStyle.Render("printing & branding order management") + "\n\n")
	b.WriteString(m.statStrip() + "\n")

	if low := m.deps.Inventory.LowStockItems(); len(low) > 0 {
		names := make([]string, 0, len(low))
		for _, item := range low {
			names = append(names, fmt.Sprintf("%s (%d left)", item.Name, item.Quantity))
		}
		b.WriteString(bannerStyle.Render("Low stock: "+strings.Join(names, ", ")) + "\n")
	}

	b.WriteString("\n" + m.tabBar() + "\n\n")

	if m.searching || m.filter != "" {
		b.WriteString(m.search.View() + "\n\n")
	}

	switch m.active {
	case tabOrders:
		b.WriteString(m.orders.View())
	case tabClients:
		b.WriteString(m.clients.View())
	case tabInventory:
		b.WriteString(m.inventory.View())
	case tabReports:
		b.WriteString(m.report)
	}
	b.WriteString("\n")

	if e, ok := m.deps.Feed.Latest(); ok {
		line := e.Title + ": " + e.Detail
		if e.Warning {
			b.WriteString(warnNotifStyle.Render(line) + "\n")
		} else {
			b.WriteString(notifStyle.Render(line) + "\n")
		}
	}

	help := []string{
		FormatKey("←/→", "switch tab"),
		FormatKey("/", "filter"),
		FormatKey("esc", "clear"),
		FormatKey("r", "refresh"),
		FormatKey("q", "quit"),
	}
	if m.active == tabOrders {
		help = append(help[:1], append([]string{FormatKey("a", "advance status")}, help[1:]...)...)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

func (m model) statStrip() string {
	stats := m.deps.Reports.Metrics()
	boxes := []string{
		statBox("Total Sales", currency.Format(stats.TotalSales)),
		statBox("Total Orders", fmt.Sprintf("%d", stats.TotalOrders)),
		statBox("This Month", fmt.Sprintf("%d", stats.OrdersThisMonth)),
		statBox("Pending", fmt.Sprintf("%d", stats.PendingOrders)),
		statBox("In Production", fmt.Sprintf("%d", stats.InProduction)),
		statBox("Completed", fmt.Sprintf("%d", stats.CompletedOrders)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func statBox(label, value string) string {
	return statBoxStyle.Render(statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value))
}

func (m model) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == m.active {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the dashboard and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
