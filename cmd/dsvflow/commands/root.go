package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsv-enterprise/dsvflow/cmd/dsvflow/tui"
	"github.com/dsv-enterprise/dsvflow/internal/config"
	"github.com/dsv-enterprise/dsvflow/internal/db"
	"github.com/dsv-enterprise/dsvflow/internal/services"
	"github.com/dsv-enterprise/dsvflow/internal/store"
)

var dbFlag string

var rootCmd = &cobra.Command{
	Use:   "dsvflow",
	Short: "DSV Flow - order management for DSV Enterprise",
	Long: `DSV Flow tracks clients, inventory and printing/branding orders,
computes quantity discounts and VAT, and renders sales reports.

State lives in a local database file. Run without arguments to open the
interactive dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Database file or postgres DSN (defaults to DSVFLOW_DB)")
	rootCmd.AddCommand(tuiCmd, reportCmd, seedCmd)
}

// deps is the wired application: the four repositories, assembled the same
// way for every command.
type deps struct {
	orders    *services.OrderService
	clients   *services.ClientService
	inventory *services.InventoryService
	reports   *services.ReportService
}

// openDeps connects the store and wires the repositories. Client running
// totals are kept in step with order creation by handing the client repository
// to the order repository as its stats recorder.
func openDeps(notifier services.Notifier) (*deps, error) {
	cfg := config.Load()
	dsn := dbFlag
	if dsn == "" {
		dsn = cfg.DatabaseDSN
	}
	conn, err := db.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	st, err := store.New(conn)
	if err != nil {
		return nil, err
	}
	clients, err := services.NewClientService(st, notifier)
	if err != nil {
		return nil, err
	}
	orders, err := services.NewOrderService(st, services.NewPricingService(), notifier,
		services.WithClientStats(clients))
	if err != nil {
		return nil, err
	}
	inventory, err := services.NewInventoryService(st, notifier)
	if err != nil {
		return nil, err
	}
	return &deps{
		orders:    orders,
		clients:   clients,
		inventory: inventory,
		reports:   services.NewReportService(orders),
	}, nil
}

func runDashboard() error {
	feed := tui.NewFeed(5)
	d, err := openDeps(feed)
	if err != nil {
		return err
	}
	return tui.Run(tui.Deps{
		Orders:    d.orders,
		Clients:   d.clients,
		Inventory: d.inventory,
		Reports:   d.reports,
		Feed:      feed,
	})
}
