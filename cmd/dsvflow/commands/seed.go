package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/dsv-enterprise/dsvflow/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default inventory to the store",
	Long: `Materializes the built-in default stock list. A fresh database already
shows the defaults in memory; seeding persists them so later tools see the
same data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(services.LogNotifier{})
		if err != nil {
			return err
		}
		if err := d.inventory.Persist(); err != nil {
			return err
		}
		log.Printf("seeded %d inventory items", len(d.inventory.Items()))
		return nil
	},
}
