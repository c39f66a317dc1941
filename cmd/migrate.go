package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"woocommerce.GO/config"
	"woocommerce.GO/model/migrations"
)

var migrateDown int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema up to date (or roll back with --down)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if migrateDown > 0 {
			if err := migrations.Down(db, migrateDown); err != nil {
				return err
			}
			log.Info().Int("steps", migrateDown).Msg("migrations rolled back")
			return nil
		}
		return migrations.Up(db)
	},
}

func init() {
	migrateCmd.Flags().IntVar(&migrateDown, "down", 0, "Roll back this many migrations (MySQL only)")
	rootCmd.AddCommand(migrateCmd)
}
