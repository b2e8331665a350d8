package cli

import (
	"log"

	"propbets-service/internal/config"
	"propbets-service/internal/seed"

	"github.com/spf13/cobra"
)

// NewSeedCmd loads the event roster, categories, and questions into the
// configured store. Safe to run twice; an already-seeded store is left alone.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed participants, categories, and questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, cleanup, err := buildStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.SeedIfEmpty(cmd.Context(), seed.Participants(), seed.Categories(), seed.Questions()); err != nil {
				return err
			}
			log.Printf("seed complete")
			return nil
		},
	}
}
