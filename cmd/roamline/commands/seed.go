package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixtures.yaml>",
	Short: "Load demo fixtures into empty collections",
	Long: `Seed fills collections that do not exist yet from a YAML fixture file.
Existing collections are never touched, so seeding is safe to repeat.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	back, err := openBackoffice()
	if err != nil {
		return err
	}
	defer back.Close()

	created, err := back.Seed(args[0])
	if err != nil {
		return err
	}

	if created == 0 {
		color.Yellow("Nothing to seed; all collections already exist.")
		return nil
	}
	color.Green("Seeded %d record(s) from %s", created, args[0])
	return nil
}
