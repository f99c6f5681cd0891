package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/pick/internal/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the catalog and load the sample lists",
	Long: `Create the catalog if needed and load the sample fruits, people and
countries lists. Existing sample lists are replaced; other lists are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		path := catalogPath(getBaseDir(), s)
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("catalog %s already exists (use --force to reseed)", path)
			}
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Reseed %s?", path)).
				Description("The sample lists are replaced. Other lists are kept.").
				Affirmative("Reseed").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled")
				return nil
			}
		}

		db, err := catalog.Initialize(path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SeedDefaults(context.Background()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		fmt.Printf("SEEDED %s (%d items)\n", path, len(catalog.DefaultItems()))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolP("force", "f", false, "reseed without asking")
	rootCmd.AddCommand(seedCmd)
}
