package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/internal/input"
)

var addCmd = &cobra.Command{
	Use:   "add <list> <label>...",
	Short: "Append items to a list, creating it if needed",
	Long: `Append items to a list, creating it if needed. A label of "-" reads
labels from stdin and "@path" reads them from a file, one per line.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		db, err := catalog.Initialize(catalogPath(getBaseDir(), s))
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		list := args[0]
		existing, err := db.Items(ctx, list)
		if err != nil {
			return err
		}

		labels, _ := input.ExpandFlagValues(args[1:], false)
		if len(labels) == 0 {
			return fmt.Errorf("no labels to add to %s", list)
		}
		items := make([]catalog.Item, 0, len(labels))
		for i, label := range labels {
			label = strings.TrimSpace(label)
			if label == "" {
				return fmt.Errorf("empty label at position %d", i+1)
			}
			items = append(items, catalog.Item{
				List:     list,
				ID:       catalog.Slug(label),
				Label:    label,
				Position: len(existing) + i,
			})
		}
		if err := db.Put(ctx, items...); err != nil {
			return err
		}

		fmt.Printf("ADDED %d to %s\n", len(items), list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
