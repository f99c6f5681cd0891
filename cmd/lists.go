package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/pick/internal/config"
	"github.com/marcus/pick/internal/output"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the catalog lists and their sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		db, err := openCatalog(s)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		lists, err := db.Lists(ctx)
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No lists. Run 'pick seed' or 'pick add'.")
			return nil
		}

		showItems, _ := cmd.Flags().GetBool("items")
		if !showItems {
			for _, l := range lists {
				fmt.Printf("%-16s %d\n", l.Name, l.Count)
			}
			return nil
		}

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		roots := make([]output.TreeNode, 0, len(lists))
		for _, l := range lists {
			items, err := db.Items(ctx, l.Name)
			if err != nil {
				return err
			}
			node := output.TreeNode{ID: l.Name, Label: l.Name, Count: l.Count}
			for _, it := range items {
				node.Children = append(node.Children, output.TreeNode{
					ID:     it.ID,
					Label:  it.Label,
					Marked: cfg.LastPicks[l.Name] == it.ID,
				})
			}
			roots = append(roots, node)
		}

		showIDs, _ := cmd.Flags().GetBool("ids")
		for _, line := range output.RenderTreeLines(roots, output.TreeRenderOptions{ShowIDs: showIDs}) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	listsCmd.Flags().Bool("items", false, "show every item as a tree; the last pick is marked")
	listsCmd.Flags().Bool("ids", false, "with --items, show item ids")
	rootCmd.AddCommand(listsCmd)
}
