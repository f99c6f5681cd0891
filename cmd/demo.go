package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/internal/config"
	"github.com/marcus/pick/internal/loader"
	"github.com/marcus/pick/internal/page"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open a scrolling page with several dropdowns",
	Long: `Open a scrolling page with three dropdowns: a static fruit list with a
default, a people list fetched after a delay, and a filterable country list.
Picks are remembered for 'pick select'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("demo needs an interactive terminal")
		}

		s, err := loadSettings()
		if err != nil {
			return err
		}
		latency := s.Latency()
		if cmd.Flags().Changed("latency") {
			latency, _ = cmd.Flags().GetDuration("latency")
		}

		db, err := openCatalog(s)
		if err != nil {
			return err
		}
		defer db.Close()

		lists, err := loader.LoadLists(context.Background(), db, catalog.ListFruits, catalog.ListCountries)
		if err != nil {
			return err
		}

		pg, err := page.New(page.Data{
			Fruits:    lists[catalog.ListFruits],
			Countries: lists[catalog.ListCountries],
			People:    loader.List(db, catalog.ListPeople),
		}, page.Options{
			Settings: s,
			Latency:  latency,
			Logger:   slog.Default(),
		})
		if err != nil {
			return err
		}
		defer pg.Close()

		p := tea.NewProgram(pg, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}

		for list, it := range pg.Picks() {
			if err := config.SetLastPick(getBaseDir(), list, it.ID); err != nil {
				slog.Warn("save last pick", "list", list, "err", err)
			}
			fmt.Printf("%s\t%s\n", list, it.Label)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().Duration("latency", 800*time.Millisecond, "simulated delay before the people list arrives")
	rootCmd.AddCommand(demoCmd)
}
