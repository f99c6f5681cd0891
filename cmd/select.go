package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/internal/config"
	"github.com/marcus/pick/internal/loader"
	"github.com/marcus/pick/internal/suggest"
	"github.com/marcus/pick/pkg/inputselect"
)

var errNothingSelected = errors.New("nothing selected")

// selectModel runs a single dropdown until an item is picked or the user
// gives up.
type selectModel struct {
	dd     *inputselect.Model[catalog.Item]
	fetch  tea.Cmd
	picked *catalog.Item
	quit   key.Binding
}

func newSelectModel(list string, s config.Settings, def *catalog.Item, fetch loader.FetchFunc[catalog.Item], latency time.Duration) (*selectModel, error) {
	m := &selectModel{
		quit: key.NewBinding(key.WithKeys("ctrl+c")),
	}

	cb := inputselect.NewCombobox()
	dd, err := inputselect.New(inputselect.Config[catalog.Item]{
		ID:           list,
		Label:        list,
		DefaultValue: def,
		IsLoading:    true,
		LoadingLabel: s.LoadingLabel,
		ParseItem: func(it catalog.Item) inputselect.Parsed {
			return inputselect.Parsed{Label: it.Label, Value: it.ID}
		},
		OnChange: func(it catalog.Item) {
			m.picked = &it
		},
		Placeholder: s.Placeholder,
		EmptyLabel:  s.EmptyLabel,
		Width:       s.Width,
		MaxVisible:  s.MaxVisible,
		Filter:      true,
		Behavior:    cb,
		Logger:      slog.Default(),
	})
	if err != nil {
		return nil, err
	}
	dd.Mount(0, 0)
	dd.Focus()
	cb.Toggle()

	m.dd = dd
	m.fetch = loader.Fetch(list, latency, fetch)
	return m, nil
}

func (m *selectModel) Init() tea.Cmd {
	return m.fetch
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, m.quit) {
			return m, tea.Quit
		}
		// Esc on a closed dropdown gives up.
		if k.Type == tea.KeyEsc && !m.dd.IsOpen() {
			return m, tea.Quit
		}
	}

	_, cmd := m.dd.Update(msg)
	if m.picked != nil {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *selectModel) View() string {
	if m.picked != nil {
		return ""
	}
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("type to filter • enter pick • esc close/quit")
	return m.dd.View() + "\n" + help
}

var selectCmd = &cobra.Command{
	Use:   "select <list>",
	Short: "Pick one item from a list and print it",
	Long: `Open a dropdown over a catalog list and print the picked item's id (or
label with --label) on stdout. The dropdown draws on stderr, so the command
works inside $(...). Exits non-zero when nothing is picked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("select needs an interactive terminal")
		}

		list := args[0]
		s, err := loadSettings()
		if err != nil {
			return err
		}
		db, err := openCatalog(s)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := checkList(db, list); err != nil {
			return err
		}

		def, err := lastPick(db, list)
		if err != nil {
			return err
		}

		latency, _ := cmd.Flags().GetDuration("latency")
		m, err := newSelectModel(list, s, def, loader.List(db, list), latency)
		if err != nil {
			return err
		}
		defer m.dd.Close()

		p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run select: %w", err)
		}
		if m.picked == nil {
			return errNothingSelected
		}

		if err := config.SetLastPick(getBaseDir(), list, m.picked.ID); err != nil {
			slog.Warn("save last pick", "list", list, "err", err)
		}
		if printLabel, _ := cmd.Flags().GetBool("label"); printLabel {
			fmt.Println(m.picked.Label)
		} else {
			fmt.Println(m.picked.ID)
		}
		return nil
	},
}

// checkList fails for a list the catalog does not have, suggesting close
// names.
func checkList(db *catalog.DB, list string) error {
	lists, err := db.Lists(context.Background())
	if err != nil {
		return err
	}
	names := make([]string, 0, len(lists))
	for _, l := range lists {
		if l.Name == list {
			return nil
		}
		names = append(names, l.Name)
	}
	if hints := suggest.Names(list, names); len(hints) > 0 {
		return fmt.Errorf("unknown list %q (did you mean %s?)", list, strings.Join(hints, ", "))
	}
	return fmt.Errorf("unknown list %q (see 'pick lists')", list)
}

// lastPick returns the item picked from list last time, if it still exists.
func lastPick(db *catalog.DB, list string) (*catalog.Item, error) {
	id, err := config.GetLastPick(getBaseDir(), list)
	if err != nil || id == "" {
		return nil, err
	}
	items, err := db.Items(context.Background(), list)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func init() {
	selectCmd.Flags().Bool("label", false, "print the label instead of the id")
	selectCmd.Flags().Duration("latency", 0, "simulated delay before the list arrives")
	rootCmd.AddCommand(selectCmd)
}
