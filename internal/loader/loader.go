// Package loader runs item fetches off the Bubble Tea update loop and
// reports the results back to dropdowns as messages.
package loader

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/pkg/inputselect"
)

// FetchFunc loads the items for one dropdown.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Loading returns a command that puts the dropdown with the given ID into
// its loading state.
func Loading(id string) tea.Cmd {
	return func() tea.Msg {
		return inputselect.LoadingMsg{ID: id, Loading: true}
	}
}

// Fetch returns a command that waits for latency, runs fn and delivers the
// result as an ItemsMsg for the dropdown with the given ID.
func Fetch[T any](id string, latency time.Duration, fn FetchFunc[T]) tea.Cmd {
	return FetchContext(context.Background(), id, latency, fn)
}

// FetchContext is Fetch with a caller supplied context. Cancelling ctx
// during the simulated latency delivers ctx.Err().
func FetchContext[T any](ctx context.Context, id string, latency time.Duration, fn FetchFunc[T]) tea.Cmd {
	return func() tea.Msg {
		if latency > 0 {
			timer := time.NewTimer(latency)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return inputselect.ItemsMsg[T]{ID: id, Err: ctx.Err()}
			case <-timer.C:
			}
		}

		items, err := fn(ctx)
		if err != nil {
			return inputselect.ItemsMsg[T]{ID: id, Err: fmt.Errorf("fetch %s: %w", id, err)}
		}
		return inputselect.ItemsMsg[T]{ID: id, Items: items}
	}
}

// Load combines Loading and Fetch: the dropdown shows its loading row until
// the fetch completes.
func Load[T any](id string, latency time.Duration, fn FetchFunc[T]) tea.Cmd {
	return tea.Sequence(Loading(id), Fetch(id, latency, fn))
}

// List returns a FetchFunc reading one catalog list.
func List(db *catalog.DB, list string) FetchFunc[catalog.Item] {
	return func(ctx context.Context) ([]catalog.Item, error) {
		return db.Items(ctx, list)
	}
}

// LoadLists reads several catalog lists concurrently. The first failure
// cancels the remaining reads.
func LoadLists(ctx context.Context, db *catalog.DB, lists ...string) (map[string][]catalog.Item, error) {
	results := make([][]catalog.Item, len(lists))

	g, ctx := errgroup.WithContext(ctx)
	for i, list := range lists {
		g.Go(func() error {
			items, err := db.Items(ctx, list)
			if err != nil {
				return fmt.Errorf("load %s: %w", list, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]catalog.Item, len(lists))
	for i, list := range lists {
		out[list] = results[i]
	}
	return out, nil
}
