package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Item is one selectable entry of a list.
type Item struct {
	List     string
	ID       string
	Label    string
	Position int
}

// ListInfo summarises a list.
type ListInfo struct {
	Name  string
	Count int
}

// Put inserts or replaces items in a single transaction.
func (db *DB) Put(ctx context.Context, items ...Item) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (list, id, label, position) VALUES (?, ?, ?, ?)
		ON CONFLICT (list, id) DO UPDATE SET label = excluded.label, position = excluded.position`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if strings.TrimSpace(it.List) == "" || strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("item %q: list and id are required", it.Label)
		}
		if _, err := stmt.ExecContext(ctx, it.List, it.ID, it.Label, it.Position); err != nil {
			return fmt.Errorf("insert %s/%s: %w", it.List, it.ID, err)
		}
	}

	return tx.Commit()
}

// Items returns the items of list in display order.
func (db *DB) Items(ctx context.Context, list string) ([]Item, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT list, id, label, position FROM items
		WHERE list = ?
		ORDER BY position, id`, list)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.List, &it.ID, &it.Label, &it.Position); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Lists returns every list name with its item count, sorted by name.
func (db *DB) Lists(ctx context.Context) ([]ListInfo, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT list, COUNT(*) FROM items GROUP BY list ORDER BY list`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	var lists []ListInfo
	for rows.Next() {
		var l ListInfo
		if err := rows.Scan(&l.Name, &l.Count); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// DeleteList removes every item of list.
func (db *DB) DeleteList(ctx context.Context, list string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM items WHERE list = ?`, list); err != nil {
		return fmt.Errorf("delete list %s: %w", list, err)
	}
	return nil
}
