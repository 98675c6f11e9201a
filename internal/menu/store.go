package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the requested menu item does not exist.
var ErrNotFound = errors.New("menu: item not found")

// ErrDuplicateName indicates a menu item with the same name already exists.
var ErrDuplicateName = errors.New("menu: item name already exists")

// Querier captures the database operations required by the menu service.
type Querier interface {
	InsertItem(ctx context.Context, item Item) (Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (Item, error)
	ListItems(ctx context.Context, kind ItemKind) ([]Item, error)
	UpdateItem(ctx context.Context, item Item) (Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// PGStore implements Querier on top of a pgx pool.
type PGStore struct {
	Pool *pgxpool.Pool
}

const insertItemSQL = `
INSERT INTO menu_items (id, kind, name, base_price, description, size, ingredients, includes, available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING id, kind, name, base_price, description, size, ingredients, includes, available, created_at, updated_at`

// InsertItem stores a new menu item.
func (s PGStore) InsertItem(ctx context.Context, item Item) (Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	row := s.Pool.QueryRow(ctx, insertItemSQL,
		item.ID, item.Kind, item.Name, item.BasePrice, item.Description,
		item.Size, item.Ingredients, item.Includes, item.Available)
	out, err := scanItem(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Item{}, ErrDuplicateName
		}
		return Item{}, err
	}
	return out, nil
}

const getItemSQL = `
SELECT id, kind, name, base_price, description, size, ingredients, includes, available, created_at, updated_at
FROM menu_items WHERE id = $1`

// GetItem loads one item by id.
func (s PGStore) GetItem(ctx context.Context, id uuid.UUID) (Item, error) {
	out, err := scanItem(s.Pool.QueryRow(ctx, getItemSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return out, nil
}

const listItemsSQL = `
SELECT id, kind, name, base_price, description, size, ingredients, includes, available, created_at, updated_at
FROM menu_items WHERE ($1 = '' OR kind = $1) ORDER BY name`

// ListItems returns all items, optionally filtered by kind.
func (s PGStore) ListItems(ctx context.Context, kind ItemKind) ([]Item, error) {
	rows, err := s.Pool.Query(ctx, listItemsSQL, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const updateItemSQL = `
UPDATE menu_items
SET name = $2, base_price = $3, description = $4, size = $5, ingredients = $6, includes = $7, available = $8, updated_at = now()
WHERE id = $1
RETURNING id, kind, name, base_price, description, size, ingredients, includes, available, created_at, updated_at`

// UpdateItem mutates an existing item.
func (s PGStore) UpdateItem(ctx context.Context, item Item) (Item, error) {
	row := s.Pool.QueryRow(ctx, updateItemSQL,
		item.ID, item.Name, item.BasePrice, item.Description,
		item.Size, item.Ingredients, item.Includes, item.Available)
	out, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return out, nil
}

// DeleteItem removes an item by id.
func (s PGStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	err := row.Scan(
		&item.ID, &item.Kind, &item.Name, &item.BasePrice, &item.Description,
		&item.Size, &item.Ingredients, &item.Includes, &item.Available,
		&item.CreatedAt, &item.UpdatedAt)
	return item, err
}
