package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/google/uuid"
)

// ItemStore implements scope.ItemStore using SQLite.
type ItemStore struct {
	db *db.DB
}

var _ scope.ItemStore = (*ItemStore)(nil)

// NewItemStore creates a new SQLite-backed item store.
func NewItemStore(database *db.DB) *ItemStore {
	return &ItemStore{db: database}
}

const itemColumns = `id, scope_id, title, notes, priority, status, due_at,
	checklist, tags, metadata, created_at, updated_at, deleted_at`

// Create persists a new item, populating ID, Status, and timestamps if not
// already set.
func (s *ItemStore) Create(ctx context.Context, item *scope.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	if item.Status == "" {
		item.Status = scope.StatusNotStarted
	}

	checklist, tags, metadata, err := itemJSONColumns(*item)
	if err != nil {
		return err
	}

	_, err = s.db.Conn().ExecContext(ctx, `
		INSERT INTO scope_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.ScopeID,
		item.Title,
		toNullString(item.Notes),
		toNullString(string(item.Priority)),
		string(item.Status),
		toNullTime(item.DueAt),
		checklist,
		tags,
		metadata,
		item.CreatedAt.UnixNano(),
		item.UpdatedAt.UnixNano(),
		toNullTime(item.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	return nil
}

// Get returns a single item by ID, including soft-deleted ones.
func (s *ItemStore) Get(ctx context.Context, id string) (scope.Item, error) {
	row := s.db.Conn().QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM scope_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if IsNotFoundError(err) {
		return scope.Item{}, scope.ErrNotFound
	}
	if err != nil {
		return scope.Item{}, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}

// List returns items matching the filter, ordered by created_at DESC.
// Tag glob filtering happens in the service layer; the store only matches
// exact tags when filter.Tag contains no glob characters.
func (s *ItemStore) List(ctx context.Context, filter scope.ItemFilter) ([]scope.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM scope_items WHERE 1=1`
	var args []any

	if !filter.IncludeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	if filter.ScopeID != "" {
		query += ` AND scope_id = ?`
		args = append(args, filter.ScopeID)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []scope.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// Update replaces the stored record for item.ID and bumps UpdatedAt.
func (s *ItemStore) Update(ctx context.Context, item scope.Item) error {
	item.UpdatedAt = time.Now()

	checklist, tags, metadata, err := itemJSONColumns(item)
	if err != nil {
		return err
	}

	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE scope_items
		SET scope_id = ?, title = ?, notes = ?, priority = ?, status = ?,
			due_at = ?, checklist = ?, tags = ?, metadata = ?, updated_at = ?
		WHERE id = ?`,
		item.ScopeID,
		item.Title,
		toNullString(item.Notes),
		toNullString(string(item.Priority)),
		string(item.Status),
		toNullTime(item.DueAt),
		checklist,
		tags,
		metadata,
		item.UpdatedAt.UnixNano(),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return requireRow(res, scope.ErrNotFound)
}

// SoftDelete marks the item's deletion timestamp. The record is kept.
func (s *ItemStore) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UnixNano()

	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE scope_items SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}

	return requireRow(res, scope.ErrNotFound)
}

// requireRow converts a zero-row update into the given sentinel error.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func itemJSONColumns(item scope.Item) (checklist, tags, metadata sql.NullString, err error) {
	checklist, err = toJSONString(item.Checklist)
	if err != nil {
		return checklist, tags, metadata, fmt.Errorf("marshal checklist: %w", err)
	}

	tags, err = toJSONString(item.Tags)
	if err != nil {
		return checklist, tags, metadata, fmt.Errorf("marshal tags: %w", err)
	}

	if item.Metadata != nil {
		data, merr := scope.MarshalMetadata(item.Metadata)
		if merr != nil {
			return checklist, tags, metadata, fmt.Errorf("marshal metadata: %w", merr)
		}
		metadata = sql.NullString{String: string(data), Valid: true}
	}

	return checklist, tags, metadata, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanItem.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (scope.Item, error) {
	var (
		item                      scope.Item
		notes, priority           sql.NullString
		status                    string
		dueAt, deletedAt          sql.NullInt64
		checklist, tags, metadata sql.NullString
		createdAt, updatedAt      int64
	)

	err := sc.Scan(
		&item.ID,
		&item.ScopeID,
		&item.Title,
		&notes,
		&priority,
		&status,
		&dueAt,
		&checklist,
		&tags,
		&metadata,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return scope.Item{}, err
	}

	item.Notes = fromNullString(notes)
	item.Priority = scope.Priority(fromNullString(priority))
	item.Status = scope.Status(status)
	item.DueAt = fromNullTime(dueAt)
	item.CreatedAt = time.Unix(0, createdAt)
	item.UpdatedAt = time.Unix(0, updatedAt)
	item.DeletedAt = fromNullTime(deletedAt)

	if err := fromJSONString(checklist, &item.Checklist); err != nil {
		return scope.Item{}, fmt.Errorf("checklist column: %w", err)
	}
	if err := fromJSONString(tags, &item.Tags); err != nil {
		return scope.Item{}, fmt.Errorf("tags column: %w", err)
	}

	if metadata.Valid {
		meta, err := scope.UnmarshalMetadata([]byte(metadata.String))
		if err != nil {
			return scope.Item{}, fmt.Errorf("metadata column: %w", err)
		}
		item.Metadata = meta
	}

	return item, nil
}
