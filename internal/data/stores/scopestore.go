package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/colonyops/scopepad/pkg/randid"
)

const scopeIDLength = 8

// ScopeStore implements scope.ScopeStore using SQLite.
type ScopeStore struct {
	db *db.DB
}

var _ scope.ScopeStore = (*ScopeStore)(nil)

// NewScopeStore creates a new SQLite-backed scope store.
func NewScopeStore(database *db.DB) *ScopeStore {
	return &ScopeStore{db: database}
}

const scopeColumns = `id, name, description, icon, color, type, is_system,
	pinned, sort_order, metadata, created_at, updated_at, archived_at, deleted_at`

// Create persists a new scope, populating ID and timestamps if not already
// set. Returns scope.ErrDuplicateName if an active scope with the same name
// exists.
func (s *ScopeStore) Create(ctx context.Context, sc *scope.Scope) error {
	if sc.ID == "" {
		sc.ID = randid.Generate(scopeIDLength)
	}

	now := time.Now()
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = now
	}
	if sc.UpdatedAt.IsZero() {
		sc.UpdatedAt = now
	}

	metadata, err := scopeMetadataColumn(sc.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.Conn().ExecContext(ctx, `
		INSERT INTO scopes (`+scopeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.ID,
		sc.Name,
		toNullString(sc.Description),
		toNullString(sc.Icon),
		toNullString(sc.Color),
		string(sc.Type),
		sc.IsSystem,
		sc.Pinned,
		sc.SortOrder,
		metadata,
		sc.CreatedAt.UnixNano(),
		sc.UpdatedAt.UnixNano(),
		toNullTime(sc.ArchivedAt),
		toNullTime(sc.DeletedAt),
	)
	if isUniqueConstraintError(err) {
		return scope.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("create scope: %w", err)
	}

	return nil
}

// Get returns a single scope by ID, including soft-deleted ones.
func (s *ScopeStore) Get(ctx context.Context, id string) (scope.Scope, error) {
	row := s.db.Conn().QueryRowContext(ctx, `
		SELECT `+scopeColumns+` FROM scopes WHERE id = ?`, id)

	sc, err := scanScope(row)
	if IsNotFoundError(err) {
		return scope.Scope{}, scope.ErrScopeNotFound
	}
	if err != nil {
		return scope.Scope{}, fmt.Errorf("get scope: %w", err)
	}

	return sc, nil
}

// List returns scopes matching the filter, ordered by sort_order then name.
func (s *ScopeStore) List(ctx context.Context, filter scope.ScopeFilter) ([]scope.Scope, error) {
	query := `SELECT ` + scopeColumns + ` FROM scopes WHERE 1=1`
	var args []any

	if !filter.IncludeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	if !filter.IncludeArchived {
		query += ` AND archived_at IS NULL`
	}
	if filter.Type != "" {
		query += ` AND type = ?`
		args = append(args, string(filter.Type))
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scopes := []scope.Scope{}
	for rows.Next() {
		sc, err := scanScope(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scope: %w", err)
		}
		scopes = append(scopes, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scopes: %w", err)
	}

	return scopes, nil
}

// Update replaces the stored record for sc.ID and bumps UpdatedAt.
func (s *ScopeStore) Update(ctx context.Context, sc scope.Scope) error {
	sc.UpdatedAt = time.Now()

	metadata, err := scopeMetadataColumn(sc.Metadata)
	if err != nil {
		return err
	}

	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE scopes
		SET name = ?, description = ?, icon = ?, color = ?, type = ?,
			is_system = ?, pinned = ?, sort_order = ?, metadata = ?, updated_at = ?
		WHERE id = ?`,
		sc.Name,
		toNullString(sc.Description),
		toNullString(sc.Icon),
		toNullString(sc.Color),
		string(sc.Type),
		sc.IsSystem,
		sc.Pinned,
		sc.SortOrder,
		metadata,
		sc.UpdatedAt.UnixNano(),
		sc.ID,
	)
	if isUniqueConstraintError(err) {
		return scope.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("update scope: %w", err)
	}

	return requireRow(res, scope.ErrScopeNotFound)
}

// Archive marks the scope's archive timestamp.
func (s *ScopeStore) Archive(ctx context.Context, id string) error {
	now := time.Now().UnixNano()

	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE scopes SET archived_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archive scope: %w", err)
	}

	return requireRow(res, scope.ErrScopeNotFound)
}

// SoftDelete marks the scope's deletion timestamp. The record is kept.
func (s *ScopeStore) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UnixNano()

	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE scopes SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("soft delete scope: %w", err)
	}

	return requireRow(res, scope.ErrScopeNotFound)
}

func scopeMetadataColumn(meta scope.Metadata) (sql.NullString, error) {
	if meta == nil {
		return sql.NullString{}, nil
	}

	data, err := scope.MarshalMetadata(meta)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal scope metadata: %w", err)
	}

	return sql.NullString{String: string(data), Valid: true}, nil
}

func scanScope(sc scanner) (scope.Scope, error) {
	var (
		out                      scope.Scope
		description, icon, color sql.NullString
		scopeType                string
		metadata                 sql.NullString
		createdAt, updatedAt     int64
		archivedAt, deletedAt    sql.NullInt64
	)

	err := sc.Scan(
		&out.ID,
		&out.Name,
		&description,
		&icon,
		&color,
		&scopeType,
		&out.IsSystem,
		&out.Pinned,
		&out.SortOrder,
		&metadata,
		&createdAt,
		&updatedAt,
		&archivedAt,
		&deletedAt,
	)
	if err != nil {
		return scope.Scope{}, err
	}

	out.Description = fromNullString(description)
	out.Icon = fromNullString(icon)
	out.Color = fromNullString(color)
	out.Type = scope.Type(scopeType)
	out.CreatedAt = time.Unix(0, createdAt)
	out.UpdatedAt = time.Unix(0, updatedAt)
	out.ArchivedAt = fromNullTime(archivedAt)
	out.DeletedAt = fromNullTime(deletedAt)

	if metadata.Valid {
		meta, err := scope.UnmarshalMetadata([]byte(metadata.String))
		if err != nil {
			return scope.Scope{}, fmt.Errorf("metadata column: %w", err)
		}
		out.Metadata = meta
	}

	return out, nil
}
