package stores

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func toNullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullTime(ni sql.NullInt64) *time.Time {
	if !ni.Valid {
		return nil
	}
	t := time.Unix(0, ni.Int64)
	return &t
}

// toJSONString marshals v to a nullable JSON column value. Nil/empty values
// store as NULL.
func toJSONString(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal json column: %w", err)
	}
	if string(data) == "null" || string(data) == "[]" {
		return sql.NullString{}, nil
	}

	return sql.NullString{String: string(data), Valid: true}, nil
}

func fromJSONString(ns sql.NullString, v any) error {
	if !ns.Valid {
		return nil
	}
	if err := json.Unmarshal([]byte(ns.String), v); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}
