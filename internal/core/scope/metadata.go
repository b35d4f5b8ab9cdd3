package scope

import (
	"encoding/json"
	"fmt"
	"time"
)

// Metadata is the type-specific payload of a scope or item. Exactly one
// concrete shape exists per built-in scope type; unknown types carry a
// CustomMeta. Implementations are value types and safe to copy.
type Metadata interface {
	MetadataType() Type
}

// TodoMeta is the (empty) metadata shape for todo scopes.
type TodoMeta struct{}

// NoteMeta carries the content blob for note items.
type NoteMeta struct {
	Content string `json:"content,omitempty"`
}

// BrainstormMeta carries the content blob for brainstorm items.
type BrainstormMeta struct {
	Content string `json:"content,omitempty"`
}

// ChecklistMeta is the legacy metadata shape for checklist items. Newer
// records store entries in the item's first-class Checklist field; this
// embedded list is read-only legacy input.
type ChecklistMeta struct {
	Items []ChecklistEntry `json:"items,omitempty"`
}

// MilestoneMeta carries the target date for milestone items.
type MilestoneMeta struct {
	TargetAt *time.Time `json:"target_at,omitempty"`
}

// ResourceMeta carries the link and kind for resource items.
type ResourceMeta struct {
	URL  string `json:"url,omitempty"`
	Kind string `json:"kind,omitempty"`
}

// BookmarkMeta carries the link for bookmark items.
type BookmarkMeta struct {
	URL     string `json:"url,omitempty"`
	Favicon string `json:"favicon,omitempty"`
}

// EventMeta carries scheduling details for event items.
type EventMeta struct {
	StartAt  *time.Time `json:"start_at,omitempty"`
	EndAt    *time.Time `json:"end_at,omitempty"`
	Location string     `json:"location,omitempty"`
}

// TimeblockMeta carries the reserved window for timeblock items.
type TimeblockMeta struct {
	StartAt *time.Time `json:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"`
}

// FlowMeta carries the stage pipeline for flow items.
type FlowMeta struct {
	Stages []string `json:"stages,omitempty"`
	Stage  string   `json:"stage,omitempty"`
}

// CustomMeta is the fallback shape for user-created scope types.
type CustomMeta struct {
	CustomType Type           `json:"-"`
	Fields     map[string]any `json:"fields,omitempty"`
}

func (TodoMeta) MetadataType() Type       { return TypeTodo }
func (NoteMeta) MetadataType() Type       { return TypeNote }
func (BrainstormMeta) MetadataType() Type { return TypeBrainstorm }
func (ChecklistMeta) MetadataType() Type  { return TypeChecklist }
func (MilestoneMeta) MetadataType() Type  { return TypeMilestone }
func (ResourceMeta) MetadataType() Type   { return TypeResource }
func (BookmarkMeta) MetadataType() Type   { return TypeBookmark }
func (EventMeta) MetadataType() Type      { return TypeEvent }
func (TimeblockMeta) MetadataType() Type  { return TypeTimeblock }
func (FlowMeta) MetadataType() Type       { return TypeFlow }

func (m CustomMeta) MetadataType() Type { return m.CustomType }

// metadataEnvelope is the stored JSON shape: the concrete fields plus a
// "type" discriminator.
type metadataEnvelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalMetadata serializes a metadata value into its discriminated JSON
// envelope. A nil value marshals to null.
func MarshalMetadata(m Metadata) ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata payload: %w", err)
	}

	return json.Marshal(metadataEnvelope{Type: m.MetadataType(), Data: data})
}

// UnmarshalMetadata parses a discriminated JSON envelope back into its
// concrete metadata shape. Unknown type tags degrade to CustomMeta so
// records created by newer or external writers stay readable.
func UnmarshalMetadata(data []byte) (Metadata, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var env metadataEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse metadata envelope: %w", err)
	}

	switch env.Type {
	case TypeTodo:
		return decodeMeta[TodoMeta](env)
	case TypeNote:
		return decodeMeta[NoteMeta](env)
	case TypeBrainstorm:
		return decodeMeta[BrainstormMeta](env)
	case TypeChecklist:
		return decodeMeta[ChecklistMeta](env)
	case TypeMilestone:
		return decodeMeta[MilestoneMeta](env)
	case TypeResource:
		return decodeMeta[ResourceMeta](env)
	case TypeBookmark:
		return decodeMeta[BookmarkMeta](env)
	case TypeEvent:
		return decodeMeta[EventMeta](env)
	case TypeTimeblock:
		return decodeMeta[TimeblockMeta](env)
	case TypeFlow:
		return decodeMeta[FlowMeta](env)
	default:
		custom := CustomMeta{CustomType: env.Type}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &custom); err != nil {
				return nil, fmt.Errorf("parse custom metadata: %w", err)
			}
		}
		return custom, nil
	}
}

func decodeMeta[T Metadata](env metadataEnvelope) (Metadata, error) {
	var v T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, fmt.Errorf("parse %s metadata: %w", env.Type, err)
		}
	}
	return v, nil
}

// MetadataContent returns the content blob held by note-like metadata, or
// empty for shapes without one.
func MetadataContent(m Metadata) string {
	switch v := m.(type) {
	case NoteMeta:
		return v.Content
	case BrainstormMeta:
		return v.Content
	}
	return ""
}

// MetadataURL returns the link held by bookmark/resource metadata.
func MetadataURL(m Metadata) string {
	switch v := m.(type) {
	case BookmarkMeta:
		return v.URL
	case ResourceMeta:
		return v.URL
	}
	return ""
}

// MetadataChecklist returns the legacy checklist list embedded in checklist
// metadata, or nil.
func MetadataChecklist(m Metadata) []ChecklistEntry {
	if v, ok := m.(ChecklistMeta); ok {
		return v.Items
	}
	return nil
}
