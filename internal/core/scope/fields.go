package scope

// Field names a semantic input of the item form. The required-field table
// below is the single source of truth consulted both by validation and by
// the rendering layer, so the two can never disagree.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
	FieldURL     Field = "url"
	FieldItems   Field = "items"
)

// RequiredFields returns the ordered list of fields that must be non-empty
// before an item of the given scope type may be submitted. Unknown or
// custom types degrade to title-only so a custom scope stays usable.
func RequiredFields(t Type) []Field {
	switch t {
	case TypeTodo, TypeMilestone, TypeEvent, TypeTimeblock, TypeFlow:
		return []Field{FieldTitle}
	case TypeNote, TypeBrainstorm:
		return []Field{FieldTitle, FieldContent}
	case TypeChecklist:
		return []Field{FieldTitle, FieldItems}
	case TypeBookmark, TypeResource:
		return []Field{FieldTitle, FieldURL}
	default:
		return []Field{FieldTitle}
	}
}

// Requires reports whether the given field is required for scope type t.
func Requires(t Type, f Field) bool {
	for _, rf := range RequiredFields(t) {
		if rf == f {
			return true
		}
	}
	return false
}
