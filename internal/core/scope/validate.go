package scope

import (
	"net/url"
	"strings"
)

// Validation messages surfaced on form fields.
const (
	MsgTitleRequired   = "Title is required"
	MsgContentRequired = "Content is required"
	MsgURLRequired     = "URL is required"
	MsgURLInvalid      = "Please enter a valid URL"
	MsgItemsRequired   = "At least one checklist item is required"
)

// ValidateDraft checks a draft against the required-field set for the given
// scope type, reporting one message per failing field through setErr. It is
// pure apart from the sink and idempotent: the same draft always yields the
// same verdict and error set. Callers clear prior errors before each run.
func ValidateDraft(t Type, d ItemDraft, setErr func(field Field, msg string)) bool {
	ok := true

	for _, field := range RequiredFields(t) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(d.Title) == "" {
				setErr(FieldTitle, MsgTitleRequired)
				ok = false
			}
		case FieldContent:
			if strings.TrimSpace(d.Content) == "" {
				setErr(FieldContent, MsgContentRequired)
				ok = false
			}
		case FieldURL:
			// Only one of the two URL errors fires per evaluation.
			trimmed := strings.TrimSpace(d.URL)
			switch {
			case trimmed == "":
				setErr(FieldURL, MsgURLRequired)
				ok = false
			case !isAbsoluteURL(trimmed):
				setErr(FieldURL, MsgURLInvalid)
				ok = false
			}
		case FieldItems:
			if len(d.Checklist) == 0 {
				setErr(FieldItems, MsgItemsRequired)
				ok = false
			}
		}
	}

	return ok
}

// isAbsoluteURL reports whether raw parses as a well-formed absolute URL
// with both a scheme and a host.
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
