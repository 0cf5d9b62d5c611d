package message

import (
	"context"
	"strings"
)

// Kind selects one of the three message tables.
type Kind string

const (
	KindError       Kind = "error"
	KindValidation  Kind = "validation"
	KindInformation Kind = "information"
)

const (
	fallbackError       = "Something went wrong."
	fallbackValidation  = "Invalid input."
	fallbackInformation = "Success."
)

// ParseKind accepts the kind name in any case. ok is false for unknown kinds.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindError, KindValidation, KindInformation:
		return k, true
	}
	return "", false
}

// KindForCode infers the kind from the code prefix: E, V or I.
func KindForCode(code string) (Kind, bool) {
	switch {
	case strings.HasPrefix(code, "E"):
		return KindError, true
	case strings.HasPrefix(code, "V"):
		return KindValidation, true
	case strings.HasPrefix(code, "I"):
		return KindInformation, true
	}
	return "", false
}

type Entry struct {
	Kind Kind
	Code string
	Text string
}

// Catalog is keyed by kind then code.
type Catalog map[Kind]map[string]string

func NewCatalog() Catalog {
	return Catalog{
		KindError:       map[string]string{},
		KindValidation:  map[string]string{},
		KindInformation: map[string]string{},
	}
}

func (c Catalog) Set(e Entry) {
	if c[e.Kind] == nil {
		c[e.Kind] = map[string]string{}
	}
	c[e.Kind][e.Code] = e.Text
}

func (c Catalog) Lookup(kind Kind, code string) (string, bool) {
	text, ok := c[kind][code]
	return text, ok
}

// Merge returns a new catalog holding defaults overlaid with stored entries.
// Stored entries win per code.
func Merge(defaults Catalog, stored []Entry) Catalog {
	out := NewCatalog()
	for kind, codes := range defaults {
		for code, text := range codes {
			out.Set(Entry{Kind: kind, Code: code, Text: text})
		}
	}
	for _, e := range stored {
		out.Set(e)
	}
	return out
}

// Repository reads the database message tables.
type Repository interface {
	ListAll(ctx context.Context) ([]Entry, error)
	// Find returns (nil, nil) when the code is not stored.
	Find(ctx context.Context, kind Kind, code string) (*Entry, error)
}

// FallbackText is the generic text for a kind when the code is unknown.
func FallbackText(kind Kind) string {
	switch kind {
	case KindValidation:
		return fallbackValidation
	case KindInformation:
		return fallbackInformation
	default:
		return fallbackError
	}
}
