// Package docstore defines the document model exchanged with the remote
// document store: collection-scoped documents made of loosely typed fields.
package docstore

import (
	"sort"
	"strings"
	"time"
)

// Fields is the body of a document. Values are strings, numbers, bools,
// string slices, time.Time or ServerTimestamp on the way in; stores hand
// back strings, float64, bool and []any.
type Fields map[string]any

type Document struct {
	ID     string
	Fields Fields
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type serverTimestamp struct{}

// ServerTimestamp asks the store to stamp the field with its own clock
// when the write is applied.
var ServerTimestamp = serverTimestamp{}

// TimestampLayout is fixed-width UTC so that lexical order matches
// chronological order inside the stores.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTime decodes a stored timestamp. Absent or malformed values yield
// the zero time.
func ParseTime(v any) time.Time {
	switch tv := v.(type) {
	case time.Time:
		return tv
	case string:
		t, err := time.Parse(time.RFC3339Nano, tv)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}

// Encode returns a copy of f ready to be persisted: ServerTimestamp is
// replaced by now and time values are rendered with TimestampLayout.
func Encode(f Fields, now time.Time) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		switch tv := v.(type) {
		case serverTimestamp:
			out[k] = FormatTime(now)
		case time.Time:
			out[k] = FormatTime(tv)
		default:
			out[k] = v
		}
	}
	return out
}

func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

func (f Fields) Float(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

func (f Fields) Time(key string) time.Time {
	return ParseTime(f[key])
}

func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Compare orders two field values of the same collection. Missing values
// sort first; mixed types fall back to their string form.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(toString(a), toString(b))
}

// Sort orders docs in place by field, ties broken by id in the same
// direction.
func Sort(docs []Document, field string, dir Direction) {
	sort.SliceStable(docs, func(i, j int) bool {
		c := Compare(docs[i].Fields[field], docs[j].Fields[field])
		if c == 0 {
			c = strings.Compare(docs[i].ID, docs[j].ID)
		}
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
}
