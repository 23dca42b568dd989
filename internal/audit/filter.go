package audit

import "strings"

// Filter selects the visible subset of rows by status.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterCompliant    Filter = "compliant"
	FilterNonCompliant Filter = "noncompliant"
	FilterError        Filter = "error"
)

// Filters lists the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterCompliant, FilterNonCompliant, FilterError}
}

// ParseFilter maps a user-supplied filter value to a Filter. Unrecognized
// values fall back to FilterAll; the select control never rejects input.
func ParseFilter(v string) Filter {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "compliant":
		return FilterCompliant
	case "noncompliant":
		return FilterNonCompliant
	case "error":
		return FilterError
	default:
		return FilterAll
	}
}

// Matches reports whether a row with the given status is visible under f.
// FilterError also admits StatusUnknown rows, so checks that never ran
// surface alongside failed ones.
func (f Filter) Matches(s Status) bool {
	switch f {
	case FilterCompliant:
		return s == StatusCompliant
	case FilterNonCompliant:
		return s == StatusNonCompliant
	case FilterError:
		return s == StatusError || s == StatusUnknown
	default:
		return true
	}
}

// Apply returns the rows visible under f, preserving input order.
func Apply(rows []Row, f Filter) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row.Status) {
			out = append(out, row)
		}
	}
	return out
}
