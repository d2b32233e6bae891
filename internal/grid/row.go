package grid

import (
	"fmt"
	"slices"
	"strings"
)

// Category is the status of a VM row.
type Category string

const (
	CategoryNone        Category = ""
	CategoryOnline      Category = "online"
	CategoryDisruption  Category = "disruption"
	CategoryOffline     Category = "offline"
	CategoryDeactivated Category = "deactivated"
)

// StatusOptions lists the status filter choices in display order. The
// leading empty option clears the filter.
var StatusOptions = []Category{
	CategoryNone,
	CategoryOnline,
	CategoryDisruption,
	CategoryOffline,
	CategoryDeactivated,
}

// Known reports whether c is one of the four row statuses.
func (c Category) Known() bool {
	switch c {
	case CategoryOnline, CategoryDisruption, CategoryOffline, CategoryDeactivated:
		return true
	}
	return false
}

// ParseCategory normalizes raw provider input. Unknown values are kept
// verbatim so that they match nothing when filtered on.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Known() || c == CategoryNone {
		return c
	}
	return Category(strings.TrimSpace(raw))
}

// Row is one VM record displayed as a grid line.
type Row struct {
	ID       string
	Status   Category
	CPU      float64
	Memory   float64
	Selected bool
}

// RowStore is an immutable snapshot of rows plus their order preference.
type RowStore struct {
	rows    []Row
	order   []string
	ordered []Row
}

// NewRowStore copies rows and order into a store. A nil or empty order
// defaults to the rows' own sequence.
func NewRowStore(rows []Row, order []string) RowStore {
	s := RowStore{rows: slices.Clone(rows)}
	if len(order) == 0 {
		s.order = make([]string, len(rows))
		for i, r := range rows {
			s.order[i] = r.ID
		}
	} else {
		s.order = slices.Clone(order)
	}
	s.ordered = orderRows(s.rows, s.order)
	return s
}

// Rows returns a copy of the rows in provider order.
func (s RowStore) Rows() []Row {
	return slices.Clone(s.rows)
}

// Order returns a copy of the order preference.
func (s RowStore) Order() []string {
	return slices.Clone(s.order)
}

// Len returns the number of rows.
func (s RowStore) Len() int {
	return len(s.rows)
}

// Validate checks that every row id appears exactly once in the order
// preference. The pipeline tolerates violations; this exists for logging.
func (s RowStore) Validate() error {
	seen := make(map[string]int, len(s.order))
	for _, id := range s.order {
		seen[id]++
	}
	var problems []string
	for _, r := range s.rows {
		switch n := seen[r.ID]; {
		case n == 0:
			problems = append(problems, fmt.Sprintf("%s missing", r.ID))
		case n > 1:
			problems = append(problems, fmt.Sprintf("%s listed %d times", r.ID, n))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("order preference: %s", strings.Join(problems, ", "))
	}
	return nil
}
