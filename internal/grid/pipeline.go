package grid

import (
	"slices"
	"strings"
)

// Apply derives the displayed sequence: rows ordered by their rank in order,
// then kept when the id contains search, then kept when the status equals
// status. Empty search or status keeps everything for that stage. A status
// outside the four known categories matches nothing, whether it is the
// filter or a row's own status. The inputs are never modified.
func Apply(rows []Row, order []string, search string, status Category) []Row {
	out := orderRows(rows, order)
	out = filterText(out, search)
	return filterCategory(out, status)
}

// orderRows returns a stably sorted copy. Ids absent from order sort after
// every known id and keep their input order.
func orderRows(rows []Row, order []string) []Row {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}
	last := len(order)
	rankOf := func(id string) int {
		if r, ok := rank[id]; ok {
			return r
		}
		return last
	}

	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b Row) int {
		return rankOf(a.ID) - rankOf(b.ID)
	})
	return out
}

func filterText(rows []Row, search string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(r.ID, search) {
			out = append(out, r)
		}
	}
	return out
}

func filterCategory(rows []Row, status Category) []Row {
	if status == CategoryNone {
		return rows
	}
	out := make([]Row, 0, len(rows))
	if !status.Known() {
		return out
	}
	for _, r := range rows {
		if r.Status.Known() && r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
