// Package tree flattens the user's list into the rows shown on the my-list
// screen: one section per bucket followed by its entries, or a placeholder
// row when the bucket is empty.
package tree

import (
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

type RowKind string

const (
	RowSection RowKind = "section"
	RowEntry   RowKind = "entry"
	RowEmpty   RowKind = "empty"
)

type Row struct {
	Kind       RowKind
	Label      string
	Status     rapidmock.Status
	EntryIndex int
}

type BuildOptions struct {
	CollapsedSections map[rapidmock.Status]bool
}

type Bucket struct {
	Status  rapidmock.Status
	Entries []rapidmock.ListEntry
}

// Buckets returns Watched then To Watch, entries in server order.
func Buckets(list rapidmock.MyList) []Bucket {
	return []Bucket{
		{Status: rapidmock.StatusWatched, Entries: list.Watched},
		{Status: rapidmock.StatusToWatch, Entries: list.ToWatch},
	}
}

func EmptyLabel(status rapidmock.Status) string {
	if status == rapidmock.StatusWatched {
		return "No watched movies."
	}
	return "No movies to watch."
}

func BuildRows(list rapidmock.MyList, opts BuildOptions) []Row {
	buckets := Buckets(list)
	rows := make([]Row, 0, len(list.Watched)+len(list.ToWatch)+4)
	for _, bucket := range buckets {
		rows = append(rows, Row{Kind: RowSection, Label: string(bucket.Status), Status: bucket.Status})
		if opts.CollapsedSections[bucket.Status] {
			continue
		}
		if len(bucket.Entries) == 0 {
			rows = append(rows, Row{Kind: RowEmpty, Label: EmptyLabel(bucket.Status), Status: bucket.Status})
			continue
		}
		for i, entry := range bucket.Entries {
			rows = append(rows, Row{
				Kind:       RowEntry,
				Label:      entry.Title,
				Status:     bucket.Status,
				EntryIndex: i,
			})
		}
	}
	return rows
}

// Entry resolves an entry row back to its list entry.
func Entry(list rapidmock.MyList, row Row) (rapidmock.ListEntry, bool) {
	if row.Kind != RowEntry {
		return rapidmock.ListEntry{}, false
	}
	entries := list.Watched
	if row.Status == rapidmock.StatusToWatch {
		entries = list.ToWatch
	}
	if row.EntryIndex < 0 || row.EntryIndex >= len(entries) {
		return rapidmock.ListEntry{}, false
	}
	return entries[row.EntryIndex], true
}

func FirstEntryRow(rows []Row) int {
	for i, row := range rows {
		if row.Kind == RowEntry {
			return i
		}
	}
	return 0
}

// Selectable reports whether the cursor may rest on the row.
func Selectable(row Row) bool {
	return row.Kind != RowEmpty
}

// Move steps delta selectable rows from cursor, stopping at the ends.
func Move(rows []Row, cursor, delta int) int {
	if len(rows) == 0 {
		return 0
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for ; delta > 0; delta-- {
		next := cursor + step
		for next >= 0 && next < len(rows) && !Selectable(rows[next]) {
			next += step
		}
		if next < 0 || next >= len(rows) {
			break
		}
		cursor = next
	}
	return cursor
}

// SectionRow returns the index of the section row for status, or -1.
func SectionRow(rows []Row, status rapidmock.Status) int {
	for i, row := range rows {
		if row.Kind == RowSection && row.Status == status {
			return i
		}
	}
	return -1
}
