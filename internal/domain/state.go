package domain

// MutationKind kind of change applied to an in-memory list of entries
type MutationKind int

const (
	// MutationReplaced replaces the whole list (after a fresh fetch)
	MutationReplaced MutationKind = iota
	// MutationCreated inserts an entry, replacing one with the same date
	MutationCreated
	// MutationUpdated replaces the entry with the same ID, no-op if absent
	MutationUpdated
	// MutationDeleted removes the entry with the same ID
	MutationDeleted
)

// Mutation result of a successful backend write
type Mutation struct {
	Kind    MutationKind
	Entry   *WorkingHoursEntry   // Created, Updated
	ID      string               // Deleted
	Entries []*WorkingHoursEntry // Replaced
}

// Reduce returns the new list after applying m. current is never modified;
// the result holds copies, sorted by date.
func Reduce(current []*WorkingHoursEntry, m Mutation) []*WorkingHoursEntry {
	var next []*WorkingHoursEntry

	switch m.Kind {
	case MutationReplaced:
		next = cloneAll(m.Entries)

	case MutationCreated:
		next = make([]*WorkingHoursEntry, 0, len(current)+1)
		for _, e := range current {
			if m.Entry != nil && e.Date == m.Entry.Date {
				continue
			}
			next = append(next, e.Clone())
		}
		if m.Entry != nil {
			next = append(next, m.Entry.Clone())
		}

	case MutationUpdated:
		next = make([]*WorkingHoursEntry, 0, len(current))
		for _, e := range current {
			if m.Entry != nil && e.ID == m.Entry.ID {
				next = append(next, m.Entry.Clone())
				continue
			}
			next = append(next, e.Clone())
		}

	case MutationDeleted:
		next = make([]*WorkingHoursEntry, 0, len(current))
		for _, e := range current {
			if e.ID == m.ID {
				continue
			}
			next = append(next, e.Clone())
		}

	default:
		next = cloneAll(current)
	}

	SortByDate(next)
	return next
}

func cloneAll(entries []*WorkingHoursEntry) []*WorkingHoursEntry {
	out := make([]*WorkingHoursEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}
