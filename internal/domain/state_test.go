package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withID(e *WorkingHoursEntry, id string) *WorkingHoursEntry {
	e.ID = id
	return e
}

func TestReduce_Updated(t *testing.T) {
	current := []*WorkingHoursEntry{
		withID(entryOn("2024-06-01"), "a"),
		withID(entryOn("2024-06-02"), "b"),
	}
	edited := current[0].Clone()
	edited.Workforce = 5

	next := Reduce(current, Mutation{Kind: MutationUpdated, Entry: edited})

	require.Len(t, next, 2)
	assert.Equal(t, 5, next[0].Workforce)
	assert.Equal(t, DefaultTemplateWorkforce, current[0].Workforce, "input must not be modified")
	assert.NotSame(t, current[1], next[1])
}

func TestReduce_UpdatedUnknownIDIsNoop(t *testing.T) {
	current := []*WorkingHoursEntry{withID(entryOn("2024-06-01"), "a")}
	ghost := withID(entryOn("2024-06-01"), "zzz")
	ghost.Workforce = 9

	next := Reduce(current, Mutation{Kind: MutationUpdated, Entry: ghost})

	require.Len(t, next, 1)
	assert.Equal(t, DefaultTemplateWorkforce, next[0].Workforce)
}

func TestReduce_CreatedKeepsOrderAndUniqueDate(t *testing.T) {
	current := []*WorkingHoursEntry{
		withID(entryOn("2024-06-01"), "a"),
		withID(entryOn("2024-06-03"), "c"),
	}

	next := Reduce(current, Mutation{Kind: MutationCreated, Entry: withID(entryOn("2024-06-02"), "b")})
	require.Len(t, next, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{next[0].ID, next[1].ID, next[2].ID})

	next = Reduce(next, Mutation{Kind: MutationCreated, Entry: withID(entryOn("2024-06-02"), "b2")})
	require.Len(t, next, 3)
	assert.Equal(t, "b2", next[1].ID)
	assert.Len(t, current, 2)
}

func TestReduce_DeletedAndReplaced(t *testing.T) {
	current := []*WorkingHoursEntry{
		withID(entryOn("2024-06-01"), "a"),
		withID(entryOn("2024-06-02"), "b"),
	}

	next := Reduce(current, Mutation{Kind: MutationDeleted, ID: "a"})
	require.Len(t, next, 1)
	assert.Equal(t, "b", next[0].ID)

	fresh := []*WorkingHoursEntry{withID(entryOn("2024-06-05"), "x"), withID(entryOn("2024-06-04"), "y")}
	next = Reduce(current, Mutation{Kind: MutationReplaced, Entries: fresh})
	require.Len(t, next, 2)
	assert.Equal(t, "y", next[0].ID)
	assert.Equal(t, "x", fresh[0].ID, "replacement input must not be reordered")
}
