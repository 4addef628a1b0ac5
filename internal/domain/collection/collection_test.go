package collection

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string
	Name string
}

func (d doc) GetID() string { return d.ID }

func TestInsert_Idempotent(t *testing.T) {
	docs := []doc{{ID: "a", Name: "one"}}

	out := Insert(docs, doc{ID: "a", Name: "changed"})
	assert.Equal(t, []doc{{ID: "a", Name: "one"}}, out)

	out = Insert(docs, doc{ID: "b", Name: "two"})
	assert.Equal(t, []doc{{ID: "a", Name: "one"}, {ID: "b", Name: "two"}}, out)
	assert.Len(t, docs, 1, "input must not change")
}

func TestInsertSorted(t *testing.T) {
	byName := func(a, b doc) bool { return a.Name < b.Name }
	docs := []doc{{ID: "1", Name: "alpha"}, {ID: "3", Name: "gamma"}}

	out := InsertSorted(docs, doc{ID: "2", Name: "beta"}, byName)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, []string{out[0].Name, out[1].Name, out[2].Name})
	assert.Equal(t, "gamma", docs[1].Name)
}

func TestUpdate(t *testing.T) {
	docs := []doc{{ID: "a", Name: "one"}, {ID: "b", Name: "two"}}

	out := Update(docs, "b", func(d doc) doc {
		d.Name = "deux"
		return d
	})
	assert.Equal(t, "deux", out[1].Name)
	assert.Equal(t, "two", docs[1].Name, "input must not change")

	same := Update(docs, "zzz", func(d doc) doc {
		t.Fatal("patch must not run for unknown ids")
		return d
	})
	assert.Equal(t, docs, same)
}

func TestRemove(t *testing.T) {
	docs := []doc{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out := Remove(docs, "b")
	assert.Equal(t, []doc{{ID: "a"}, {ID: "c"}}, out)
	assert.Len(t, docs, 3)

	assert.Equal(t, out, Remove(out, "b"), "second removal is a no-op")
	assert.Equal(t, []doc{{ID: "c"}}, Remove(docs, "a", "b"))
}

func TestList_ReplacePage(t *testing.T) {
	l := List[doc]{Term: "foo", Documents: []doc{{ID: "old"}}}

	l = l.ReplacePage(Page[doc]{
		Documents:  []doc{{ID: "x"}, {ID: "y"}},
		Page:       2,
		PerPage:    25,
		PageCount:  3,
		FoundCount: 60,
		TotalCount: 80,
	})

	assert.Equal(t, "foo", l.Term)
	assert.Equal(t, []doc{{ID: "x"}, {ID: "y"}}, l.Documents)
	assert.Equal(t, 2, l.Page)
	assert.Equal(t, 60, l.FoundCount)
	assert.Equal(t, 80, l.TotalCount)
}

func TestList_Counts(t *testing.T) {
	var l List[doc]

	l = l.Insert(doc{ID: "a"})
	l = l.Insert(doc{ID: "a"})
	assert.Equal(t, 1, l.TotalCount)

	l = l.Remove("a")
	l = l.Remove("a")
	assert.Equal(t, 0, l.TotalCount)
	assert.Empty(t, l.Documents)
}

// Applying a random sequence of insert/update/remove leaves exactly the
// records whose last operation was not a removal, each once.
func TestList_RandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		var l List[doc]
		expected := map[string]string{}

		for step := 0; step < 200; step++ {
			id := strconv.Itoa(rng.Intn(10))
			name := strconv.Itoa(step)

			switch rng.Intn(3) {
			case 0:
				l = l.Insert(doc{ID: id, Name: name})
				if _, ok := expected[id]; !ok {
					expected[id] = name
				}
			case 1:
				l = l.Update(id, func(d doc) doc {
					d.Name = name
					return d
				})
				if _, ok := expected[id]; ok {
					expected[id] = name
				}
			case 2:
				l = l.Remove(id)
				delete(expected, id)
			}
		}

		got := map[string]string{}
		for _, d := range l.Documents {
			_, dup := got[d.ID]
			require.False(t, dup, "duplicate id %s", d.ID)
			got[d.ID] = d.Name
		}
		assert.Equal(t, expected, got)
	}
}
