// Package collection holds the copy-on-write helpers every domain reducer is
// built from. None of the functions here mutate their input.
package collection

import "sort"

// Identifiable is a record with a stable, server-assigned id.
type Identifiable interface {
	GetID() string
}

// Page is the body of a paged find response.
type Page[T Identifiable] struct {
	Documents  []T `json:"documents"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	PageCount  int `json:"page_count"`
	FoundCount int `json:"found_count"`
	TotalCount int `json:"total_count"`
}

// List is the mirrored, currently visible page of a domain collection.
type List[T Identifiable] struct {
	Documents  []T    `json:"documents"`
	Term       string `json:"term"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	PageCount  int    `json:"page_count"`
	FoundCount int    `json:"found_count"`
	TotalCount int    `json:"total_count"`
}

// ReplacePage replaces the visible page slice and counts. The search term
// is kept.
func (l List[T]) ReplacePage(p Page[T]) List[T] {
	docs := make([]T, len(p.Documents))
	copy(docs, p.Documents)

	l.Documents = docs
	l.Page = p.Page
	l.PerPage = p.PerPage
	l.PageCount = p.PageCount
	l.FoundCount = p.FoundCount
	l.TotalCount = p.TotalCount

	return l
}

// Insert appends rec unless its id is already present.
func (l List[T]) Insert(rec T) List[T] {
	if Contains(l.Documents, rec.GetID()) {
		return l
	}
	l.Documents = Insert(l.Documents, rec)
	l.FoundCount++
	l.TotalCount++
	return l
}

// InsertSorted is Insert keeping the documents ordered by less.
func (l List[T]) InsertSorted(rec T, less func(a, b T) bool) List[T] {
	if Contains(l.Documents, rec.GetID()) {
		return l
	}
	l.Documents = InsertSorted(l.Documents, rec, less)
	l.FoundCount++
	l.TotalCount++
	return l
}

// Update patches the record with the given id. Unknown ids are a no-op.
func (l List[T]) Update(id string, patch func(T) T) List[T] {
	l.Documents = Update(l.Documents, id, patch)
	return l
}

// Remove deletes the records with the given ids. Unknown ids are a no-op.
func (l List[T]) Remove(ids ...string) List[T] {
	before := len(l.Documents)
	l.Documents = Remove(l.Documents, ids...)

	removed := before - len(l.Documents)
	l.FoundCount = max(l.FoundCount-removed, 0)
	l.TotalCount = max(l.TotalCount-removed, 0)

	return l
}

// Contains reports whether a record with id is present.
func Contains[T Identifiable](docs []T, id string) bool {
	_, ok := Find(docs, id)
	return ok
}

// Find returns the record with id.
func Find[T Identifiable](docs []T, id string) (T, bool) {
	for _, d := range docs {
		if d.GetID() == id {
			return d, true
		}
	}
	var zero T
	return zero, false
}

// Insert returns docs with rec appended, or docs itself when rec's id is
// already present.
func Insert[T Identifiable](docs []T, rec T) []T {
	if Contains(docs, rec.GetID()) {
		return docs
	}
	out := make([]T, len(docs), len(docs)+1)
	copy(out, docs)
	return append(out, rec)
}

// InsertSorted is Insert followed by a stable sort by less.
func InsertSorted[T Identifiable](docs []T, rec T, less func(a, b T) bool) []T {
	out := Insert(docs, rec)
	if len(out) == len(docs) {
		return docs
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Update returns a copy of docs where the record with id is replaced by
// patch(record). docs is returned as is when id is absent.
func Update[T Identifiable](docs []T, id string, patch func(T) T) []T {
	for i, d := range docs {
		if d.GetID() != id {
			continue
		}
		out := make([]T, len(docs))
		copy(out, docs)
		out[i] = patch(d)
		return out
	}
	return docs
}

// Remove returns a copy of docs without the records in ids. docs is
// returned as is when none of them is present.
func Remove[T Identifiable](docs []T, ids ...string) []T {
	if len(ids) == 0 {
		return docs
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	found := false
	for _, d := range docs {
		if _, ok := drop[d.GetID()]; ok {
			found = true
			break
		}
	}
	if !found {
		return docs
	}

	out := make([]T, 0, len(docs))
	for _, d := range docs {
		if _, ok := drop[d.GetID()]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// Replace returns docs with rec substituted for the record of the same id,
// or rec appended when the id is absent.
func Replace[T Identifiable](docs []T, rec T) []T {
	if Contains(docs, rec.GetID()) {
		return Update(docs, rec.GetID(), func(T) T { return rec })
	}
	return Insert(docs, rec)
}
