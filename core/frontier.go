// File: frontier.go
// Role: insertion-ordered, de-duplicated node-id set used by layer walks.
package core

// Frontier is the set of node ids processed in one round of a layer walk.
// Ids keep their first-insertion order; re-adding an id is a no-op.
type Frontier struct {
	ids  []int
	seen map[int]struct{}
}

// NewFrontier returns an empty frontier with room for capacity ids.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{
		ids:  make([]int, 0, capacity),
		seen: make(map[int]struct{}, capacity),
	}
}

// Add appends id unless already present.
func (f *Frontier) Add(id int) {
	if _, ok := f.seen[id]; ok {
		return
	}
	f.seen[id] = struct{}{}
	f.ids = append(f.ids, id)
}

// Len returns the number of distinct ids.
func (f *Frontier) Len() int { return len(f.ids) }

// IDs returns the ids in insertion order. The slice is owned by f and is
// invalidated by Reset.
func (f *Frontier) IDs() []int { return f.ids }

// Reset empties f, keeping allocated storage.
func (f *Frontier) Reset() {
	f.ids = f.ids[:0]
	for id := range f.seen {
		delete(f.seen, id)
	}
}
