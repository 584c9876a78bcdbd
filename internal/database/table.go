package database

import "fmt"

// Table is an insertion-ordered collection of rows keyed by identifier.
// It is not safe for concurrent use; callers go through WithTransaction.
type Table[T any] struct {
	name  string
	key   func(*T) string
	rows  []*T
	index map[string]*T
}

func NewTable[T any](name string, key func(*T) string) *Table[T] {
	return &Table[T]{
		name:  name,
		key:   key,
		index: make(map[string]*T),
	}
}

func (t *Table[T]) Insert(row *T) error {
	id := t.key(row)
	if _, exists := t.index[id]; exists {
		return fmt.Errorf("insert into %s: duplicate id %q", t.name, id)
	}

	t.rows = append(t.rows, row)
	t.index[id] = row
	return nil
}

func (t *Table[T]) Get(id string) (*T, bool) {
	row, ok := t.index[id]
	return row, ok
}

func (t *Table[T]) Delete(id string) bool {
	if _, ok := t.index[id]; !ok {
		return false
	}

	delete(t.index, id)
	for i, row := range t.rows {
		if t.key(row) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			break
		}
	}
	return true
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Scan visits rows in insertion order until fn returns false.
func (t *Table[T]) Scan(fn func(*T) bool) {
	for _, row := range t.rows {
		if !fn(row) {
			return
		}
	}
}

// Slice returns up to limit rows starting at offset, in insertion order.
func (t *Table[T]) Slice(offset, limit int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.rows) || limit <= 0 {
		return nil
	}

	end := offset + limit
	if end > len(t.rows) {
		end = len(t.rows)
	}

	out := make([]*T, end-offset)
	copy(out, t.rows[offset:end])
	return out
}
