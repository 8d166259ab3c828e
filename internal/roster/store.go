// Package roster holds the in-memory employee list that the UI reads and
// mutates. Every mutation writes the complete list through a Persister
// before it becomes visible.
package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/csg33k/employee-roster/internal/domain"
)

// SortField names a sortable column.
type SortField string

const (
	SortByName    SortField = "name"
	SortByAddress SortField = "address"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

var (
	ErrUnknownSortField = errors.New("roster: unknown sort field")
	ErrUnknownDirection = errors.New("roster: unknown sort direction")
)

// ParseSortField validates a column name coming from a request.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortByName, SortByAddress:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortField, s)
}

// Persister receives the full list after every mutation.
type Persister interface {
	Save(ctx context.Context, employees []domain.Employee) error
}

// Store is the single source of truth for the roster. It is not safe for
// concurrent use; callers serialize access.
type Store struct {
	records []domain.Employee
	persist Persister
	tag     language.Tag
}

// New returns a store holding a copy of records.
func New(records []domain.Employee, p Persister) *Store {
	return &Store{
		records: clone(records),
		persist: p,
		tag:     language.English,
	}
}

// Open loads the persisted list (or the seed data) through s.
func Open(ctx context.Context, s *Snapshotter) (*Store, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(records, s), nil
}

// List returns the records in store order.
func (s *Store) List() []domain.Employee {
	return clone(s.records)
}

func (s *Store) Len() int {
	return len(s.records)
}

// Get looks a record up by identifier.
func (s *Store) Get(id string) (domain.Employee, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	return domain.Employee{}, false
}

// Add prepends e under a freshly assigned identifier and returns the stored
// record. Any ID on e is ignored.
func (s *Store) Add(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if err := domain.Check(e); err != nil {
		return domain.Employee{}, err
	}
	e.ID = NextID(s.records)
	next := make([]domain.Employee, 0, len(s.records)+1)
	next = append(next, e)
	next = append(next, s.records...)
	if err := s.commit(ctx, next); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

// Update replaces the record with the given id, keeping its position and
// identifier. An unknown id is a silent no-op.
func (s *Store) Update(ctx context.Context, id string, e domain.Employee) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	if err := domain.Check(e); err != nil {
		return err
	}
	e.ID = id
	next := clone(s.records)
	next[i] = e
	return s.commit(ctx, next)
}

// Remove deletes the record with the given id. An unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	next := make([]domain.Employee, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	return s.commit(ctx, next)
}

// SortBy reorders the whole list by locale collation of the given column.
// The new order is persisted and replaces insertion order.
func (s *Store) SortBy(ctx context.Context, field SortField, dir Direction) error {
	key, err := sortKey(field)
	if err != nil {
		return err
	}
	if dir != Asc && dir != Desc {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, dir)
	}
	c := collate.New(s.tag)
	next := clone(s.records)
	sort.SliceStable(next, func(i, j int) bool {
		if dir == Desc {
			return c.CompareString(key(next[j]), key(next[i])) < 0
		}
		return c.CompareString(key(next[i]), key(next[j])) < 0
	})
	return s.commit(ctx, next)
}

// commit is the only place records changes. The new list is adopted only
// once it has been persisted.
func (s *Store) commit(ctx context.Context, next []domain.Employee) error {
	if s.persist != nil {
		if err := s.persist.Save(ctx, next); err != nil {
			return fmt.Errorf("persist roster: %w", err)
		}
	}
	s.records = next
	return nil
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// NextID returns max(numeric ids)+1 as a decimal string, "1" for an empty
// list. Identifiers that are not decimal numbers are skipped; the result can
// still never collide with one because it would have been parsed as the max.
func NextID(records []domain.Employee) string {
	var max uint64
	for _, e := range records {
		n, err := strconv.ParseUint(e.ID, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.FormatUint(max+1, 10)
}

func sortKey(field SortField) (func(domain.Employee) string, error) {
	switch field {
	case SortByName:
		return func(e domain.Employee) string { return e.Name }, nil
	case SortByAddress:
		return func(e domain.Employee) string { return e.Address }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, field)
}

func clone(in []domain.Employee) []domain.Employee {
	out := make([]domain.Employee, len(in))
	copy(out, in)
	return out
}
