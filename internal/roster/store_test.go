package roster_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/csg33k/employee-roster/internal/domain"
	"github.com/csg33k/employee-roster/internal/roster"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// recorder is a Persister that keeps every saved snapshot.
type recorder struct {
	saves [][]domain.Employee
	err   error
}

func (r *recorder) Save(_ context.Context, es []domain.Employee) error {
	if r.err != nil {
		return r.err
	}
	cp := append([]domain.Employee(nil), es...)
	r.saves = append(r.saves, cp)
	return nil
}

func (r *recorder) last() []domain.Employee {
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func emp(id, name, address string) domain.Employee {
	return domain.Employee{
		ID:          id,
		Name:        name,
		DateOfBirth: "1990-01-01",
		Gender:      domain.GenderFemale,
		Email:       name + "@x.com",
		Address:     address,
	}
}

func ids(es []domain.Employee) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

var ctx = context.Background()

// ---------------------------------------------------------------------------
// Add / identifiers
// ---------------------------------------------------------------------------

func TestAdd_EmptyStoreAssignsOne(t *testing.T) {
	rec := &recorder{}
	s := roster.New(nil, rec)

	got, err := s.Add(ctx, domain.Employee{
		Name:        "Ana",
		DateOfBirth: "1990-01-01",
		Gender:      domain.GenderFemale,
		Email:       "a@x.com",
		Address:     "St 1",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "1" {
		t.Errorf("id = %q, want %q", got.ID, "1")
	}
	if diff := cmp.Diff([]domain.Employee{got}, s.List()); diff != "" {
		t.Errorf("store (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.List(), rec.last()); diff != "" {
		t.Errorf("persisted snapshot differs (-store +saved):\n%s", diff)
	}
}

func TestAdd_UsesMaxPlusOne(t *testing.T) {
	s := roster.New([]domain.Employee{emp("1", "a", "x"), emp("3", "b", "y")}, &recorder{})

	got, err := s.Add(ctx, emp("", "c", "z"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "4" {
		t.Errorf("id = %q, want %q", got.ID, "4")
	}
	if diff := cmp.Diff([]string{"4", "1", "3"}, ids(s.List())); diff != "" {
		t.Errorf("new record must be prepended (-want +got):\n%s", diff)
	}
}

func TestAdd_IgnoresCallerID(t *testing.T) {
	s := roster.New([]domain.Employee{emp("1", "a", "x")}, &recorder{})
	got, err := s.Add(ctx, emp("1", "dup", "y"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "2" {
		t.Errorf("id = %q, want %q", got.ID, "2")
	}
}

func TestAdd_IdentifiersStayUnique(t *testing.T) {
	s := roster.New([]domain.Employee{emp("7", "seed", "x"), emp("legacy-a", "old", "y")}, &recorder{})
	for i := 0; i < 50; i++ {
		if _, err := s.Add(ctx, emp("", fmt.Sprintf("n%d", i), "addr")); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
		if i%7 == 3 {
			list := s.List()
			if err := s.Remove(ctx, list[len(list)/2].ID); err != nil {
				t.Fatalf("Remove: %v", err)
			}
		}
		seen := map[string]bool{}
		for _, e := range s.List() {
			if seen[e.ID] {
				t.Fatalf("duplicate id %q after add #%d", e.ID, i)
			}
			seen[e.ID] = true
		}
	}
}

func TestAdd_RejectsMissingFields(t *testing.T) {
	rec := &recorder{}
	s := roster.New(nil, rec)

	bad := emp("", "Ana", "")
	_, err := s.Add(ctx, bad)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Fields[domain.FieldAddress] != "Address is required" {
		t.Errorf("fields = %v", verr.Fields)
	}
	if s.Len() != 0 || len(rec.saves) != 0 {
		t.Errorf("invalid add must not mutate or persist: len=%d saves=%d", s.Len(), len(rec.saves))
	}
}

func TestNextID(t *testing.T) {
	cases := []struct {
		ids  []string
		want string
	}{
		{nil, "1"},
		{[]string{"1", "3"}, "4"},
		{[]string{"10", "9"}, "11"},
		{[]string{"abc", "2"}, "3"},
		{[]string{"abc"}, "1"},
		{[]string{"01"}, "2"},
	}
	for _, c := range cases {
		var es []domain.Employee
		for _, id := range c.ids {
			es = append(es, domain.Employee{ID: id})
		}
		if got := roster.NextID(es); got != c.want {
			t.Errorf("NextID(%v) = %q, want %q", c.ids, got, c.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Update / Remove
// ---------------------------------------------------------------------------

func TestUpdate_ReplacesInPlace(t *testing.T) {
	rec := &recorder{}
	s := roster.New([]domain.Employee{emp("1", "a", "x"), emp("2", "b", "y"), emp("3", "c", "z")}, rec)

	changed := emp("999", "b2", "new street")
	if err := s.Update(ctx, "2", changed); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, ok := s.Get("2")
	if !ok {
		t.Fatal("record 2 disappeared")
	}
	if got.Name != "b2" || got.Address != "new street" || got.ID != "2" {
		t.Errorf("updated record = %+v", got)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(s.List())); diff != "" {
		t.Errorf("position changed (-want +got):\n%s", diff)
	}
	if len(rec.saves) != 1 {
		t.Errorf("saves = %d, want 1", len(rec.saves))
	}
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	rec := &recorder{}
	before := []domain.Employee{emp("1", "a", "x")}
	s := roster.New(before, rec)

	if err := s.Update(ctx, "42", emp("", "z", "z")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if diff := cmp.Diff(before, s.List()); diff != "" {
		t.Errorf("store changed (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	rec := &recorder{}
	s := roster.New([]domain.Employee{emp("1", "a", "x"), emp("2", "b", "y")}, rec)

	if err := s.Remove(ctx, "1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if diff := cmp.Diff([]string{"2"}, ids(s.List())); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
	if err := s.Remove(ctx, "1"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestFailedWriteLeavesStoreUnchanged(t *testing.T) {
	rec := &recorder{err: errors.New("quota exceeded")}
	before := []domain.Employee{emp("1", "a", "x"), emp("2", "b", "y")}
	s := roster.New(before, rec)

	if _, err := s.Add(ctx, emp("", "c", "z")); err == nil {
		t.Error("Add: expected error")
	}
	if err := s.Update(ctx, "1", emp("", "q", "q")); err == nil {
		t.Error("Update: expected error")
	}
	if err := s.Remove(ctx, "1"); err == nil {
		t.Error("Remove: expected error")
	}
	if err := s.SortBy(ctx, roster.SortByName, roster.Desc); err == nil {
		t.Error("SortBy: expected error")
	}
	if diff := cmp.Diff(before, s.List()); diff != "" {
		t.Errorf("store changed (-want +got):\n%s", diff)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := roster.New([]domain.Employee{emp("1", "a", "x")}, nil)
	l := s.List()
	l[0].Name = "mutated"
	if got, _ := s.Get("1"); got.Name != "a" {
		t.Errorf("List leaked internal storage: %q", got.Name)
	}
}

// ---------------------------------------------------------------------------
// SortBy
// ---------------------------------------------------------------------------

func TestSortBy_NameAscendingCollates(t *testing.T) {
	rec := &recorder{}
	s := roster.New([]domain.Employee{
		emp("1", "Zoë", "a"),
		emp("2", "émile", "b"),
		emp("3", "Bob", "c"),
		emp("4", "alice", "d"),
		emp("5", "Ethan", "e"),
	}, rec)

	if err := s.SortBy(ctx, roster.SortByName, roster.Asc); err != nil {
		t.Fatalf("SortBy: %v", err)
	}
	list := s.List()
	c := collate.New(language.English)
	for i := 1; i < len(list); i++ {
		if c.CompareString(list[i-1].Name, list[i].Name) > 0 {
			t.Errorf("%q sorted before %q", list[i-1].Name, list[i].Name)
		}
	}
	// Locale order interleaves case and accents rather than using byte order.
	if diff := cmp.Diff([]string{"alice", "Bob", "émile", "Ethan", "Zoë"}, names(list)); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(list, rec.last()); diff != "" {
		t.Errorf("sorted order not persisted (-store +saved):\n%s", diff)
	}
}

func TestSortBy_DescendingReversesAscending(t *testing.T) {
	s := roster.New([]domain.Employee{
		emp("1", "m", "Pine St"),
		emp("2", "n", "Apple Rd"),
		emp("3", "o", "elm Ct"),
		emp("4", "p", "Birch Ave"),
	}, nil)

	if err := s.SortBy(ctx, roster.SortByAddress, roster.Asc); err != nil {
		t.Fatal(err)
	}
	asc := ids(s.List())
	if err := s.SortBy(ctx, roster.SortByAddress, roster.Desc); err != nil {
		t.Fatal(err)
	}
	desc := ids(s.List())
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc %v is not the reverse of asc %v", desc, asc)
		}
	}
	if diff := cmp.Diff([]string{"2", "4", "3", "1"}, asc); diff != "" {
		t.Errorf("asc (-want +got):\n%s", diff)
	}
}

func TestSortBy_RejectsUnknownInput(t *testing.T) {
	s := roster.New(nil, nil)
	if err := s.SortBy(ctx, "email", roster.Asc); !errors.Is(err, roster.ErrUnknownSortField) {
		t.Errorf("field: got %v", err)
	}
	if err := s.SortBy(ctx, roster.SortByName, "sideways"); !errors.Is(err, roster.ErrUnknownDirection) {
		t.Errorf("direction: got %v", err)
	}
	if _, err := roster.ParseSortField("gender"); !errors.Is(err, roster.ErrUnknownSortField) {
		t.Errorf("ParseSortField: got %v", err)
	}
	if f, err := roster.ParseSortField("address"); err != nil || f != roster.SortByAddress {
		t.Errorf("ParseSortField(address) = %q, %v", f, err)
	}
}

func TestDirectionFlip(t *testing.T) {
	if roster.Asc.Flip() != roster.Desc || roster.Desc.Flip() != roster.Asc {
		t.Error("Flip is not an involution between asc and desc")
	}
}

func names(es []domain.Employee) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}
