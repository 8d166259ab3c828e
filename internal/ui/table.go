package ui

import (
	"context"

	"github.com/csg33k/employee-roster/internal/domain"
	"github.com/csg33k/employee-roster/internal/roster"
)

// PageSize is the number of rows per table page.
const PageSize = 5

// Sorter is the slice of the store the table touches.
type Sorter interface {
	SortBy(ctx context.Context, field roster.SortField, dir roster.Direction) error
}

// SortState is the active column and direction.
type SortState struct {
	Field     roster.SortField
	Direction roster.Direction
}

// TableView tracks the current page and the active sort column.
type TableView struct {
	page int
	sort *SortState
}

func NewTableView() *TableView {
	return &TableView{page: 1}
}

// TotalPages is ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

func (v *TableView) Page() int { return v.page }

// Sort returns the active sort, if any column has been clicked.
func (v *TableView) Sort() (SortState, bool) {
	if v.sort == nil {
		return SortState{}, false
	}
	return *v.sort, true
}

// Window returns the records shown on the current page.
func (v *TableView) Window(records []domain.Employee) []domain.Employee {
	start := (v.page - 1) * PageSize
	if start >= len(records) {
		return nil
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// ToggleSort flips the direction if field is already active, otherwise
// sorts field ascending. The store is reordered and the page resets to 1.
func (v *TableView) ToggleSort(ctx context.Context, store Sorter, field roster.SortField) error {
	dir := roster.Asc
	if v.sort != nil && v.sort.Field == field {
		dir = v.sort.Direction.Flip()
	}
	if err := store.SortBy(ctx, field, dir); err != nil {
		return err
	}
	v.sort = &SortState{Field: field, Direction: dir}
	v.page = 1
	return nil
}

func (v *TableView) Prev() {
	if v.page > 1 {
		v.page--
	}
}

func (v *TableView) Next(count int) {
	if v.page < TotalPages(count) {
		v.page++
	}
}

// GoTo jumps to page, clamped to the pages that exist.
func (v *TableView) GoTo(page, count int) {
	last := TotalPages(count)
	if last < 1 {
		last = 1
	}
	switch {
	case page < 1:
		page = 1
	case page > last:
		page = last
	}
	v.page = page
}

func (v *TableView) PrevDisabled() bool { return v.page <= 1 }

func (v *TableView) NextDisabled(count int) bool { return v.page >= TotalPages(count) }

// PageNumbers lists 1..TotalPages(count).
func (v *TableView) PageNumbers(count int) []int {
	n := TotalPages(count)
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// AfterMutation steps back one page when the list has shrunk below the
// current page's first row. It moves a single page only.
func (v *TableView) AfterMutation(count int) {
	if v.page > 1 && (v.page-1)*PageSize >= count {
		v.page--
	}
}
