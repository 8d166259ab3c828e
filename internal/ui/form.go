// Package ui holds the interactive state of the roster screen: the
// create/edit form, the delete confirmation and the table's page and sort.
// Nothing here renders; the templates read these types.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/csg33k/employee-roster/internal/domain"
	"github.com/csg33k/employee-roster/internal/roster"
)

// RecordStore is what the dialogs and table need from the roster.
type RecordStore interface {
	Get(id string) (domain.Employee, bool)
	Add(ctx context.Context, e domain.Employee) (domain.Employee, error)
	Update(ctx context.Context, id string, e domain.Employee) error
	Remove(ctx context.Context, id string) error
	SortBy(ctx context.Context, field roster.SortField, dir roster.Direction) error
}

var (
	ErrUnknownField = errors.New("ui: unknown form field")
	ErrFormClosed   = errors.New("ui: form is not open")
)

// FormMode is the state of the form dialog.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "create"
	case FormEdit:
		return "edit"
	}
	return "closed"
}

// FormDialog is the create/edit dialog. In edit mode it remembers the values
// it was opened with so it can tell whether anything changed.
type FormDialog struct {
	mode    FormMode
	id      string
	values  domain.Employee
	initial domain.Employee
	errors  map[string]string
}

func NewFormDialog() *FormDialog {
	f := &FormDialog{}
	f.reset()
	return f
}

func (f *FormDialog) Mode() FormMode { return f.mode }
func (f *FormDialog) IsOpen() bool   { return f.mode != FormClosed }

// ID is the identifier bound in edit mode, empty otherwise.
func (f *FormDialog) ID() string { return f.id }

// Values returns the current field values.
func (f *FormDialog) Values() domain.Employee { return f.values }

// Errors returns a copy of the per-field messages from the last submit.
func (f *FormDialog) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// OpenCreate opens an empty form.
func (f *FormDialog) OpenCreate() {
	f.reset()
	f.mode = FormCreate
}

// OpenEdit opens the form bound to id, prefilled from the store. An id the
// store does not know falls back to the blank defaults.
func (f *FormDialog) OpenEdit(id string, store RecordStore) {
	if id == "" {
		f.OpenCreate()
		return
	}
	f.reset()
	f.mode = FormEdit
	f.id = id
	if e, ok := store.Get(id); ok {
		f.values = e
		f.initial = e
	}
}

// Change sets one field and clears its error.
func (f *FormDialog) Change(field, value string) error {
	if !f.values.Set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(f.errors, field)
	return nil
}

// Dirty reports whether any field differs from the values the form was
// opened with.
func (f *FormDialog) Dirty() bool {
	for _, field := range domain.RequiredFields {
		cur, _ := f.values.Value(field)
		was, _ := f.initial.Value(field)
		if cur != was {
			return true
		}
	}
	return false
}

// SubmitDisabled is true only while editing with nothing changed.
func (f *FormDialog) SubmitDisabled() bool {
	return f.mode == FormEdit && !f.Dirty()
}

// Submit validates the current values and, if they are complete, adds or
// updates the record and closes the form. It reports whether the form
// closed. Validation failures keep the form open with per-field errors and
// return a nil error; a store failure is returned and the form stays open.
func (f *FormDialog) Submit(ctx context.Context, store RecordStore) (bool, error) {
	if f.mode == FormClosed {
		return false, ErrFormClosed
	}
	if f.SubmitDisabled() {
		return false, nil
	}
	if errs := domain.Validate(f.values); len(errs) > 0 {
		f.errors = errs
		return false, nil
	}

	var err error
	switch f.mode {
	case FormCreate:
		_, err = store.Add(ctx, f.values)
	case FormEdit:
		err = store.Update(ctx, f.id, f.values)
	}
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			f.errors = verr.Fields
			return false, nil
		}
		return false, err
	}
	f.reset()
	return true, nil
}

// Cancel discards any edits and closes the form.
func (f *FormDialog) Cancel() {
	f.reset()
}

func (f *FormDialog) reset() {
	f.mode = FormClosed
	f.id = ""
	f.values = domain.NewEmployee()
	f.initial = domain.NewEmployee()
	f.errors = map[string]string{}
}
