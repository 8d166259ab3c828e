// Package templates renders the roster screen. Each exported function
// returns a templ.Component backed by the html/template markup in
// markup.go.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-roster/internal/domain"
)

// Roster is everything the screen shows for one render.
type Roster struct {
	Rows         []domain.Employee
	Count        int
	Page         int
	Pages        []int
	PrevDisabled bool
	NextDisabled bool
	// SortField and SortDir are empty until a header has been clicked.
	SortField string
	SortDir   string
	Form      Form
	Delete    Delete
}

// Arrow is the indicator shown next to a sortable header.
func (r Roster) Arrow(field string) string {
	if r.SortField != field {
		return ""
	}
	if r.SortDir == "desc" {
		return "↓"
	}
	return "↑"
}

// Form is the create/edit dialog.
type Form struct {
	Open           bool
	Editing        bool
	Values         domain.Employee
	Errors         map[string]string
	SubmitDisabled bool
}

func (f Form) Title() string {
	if f.Editing {
		return "Edit Employee"
	}
	return "Add Employee"
}

func (f Form) SubmitLabel() string {
	if f.Editing {
		return "Update Employee"
	}
	return "Add Employee"
}

// Field is one labelled input of the form.
type Field struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Options     []string
}

var fieldLayout = []Field{
	{Name: domain.FieldName, Label: "Name", Type: "text", Placeholder: "Enter Name"},
	{Name: domain.FieldDateOfBirth, Label: "Date of Birth", Type: "date"},
	{Name: domain.FieldGender, Label: "Gender"},
	{Name: domain.FieldEmail, Label: "Email", Type: "email", Placeholder: "Enter Email"},
	{Name: domain.FieldAddress, Label: "Address", Type: "text", Placeholder: "Enter Address"},
}

// Fields returns the inputs in display order with values and errors filled.
func (f Form) Fields() []Field {
	out := make([]Field, len(fieldLayout))
	for i, fl := range fieldLayout {
		fl.Value, _ = f.Values.Value(fl.Name)
		fl.Error = f.Errors[fl.Name]
		if fl.Name == domain.FieldGender {
			for _, g := range domain.Genders {
				fl.Options = append(fl.Options, string(g))
			}
		}
		out[i] = fl
	}
	return out
}

// Delete is the confirmation dialog.
type Delete struct {
	Visible bool
	ID      string
	Name    string
}

var tmpl = template.Must(template.New("roster").Funcs(template.FuncMap{
	"date": displayDate,
	"itoa": itoa,
}).Parse(markup))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Page is the full HTML document.
func Page(r Roster) templ.Component { return component("page", r) }

// App is the swappable #app region HTMX requests replace.
func App(r Roster) templ.Component { return component("app", r) }

// FieldChanged re-renders the form buttons and clears the changed field's
// error out of band.
func FieldChanged(f Form, field string) templ.Component {
	return component("field-changed", struct {
		Form  Form
		Field string
	}{f, field})
}
