package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-roster/internal/adapters/pdf"
	"github.com/csg33k/employee-roster/internal/domain"
	"github.com/csg33k/employee-roster/internal/roster"
	"github.com/csg33k/employee-roster/internal/templates"
	"github.com/csg33k/employee-roster/internal/ui"
)

const msgSaveFailed = "Failed to save employee. Please try again."

// Handler serves the roster screen. One mutex serializes every interaction
// so the store, the table and both dialogs move together.
type Handler struct {
	mu    sync.Mutex
	store *roster.Store
	view  *ui.TableView
	form  *ui.FormDialog
	del   *ui.DeleteDialog
}

func New(store *roster.Store) *Handler {
	return &Handler{
		store: store,
		view:  ui.NewTableView(),
		form:  ui.NewFormDialog(),
		del:   ui.NewDeleteDialog(),
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /sort/{field}", h.sort)
	mux.HandleFunc("POST /page/prev", h.prevPage)
	mux.HandleFunc("POST /page/next", h.nextPage)
	mux.HandleFunc("POST /page/{n}", h.goToPage)
	mux.HandleFunc("GET /employees/new", h.newEmployeeForm)
	mux.HandleFunc("GET /employees/{id}/edit", h.editEmployeeForm)
	mux.HandleFunc("POST /form/field", h.changeField)
	mux.HandleFunc("POST /form/submit", h.submitForm)
	mux.HandleFunc("POST /form/cancel", h.cancelForm)
	mux.HandleFunc("POST /employees/{id}/delete", h.requestDelete)
	mux.HandleFunc("POST /delete/confirm", h.confirmDelete)
	mux.HandleFunc("POST /delete/cancel", h.cancelDelete)
	mux.HandleFunc("GET /employees.pdf", h.exportPDF)
	mux.HandleFunc("GET /employees.json", h.exportJSON)
	return logRequests(mux)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "invalid page", 400)
			return
		}
		h.view.GoTo(n, h.store.Len())
	}
	h.respond(w, r, nil)
}

func (h *Handler) sort(w http.ResponseWriter, r *http.Request) {
	field, err := roster.ParseSortField(r.PathValue("field"))
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	t := &toasts{}
	if err := h.view.ToggleSort(r.Context(), h.store, field); err != nil {
		slog.Error("sort roster", "field", field, "err", err)
		t.Error("Failed to sort employees. Please try again.")
	}
	h.view.AfterMutation(h.store.Len())
	h.respond(w, r, t)
}

func (h *Handler) prevPage(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.Prev()
	h.respond(w, r, nil)
}

func (h *Handler) nextPage(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.Next(h.store.Len())
	h.respond(w, r, nil)
}

func (h *Handler) goToPage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid page", 400)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.GoTo(n, h.store.Len())
	h.respond(w, r, nil)
}

func (h *Handler) newEmployeeForm(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.form.OpenCreate()
	h.respond(w, r, nil)
}

func (h *Handler) editEmployeeForm(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.form.OpenEdit(r.PathValue("id"), h.store)
	h.respond(w, r, nil)
}

// changeField records one live edit and returns the form buttons plus an
// out-of-band reset of that field's error line.
func (h *Handler) changeField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	field := r.FormValue("field")
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.form.IsOpen() {
		http.Error(w, ui.ErrFormClosed.Error(), 409)
		return
	}
	if err := h.form.Change(field, r.FormValue(field)); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	render(w, r, templates.FieldChanged(h.formView(), field))
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.form.IsOpen() {
		http.Error(w, ui.ErrFormClosed.Error(), 409)
		return
	}
	for _, field := range domain.RequiredFields {
		if _, ok := r.PostForm[field]; ok {
			h.form.Change(field, r.PostForm.Get(field))
		}
	}
	t := &toasts{}
	closed, err := h.form.Submit(r.Context(), h.store)
	if err != nil {
		slog.Error("save employee", "mode", h.form.Mode().String(), "id", h.form.ID(), "err", err)
		t.Error(msgSaveFailed)
	}
	if closed {
		h.view.AfterMutation(h.store.Len())
	}
	h.respond(w, r, t)
}

func (h *Handler) cancelForm(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.form.Cancel()
	h.respond(w, r, nil)
}

func (h *Handler) requestDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.del.Request(r.PathValue("id"))
	h.respond(w, r, nil)
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := &toasts{}
	if err := h.del.Confirm(r.Context(), h.store, t); err == nil {
		h.view.AfterMutation(h.store.Len())
	}
	h.respond(w, r, t)
}

func (h *Handler) cancelDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.del.Cancel()
	h.respond(w, r, nil)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	list := h.store.List()
	h.mu.Unlock()

	now := time.Now()
	var buf bytes.Buffer
	if err := pdf.GenerateRoster(list, now, &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("roster_%s.pdf", now.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func (h *Handler) exportJSON(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	list := h.store.List()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		slog.Error("encode roster", "err", err)
	}
}

// respond renders the #app fragment for HTMX requests and the whole page
// otherwise. Queued toasts go out in the HX-Trigger header.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, t *toasts) {
	t.flush(w)
	v := h.rosterView()
	if r.Header.Get("HX-Request") == "true" {
		render(w, r, templates.App(v))
		return
	}
	render(w, r, templates.Page(v))
}

func (h *Handler) rosterView() templates.Roster {
	all := h.store.List()
	v := templates.Roster{
		Rows:         h.view.Window(all),
		Count:        len(all),
		Page:         h.view.Page(),
		Pages:        h.view.PageNumbers(len(all)),
		PrevDisabled: h.view.PrevDisabled(),
		NextDisabled: h.view.NextDisabled(len(all)),
		Form:         h.formView(),
	}
	if s, ok := h.view.Sort(); ok {
		v.SortField = string(s.Field)
		v.SortDir = string(s.Direction)
	}
	if h.del.Visible() {
		v.Delete = templates.Delete{Visible: true, ID: h.del.PendingID()}
		if e, ok := h.store.Get(h.del.PendingID()); ok {
			v.Delete.Name = e.Name
		}
	}
	return v
}

func (h *Handler) formView() templates.Form {
	return templates.Form{
		Open:           h.form.IsOpen(),
		Editing:        h.form.Mode() == ui.FormEdit,
		Values:         h.form.Values(),
		Errors:         h.form.Errors(),
		SubmitDisabled: h.form.SubmitDisabled(),
	}
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
