package ui

import (
	"context"
	"log/slog"

	"github.com/csg33k/employee-roster/internal/ports"
)

const (
	MsgDeleted      = "Employee deleted successfully!"
	MsgDeleteFailed = "Failed to delete employee. Please try again."
)

// Remover is the slice of the store the delete dialog touches.
type Remover interface {
	Remove(ctx context.Context, id string) error
}

// DeleteDialog asks for confirmation before a record is removed.
type DeleteDialog struct {
	open    bool
	pending string
}

func NewDeleteDialog() *DeleteDialog { return &DeleteDialog{} }

// Request shows the dialog for id.
func (d *DeleteDialog) Request(id string) {
	d.pending = id
	d.open = true
}

// PendingID is the identifier awaiting confirmation.
func (d *DeleteDialog) PendingID() string { return d.pending }

// Visible requires both the open flag and a pending id.
func (d *DeleteDialog) Visible() bool {
	return d.open && d.pending != ""
}

// Confirm removes the pending record. On success the user is told and the
// dialog hides; on failure the error is logged and reported, and the dialog
// keeps its state so the user can retry or cancel.
func (d *DeleteDialog) Confirm(ctx context.Context, store Remover, n ports.Notifier) error {
	if d.pending == "" {
		return nil
	}
	if err := store.Remove(ctx, d.pending); err != nil {
		slog.Error("delete employee", "id", d.pending, "err", err)
		n.Error(MsgDeleteFailed)
		return err
	}
	d.pending = ""
	d.open = false
	n.Success(MsgDeleted)
	return nil
}

// Cancel hides the dialog and forgets the pending id.
func (d *DeleteDialog) Cancel() {
	d.pending = ""
	d.open = false
}
