// checklist/reconcile.go
package checklist

import (
	"context"
	"fmt"
)

// Store is the remote side of a reorder: it persists the re-stamped
// sequence. A failure here means local and remote order have diverged and
// the caller must reconcile.
type Store interface {
	SaveOrder(ctx context.Context, items []Item) error
}

// ReconcileError reports that the remote confirmation of an optimistic
// reorder failed. Prev is the list as it stood before the move so the
// caller can revert; Attempted is the list the store rejected, for retry.
type ReconcileError struct {
	Prev      []Item
	Attempted []Item
	Err       error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("checklist: reorder not confirmed: %v", e.Err)
}

func (e *ReconcileError) Unwrap() error { return e.Err }

// Reconciler applies reorders optimistically: the local move is computed
// before the store call is issued. Concurrent reorders from two sessions
// are not serialized here; the last SaveOrder to reach the store wins.
type Reconciler struct {
	store Store
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reorder returns the optimistically reordered list. When the store call
// fails the moved list is still returned together with a *ReconcileError;
// the caller must revert to err.Prev or retry err.Attempted, never leave
// the divergence silent.
func (r *Reconciler) Reorder(ctx context.Context, items []Item, from, to int) ([]Item, error) {
	next, err := Reorder(items, from, to)
	if err != nil {
		return nil, err
	}

	if err := r.store.SaveOrder(ctx, next); err != nil {
		return next, &ReconcileError{Prev: items, Attempted: next, Err: err}
	}
	return next, nil
}
