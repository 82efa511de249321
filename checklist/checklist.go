// checklist/checklist.go
package checklist

import (
	"errors"
	"fmt"
)

// Item is one entry of a user's pre-trade checklist. Order defines the
// display sequence and is dense: after any reorder the Order values across
// the list are exactly 0..n-1.
type Item struct {
	ID      string
	Text    string
	Checked bool
	Order   int
}

var ErrIndexOutOfRange = errors.New("checklist: index out of range")

// Reorder moves the item at from to position to, then re-stamps every Order
// field to its slice index. The input slice is not mutated.
func Reorder(items []Item, from, to int) ([]Item, error) {
	if from < 0 || from >= len(items) {
		return nil, fmt.Errorf("%w: from=%d len=%d", ErrIndexOutOfRange, from, len(items))
	}
	if to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: to=%d len=%d", ErrIndexOutOfRange, to, len(items))
	}

	out := make([]Item, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	out = append(out, Item{})
	copy(out[to+1:], out[to:])
	out[to] = items[from]

	return Restamp(out), nil
}

// Restamp rewrites Order to the dense zero-based sequence, in place.
func Restamp(items []Item) []Item {
	for i := range items {
		items[i].Order = i
	}
	return items
}
