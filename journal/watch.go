// journal/watch.go
package journal

import "sync"

type EventKind string

const (
	TradeAdded       EventKind = "trade_added"
	TradeUpdated     EventKind = "trade_updated"
	TradeDeleted     EventKind = "trade_deleted"
	ChecklistChanged EventKind = "checklist_changed"
)

// Event announces a store mutation. ID is the trade or checklist item id;
// empty for whole-list changes like a reorder.
type Event struct {
	Kind EventKind
	ID   string
}

// notifier fans events out to watchers. Sends never block the store: a
// watcher that falls behind its buffer misses events and should re-list.
type notifier struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func (n *notifier) watch() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]chan Event)
	}
	id := n.next
	n.next++

	ch := make(chan Event, 16)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (n *notifier) publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
