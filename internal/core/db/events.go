package db

import "log"

// ------------------------------
// Event System
// ------------------------------
//
// The DB emits typed events while an export is stored. Register listeners to
// react to these changes.
//
// Example usage:
//
//	db.RegisterEventListener(db.OnGroupStoredEvent, func(event db.Event) error {
//	    ev := event.(db.GroupStoredEvent)
//	    log.Printf("Stored group %q with %d bookmark(s)", ev.Group.Title, len(ev.Group.Bookmarks))
//	    return nil
//	})
//
// Event is the common interface for all database events.
type Event interface {
	Kind() EventKind
}

// EventKind represents all the kinds of events that can be emitted by the DB.
type EventKind int

const (
	// OnGroupStoredEvent is emitted for every group of a stored export.
	OnGroupStoredEvent EventKind = iota
	// OnImportCompletedEvent is emitted once a whole export has been stored.
	OnImportCompletedEvent
)

func (k EventKind) String() string {
	switch k {
	case OnGroupStoredEvent:
		return "group_stored"
	case OnImportCompletedEvent:
		return "import_completed"
	default:
		return "unknown"
	}
}

// GroupStoredEvent carries a group as it was stored, IDs included.
type GroupStoredEvent struct {
	Group Group
}

func (e GroupStoredEvent) Kind() EventKind { return OnGroupStoredEvent }

// ImportCompletedEvent is emitted after the export transaction is committed.
type ImportCompletedEvent struct {
	Groups    int
	Bookmarks int
}

func (e ImportCompletedEvent) Kind() EventKind { return OnImportCompletedEvent }

// EventListener is a callback that handles events of a specific kind.
type EventListener func(event Event) error

// RegisterEventListener adds a listener for a specific event kind.
// Listeners are called synchronously in registration order after the DB operation succeeds.
func (db *DB) RegisterEventListener(eventKind EventKind, listener EventListener) {
	if db.eventListeners == nil {
		db.eventListeners = make(map[EventKind][]EventListener)
	}
	db.eventListeners[eventKind] = append(db.eventListeners[eventKind], listener)
}

// emit dispatches an event to all registered listeners for that event kind.
func (db *DB) emit(event Event) {
	for _, listener := range db.eventListeners[event.Kind()] {
		if err := listener(event); err != nil {
			log.Printf("Event listener error for %s: %v", event.Kind(), err)
		}
	}
}
