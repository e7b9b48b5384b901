package ggview

import (
	"fmt"
	"slices"
)

// EventKind identifies what changed on a surface.
type EventKind uint8

const (
	EventLimitsChanged EventKind = iota + 1 // x or y data range set
	EventArtistAdded                        // artist appended
	EventArtistRemoved                      // artist removed
	EventContentChanged                     // Surface.Invalidate called
	EventChildAdded                         // child surface created
	EventChildRemoved                       // child surface destroyed
	EventBoundsChanged                      // display rectangle or aspect set
	EventDestroyed                          // surface removed from its figure
)

var eventKindNames = [...]string{
	EventLimitsChanged:  "LimitsChanged",
	EventArtistAdded:    "ArtistAdded",
	EventArtistRemoved:  "ArtistRemoved",
	EventContentChanged: "ContentChanged",
	EventChildAdded:     "ChildAdded",
	EventChildRemoved:   "ChildRemoved",
	EventBoundsChanged:  "BoundsChanged",
	EventDestroyed:      "Destroyed",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a change notification delivered to surface subscribers.
type Event struct {
	Kind    EventKind
	Surface *Surface
}

type subscription struct {
	fn func(Event)
}

// subscribers is an ordered list of event callbacks. Callbacks may
// subscribe or cancel while an event is being delivered. Cancel funcs
// reference only their own entry, so holding one does not keep the
// surface alive.
type subscribers struct {
	list []*subscription
}

func (s *subscribers) add(fn func(Event)) (cancel func()) {
	s.compact()
	sub := &subscription{fn: fn}
	s.list = append(s.list, sub)
	return func() { sub.fn = nil }
}

func (s *subscribers) emit(e Event) {
	s.compact()
	snapshot := append([]*subscription(nil), s.list...)
	for _, sub := range snapshot {
		if fn := sub.fn; fn != nil {
			fn(e)
		}
	}
}

func (s *subscribers) len() int {
	s.compact()
	return len(s.list)
}

// compact drops cancelled entries.
func (s *subscribers) compact() {
	s.list = slices.DeleteFunc(s.list, func(sub *subscription) bool { return sub.fn == nil })
}
