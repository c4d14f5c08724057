package fonts

import (
	"sync"

	htmlbridge "github.com/htmlkit/htmlbridge"
)

// EventType identifies a font handle lifecycle event.
type EventType uint8

const (
	EventCreated EventType = iota
	EventReleased
)

// Event describes one font handle lifecycle transition.
type Event struct {
	Face   any
	Handle htmlbridge.FontHandle
	Type   EventType
}

// Observer receives font handle lifecycle events.
type Observer interface {
	OnFontEvent(Event)
}

// Dropper is implemented by faces that need teardown on release.
type Dropper interface {
	Drop()
}

type entry struct {
	face  any
	valid bool
}

// Registry maps opaque font handles to host-side font faces. Handle 0 is
// reserved. One Registry may back any number of documents; releases are
// idempotent-checked, never double-dispatched.
type Registry struct {
	entries   []entry
	freeList  []htmlbridge.FontHandle
	observers []Observer
	mu        sync.Mutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 16),
		freeList: make([]htmlbridge.FontHandle, 0, 4),
	}
}

// Create stores a face and returns its handle.
func (r *Registry) Create(face any) htmlbridge.FontHandle {
	r.mu.Lock()
	var h htmlbridge.FontHandle
	if n := len(r.freeList); n > 0 {
		h = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[h-1] = entry{face: face, valid: true}
	} else {
		r.entries = append(r.entries, entry{face: face, valid: true})
		h = htmlbridge.FontHandle(len(r.entries))
	}
	r.mu.Unlock()

	r.notify(Event{Type: EventCreated, Handle: h, Face: face})
	return h
}

// Get retrieves the face for a live handle.
func (r *Registry) Get(h htmlbridge.FontHandle) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == 0 || int(h) > len(r.entries) || !r.entries[h-1].valid {
		return nil, false
	}
	return r.entries[h-1].face, true
}

// Release drops a handle and reports whether it was live. The face's Drop
// method, if any, runs exactly once, on the first release.
func (r *Registry) Release(h htmlbridge.FontHandle) bool {
	r.mu.Lock()
	if h == 0 || int(h) > len(r.entries) || !r.entries[h-1].valid {
		r.mu.Unlock()
		return false
	}
	face := r.entries[h-1].face
	r.entries[h-1] = entry{}
	r.freeList = append(r.freeList, h)
	r.mu.Unlock()

	if d, ok := face.(Dropper); ok {
		d.Drop()
	}
	r.notify(Event{Type: EventReleased, Handle: h, Face: face})
	return true
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry) notify(e Event) {
	r.mu.Lock()
	obs := make([]Observer, len(r.observers))
	copy(obs, r.observers)
	r.mu.Unlock()
	for _, o := range obs {
		o.OnFontEvent(e)
	}
}
