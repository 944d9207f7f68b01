// Package entity holds the collidable debris shared by the game tasks.
//
// Debris tasks register their bounding box here for as long as they fly.
// Projectiles test their position against the registered obstacles and mark
// the one they hit; the owning debris task consumes the mark on its next
// resumption. The registry never clears marks on its own.
//
// The registry is not safe for concurrent use. All tasks run on the
// scheduler goroutine, so no locking is needed.
package entity

import (
	"github.com/vovakirdan/space-debris/internal/core"
)

// ID identifies an obstacle for its whole lifetime. IDs are never reused.
type ID uint64

// Obstacle is the current on-screen bounding box of a registered debris.
type Obstacle struct {
	ID  ID
	Box core.Rect
}

// Registry stores live obstacles and the set of obstacles hit by projectiles.
type Registry struct {
	nextID ID
	order  []ID
	boxes  map[ID]core.Rect
	hits   map[ID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		boxes: make(map[ID]core.Rect),
		hits:  make(map[ID]struct{}),
	}
}

// Add registers a new obstacle and returns its id.
func (r *Registry) Add(box core.Rect) ID {
	r.nextID++
	id := r.nextID
	r.boxes[id] = box
	r.order = append(r.order, id)
	return id
}

// Move updates the top-left corner of a registered obstacle.
// It returns false if the obstacle is not registered.
func (r *Registry) Move(id ID, row, col int) bool {
	box, ok := r.boxes[id]
	if !ok {
		return false
	}
	box.Row, box.Col = row, col
	r.boxes[id] = box
	return true
}

// Remove deregisters an obstacle along with any unconsumed hit mark.
// Removing an unknown or already removed id is a no-op that returns false.
func (r *Registry) Remove(id ID) bool {
	if _, ok := r.boxes[id]; !ok {
		return false
	}
	delete(r.boxes, id)
	delete(r.hits, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the obstacle registered under id.
func (r *Registry) Get(id ID) (Obstacle, bool) {
	box, ok := r.boxes[id]
	return Obstacle{ID: id, Box: box}, ok
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.order)
}

// Obstacles returns a copy of the registered obstacles in registration order.
func (r *Registry) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Obstacle{ID: id, Box: r.boxes[id]})
	}
	return out
}

// Collides returns the first obstacle, in registration order, that
// overlaps box.
func (r *Registry) Collides(box core.Rect) (Obstacle, bool) {
	for _, id := range r.order {
		if b := r.boxes[id]; b.Intersects(box) {
			return Obstacle{ID: id, Box: b}, true
		}
	}
	return Obstacle{}, false
}

// MarkHit records that a registered obstacle was hit.
// Marking an unregistered id does nothing and returns false.
func (r *Registry) MarkHit(id ID) bool {
	if _, ok := r.boxes[id]; !ok {
		return false
	}
	r.hits[id] = struct{}{}
	return true
}

// IsHit reports whether the obstacle carries an unconsumed hit mark.
func (r *Registry) IsHit(id ID) bool {
	_, ok := r.hits[id]
	return ok
}

// ConsumeHit removes the hit mark of id and reports whether one was present.
// The owning task calls it once per resumption and reacts only on true.
func (r *Registry) ConsumeHit(id ID) bool {
	if _, ok := r.hits[id]; !ok {
		return false
	}
	delete(r.hits, id)
	return true
}

// HitCount returns the number of unconsumed hit marks.
func (r *Registry) HitCount() int {
	return len(r.hits)
}
