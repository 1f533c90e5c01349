package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jundev/oneline/internal/widget"
)

// Instance is one placed widget.
type Instance struct {
	ID     string
	Layout widget.Layout
}

// Instances tracks the placed widgets. A reload renders each of them.
type Instances struct {
	mu    sync.RWMutex
	items []Instance
}

func NewInstances(layouts ...widget.Layout) *Instances {
	r := &Instances{}
	for _, l := range layouts {
		r.Add(l)
	}
	return r
}

// Add places a widget and returns it.
func (r *Instances) Add(layout widget.Layout) Instance {
	inst := Instance{ID: uuid.NewString(), Layout: layout}
	r.mu.Lock()
	r.items = append(r.items, inst)
	r.mu.Unlock()
	return inst
}

// Remove drops the widget with id. It reports whether one was removed.
func (r *Instances) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inst := range r.items {
		if inst.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetLayout resizes the widget with id.
func (r *Instances) SetLayout(id string, layout widget.Layout) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Layout = layout
			return true
		}
	}
	return false
}

// List returns the widgets in placement order.
func (r *Instances) List() []Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Instance(nil), r.items...)
}

func (r *Instances) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
