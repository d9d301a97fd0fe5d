// Package scene holds the in-memory render graph the world submits drawables to.
package scene

import (
	"sync"

	"voxelworld/internal/world"
)

// Stats summarizes what a frame would draw.
type Stats struct {
	DrawCalls int
	Instances int
	Attaches  int // lifetime totals
	Detaches  int
}

// Scene records attached drawables. Attaching the same drawable twice, or
// detaching one that is not attached, is ignored and counted as a misuse.
type Scene struct {
	mu        sync.Mutex
	drawables map[world.Drawable]struct{}
	attaches  int
	detaches  int
	misuses   int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{drawables: make(map[world.Drawable]struct{})}
}

func (s *Scene) Attach(d world.Drawable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drawables[d]; ok {
		s.misuses++
		return
	}
	s.drawables[d] = struct{}{}
	s.attaches++
}

func (s *Scene) Detach(d world.Drawable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drawables[d]; !ok {
		s.misuses++
		return
	}
	delete(s.drawables, d)
	s.detaches++
}

// Contains reports whether d is currently attached.
func (s *Scene) Contains(d world.Drawable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drawables[d]
	return ok
}

// Len returns the number of attached drawables.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drawables)
}

// Misuses counts duplicate attaches and unknown detaches.
func (s *Scene) Misuses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.misuses
}

// Stats walks the attached drawables the way a renderer would: one draw call
// per non-empty drawable, Count() instances each.
func (s *Scene) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Attaches: s.attaches, Detaches: s.detaches}
	for d := range s.drawables {
		n := d.Count()
		if n == 0 {
			continue
		}
		st.DrawCalls++
		st.Instances += n
	}
	return st
}

// InstancesOf returns the number of attached instances of material m.
func (s *Scene) InstancesOf(m world.Material) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for d := range s.drawables {
		if d.Material() == m {
			total += d.Count()
		}
	}
	return total
}
