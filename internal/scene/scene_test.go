package scene

import (
	"testing"

	"voxelworld/internal/world"
)

func TestSceneTracksAttachedBatches(t *testing.T) {
	s := New()
	b := world.NewInstanceBatch(world.MaterialGround, s)
	b.Insert(world.Cell{X: 1})
	b.Insert(world.Cell{X: 2})
	b.Attach()

	if s.Len() != 1 || !s.Contains(b.Drawable()) {
		t.Fatalf("Expected batch drawable attached, len %d", s.Len())
	}
	st := s.Stats()
	if st.DrawCalls != 1 || st.Instances != 2 {
		t.Errorf("Unexpected stats %+v", st)
	}

	b.Detach()
	if s.Len() != 0 {
		t.Errorf("Expected empty scene after detach, got %d", s.Len())
	}
	if s.Misuses() != 0 {
		t.Errorf("Unexpected misuses: %d", s.Misuses())
	}
}

func TestSceneFollowsGrowth(t *testing.T) {
	s := New()
	b := world.NewInstanceBatch(world.MaterialPlaced, s)
	b.Attach()
	first := b.Drawable()
	for i := range 20 {
		b.Insert(world.Cell{X: i})
	}
	if s.Contains(first) {
		t.Errorf("Old buffer still attached after growth")
	}
	if !s.Contains(b.Drawable()) || s.Len() != 1 {
		t.Errorf("Expected only the current buffer attached, len %d", s.Len())
	}
	if got := s.InstancesOf(world.MaterialPlaced); got != 20 {
		t.Errorf("Expected 20 placed instances, got %d", got)
	}
	if s.Misuses() != 0 {
		t.Errorf("Unexpected misuses: %d", s.Misuses())
	}
}

func TestSceneIgnoresEmptyDrawables(t *testing.T) {
	s := New()
	b := world.NewInstanceBatch(world.MaterialGround, s)
	b.Attach()
	if st := s.Stats(); st.DrawCalls != 0 {
		t.Errorf("Empty batch should not be drawn: %+v", st)
	}
}

func TestSceneCountsMisuse(t *testing.T) {
	s := New()
	b := world.NewInstanceBatch(world.MaterialGround, nil)
	s.Detach(b.Drawable())
	s.Attach(b.Drawable())
	s.Attach(b.Drawable())
	if s.Misuses() != 2 {
		t.Errorf("Expected 2 misuses, got %d", s.Misuses())
	}
}
