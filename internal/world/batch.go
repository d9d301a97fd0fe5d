package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	minBatchCapacity = 8
	// MaxBatchCapacity bounds a single batch; growing past it aborts.
	MaxBatchCapacity = 1 << 22
)

// InstanceBatch is a dense array of cell transforms backing one draw call.
// Slots [0, Count()) are drawn. Removal swaps the last slot into the hole,
// so a slot index is only meaningful until the next removal; callers keep
// cells, not slots, across calls.
type InstanceBatch struct {
	material Material
	buf      *InstanceBuffer

	// slot -> cell and cell -> slot; the only source of truth for slot lookup
	cells []Cell
	slots map[Cell]int

	graph    RenderGraph
	attached bool
	logf     func(format string, args ...any)
}

// NewInstanceBatch creates an empty, detached batch for material m.
func NewInstanceBatch(m Material, graph RenderGraph) *InstanceBatch {
	if graph == nil {
		graph = nopGraph{}
	}
	return &InstanceBatch{
		material: m,
		buf:      &InstanceBuffer{material: m},
		slots:    make(map[Cell]int),
		graph:    graph,
	}
}

func (b *InstanceBatch) Material() Material { return b.material }
func (b *InstanceBatch) Count() int         { return b.buf.count }
func (b *InstanceBatch) Capacity() int      { return len(b.buf.transforms) }

// Drawable returns the buffer currently backing the batch.
func (b *InstanceBatch) Drawable() Drawable { return b.buf }

// Attached reports whether the batch is currently part of the render graph.
func (b *InstanceBatch) Attached() bool { return b.attached }

// Attach adds the current buffer to the render graph.
func (b *InstanceBatch) Attach() {
	if b.attached {
		return
	}
	b.graph.Attach(b.buf)
	b.attached = true
}

// Detach removes the current buffer from the render graph.
func (b *InstanceBatch) Detach() {
	if !b.attached {
		return
	}
	b.graph.Detach(b.buf)
	b.attached = false
}

// GrowTo ensures room for at least minCapacity instances. The new buffer holds
// max(minCapacity, max(8, 2*capacity)) slots and keeps every active transform
// at its index. An attached batch swaps the old drawable for the new one.
func (b *InstanceBatch) GrowTo(minCapacity int) {
	oldCap := len(b.buf.transforms)
	if minCapacity <= oldCap {
		return
	}
	if minCapacity > MaxBatchCapacity {
		panic(errors.Errorf("instance batch %s: cannot grow to %d instances (max %d)", b.material, minCapacity, MaxBatchCapacity))
	}

	newCap := min(max(minCapacity, max(minBatchCapacity, oldCap*2)), MaxBatchCapacity)
	next := &InstanceBuffer{
		material:   b.material,
		transforms: make([]mgl32.Mat4, newCap),
		count:      b.buf.count,
	}
	copy(next.transforms, b.buf.transforms[:b.buf.count])

	old := b.buf
	b.buf = next
	if b.attached {
		b.graph.Detach(old)
		b.graph.Attach(next)
	}
	if b.logf != nil && oldCap > 0 {
		b.logf("instance batch %s grew %d -> %d", b.material, oldCap, newCap)
	}
}

// Insert appends the cell's center transform and returns its slot.
func (b *InstanceBatch) Insert(c Cell) int {
	if _, dup := b.slots[c]; dup {
		panic(errors.Errorf("instance batch %s: cell %v already indexed", b.material, c))
	}
	b.GrowTo(b.buf.count + 1)

	slot := b.buf.count
	b.buf.transforms[slot] = mgl32.Translate3D(c.Center().Elem())
	b.buf.count++
	b.cells = append(b.cells, c)
	b.slots[c] = slot
	return slot
}

// RemoveAt swap-removes slot. When another cell was moved into the hole it is
// returned with moved=true; that cell now lives at slot.
func (b *InstanceBatch) RemoveAt(slot int) (movedCell Cell, moved bool) {
	b.checkSlot(slot)

	last := b.buf.count - 1
	removed := b.cells[slot]
	if slot != last {
		b.buf.transforms[slot] = b.buf.transforms[last]
		movedCell = b.cells[last]
		b.cells[slot] = movedCell
		b.slots[movedCell] = slot
		moved = true
	}
	b.buf.transforms[last] = mgl32.Mat4{}
	delete(b.slots, removed)
	b.cells = b.cells[:last]
	b.buf.count = last
	return movedCell, moved
}

// Remove swap-removes the instance holding cell c.
func (b *InstanceBatch) Remove(c Cell) bool {
	slot, ok := b.slots[c]
	if !ok {
		return false
	}
	b.RemoveAt(slot)
	return true
}

// Get returns the transform stored at slot.
func (b *InstanceBatch) Get(slot int) mgl32.Mat4 {
	b.checkSlot(slot)
	return b.buf.transforms[slot]
}

// Set overwrites the transform at slot. The slot keeps its cell.
func (b *InstanceBatch) Set(slot int, m mgl32.Mat4) {
	b.checkSlot(slot)
	b.buf.transforms[slot] = m
}

// SlotOf returns the slot currently holding c.
func (b *InstanceBatch) SlotOf(c Cell) (int, bool) {
	slot, ok := b.slots[c]
	return slot, ok
}

// CellAt returns the cell stored at slot.
func (b *InstanceBatch) CellAt(slot int) Cell {
	b.checkSlot(slot)
	return b.cells[slot]
}

func (b *InstanceBatch) checkSlot(slot int) {
	if slot < 0 || slot >= b.buf.count {
		panic(errors.Errorf("instance batch %s: slot %d out of range [0,%d)", b.material, slot, b.buf.count))
	}
}

// verify reports the first broken slot/cell correspondence, if any.
func (b *InstanceBatch) verify() error {
	if len(b.cells) != b.buf.count || len(b.slots) != b.buf.count {
		return errors.Errorf("count %d, cells %d, index %d", b.buf.count, len(b.cells), len(b.slots))
	}
	if b.buf.count > len(b.buf.transforms) {
		return errors.Errorf("count %d exceeds capacity %d", b.buf.count, len(b.buf.transforms))
	}
	for slot, c := range b.cells {
		if got, ok := b.slots[c]; !ok || got != slot {
			return errors.Errorf("cell %v at slot %d indexed as %d", c, slot, got)
		}
		if tr := b.buf.transforms[slot].Col(3).Vec3(); !tr.ApproxEqual(c.Center()) {
			return errors.Errorf("slot %d translation %v, want %v", slot, tr, c.Center())
		}
	}
	return nil
}
