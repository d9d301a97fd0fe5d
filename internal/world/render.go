package world

import "github.com/go-gl/mathgl/mgl32"

// Drawable is a batched draw call: one material, Count() instance transforms.
type Drawable interface {
	Material() Material
	Count() int
	Capacity() int
	Transforms() []mgl32.Mat4
}

// RenderGraph is the rendering subsystem's side of the boundary. The world only
// attaches and detaches drawables; it never reads render state back.
type RenderGraph interface {
	Attach(d Drawable)
	Detach(d Drawable)
}

type nopGraph struct{}

func (nopGraph) Attach(Drawable) {}
func (nopGraph) Detach(Drawable) {}

// InstanceBuffer is the backing store of an InstanceBatch. A batch replaces its
// buffer when it grows, so the buffer is what gets attached to the render graph.
type InstanceBuffer struct {
	material   Material
	transforms []mgl32.Mat4
	count      int
}

func (b *InstanceBuffer) Material() Material { return b.material }
func (b *InstanceBuffer) Count() int         { return b.count }
func (b *InstanceBuffer) Capacity() int      { return len(b.transforms) }

// Transforms returns the active transforms, indices [0, Count()).
func (b *InstanceBuffer) Transforms() []mgl32.Mat4 {
	return b.transforms[:b.count]
}
