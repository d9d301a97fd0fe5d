package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"voxelworld/internal/world"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MapOptions controls TopDown rendering.
type MapOptions struct {
	Scale   int    // pixels per cell, at least 1
	Caption string // drawn top-left when the image is tall enough
}

var (
	mapBackground = color.RGBA{20, 24, 32, 255}
	mapCaption    = color.RGBA{240, 240, 240, 255}
)

type column struct {
	top int
	m   world.Material
}

// TopDown rasterizes every attached instance into a map seen from above: one
// pixel per cell column, colored by the material of the highest instance and
// shaded by its height.
func (s *Scene) TopDown(opts MapOptions) *image.RGBA {
	columns, bounds := s.columns()
	small := image.NewRGBA(bounds)
	xdraw.Draw(small, bounds, image.NewUniform(mapBackground), image.Point{}, xdraw.Src)

	minY, maxY := math.MaxInt, math.MinInt
	for _, c := range columns {
		minY = min(minY, c.top)
		maxY = max(maxY, c.top)
	}
	for p, c := range columns {
		small.SetRGBA(p.X, p.Y, shade(c, minY, maxY))
	}

	scale := max(opts.Scale, 1)
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), small, bounds, xdraw.Src, nil)

	if opts.Caption != "" && out.Bounds().Dy() >= basicfont.Face7x13.Height {
		d := font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(mapCaption),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(2, basicfont.Face7x13.Ascent+1),
		}
		d.DrawString(opts.Caption)
	}
	return out
}

// columns collects the highest instance per (x, z) and the covering rectangle
// in cell units. An empty scene maps to a single background pixel.
func (s *Scene) columns() (map[image.Point]column, image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := make(map[image.Point]column)
	r := image.Rectangle{}
	first := true
	for d := range s.drawables {
		for _, tr := range d.Transforms() {
			cell := world.CellAt(tr.Col(3).Vec3())
			p := image.Pt(cell.X, cell.Z)
			if c, ok := cols[p]; ok && c.top >= cell.Y {
				continue
			}
			cols[p] = column{top: cell.Y, m: d.Material()}
			cell1 := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
			if first {
				r, first = cell1, false
			} else {
				r = r.Union(cell1)
			}
		}
	}
	if first {
		r = image.Rect(0, 0, 1, 1)
	}
	return cols, r
}

func shade(c column, minY, maxY int) color.RGBA {
	base := color.RGBA{86, 160, 64, 255}
	if c.m == world.MaterialPlaced {
		base = color.RGBA{214, 142, 58, 255}
	}
	// 0.6 at the lowest column up to 1.0 at the highest
	f := 1.0
	if maxY > minY {
		f = 0.6 + 0.4*float64(c.top-minY)/float64(maxY-minY)
	}
	return color.RGBA{
		R: uint8(float64(base.R) * f),
		G: uint8(float64(base.G) * f),
		B: uint8(float64(base.B) * f),
		A: 255,
	}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode map: %w", err)
	}
	return f.Close()
}
