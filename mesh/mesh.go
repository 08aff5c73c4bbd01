package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bicubic/surface"
)

var (
	// ErrNilSurface is returned by Build when the surface is nil.
	ErrNilSurface = errors.New("mesh: nil surface")
	// ErrBadResolution is returned when Options.Resolution is zero,
	// negative, NaN or infinite.
	ErrBadResolution = errors.New("mesh: resolution must be a positive finite number")
)

// Vertex is a point on the tessellated surface.
type Vertex struct {
	X, Y, Z float64
}

// Mesh is an indexed triangle mesh. Faces index into Vertices and wind
// counterclockwise when viewed from +Z.
type Mesh struct {
	Vertices []Vertex
	Faces    [][3]int
}

// Options configures tessellation.
type Options struct {
	// Resolution is the subdivision factor per grid cell: each cell
	// contributes ceil(Resolution) sample intervals per axis. 1 samples
	// only the grid nodes.
	Resolution float64
}

// DefaultOptions returns the node-only tessellation.
func DefaultOptions() Options {
	return Options{Resolution: 1}
}

// Build tessellates s. Vertices are laid out on a single shared lattice
// spanning the whole domain, so neighboring triangles reference identical
// vertex indices and the mesh is watertight.
func Build(s *surface.Surface, opts Options) (*Mesh, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if opts.Resolution <= 0 || math.IsNaN(opts.Resolution) || math.IsInf(opts.Resolution, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrBadResolution, opts.Resolution)
	}

	g := s.Grid()
	xs := g.XAxis()
	ys := g.YAxis()
	sub := int(math.Ceil(opts.Resolution))

	// Lattice coordinates along one axis: sub intervals per cell, shared
	// knots counted once.
	line := func(axis []float64) []float64 {
		out := make([]float64, 0, (len(axis)-1)*sub+1)
		for i := 0; i < len(axis)-1; i++ {
			w := axis[i+1] - axis[i]
			for m := 0; m < sub; m++ {
				out = append(out, axis[i]+w*float64(m)/float64(sub))
			}
		}

		return append(out, axis[len(axis)-1])
	}
	lx := line(xs)
	ly := line(ys)
	nxv, nyv := len(lx), len(ly)

	m := &Mesh{
		Vertices: make([]Vertex, 0, nxv*nyv),
		Faces:    make([][3]int, 0, 2*(nxv-1)*(nyv-1)),
	}

	// Row-major in x keeps successive evaluations inside one cell or an
	// adjacent one, which is the access pattern the hint caches for.
	var h surface.PatchHint
	for ix := 0; ix < nxv; ix++ {
		for iy := 0; iy < nyv; iy++ {
			z, err := s.Value(surface.Point{X: lx[ix], Y: ly[iy]}, &h)
			if err != nil {
				return nil, err
			}
			m.Vertices = append(m.Vertices, Vertex{X: lx[ix], Y: ly[iy], Z: z})
		}
	}

	id := func(ix, iy int) int { return ix*nyv + iy }
	for ix := 0; ix < nxv-1; ix++ {
		for iy := 0; iy < nyv-1; iy++ {
			v00 := id(ix, iy)
			v10 := id(ix+1, iy)
			v11 := id(ix+1, iy+1)
			v01 := id(ix, iy+1)
			m.Faces = append(m.Faces, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
		}
	}

	return m, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the triangle count.
func (m *Mesh) NumFaces() int { return len(m.Faces) }
