package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShapeTabletop = "tabletop"
	ShapeBook     = "book"
	ShapeCube     = "cube"
)

var (
	normalFront  = mgl32.Vec3{0, 0, 1}
	normalBack   = mgl32.Vec3{0, 0, -1}
	normalLeft   = mgl32.Vec3{-1, 0, 0}
	normalRight  = mgl32.Vec3{1, 0, 0}
	normalTop    = mgl32.Vec3{0, 1, 0}
	normalBottom = mgl32.Vec3{0, -1, 0}
)

func corner(x, y, z, u, v float32) Corner {
	return Corner{Position: mgl32.Vec3{x, y, z}, UV: mgl32.Vec2{u, v}}
}

// TabletopScene builds the marble tabletop, the book lying on it and the
// cube sitting on the book.
func TabletopScene() *Mesh {
	b := NewBuilder()
	b.AddShape(ShapeTabletop, tabletopFaces()...)
	b.AddShape(ShapeBook, bookFaces()...)
	b.AddShape(ShapeCube, cubeFaces()...)
	return b.Build()
}

func tabletopFaces() []Face {
	return []Face{
		Quad(normalFront,
			corner(-1, -1, 0, 0, 0),
			corner(-1, 1, 0, 0, 1),
			corner(1, 1, 0, 1, 1),
			corner(1, -1, 0, 1, 0)),
	}
}

// The book cover texture holds the front in its upper half and the back in
// its lower half, with the spine on the left.
func bookFaces() []Face {
	return []Face{
		Quad(normalFront,
			corner(-1, -1, 0.1, 0.15, 0.5),
			corner(-1, 0, 0.1, 0.15, 0.94),
			corner(-0.5, 0, 0.1, 0.83, 0.94),
			corner(-0.5, -1, 0.1, 0.83, 0.5)),
		Quad(normalBack,
			corner(-1, -1, 0.001, 0.15, 0),
			corner(-1, 0, 0.001, 0.15, 0.44),
			corner(-0.5, 0, 0.001, 0.83, 0.44),
			corner(-0.5, -1, 0.001, 0.83, 0)),
		Quad(normalLeft,
			corner(-1, -1, 0.1, 0.15, 0.5),
			corner(-1, 0, 0.1, 0.15, 0.94),
			corner(-1, 0, 0.001, 0, 0.94),
			corner(-1, -1, 0.001, 0, 0.5)),
		Quad(normalRight,
			corner(-0.5, -1, 0.1, 1, 0.5),
			corner(-0.5, 0, 0.1, 1, 0.94),
			corner(-0.5, 0, 0.001, 0.83, 0.94),
			corner(-0.5, -1, 0.001, 0.83, 0.5)),
		Quad(normalTop,
			corner(-1, 0, 0.1, 0.15, 0.94),
			corner(-1, 0, 0.001, 0.15, 1),
			corner(-0.5, 0, 0.001, 0.83, 1),
			corner(-0.5, 0, 0.1, 0.83, 0.94)),
		Quad(normalBottom,
			corner(-1, -1, 0.1, 0.15, 0.5),
			corner(-1, -1, 0.001, 0.15, 0.44),
			corner(-0.5, -1, 0.001, 0.83, 0.44),
			corner(-0.5, -1, 0.1, 0.83, 0.5)),
	}
}

func cubeFaces() []Face {
	return []Face{
		Quad(normalFront,
			corner(-0.75, -0.25, 0.351, 0.34, 0.5),
			corner(-0.75, 0, 0.351, 0.34, 0.75),
			corner(-0.5, 0, 0.351, 0.66, 0.75),
			corner(-0.5, -0.25, 0.351, 0.66, 0.5)),
		Quad(normalBack,
			corner(-0.75, -0.25, 0.101, 0.34, 0),
			corner(-0.75, 0, 0.101, 0.34, 0.25),
			corner(-0.5, 0, 0.101, 0.665, 0.25),
			corner(-0.5, -0.25, 0.101, 0.665, 0)),
		Quad(normalLeft,
			corner(-0.75, -0.25, 0.351, 0.33, 0.5),
			corner(-0.75, 0, 0.351, 0.33, 0.75),
			corner(-0.75, 0, 0.101, 0, 0.75),
			corner(-0.75, -0.25, 0.101, 0, 0.5)),
		Quad(normalRight,
			corner(-0.5, -0.25, 0.351, 0.66, 0.5),
			corner(-0.5, 0, 0.351, 0.66, 0.75),
			corner(-0.5, 0, 0.101, 1, 0.75),
			corner(-0.5, -0.25, 0.101, 1, 0.5)),
		Quad(normalTop,
			corner(-0.75, 0, 0.351, 0.34, 0.75),
			corner(-0.75, 0, 0.101, 0.34, 1),
			corner(-0.5, 0, 0.101, 0.665, 1),
			corner(-0.5, 0, 0.351, 0.665, 0.75)),
		Quad(normalBottom,
			corner(-0.75, -0.25, 0.351, 0.34, 0.5),
			corner(-0.75, -0.25, 0.101, 0.34, 0.25),
			corner(-0.5, -0.25, 0.101, 0.665, 0.25),
			corner(-0.5, -0.25, 0.351, 0.665, 0.5)),
	}
}
