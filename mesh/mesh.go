package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FloatsPerPosition = 3
	FloatsPerNormal   = 3
	FloatsPerUV       = 2

	// Stride is the number of floats in one interleaved vertex
	Stride = FloatsPerPosition + FloatsPerNormal + FloatsPerUV

	// VerticesPerFace is two triangles without shared vertices
	VerticesPerFace = 6
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type Face [VerticesPerFace]Vertex

// Corner is a face corner before the normal is attached
type Corner struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Quad splits the corners a, b, c, d (in winding order) into the triangles
// a-b-c and c-d-a, all sharing one normal.
func Quad(normal mgl32.Vec3, a, b, c, d Corner) Face {
	var face Face
	for i, corner := range []Corner{a, b, c, c, d, a} {
		face[i] = Vertex{Position: corner.Position, Normal: normal, UV: corner.UV}
	}
	return face
}

// Range is the slice of the vertex stream a single draw call covers
type Range struct {
	Offset int32
	Count  int32
}

// End is the first vertex after this range
func (r Range) End() int32 {
	return r.Offset + r.Count
}

type Shape struct {
	Name  string
	Range Range
}

// Builder accumulates shapes into a single interleaved vertex buffer. Every
// shape gets its draw range back when it is added, so the renderer never has
// to know the emission order.
type Builder struct {
	buffer []float32
	shapes []Shape
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddShape(name string, faces ...Face) Range {
	r := Range{
		Offset: int32(len(b.buffer) / Stride),
		Count:  int32(len(faces) * VerticesPerFace),
	}
	for _, face := range faces {
		for _, vertex := range face {
			b.buffer = append(b.buffer,
				vertex.Position.X(), vertex.Position.Y(), vertex.Position.Z(),
				vertex.Normal.X(), vertex.Normal.Y(), vertex.Normal.Z(),
				vertex.UV.X(), vertex.UV.Y(),
			)
		}
	}
	b.shapes = append(b.shapes, Shape{Name: name, Range: r})
	return r
}

// Build freezes the accumulated data. The builder must not be used afterwards.
func (b *Builder) Build() *Mesh {
	m := &Mesh{buffer: b.buffer, shapes: b.shapes}
	b.buffer, b.shapes = nil, nil
	return m
}

// Mesh is an immutable interleaved vertex stream with named draw ranges
type Mesh struct {
	buffer []float32
	shapes []Shape
}

// Floats returns the interleaved position, normal, uv data
func (m *Mesh) Floats() []float32 {
	return m.buffer
}

func (m *Mesh) VertexCount() int32 {
	return int32(len(m.buffer) / Stride)
}

// Shapes returns the shapes in emission order
func (m *Mesh) Shapes() []Shape {
	return m.shapes
}

func (m *Mesh) Range(name string) (Range, bool) {
	for _, s := range m.shapes {
		if s.Name == name {
			return s.Range, true
		}
	}
	return Range{}, false
}

// Vertex decodes the i-th vertex of the stream
func (m *Mesh) Vertex(i int32) Vertex {
	v := m.buffer[int(i)*Stride : int(i+1)*Stride]
	return Vertex{
		Position: mgl32.Vec3{v[0], v[1], v[2]},
		Normal:   mgl32.Vec3{v[3], v[4], v[5]},
		UV:       mgl32.Vec2{v[6], v[7]},
	}
}
