package scene

import (
	"testing"

	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDrawsDefaultScene(t *testing.T) {
	plan, err := PlanDraws(mesh.TabletopScene(), config.MustDefault())
	require.NoError(t, err)

	assert.Equal(t, []Draw{
		{Shape: mesh.ShapeTabletop, Range: mesh.Range{Offset: 0, Count: 6}, Unit: 0},
		{Shape: mesh.ShapeBook, Range: mesh.Range{Offset: 6, Count: 36}, Unit: 1},
		{Shape: mesh.ShapeCube, Range: mesh.Range{Offset: 42, Count: 36}, Unit: 2},
	}, plan.Draws)
	assert.Equal(t, int32(3), plan.DustUnit)
}

func TestPlanDrawsFollowsConfiguredUnits(t *testing.T) {
	cfg := config.MustDefault()
	// swap the book and dust slots
	for i := range cfg.Textures {
		switch cfg.Textures[i].Name {
		case "book":
			cfg.Textures[i].Unit = 3
		case DustTexture:
			cfg.Textures[i].Unit = 1
		}
	}
	require.NoError(t, cfg.Validate())

	plan, err := PlanDraws(mesh.TabletopScene(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(3), plan.Draws[1].Unit)
	assert.Equal(t, int32(1), plan.DustUnit)
}

func TestPlanDrawsFollowsMeshOrder(t *testing.T) {
	m := mesh.TabletopScene()

	reordered := mesh.NewBuilder()
	cube := reordered.AddShape(mesh.ShapeCube, facesOf(m, mesh.ShapeCube)...)
	book := reordered.AddShape(mesh.ShapeBook, facesOf(m, mesh.ShapeBook)...)
	table := reordered.AddShape(mesh.ShapeTabletop, facesOf(m, mesh.ShapeTabletop)...)

	plan, err := PlanDraws(reordered.Build(), config.MustDefault())
	require.NoError(t, err)
	assert.Equal(t, table, plan.Draws[0].Range)
	assert.Equal(t, book, plan.Draws[1].Range)
	assert.Equal(t, cube, plan.Draws[2].Range)
}

func TestPlanDrawsMissingShape(t *testing.T) {
	b := mesh.NewBuilder()
	b.AddShape(mesh.ShapeTabletop, facesOf(mesh.TabletopScene(), mesh.ShapeTabletop)...)

	_, err := PlanDraws(b.Build(), config.MustDefault())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no shape "book"`)
}

func TestPlanDrawsEmptyShape(t *testing.T) {
	b := mesh.NewBuilder()
	b.AddShape(mesh.ShapeTabletop)
	b.AddShape(mesh.ShapeBook)
	b.AddShape(mesh.ShapeCube)

	_, err := PlanDraws(b.Build(), config.MustDefault())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside mesh")
}

func TestPlanDrawsMissingTexture(t *testing.T) {
	cfg := config.MustDefault()
	cfg.Textures[2].Name = "dice"

	_, err := PlanDraws(mesh.TabletopScene(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no texture "cube"`)
}

// facesOf cuts a shape back into faces so it can be re-added to a builder
func facesOf(m *mesh.Mesh, name string) []mesh.Face {
	r, _ := m.Range(name)
	var faces []mesh.Face
	for i := r.Offset; i < r.End(); i += mesh.VerticesPerFace {
		var f mesh.Face
		for j := range f {
			f[j] = m.Vertex(i + int32(j))
		}
		faces = append(faces, f)
	}
	return faces
}
