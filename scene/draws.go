package scene

import (
	"fmt"

	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/mesh"
)

const DustTexture = "dust"

// Each shape is drawn with the texture of the same slot in the config
var shapeTextures = []struct {
	shape   string
	texture string
}{
	{mesh.ShapeTabletop, "marble"},
	{mesh.ShapeBook, "book"},
	{mesh.ShapeCube, "cube"},
}

// Draw is one draw call: a slice of the mesh sampled from one texture unit
type Draw struct {
	Shape string
	Range mesh.Range
	Unit  int32
}

// DrawPlan is the ordered list of draw calls for one frame
type DrawPlan struct {
	Draws    []Draw
	DustUnit int32
}

// PlanDraws resolves every shape to its vertex range and every texture name
// to the unit it is configured on.
func PlanDraws(m *mesh.Mesh, cfg *config.Config) (*DrawPlan, error) {
	plan := &DrawPlan{}
	for _, st := range shapeTextures {
		rng, found := m.Range(st.shape)
		if !found {
			return nil, fmt.Errorf("mesh has no shape %q", st.shape)
		}
		if rng.Count <= 0 || rng.End() > m.VertexCount() {
			return nil, fmt.Errorf("shape %q range [%d, %d) outside mesh of %d vertices",
				st.shape, rng.Offset, rng.End(), m.VertexCount())
		}
		tex, found := cfg.TextureByName(st.texture)
		if !found {
			return nil, fmt.Errorf("no texture %q configured for shape %q", st.texture, st.shape)
		}
		plan.Draws = append(plan.Draws, Draw{Shape: st.shape, Range: rng, Unit: int32(tex.Unit)})
	}

	dust, found := cfg.TextureByName(DustTexture)
	if !found {
		return nil, fmt.Errorf("no texture %q configured", DustTexture)
	}
	plan.DustUnit = int32(dust.Unit)
	return plan, nil
}
