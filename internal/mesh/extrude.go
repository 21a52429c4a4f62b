// Package mesh converts generated rib profiles into extruded 3D solids and
// triangle meshes for preview and shop-floor export.
package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/mariosromano/ribmaker/internal/model"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 120

// Outline returns the closed 2D outline of one rib as seen flat: the wall
// line at depth 0, the bottom edge out to the first profile point, the dense
// profile, and the top edge back to the wall line. The polygon is implicitly
// closed from the last point back to the first.
func Outline(rp model.RibProfile) []v2.Vec {
	pts := make([]v2.Vec, 0, len(rp.Profile)+2)
	pts = append(pts, v2.Vec{X: 0, Y: 0})
	for _, p := range rp.Profile {
		pts = append(pts, v2.Vec{X: p.Depth, Y: p.Position})
	}
	pts = append(pts, v2.Vec{X: 0, Y: rp.Height})
	return pts
}

// Solid extrudes a rib profile into a 3D solid of the rib's thickness.
// Profiles with fewer than two points cannot form an outline and are
// rejected.
func Solid(rp model.RibProfile) (sdf.SDF3, error) {
	if len(rp.Profile) < 2 {
		return nil, fmt.Errorf("rib %d: profile has %d points, need at least 2", rp.Index, len(rp.Profile))
	}
	if rp.Thickness <= 0 {
		return nil, fmt.Errorf("rib %d: thickness must be positive, got %v", rp.Index, rp.Thickness)
	}

	poly, err := sdf.Polygon2D(Outline(rp))
	if err != nil {
		return nil, fmt.Errorf("rib %d: building outline polygon: %w", rp.Index, err)
	}
	return sdf.Extrude3D(poly, rp.Thickness), nil
}

// Mesh is a triangle mesh suitable for rendering. All arrays are flat:
// vertices has 3 floats per vertex (x,y,z), normals has 3 floats per vertex,
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	RibIndex int       `json:"rib_index"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func ToMesh(s sdf.SDF3, ribIndex int) *Mesh {
	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	m := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
		RibIndex: ribIndex,
	}

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}
