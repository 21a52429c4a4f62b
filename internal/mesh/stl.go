package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// WriteSTL serializes a solid as ASCII STL.
func WriteSTL(w io.Writer, name string, s sdf.SDF3) error {
	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(s, renderer)

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for _, tri := range triangles {
		n := tri.Normal()
		fmt.Fprintf(bw, "facet normal %e %e %e\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "  outer loop\n")
		for j := 0; j < 3; j++ {
			v := tri[j]
			fmt.Fprintf(bw, "    vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "  endloop\n")
		fmt.Fprintf(bw, "endfacet\n")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveSTL writes a solid to an STL file at the given path.
func SaveSTL(path, name string, s sdf.SDF3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating STL file: %w", err)
	}
	defer f.Close()

	if err := WriteSTL(f, name, s); err != nil {
		return fmt.Errorf("writing STL: %w", err)
	}
	return nil
}
