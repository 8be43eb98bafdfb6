package meshes

import "shape-engine/internal/render"

// Draw ranges of the tapered cylinder table: 36-vertex bottom fan, 36-vertex
// top fan, 146-vertex side strip. These are contractual constants of the
// table below, not derived values.
const (
	taperedBottomFirst = 0
	taperedBottomCount = 36
	taperedTopFirst    = 36
	taperedTopCount    = 36
	taperedSideFirst   = 72
	taperedSideCount   = 146
)

// taperedCylinderVertices is a hand-authored table: a 36-gon bottom ring of
// radius 1 at y=0, a 36-gon top ring of radius 0.5 at y=1, and a side strip
// whose normals are averaged per segment.
var taperedCylinderVertices = []float32{
	// bottom ring
	1.0, 0.0, 0.0, 0.0, -1.0, 0.0, 0.5, 1.0,
	0.98, 0.0, -0.17, 0.0, -1.0, 0.0, 0.41, 0.983,
	0.94, 0.0, -0.34, 0.0, -1.0, 0.0, 0.33, 0.96,
	0.87, 0.0, -0.5, 0.0, -1.0, 0.0, 0.25, 0.92,
	0.77, 0.0, -0.64, 0.0, -1.0, 0.0, 0.17, 0.87,
	0.64, 0.0, -0.77, 0.0, -1.0, 0.0, 0.13, 0.83,
	0.5, 0.0, -0.87, 0.0, -1.0, 0.0, 0.08, 0.77,
	0.34, 0.0, -0.94, 0.0, -1.0, 0.0, 0.04, 0.68,
	0.17, 0.0, -0.98, 0.0, -1.0, 0.0, 0.017, 0.6,
	0.0, 0.0, -1.0, 0.0, -1.0, 0.0, 0.0, 0.5,
	-0.17, 0.0, -0.98, 0.0, -1.0, 0.0, 0.017, 0.41,
	-0.34, 0.0, -0.94, 0.0, -1.0, 0.0, 0.04, 0.33,
	-0.5, 0.0, -0.87, 0.0, -1.0, 0.0, 0.08, 0.25,
	-0.64, 0.0, -0.77, 0.0, -1.0, 0.0, 0.13, 0.17,
	-0.77, 0.0, -0.64, 0.0, -1.0, 0.0, 0.17, 0.13,
	-0.87, 0.0, -0.5, 0.0, -1.0, 0.0, 0.25, 0.08,
	-0.94, 0.0, -0.34, 0.0, -1.0, 0.0, 0.33, 0.04,
	-0.98, 0.0, -0.17, 0.0, -1.0, 0.0, 0.41, 0.017,
	-1.0, 0.0, 0.0, 0.0, -1.0, 0.0, 0.5, 0.0,
	-0.98, 0.0, 0.17, 0.0, -1.0, 0.0, 0.6, 0.017,
	-0.94, 0.0, 0.34, 0.0, -1.0, 0.0, 0.68, 0.04,
	-0.87, 0.0, 0.5, 0.0, -1.0, 0.0, 0.77, 0.08,
	-0.77, 0.0, 0.64, 0.0, -1.0, 0.0, 0.83, 0.13,
	-0.64, 0.0, 0.77, 0.0, -1.0, 0.0, 0.87, 0.17,
	-0.5, 0.0, 0.87, 0.0, -1.0, 0.0, 0.92, 0.25,
	-0.34, 0.0, 0.94, 0.0, -1.0, 0.0, 0.96, 0.33,
	-0.17, 0.0, 0.98, 0.0, -1.0, 0.0, 0.983, 0.41,
	0.0, 0.0, 1.0, 0.0, -1.0, 0.0, 1.0, 0.5,
	0.17, 0.0, 0.98, 0.0, -1.0, 0.0, 0.983, 0.6,
	0.34, 0.0, 0.94, 0.0, -1.0, 0.0, 0.96, 0.68,
	0.5, 0.0, 0.87, 0.0, -1.0, 0.0, 0.92, 0.77,
	0.64, 0.0, 0.77, 0.0, -1.0, 0.0, 0.87, 0.83,
	0.77, 0.0, 0.64, 0.0, -1.0, 0.0, 0.83, 0.87,
	0.87, 0.0, 0.5, 0.0, -1.0, 0.0, 0.77, 0.92,
	0.94, 0.0, 0.34, 0.0, -1.0, 0.0, 0.68, 0.96,
	0.98, 0.0, 0.17, 0.0, -1.0, 0.0, 0.6, 0.983,

	// top ring
	0.5, 1.0, 0.0, 0.0, 1.0, 0.0, 0.5, 1.0,
	0.49, 1.0, -0.085, 0.0, 1.0, 0.0, 0.41, 0.983,
	0.47, 1.0, -0.17, 0.0, 1.0, 0.0, 0.33, 0.96,
	0.435, 1.0, -0.25, 0.0, 1.0, 0.0, 0.25, 0.92,
	0.385, 1.0, -0.32, 0.0, 1.0, 0.0, 0.17, 0.87,
	0.32, 1.0, -0.385, 0.0, 1.0, 0.0, 0.13, 0.83,
	0.25, 1.0, -0.435, 0.0, 1.0, 0.0, 0.08, 0.77,
	0.17, 1.0, -0.47, 0.0, 1.0, 0.0, 0.04, 0.68,
	0.085, 1.0, -0.49, 0.0, 1.0, 0.0, 0.017, 0.6,
	0.0, 1.0, -0.5, 0.0, 1.0, 0.0, 0.0, 0.5,
	-0.085, 1.0, -0.49, 0.0, 1.0, 0.0, 0.017, 0.41,
	-0.17, 1.0, -0.47, 0.0, 1.0, 0.0, 0.04, 0.33,
	-0.25, 1.0, -0.435, 0.0, 1.0, 0.0, 0.08, 0.25,
	-0.32, 1.0, -0.385, 0.0, 1.0, 0.0, 0.13, 0.17,
	-0.385, 1.0, -0.32, 0.0, 1.0, 0.0, 0.17, 0.13,
	-0.435, 1.0, -0.25, 0.0, 1.0, 0.0, 0.25, 0.08,
	-0.47, 1.0, -0.17, 0.0, 1.0, 0.0, 0.33, 0.04,
	-0.49, 1.0, -0.085, 0.0, 1.0, 0.0, 0.41, 0.017,
	-0.5, 1.0, 0.0, 0.0, 1.0, 0.0, 0.5, 0.0,
	-0.49, 1.0, 0.085, 0.0, 1.0, 0.0, 0.6, 0.017,
	-0.47, 1.0, 0.17, 0.0, 1.0, 0.0, 0.68, 0.04,
	-0.435, 1.0, 0.25, 0.0, 1.0, 0.0, 0.77, 0.08,
	-0.385, 1.0, 0.32, 0.0, 1.0, 0.0, 0.83, 0.13,
	-0.32, 1.0, 0.385, 0.0, 1.0, 0.0, 0.87, 0.17,
	-0.25, 1.0, 0.435, 0.0, 1.0, 0.0, 0.92, 0.25,
	-0.17, 1.0, 0.47, 0.0, 1.0, 0.0, 0.96, 0.33,
	-0.085, 1.0, 0.49, 0.0, 1.0, 0.0, 0.983, 0.41,
	0.0, 1.0, 0.5, 0.0, 1.0, 0.0, 1.0, 0.5,
	0.085, 1.0, 0.49, 0.0, 1.0, 0.0, 0.983, 0.6,
	0.17, 1.0, 0.47, 0.0, 1.0, 0.0, 0.96, 0.68,
	0.25, 1.0, 0.435, 0.0, 1.0, 0.0, 0.92, 0.77,
	0.32, 1.0, 0.385, 0.0, 1.0, 0.0, 0.87, 0.83,
	0.385, 1.0, 0.32, 0.0, 1.0, 0.0, 0.83, 0.87,
	0.435, 1.0, 0.25, 0.0, 1.0, 0.0, 0.77, 0.92,
	0.47, 1.0, 0.17, 0.0, 1.0, 0.0, 0.68, 0.96,
	0.49, 1.0, 0.085, 0.0, 1.0, 0.0, 0.6, 0.983,

	// side strip
	0.5, 1.0, 0.0, 0.993150651, 0.5, -0.116841137, 0.25, 1.0,
	1.0, 0.0, 0.0, 0.993150651, 0.5, -0.116841137, 0.0, 0.0,
	0.98, 0.0, -0.17, 0.993150651, 0.5, -0.116841137, 0.0277, 0.0,
	0.5, 1.0, 0.0, 0.993150651, 0.5, -0.116841137, 0.25, 1.0,
	0.49, 1.0, -0.085, 0.993150651, 0.5, -0.116841137, 0.2635, 1.0,
	0.98, 0.0, -0.17, 0.993150651, 0.5, -0.116841137, 0.0277, 0.0,
	0.94, 0.0, -0.34, 0.993417103, 0.5, -0.229039446, 0.0554, 0.0,
	0.49, 1.0, -0.085, 0.993417103, 0.5, -0.229039446, 0.2635, 1.0,
	0.47, 1.0, -0.17, 0.993417103, 0.5, -0.229039446, 0.277, 1.0,
	0.94, 0.0, -0.34, 0.993417103, 0.5, -0.229039446, 0.0554, 0.0,
	0.87, 0.0, -0.5, 0.993417103, 0.5, -0.229039446, 0.0831, 0.0,
	0.47, 1.0, -0.17, 0.993417103, 0.5, -0.229039446, 0.277, 1.0,
	0.435, 1.0, -0.25, 0.813733339, 0.5, -0.581238329, 0.2905, 1.0,
	0.87, 0.0, -0.5, 0.813733339, 0.5, -0.581238329, 0.0831, 0.0,
	0.77, 0.0, -0.64, 0.813733339, 0.5, -0.581238329, 0.1108, 0.0,
	0.435, 1.0, -0.25, 0.813733339, 0.5, -0.581238329, 0.2905, 1.0,
	0.385, 1.0, -0.32, 0.813733339, 0.5, -0.581238329, 0.304, 1.0,
	0.77, 0.0, -0.64, 0.813733339, 0.5, -0.581238329, 0.1108, 0.0,
	0.64, 0.0, -0.77, 0.707106769, 0.5, -0.707106769, 0.1385, 0.0,
	0.385, 1.0, -0.32, 0.707106769, 0.5, -0.707106769, 0.304, 1.0,
	0.32, 1.0, -0.385, 0.707106769, 0.5, -0.707106769, 0.3175, 1.0,
	0.64, 0.0, -0.77, 0.707106769, 0.5, -0.707106769, 0.1385, 0.0,
	0.5, 0.0, -0.87, 0.707106769, 0.5, -0.707106769, 0.1662, 0.0,
	0.32, 1.0, -0.385, 0.707106769, 0.5, -0.707106769, 0.3175, 1.0,
	0.25, 1.0, -0.435, 0.400818795, 0.5, -0.916157305, 0.331, 1.0,
	0.5, 0.0, -0.87, 0.400818795, 0.5, -0.916157305, 0.1662, 0.0,
	0.34, 0.0, -0.94, 0.400818795, 0.5, -0.916157305, 0.1939, 0.0,
	0.25, 1.0, -0.435, 0.400818795, 0.5, -0.916157305, 0.331, 1.0,
	0.17, 1.0, -0.47, 0.400818795, 0.5, -0.916157305, 0.3445, 1.0,
	0.34, 0.0, -0.94, 0.400818795, 0.5, -0.916157305, 0.1939, 0.0,
	0.17, 0.0, -0.98, 0.229039446, 0.5, -0.973417103, 0.2216, 0.0,
	0.17, 1.0, -0.47, 0.229039446, 0.5, -0.973417103, 0.3445, 1.0,
	0.085, 1.0, -0.49, 0.229039446, 0.5, -0.973417103, 0.358, 1.0,
	0.17, 0.0, -0.98, 0.229039446, 0.5, -0.973417103, 0.2216, 0.0,
	0.0, 0.0, -1.0, 0.229039446, 0.5, -0.973417103, 0.2493, 0.0,
	0.085, 1.0, -0.49, 0.229039446, 0.5, -0.973417103, 0.358, 1.0,
	0.0, 1.0, -0.5, -0.116841137, 0.5, -0.993150651, 0.3715, 1.0,
	0.0, 0.0, -1.0, -0.116841137, 0.5, -0.993150651, 0.2493, 0.0,
	-0.17, 0.0, -0.98, -0.116841137, 0.5, -0.993150651, 0.277, 0.0,
	0.0, 1.0, -0.5, -0.116841137, 0.5, -0.993150651, 0.3715, 1.0,
	-0.085, 1.0, -0.49, -0.116841137, 0.5, -0.993150651, 0.385, 1.0,
	-0.17, 0.0, -0.98, -0.116841137, 0.5, -0.993150651, 0.277, 0.0,
	-0.34, 0.0, -0.94, -0.229039446, 0.5, -0.973417103, 0.3047, 0.0,
	-0.085, 1.0, -0.49, -0.229039446, 0.5, -0.973417103, 0.385, 1.0,
	-0.17, 1.0, -0.47, -0.229039446, 0.5, -0.973417103, 0.3985, 1.0,
	-0.34, 0.0, -0.94, -0.229039446, 0.5, -0.973417103, 0.3047, 0.0,
	-0.5, 0.0, -0.87, -0.229039446, 0.5, -0.973417103, 0.3324, 0.0,
	-0.17, 1.0, -0.47, -0.229039446, 0.5, -0.973417103, 0.3985, 1.0,
	-0.25, 1.0, -0.435, -0.581238329, 0.5, -0.581238329, 0.412, 1.0,
	-0.5, 0.0, -0.87, -0.581238329, 0.5, -0.581238329, 0.3324, 0.0,
	-0.64, 0.0, -0.77, -0.581238329, 0.5, -0.581238329, 0.3601, 0.0,
	-0.25, 1.0, -0.435, -0.581238329, 0.5, -0.581238329, 0.412, 1.0,
	-0.32, 1.0, -0.385, -0.581238329, 0.5, -0.581238329, 0.4255, 1.0,
	-0.64, 0.0, -0.77, -0.581238329, 0.5, -0.581238329, 0.3601, 0.0,
	-0.77, 0.0, -0.64, -0.707106769, 0.5, -0.707106769, 0.3878, 0.0,
	-0.32, 1.0, -0.385, -0.707106769, 0.5, -0.707106769, 0.4255, 1.0,
	-0.385, 1.0, -0.32, -0.707106769, 0.5, -0.707106769, 0.439, 1.0,
	-0.77, 0.0, -0.64, -0.707106769, 0.5, -0.707106769, 0.3878, 0.0,
	-0.87, 0.0, -0.5, -0.707106769, 0.5, -0.707106769, 0.4155, 0.0,
	-0.385, 1.0, -0.32, -0.707106769, 0.5, -0.707106769, 0.439, 1.0,
	-0.435, 1.0, -0.25, -0.916157305, 0.5, -0.400818795, 0.4525, 1.0,
	-0.87, 0.0, -0.5, -0.916157305, 0.5, -0.400818795, 0.4155, 0.0,
	-0.94, 0.0, -0.34, -0.916157305, 0.5, -0.400818795, 0.4432, 0.0,
	-0.435, 1.0, -0.25, -0.916157305, 0.5, -0.400818795, 0.4525, 1.0,
	-0.47, 1.0, -0.17, -0.916157305, 0.5, -0.400818795, 0.466, 1.0,
	-0.94, 0.0, -0.34, -0.916157305, 0.5, -0.400818795, 0.4432, 0.0,
	-0.98, 0.0, -0.17, -0.973417103, 0.5, -0.229039446, 0.4709, 0.0,
	-0.47, 1.0, -0.17, -0.973417103, 0.5, -0.229039446, 0.466, 1.0,
	-0.49, 1.0, -0.085, -0.973417103, 0.5, -0.229039446, 0.4795, 1.0,
	-0.98, 0.0, -0.17, -0.973417103, 0.5, -0.229039446, 0.4709, 0.0,
	-1.0, 0.0, 0.0, -0.973417103, 0.5, -0.229039446, 0.4986, 0.0,
	-0.49, 1.0, -0.085, -0.973417103, 0.5, -0.229039446, 0.4795, 1.0,
	-0.5, 1.0, 0.0, -0.993150651, 0.5, -0.116841137, 0.493, 1.0,
	-1.0, 0.0, 0.0, -0.993150651, 0.5, -0.116841137, 0.4986, 0.0,
	-0.98, 0.0, 0.17, -0.993150651, 0.5, 0.116841137, 0.5263, 0.0,
	-0.5, 1.0, 0.0, -0.993150651, 0.5, 0.116841137, 0.493, 1.0,
	-0.49, 1.0, 0.085, -0.993150651, 0.5, 0.116841137, 0.5065, 1.0,
	-0.98, 0.0, 0.17, -0.993150651, 0.5, 0.116841137, 0.5263, 0.0,
	-0.94, 0.0, 0.34, -0.973417103, 0.5, 0.229039446, 0.554, 0.0,
	-0.49, 1.0, 0.085, -0.973417103, 0.5, 0.229039446, 0.5065, 1.0,
	-0.47, 1.0, 0.17, -0.973417103, 0.5, 0.229039446, 0.52, 1.0,
	-0.94, 0.0, 0.34, -0.973417103, 0.5, 0.229039446, 0.554, 0.0,
	-0.87, 0.0, 0.5, -0.973417103, 0.5, 0.229039446, 0.5817, 0.0,
	-0.47, 1.0, 0.17, -0.973417103, 0.5, 0.229039446, 0.52, 1.0,
	-0.435, 1.0, 0.25, -0.813733339, 0.5, 0.581238329, 0.5335, 1.0,
	-0.87, 0.0, 0.5, -0.813733339, 0.5, 0.581238329, 0.5817, 0.0,
	-0.77, 0.0, 0.64, -0.813733339, 0.5, 0.581238329, 0.6094, 0.0,
	-0.435, 1.0, 0.25, -0.813733339, 0.5, 0.581238329, 0.5335, 1.0,
	-0.385, 1.0, 0.32, -0.813733339, 0.5, 0.581238329, 0.547, 1.0,
	-0.77, 0.0, 0.64, -0.813733339, 0.5, 0.581238329, 0.6094, 0.0,
	-0.64, 0.0, 0.77, -0.707106769, 0.5, 0.707106769, 0.6371, 0.0,
	-0.385, 1.0, 0.32, -0.707106769, 0.5, 0.707106769, 0.547, 1.0,
	-0.32, 1.0, 0.385, -0.707106769, 0.5, 0.707106769, 0.5605, 1.0,
	-0.64, 0.0, 0.77, -0.707106769, 0.5, 0.707106769, 0.6371, 0.0,
	-0.5, 0.0, 0.87, -0.707106769, 0.5, 0.707106769, 0.6648, 0.0,
	-0.32, 1.0, 0.385, -0.707106769, 0.5, 0.707106769, 0.5605, 1.0,
	-0.25, 1.0, 0.435, -0.400818795, 0.5, 0.916157305, 0.574, 1.0,
	-0.5, 0.0, 0.87, -0.400818795, 0.5, 0.916157305, 0.6648, 0.0,
	-0.34, 0.0, 0.94, -0.400818795, 0.5, 0.916157305, 0.6925, 0.0,
	-0.25, 1.0, 0.435, -0.400818795, 0.5, 0.916157305, 0.574, 1.0,
	-0.17, 1.0, 0.47, -0.400818795, 0.5, 0.916157305, 0.5875, 1.0,
	-0.34, 0.0, 0.94, -0.400818795, 0.5, 0.916157305, 0.6925, 0.0,
	-0.17, 0.0, 0.98, -0.229039446, 0.5, 0.973417103, 0.7202, 0.0,
	-0.17, 1.0, 0.47, -0.229039446, 0.5, 0.973417103, 0.5875, 1.0,
	-0.085, 1.0, 0.49, -0.229039446, 0.5, 0.973417103, 0.601, 1.0,
	-0.17, 0.0, 0.98, -0.229039446, 0.5, 0.973417103, 0.7202, 0.0,
	0.0, 0.0, 1.0, -0.229039446, 0.5, 0.973417103, 0.7479, 0.0,
	-0.085, 1.0, 0.49, -0.229039446, 0.5, 0.973417103, 0.601, 1.0,
	0.0, 1.0, 0.5, -0.116841137, 0.5, 0.993150651, 0.6145, 1.0,
	0.0, 0.0, 1.0, -0.116841137, 0.5, 0.993150651, 0.7479, 0.0,
	0.17, 0.0, 0.98, 0.116841137, 0.5, 0.993150651, 0.7756, 0.0,
	0.0, 1.0, 0.5, 0.116841137, 0.5, 0.993150651, 0.6145, 1.0,
	0.085, 1.0, 0.49, 0.116841137, 0.5, 0.993150651, 0.628, 1.0,
	0.17, 0.0, 0.98, 0.116841137, 0.5, 0.993150651, 0.7756, 0.0,
	0.34, 0.0, 0.94, 0.229039446, 0.5, 0.973417103, 0.8033, 0.0,
	0.085, 1.0, 0.49, 0.229039446, 0.5, 0.973417103, 0.628, 1.0,
	0.17, 1.0, 0.47, 0.229039446, 0.5, 0.973417103, 0.6415, 1.0,
	0.34, 0.0, 0.94, 0.229039446, 0.5, 0.973417103, 0.8033, 0.0,
	0.5, 0.0, 0.87, 0.229039446, 0.5, 0.973417103, 0.831, 0.0,
	0.17, 1.0, 0.47, 0.229039446, 0.5, 0.973417103, 0.6415, 1.0,
	0.25, 1.0, 0.435, 0.581238329, 0.5, 0.813733339, 0.655, 1.0,
	0.5, 0.0, 0.87, 0.581238329, 0.5, 0.813733339, 0.831, 0.0,
	0.64, 0.0, 0.77, 0.581238329, 0.5, 0.813733339, 0.8587, 0.0,
	0.25, 1.0, 0.435, 0.581238329, 0.5, 0.813733339, 0.655, 1.0,
	0.32, 1.0, 0.385, 0.581238329, 0.5, 0.813733339, 0.6685, 1.0,
	0.64, 0.0, 0.77, 0.581238329, 0.5, 0.813733339, 0.8587, 0.0,
	0.77, 0.0, 0.64, 0.707106769, 0.5, 0.707106769, 0.8864, 0.0,
	0.32, 1.0, 0.385, 0.707106769, 0.5, 0.707106769, 0.6685, 1.0,
	0.385, 1.0, 0.32, 0.707106769, 0.5, 0.707106769, 0.682, 1.0,
	0.77, 0.0, 0.64, 0.707106769, 0.5, 0.707106769, 0.8864, 0.0,
	0.87, 0.0, 0.5, 0.707106769, 0.5, 0.707106769, 0.9141, 0.0,
	0.385, 1.0, 0.32, 0.707106769, 0.5, 0.707106769, 0.682, 1.0,
	0.435, 1.0, 0.25, 0.916157305, 0.5, 0.400818795, 0.6955, 1.0,
	0.87, 0.0, 0.5, 0.916157305, 0.5, 0.400818795, 0.9141, 0.0,
	0.94, 0.0, 0.34, 0.916157305, 0.5, 0.400818795, 0.9418, 0.0,
	0.435, 1.0, 0.25, 0.916157305, 0.5, 0.400818795, 0.6955, 1.0,
	0.47, 1.0, 0.17, 0.916157305, 0.5, 0.400818795, 0.709, 1.0,
	0.94, 0.0, 0.34, 0.916157305, 0.5, 0.400818795, 0.9418, 1.0,
	0.98, 0.0, 0.17, 0.973417103, 0.5, 0.229039446, 0.9695, 0.0,
	0.47, 1.0, 0.17, 0.973417103, 0.5, 0.229039446, 0.709, 0.0,
	0.49, 1.0, 0.085, 0.973417103, 0.5, 0.229039446, 0.7225, 1.0,
	0.98, 0.0, 0.17, 0.973417103, 0.5, 0.229039446, 0.9695, 0.0,
	1.0, 0.0, 0.0, 0.973417103, 0.5, 0.229039446, 1.0, 0.0,
	0.49, 1.0, 0.085, 0.973417103, 0.5, 0.229039446, 0.7225, 1.0,
	0.5, 1.0, 0.0, 0.993150651, 0.5, 0.116841137, 0.75, 1.0,
	1.0, 0.0, 0.0, 0.993150651, 0.5, 0.116841137, 1.0, 0.0,
}

// LoadTaperedCylinderMesh uploads the hand-authored tapered cylinder.
func (s *Store) LoadTaperedCylinderMesh() error {
	return s.store(TaperedCylinder, taperedCylinderVertices, nil, 0)
}

// DrawTaperedCylinderMesh draws the selected parts of the tapered cylinder.
func (s *Store) DrawTaperedCylinderMesh(drawTop, drawBottom, drawSides bool) {
	m, ok := s.drawable(TaperedCylinder, false)
	if !ok {
		return
	}
	if drawBottom {
		s.dev.Draw(m.handle, render.TriangleFan, taperedBottomFirst, taperedBottomCount)
	}
	if drawTop {
		s.dev.Draw(m.handle, render.TriangleFan, taperedTopFirst, taperedTopCount)
	}
	if drawSides {
		s.dev.Draw(m.handle, render.TriangleStrip, taperedSideFirst, taperedSideCount)
	}
}

// DrawTaperedCylinderMeshLines draws the selected parts in line mode.
func (s *Store) DrawTaperedCylinderMeshLines(drawTop, drawBottom, drawSides bool) {
	m, ok := s.drawable(TaperedCylinder, false)
	if !ok {
		return
	}
	if drawBottom {
		s.dev.Draw(m.handle, render.Lines, taperedBottomFirst, taperedBottomCount)
	}
	if drawTop {
		s.dev.Draw(m.handle, render.Lines, taperedTopFirst, taperedTopCount)
	}
	if drawSides {
		s.dev.Draw(m.handle, render.LineStrip, taperedSideFirst, taperedSideCount)
	}
}
