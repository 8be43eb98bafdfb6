package meshes

// Kind identifies one primitive in the store. Each kind has exactly one slot;
// regenerating a kind replaces its previous mesh.
type Kind int

const (
	Box Kind = iota
	Cone
	Cylinder
	Plane
	Prism
	Pyramid3
	Pyramid4
	Sphere
	TaperedCylinder
	Torus
	ExtraTorus1
	ExtraTorus2

	kindCount
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case Plane:
		return "plane"
	case Prism:
		return "prism"
	case Pyramid3:
		return "pyramid3"
	case Pyramid4:
		return "pyramid4"
	case Sphere:
		return "sphere"
	case TaperedCylinder:
		return "tapered_cylinder"
	case Torus:
		return "torus"
	case ExtraTorus1:
		return "extra_torus1"
	case ExtraTorus2:
		return "extra_torus2"
	default:
		return "unknown"
	}
}
