package render

// Vertex layout shared by every mesh and every backend: interleaved
// position (3 floats), normal (3 floats), texture coordinate (2 floats).
// Backends configure attribute pointers from these constants; generators
// emit buffers whose length is a multiple of FloatsPerVertex.
const (
	// FloatsPerVertex is the stride in floats of one interleaved vertex.
	FloatsPerVertex = 8

	// VertexStrideBytes is the stride in bytes of one interleaved vertex.
	VertexStrideBytes = FloatsPerVertex * 4

	// PositionComponents, NormalComponents, TexCoordComponents are the
	// float counts of each attribute.
	PositionComponents = 3
	NormalComponents   = 3
	TexCoordComponents = 2

	// PositionOffset, NormalOffset, TexCoordOffset are byte offsets of
	// each attribute within a vertex.
	PositionOffset = 0
	NormalOffset   = 12
	TexCoordOffset = 24

	// PositionSlot, NormalSlot, TexCoordSlot are the shader attribute
	// locations backends bind each attribute to.
	PositionSlot = 0
	NormalSlot   = 1
	TexCoordSlot = 2
)
