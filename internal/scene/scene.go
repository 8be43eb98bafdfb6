// Package scene composes loaded primitive meshes into a rendered 3D
// world: per-object transforms, colors, textures, materials, and
// lights, all applied through the shader uniform surface.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/logger"
	"shape-engine/internal/meshes"
	"shape-engine/internal/render"
	"shape-engine/internal/shader"
)

// Material groups the Phong reflectance parameters looked up by tag.
type Material struct {
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// Scene owns the texture and material registries and translates
// object-level state into shader uniforms before each mesh draw.
type Scene struct {
	dev    render.Device
	prog   shader.Binder
	meshes *meshes.Store
	log    *logger.Logger

	textures  map[string]render.TextureHandle
	materials map[string]Material
}

// New returns an empty scene drawing through prog on dev.
func New(dev render.Device, prog shader.Binder, store *meshes.Store, log *logger.Logger) *Scene {
	return &Scene{
		dev:       dev,
		prog:      prog,
		meshes:    store,
		log:       log,
		textures:  make(map[string]render.TextureHandle),
		materials: make(map[string]Material),
	}
}

// Meshes returns the mesh store for draw calls from composition code.
func (s *Scene) Meshes() *meshes.Store { return s.meshes }

// SetTransformations uploads the model matrix for the next draw.
// Rotations are in degrees and apply in X, Y, Z order, then the
// translation, matching how objects are authored.
func (s *Scene) SetTransformations(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	s.prog.SetMat4("model", model)
}

// SetShaderColor draws the next object in a flat color and disables
// texturing.
func (s *Scene) SetShaderColor(r, g, b, a float32) {
	s.prog.SetBool("bUseTexture", false)
	s.prog.SetVec4("objectColor", mgl32.Vec4{r, g, b, a})
}

// DefineMaterial registers a named Phong material.
func (s *Scene) DefineMaterial(tag string, m Material) {
	s.materials[tag] = m
}

// SetShaderMaterial applies a registered material, falling back to a
// neutral default when the tag is unknown.
func (s *Scene) SetShaderMaterial(tag string) {
	m, ok := s.materials[tag]
	if !ok {
		s.log.Logf("scene: material %q not defined, using default", tag)
		m = Material{
			DiffuseColor:  mgl32.Vec3{0.8, 0.8, 0.8},
			SpecularColor: mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:     8,
		}
	}
	s.prog.SetVec3("material.diffuseColor", m.DiffuseColor)
	s.prog.SetVec3("material.specularColor", m.SpecularColor)
	s.prog.SetFloat("material.shininess", m.Shininess)
}

// SetShaderTexture binds a loaded texture to unit 0 and enables
// texturing for the next draw. Unknown tags log and leave texturing
// off.
func (s *Scene) SetShaderTexture(tag string) {
	h, ok := s.textures[tag]
	if !ok {
		s.log.Logf("scene: texture %q not loaded", tag)
		s.prog.SetBool("bUseTexture", false)
		return
	}
	s.dev.BindTexture(h, 0)
	s.prog.SetSampler("objectTexture", 0)
	s.prog.SetBool("bUseTexture", true)
}

// SetTextureUVScale tiles the active texture.
func (s *Scene) SetTextureUVScale(u, v float32) {
	s.prog.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// PointLight describes one positional light source.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// DirectionalLight describes the scene-wide directional source.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

// maxPointLights matches the array size in the fragment shader.
const maxPointLights = 4

// SetLights uploads lighting state and enables lit shading. Point
// lights past the shader's capacity are dropped with a log line.
func (s *Scene) SetLights(points []PointLight, dir DirectionalLight) {
	s.prog.SetBool("bUseLighting", true)

	if len(points) > maxPointLights {
		s.log.Logf("scene: %d point lights requested, shader supports %d", len(points), maxPointLights)
		points = points[:maxPointLights]
	}
	for i := 0; i < maxPointLights; i++ {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		if i >= len(points) {
			s.prog.SetBool(prefix+"bActive", false)
			continue
		}
		p := points[i]
		s.prog.SetVec3(prefix+"position", p.Position)
		s.prog.SetVec3(prefix+"ambient", p.Ambient)
		s.prog.SetVec3(prefix+"diffuse", p.Diffuse)
		s.prog.SetVec3(prefix+"specular", p.Specular)
		s.prog.SetBool(prefix+"bActive", p.Active)
	}

	s.prog.SetVec3("directionalLight.direction", dir.Direction)
	s.prog.SetVec3("directionalLight.ambient", dir.Ambient)
	s.prog.SetVec3("directionalLight.diffuse", dir.Diffuse)
	s.prog.SetVec3("directionalLight.specular", dir.Specular)
	s.prog.SetBool("directionalLight.bActive", dir.Active)
}

// DisableLighting renders subsequent objects unlit.
func (s *Scene) DisableLighting() {
	s.prog.SetBool("bUseLighting", false)
}

// Destroy releases every texture the scene loaded.
func (s *Scene) Destroy() {
	for tag, h := range s.textures {
		s.dev.ReleaseTexture(h)
		delete(s.textures, tag)
	}
}
