package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Room is the arcade-room composition: walls, a soda can, a floor
// lamp, a stool, and an arcade cabinet, all assembled from the
// primitive meshes.
type Room struct {
	scene *Scene
}

// NewRoom wraps a scene with the room's content.
func NewRoom(s *Scene) *Room {
	return &Room{scene: s}
}

// roomTextures maps texture tags to their image files under
// assets/textures. Missing files are logged and the object falls back
// to its flat color.
var roomTextures = map[string]string{
	"floor":     "assets/textures/floor.png",
	"wallpaper": "assets/textures/wallpaper.jpg",
	"ceiling":   "assets/textures/ceiling.jpg",
	"soda1":     "assets/textures/soda1.png",
	"soda2":     "assets/textures/soda2.png",
	"soda_top":  "assets/textures/sodatop.png",
	"screen":    "assets/textures/screen.jpg",
	"cabinet":   "assets/textures/cabinet.png",
	"coin_slot": "assets/textures/coinslot.png",
	"marquee":   "assets/textures/marquee.png",
	"yellow":    "assets/textures/yellow.png",
	"linen":     "assets/textures/linen.jpg",
	"leather":   "assets/textures/leather.jpg",
	"metal":     "assets/textures/metal.jpg",
	"aluminum":  "assets/textures/aluminum.png",
}

// Prepare loads textures, materials, lights, and every mesh the room
// draws. Meshes load once regardless of how many objects reuse them.
func (r *Room) Prepare() error {
	s := r.scene

	for tag, path := range roomTextures {
		if err := s.LoadTexture(tag, path); err != nil {
			s.log.Logf("scene: %v", err)
		}
	}
	r.defineMaterials()
	r.setupLights()

	m := s.Meshes()
	if err := m.LoadPlaneMesh(2, 2); err != nil {
		return err
	}
	if err := m.LoadTaperedCylinderMesh(); err != nil {
		return err
	}
	if err := m.LoadCylinderMesh(1, 1, 36); err != nil {
		return err
	}
	if err := m.LoadSphereMesh(18, 36, 1); err != nil {
		return err
	}
	if err := m.LoadBoxMesh(); err != nil {
		return err
	}
	if err := m.LoadPrismMesh(); err != nil {
		return err
	}
	// thin torus at reduced segment count, reused for every small ring
	return m.LoadTorusMesh(1, 0.06, 24, 8)
}

func (r *Room) defineMaterials() {
	s := r.scene
	s.DefineMaterial("floor", Material{
		DiffuseColor:  mgl32.Vec3{0.45, 0.45, 0.45},
		SpecularColor: mgl32.Vec3{0.12, 0.12, 0.12},
		Shininess:     8,
	})
	s.DefineMaterial("wallpaper", Material{
		DiffuseColor:  mgl32.Vec3{0.45, 0.45, 0.45},
		SpecularColor: mgl32.Vec3{0.12, 0.12, 0.12},
		Shininess:     32,
	})
	s.DefineMaterial("ceiling", Material{
		DiffuseColor:  mgl32.Vec3{0.45, 0.45, 0.45},
		SpecularColor: mgl32.Vec3{0.12, 0.12, 0.12},
		Shininess:     8,
	})
	s.DefineMaterial("soda1", Material{
		DiffuseColor:  mgl32.Vec3{0.75, 0.75, 0.75},
		SpecularColor: mgl32.Vec3{0.72, 0.72, 0.72},
		Shininess:     64,
	})
	s.DefineMaterial("soda2", Material{
		DiffuseColor:  mgl32.Vec3{0.75, 0.75, 0.75},
		SpecularColor: mgl32.Vec3{0.72, 0.72, 0.72},
		Shininess:     64,
	})
	s.DefineMaterial("soda_top", Material{
		DiffuseColor:  mgl32.Vec3{0.75, 0.75, 0.75},
		SpecularColor: mgl32.Vec3{1, 1, 1},
		Shininess:     128,
	})
	s.DefineMaterial("screen", Material{
		DiffuseColor:  mgl32.Vec3{0.7, 0.7, 0.7},
		SpecularColor: mgl32.Vec3{0.8, 0.8, 0.8},
		Shininess:     256,
	})
	s.DefineMaterial("cabinet", Material{
		DiffuseColor:  mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor: mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess:     32,
	})
	s.DefineMaterial("coin_slot", Material{
		DiffuseColor:  mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:     32,
	})
	s.DefineMaterial("marquee", Material{
		DiffuseColor:  mgl32.Vec3{0.6, 0.6, 0.6},
		SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:     64,
	})
	s.DefineMaterial("yellow", Material{
		DiffuseColor:  mgl32.Vec3{0.75, 0.75, 0.75},
		SpecularColor: mgl32.Vec3{0.72, 0.72, 0.72},
		Shininess:     64,
	})
	s.DefineMaterial("linen", Material{
		DiffuseColor:  mgl32.Vec3{0.7, 0.7, 0.7},
		SpecularColor: mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:     8,
	})
	s.DefineMaterial("leather", Material{
		DiffuseColor:  mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor: mgl32.Vec3{0.25, 0.25, 0.25},
		Shininess:     16,
	})
	s.DefineMaterial("metal", Material{
		DiffuseColor:  mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor: mgl32.Vec3{0.25, 0.25, 0.25},
		Shininess:     32,
	})
	s.DefineMaterial("aluminum", Material{
		DiffuseColor:  mgl32.Vec3{0.35, 0.35, 0.35},
		SpecularColor: mgl32.Vec3{0.35, 0.35, 0.35},
		Shininess:     128,
	})
}

func (r *Room) setupLights() {
	r.scene.SetLights([]PointLight{
		{
			// lamp bulb, left side
			Position: mgl32.Vec3{14, 17, -5.5},
			Ambient:  mgl32.Vec3{0.25, 0.25, 0.25},
			Diffuse:  mgl32.Vec3{1.5, 1.5, 1.5},
			Specular: mgl32.Vec3{1, 1, 1},
			Active:   true,
		},
		{
			// lamp bulb, right side, raised to fill the shade
			Position: mgl32.Vec3{16, 22, -5.5},
			Ambient:  mgl32.Vec3{0.25, 0.25, 0.25},
			Diffuse:  mgl32.Vec3{1.5, 1.5, 1.5},
			Specular: mgl32.Vec3{1, 1, 1},
			Active:   true,
		},
		{
			// arcade screen glow
			Position: mgl32.Vec3{0, 20, -4.3},
			Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:  mgl32.Vec3{0.9, 0.5, 2},
			Specular: mgl32.Vec3{0.8, 0.65, 1},
			Active:   true,
		},
	}, DirectionalLight{
		Direction: mgl32.Vec3{-0.2, -1, -0.3},
		Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.2},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Active:    true,
	})
}

// Render draws every object in the room. Transform state is set
// immediately before each draw, so order within an object matters but
// objects are independent.
func (r *Room) Render() {
	r.renderWalls()
	r.renderSoda()
	r.renderLamp()
	r.renderStool()
	r.renderArcade()
}

func (r *Room) renderWalls() {
	s := r.scene
	m := s.Meshes()

	// floor
	s.SetTransformations(mgl32.Vec3{20, 1, 16}, 0, 0, 0, mgl32.Vec3{0, 0, 6})
	s.SetShaderTexture("floor")
	s.SetShaderMaterial("floor")
	m.DrawPlaneMesh()

	// ceiling
	s.SetTransformations(mgl32.Vec3{20, 1, 16}, 0, 0, 0, mgl32.Vec3{0, 28, 6})
	s.SetShaderTexture("ceiling")
	s.SetShaderMaterial("ceiling")
	m.DrawPlaneMesh()

	// back wall
	s.SetTransformations(mgl32.Vec3{20, 1, 14}, 90, 0, 0, mgl32.Vec3{0, 14, -10})
	s.SetShaderTexture("wallpaper")
	s.SetShaderMaterial("wallpaper")
	m.DrawPlaneMesh()

	// right wall, rotated to face inward
	s.SetTransformations(mgl32.Vec3{16, 1, 14}, 90, -90, 0, mgl32.Vec3{20, 14, 6})
	m.DrawPlaneMesh()

	// left wall
	s.SetTransformations(mgl32.Vec3{16, 1, 14}, 90, 90, 0, mgl32.Vec3{-20, 14, 6})
	m.DrawPlaneMesh()
}

func (r *Room) renderSoda() {
	s := r.scene
	m := s.Meshes()

	// base, tapered cylinder flipped upside down
	s.SetTransformations(mgl32.Vec3{0.8, 0.4, 0.8}, 180, 0, 0, mgl32.Vec3{-8, 0.4, 4})
	s.SetShaderTexture("aluminum")
	s.SetShaderMaterial("aluminum")
	m.DrawTaperedCylinderMesh(true, false, true)

	// body, label rotated toward the camera
	s.SetTransformations(mgl32.Vec3{0.8, 2, 0.8}, 0, 90, 0, mgl32.Vec3{-8, 0.4, 4})
	s.SetShaderTexture("soda1")
	s.SetShaderMaterial("soda1")
	s.SetTextureUVScale(-1, 1) // mirror so the label reads correctly
	m.DrawCylinderMesh(true, true, true)
	s.SetTextureUVScale(1, 1)

	// shoulder, half sphere
	s.SetTransformations(mgl32.Vec3{0.8, 0.3, 0.8}, 0, 0, 0, mgl32.Vec3{-8, 2.4, 4})
	s.SetShaderTexture("soda2")
	s.SetShaderMaterial("soda2")
	m.DrawHalfSphereMesh()

	// lid, flat cylinder whose texture includes the tab
	s.SetTransformations(mgl32.Vec3{0.6, 0.03, 0.6}, 0, 0, 0, mgl32.Vec3{-8, 2.67, 4})
	s.SetShaderTexture("soda_top")
	s.SetShaderMaterial("soda_top")
	m.DrawCylinderMesh(true, true, true)

	// lid rim
	s.SetTransformations(mgl32.Vec3{0.6, 0.6, 1}, 90, 0, 0, mgl32.Vec3{-8, 2.71, 4})
	s.SetShaderTexture("aluminum")
	s.SetShaderMaterial("aluminum")
	m.DrawTorusMesh()
}

func (r *Room) renderLamp() {
	s := r.scene
	m := s.Meshes()

	// base
	s.SetTransformations(mgl32.Vec3{2.7, 0.3, 2.7}, 0, 0, 0, mgl32.Vec3{15, 0, -5.5})
	s.SetShaderTexture("leather")
	s.SetShaderMaterial("leather")
	m.DrawCylinderMesh(true, true, true)

	// tapered riser above the base
	s.SetTransformations(mgl32.Vec3{0.7, 0.5, 0.7}, 0, 0, 0, mgl32.Vec3{15, 0.3, -5.5})
	s.SetShaderTexture("metal")
	s.SetShaderMaterial("metal")
	m.DrawTaperedCylinderMesh(true, true, true)

	// pole
	s.SetTransformations(mgl32.Vec3{0.3, 15, 0.3}, 0, 0, 0, mgl32.Vec3{15, 0.8, -5.5})
	s.SetShaderTexture("leather")
	s.SetShaderMaterial("leather")
	m.DrawCylinderMesh(true, true, true)

	// bulb socket
	s.SetTransformations(mgl32.Vec3{0.3, 0.7, 0.3}, 0, 0, 0, mgl32.Vec3{15, 15.8, -5.5})
	s.SetShaderTexture("metal")
	s.SetShaderMaterial("metal")
	m.DrawCylinderMesh(true, true, true)

	// switch, angled off the socket
	s.SetTransformations(mgl32.Vec3{0.05, 0.3, 0.05}, 0, 0, 90, mgl32.Vec3{14.8, 16.2, -5.5})
	m.DrawCylinderMesh(true, true, true)

	// bulb
	s.SetTransformations(mgl32.Vec3{0.5, 1.2, 0.5}, 0, 0, 0, mgl32.Vec3{15, 16.5, -5.5})
	s.SetShaderTexture("aluminum")
	s.SetShaderMaterial("aluminum")
	m.DrawCylinderMesh(true, true, true)

	// hoop holding the shade
	s.SetTransformations(mgl32.Vec3{1, 1.4, 1}, 0, 90, 0, mgl32.Vec3{15, 17.7, -5.5})
	s.SetShaderTexture("metal")
	s.SetShaderMaterial("metal")
	m.DrawTorusMesh()

	// finial on top of the hoop
	s.SetTransformations(mgl32.Vec3{0.15, 0.25, 0.15}, 0, 0, 0, mgl32.Vec3{15, 19.4, -5.5})
	m.DrawSphereMesh()

	// shade, open-ended tapered cylinder
	s.SetTransformations(mgl32.Vec3{2.7, 3.7, 2.5}, 0, 0, 0, mgl32.Vec3{15, 15.8, -5.5})
	s.SetShaderTexture("linen")
	s.SetShaderMaterial("linen")
	m.DrawTaperedCylinderMesh(false, false, true)

	// ring joining hoop and shade
	s.SetTransformations(mgl32.Vec3{1.4, 0.4, 0.8}, 90, 0, 0, mgl32.Vec3{15, 19, -5.5})
	s.SetShaderTexture("metal")
	s.SetShaderMaterial("metal")
	m.DrawTorusMesh()
}

func (r *Room) renderStool() {
	s := r.scene
	m := s.Meshes()

	legScale := mgl32.Vec3{0.2, 6, 0.2}

	// front leg, tilted toward the viewer
	s.SetTransformations(legScale, -9, 0, 0, mgl32.Vec3{0, 0, 6})
	s.SetShaderTexture("metal")
	s.SetShaderMaterial("metal")
	m.DrawCylinderMesh(true, true, true)

	// right leg
	s.SetTransformations(legScale, 0, 0, 9, mgl32.Vec3{3, 0, 3})
	m.DrawCylinderMesh(true, true, true)

	// back leg
	s.SetTransformations(legScale, 9, 0, 0, mgl32.Vec3{0, 0, 0})
	m.DrawCylinderMesh(true, true, true)

	// left leg
	s.SetTransformations(legScale, 0, 0, -9, mgl32.Vec3{-3, 0, 3})
	m.DrawCylinderMesh(true, true, true)

	// foot ring
	s.SetTransformations(mgl32.Vec3{2.25, 2.25, 3.6}, 90, 0, 0, mgl32.Vec3{0, 3, 3})
	m.DrawTorusMesh()

	// seat cushion
	s.SetTransformations(mgl32.Vec3{2.5, 0.7, 2.5}, 0, 0, 0, mgl32.Vec3{0, 5.95, 3})
	s.SetShaderTexture("leather")
	s.SetShaderMaterial("leather")
	m.DrawCylinderMesh(true, true, true)
}

func (r *Room) renderArcade() {
	s := r.scene
	m := s.Meshes()

	// cabinet base
	s.SetTransformations(mgl32.Vec3{9, 9.1, 7}, 0, 0, 0, mgl32.Vec3{0, 4.6, -6})
	s.SetShaderTexture("cabinet")
	s.SetShaderMaterial("cabinet")
	m.DrawBoxMesh()

	// coin slot decal on the front face
	s.SetTransformations(mgl32.Vec3{3, 1, 3}, 90, 0, 0, mgl32.Vec3{0, 5, -2.495})
	s.SetShaderTexture("coin_slot")
	s.SetShaderMaterial("coin_slot")
	m.DrawPlaneMesh()

	// control deck slab
	s.SetTransformations(mgl32.Vec3{9, 1.7, 10}, 0, 0, 0, mgl32.Vec3{0, 10, -4.5})
	s.SetShaderTexture("marquee")
	s.SetShaderMaterial("marquee")
	m.DrawBoxMesh()

	// angled prism carrying the controls
	s.SetTransformations(mgl32.Vec3{10, 9, 1.5}, 0, -90, -90, mgl32.Vec3{0, 11.6, -4.5})
	s.SetShaderTexture("cabinet")
	s.SetShaderMaterial("cabinet")
	s.SetTextureUVScale(2, 2)
	m.DrawPrismMesh()
	s.SetTextureUVScale(1, 1)

	// lower screen surround
	s.SetTransformations(mgl32.Vec3{3, 9, 5}, 0, 0, 90, mgl32.Vec3{0, 12.35, -7})
	m.DrawPrismMesh()

	// upper screen surround
	s.SetTransformations(mgl32.Vec3{1.6, 9, 5}, 0, -188, 90, mgl32.Vec3{0, 13.495, -7})
	m.DrawPrismMesh()

	// screen box
	s.SetTransformations(mgl32.Vec3{9, 5.5, 5.1}, -1, 0, 0, mgl32.Vec3{0, 16.635, -7})
	m.DrawBoxMesh()

	// glowing screen plane
	s.SetTransformations(mgl32.Vec3{3.95, 1, 2.8}, 89, 0, 0, mgl32.Vec3{0, 16.67, -4.4})
	s.SetShaderTexture("screen")
	s.SetShaderMaterial("screen")
	m.DrawPlaneMesh()

	// marquee top
	s.SetTransformations(mgl32.Vec3{9, 2.5, 7}, -1, 0, 0, mgl32.Vec3{0, 20.65, -6.1})
	s.SetShaderTexture("marquee")
	s.SetShaderMaterial("marquee")
	m.DrawBoxMesh()

	// side trim around the screen and control deck
	trim := mgl32.Vec3{0.5, 0.6, 5.5}
	s.SetShaderTexture("cabinet")
	s.SetShaderMaterial("cabinet")
	s.SetTransformations(trim, 89, 0, 0, mgl32.Vec3{4.2, 16.68, -4.25})
	m.DrawBoxMesh()
	s.SetTransformations(trim, 89, 0, 0, mgl32.Vec3{-4.2, 16.68, -4.25})
	m.DrawBoxMesh()
	s.SetTransformations(mgl32.Vec3{0.5, 0.6, 5.4}, 17, 0, 0, mgl32.Vec3{-4.2, 11.88, -2})
	m.DrawBoxMesh()
	s.SetTransformations(mgl32.Vec3{0.5, 0.6, 5.4}, 17, 0, 0, mgl32.Vec3{4.2, 11.88, -2})
	m.DrawBoxMesh()

	// joystick
	s.SetTransformations(mgl32.Vec3{1, 0.15, 1}, 17, 0, 0, mgl32.Vec3{-2.2, 11.45, -1.5})
	m.DrawCylinderMesh(true, true, true)
	s.SetTransformations(mgl32.Vec3{0.1, 0.8, 0.1}, 17, 0, 0, mgl32.Vec3{-2.2, 11.6, -1.5})
	s.SetShaderTexture("aluminum")
	s.SetShaderMaterial("aluminum")
	m.DrawCylinderMesh(true, true, true)
	s.SetTransformations(mgl32.Vec3{0.4, 0.4, 0.4}, 17, 0, 0, mgl32.Vec3{-2.2, 12.7, -1.2})
	s.SetShaderTexture("soda2")
	s.SetShaderMaterial("soda2")
	m.DrawSphereMesh()

	// button bases
	s.SetShaderTexture("yellow")
	s.SetShaderMaterial("yellow")
	base := mgl32.Vec3{0.5, 0.1, 0.5}
	s.SetTransformations(base, 17, 0, 0, mgl32.Vec3{1.3, 11.35, -1.2})
	m.DrawCylinderMesh(true, true, true)
	s.SetTransformations(base, 17, 0, 0, mgl32.Vec3{3, 11.35, -1.2})
	m.DrawCylinderMesh(true, true, true)
	s.SetTransformations(base, 17, 0, 0, mgl32.Vec3{2.2, 11.75, -2.5})
	m.DrawCylinderMesh(true, true, true)

	// button caps
	capScale := mgl32.Vec3{0.3, 0.2, 0.3}
	s.SetTransformations(capScale, 17, 0, 0, mgl32.Vec3{1.3, 11.43, -1.15})
	m.DrawHalfSphereMesh()
	s.SetTransformations(capScale, 17, 0, 0, mgl32.Vec3{3, 11.43, -1.15})
	m.DrawHalfSphereMesh()
	s.SetTransformations(capScale, 17, 0, 0, mgl32.Vec3{2.2, 11.83, -2.45})
	m.DrawHalfSphereMesh()
}
