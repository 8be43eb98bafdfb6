package scene

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/logger"
	"shape-engine/internal/meshes"
	"shape-engine/internal/render"
)

// fakeBinder records the last value written to each uniform.
type fakeBinder struct {
	bools    map[string]bool
	ints     map[string]int32
	floats   map[string]float32
	vec2s    map[string]mgl32.Vec2
	vec3s    map[string]mgl32.Vec3
	vec4s    map[string]mgl32.Vec4
	mat4s    map[string]mgl32.Mat4
	samplers map[string]int32
}

func newFakeBinder() *fakeBinder {
	return &fakeBinder{
		bools:    make(map[string]bool),
		ints:     make(map[string]int32),
		floats:   make(map[string]float32),
		vec2s:    make(map[string]mgl32.Vec2),
		vec3s:    make(map[string]mgl32.Vec3),
		vec4s:    make(map[string]mgl32.Vec4),
		mat4s:    make(map[string]mgl32.Mat4),
		samplers: make(map[string]int32),
	}
}

func (f *fakeBinder) Use()                                     {}
func (f *fakeBinder) SetBool(name string, v bool)              { f.bools[name] = v }
func (f *fakeBinder) SetInt(name string, v int32)              { f.ints[name] = v }
func (f *fakeBinder) SetFloat(name string, v float32)          { f.floats[name] = v }
func (f *fakeBinder) SetVec2(name string, v mgl32.Vec2)        { f.vec2s[name] = v }
func (f *fakeBinder) SetVec3(name string, v mgl32.Vec3)        { f.vec3s[name] = v }
func (f *fakeBinder) SetVec4(name string, v mgl32.Vec4)        { f.vec4s[name] = v }
func (f *fakeBinder) SetMat4(name string, v mgl32.Mat4)        { f.mat4s[name] = v }
func (f *fakeBinder) SetSampler(name string, unit int32)       { f.samplers[name] = unit }

func newTestScene() (*Scene, *fakeBinder, *render.NullDevice, *logger.Logger) {
	dev := render.NewNullDevice()
	log := logger.NewMemory()
	prog := newFakeBinder()
	store := meshes.New(dev, log)
	return New(dev, prog, store, log), prog, dev, log
}

func TestSetTransformationsTranslation(t *testing.T) {
	s, prog, _, _ := newTestScene()
	s.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{2, 3, 4})

	model, ok := prog.mat4s["model"]
	if !ok {
		t.Fatal("model matrix not uploaded")
	}
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, model)
	if !p.ApproxEqualThreshold(mgl32.Vec3{2, 3, 4}, 1e-5) {
		t.Errorf("origin transformed to %v, want {2 3 4}", p)
	}
}

func TestSetTransformationsRotatesBeforeTranslating(t *testing.T) {
	s, prog, _, _ := newTestScene()
	// 90 deg about Y carries +X to -Z; translation applies afterward
	s.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{10, 0, 0})

	model := prog.mat4s["model"]
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, model)
	if !p.ApproxEqualThreshold(mgl32.Vec3{10, 0, -1}, 1e-5) {
		t.Errorf("+X transformed to %v, want {10 0 -1}", p)
	}
}

func TestSetTransformationsScales(t *testing.T) {
	s, prog, _, _ := newTestScene()
	s.SetTransformations(mgl32.Vec3{2, 3, 4}, 0, 0, 0, mgl32.Vec3{})

	model := prog.mat4s["model"]
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, model)
	if !p.ApproxEqualThreshold(mgl32.Vec3{2, 3, 4}, 1e-5) {
		t.Errorf("unit point scaled to %v, want {2 3 4}", p)
	}
}

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	s, prog, _, _ := newTestScene()
	s.SetShaderColor(0.2, 0.4, 0.6, 1)

	if prog.bools["bUseTexture"] {
		t.Error("bUseTexture still set after SetShaderColor")
	}
	want := mgl32.Vec4{0.2, 0.4, 0.6, 1}
	if got := prog.vec4s["objectColor"]; got != want {
		t.Errorf("objectColor = %v, want %v", got, want)
	}
}

func TestSetShaderTextureUnknownTagLogsAndDisables(t *testing.T) {
	s, prog, _, log := newTestScene()
	prog.bools["bUseTexture"] = true
	s.SetShaderTexture("missing")

	if prog.bools["bUseTexture"] {
		t.Error("texturing left enabled for unknown tag")
	}
	if len(log.Lines()) == 0 || !strings.Contains(log.Lines()[0], "missing") {
		t.Errorf("expected diagnostic naming the tag, got %v", log.Lines())
	}
}

func TestSetShaderMaterialFallsBackToDefault(t *testing.T) {
	s, prog, _, log := newTestScene()
	s.SetShaderMaterial("nope")

	if len(log.Lines()) != 1 {
		t.Fatalf("expected one diagnostic, got %v", log.Lines())
	}
	if prog.floats["material.shininess"] != 8 {
		t.Errorf("default shininess = %v, want 8", prog.floats["material.shininess"])
	}
}

func TestSetShaderMaterialUsesRegistered(t *testing.T) {
	s, prog, _, _ := newTestScene()
	s.DefineMaterial("chrome", Material{
		DiffuseColor:  mgl32.Vec3{0.9, 0.9, 0.9},
		SpecularColor: mgl32.Vec3{1, 1, 1},
		Shininess:     256,
	})
	s.SetShaderMaterial("chrome")

	if prog.floats["material.shininess"] != 256 {
		t.Errorf("shininess = %v, want 256", prog.floats["material.shininess"])
	}
	if got := prog.vec3s["material.diffuseColor"]; got != (mgl32.Vec3{0.9, 0.9, 0.9}) {
		t.Errorf("diffuseColor = %v", got)
	}
}

func TestSetLightsPadsAndTruncates(t *testing.T) {
	s, prog, _, log := newTestScene()

	one := PointLight{Position: mgl32.Vec3{1, 2, 3}, Active: true}
	s.SetLights([]PointLight{one}, DirectionalLight{Active: false})

	if !prog.bools["bUseLighting"] {
		t.Error("bUseLighting not enabled")
	}
	if !prog.bools["pointLights[0].bActive"] {
		t.Error("light 0 not active")
	}
	for i := 1; i < 4; i++ {
		name := "pointLights[" + string(rune('0'+i)) + "].bActive"
		if prog.bools[name] {
			t.Errorf("unset light %d marked active", i)
		}
	}

	five := make([]PointLight, 5)
	s.SetLights(five, DirectionalLight{})
	found := false
	for _, line := range log.Lines() {
		if strings.Contains(line, "point lights") {
			found = true
		}
	}
	if !found {
		t.Error("no diagnostic for too many point lights")
	}
}

func TestRoomRendersEveryObject(t *testing.T) {
	s, _, dev, log := newTestScene()
	room := NewRoom(s)
	if err := room.Prepare(); err != nil {
		t.Fatal(err)
	}

	dev.Reset()
	room.Render()

	if len(dev.Calls) == 0 {
		t.Fatal("room render issued no draw calls")
	}
	for _, line := range log.Lines() {
		if strings.Contains(line, "not generated") {
			t.Errorf("room drew an unloaded mesh: %s", line)
		}
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	s, _, _, _ := newTestScene()
	if err := s.LoadTexture("floor", "does/not/exist.png"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if s.TextureLoaded("floor") {
		t.Error("tag registered despite failed load")
	}
}
