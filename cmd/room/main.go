package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/engineconfig"
	"shape-engine/internal/graphics"
	"shape-engine/internal/logger"
	"shape-engine/internal/meshes"
	"shape-engine/internal/render"
	_ "shape-engine/internal/render/opengl"
	"shape-engine/internal/scene"
	"shape-engine/internal/shader"
	"shape-engine/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.New()
	prefs, err := engineconfig.Load()
	if err != nil {
		log.Logf("prefs: %v, using defaults", err)
	}

	win, err := graphics.Open(graphics.Options{
		Width:  prefs.WindowWidth,
		Height: prefs.WindowHeight,
		Title:  prefs.WindowTitle,
		VSync:  prefs.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dev, err := render.Select(prefs.Backend)
	if err != nil {
		return err
	}
	if err := dev.Init(); err != nil {
		return err
	}
	defer dev.Close()
	log.Logf("render backend: %s", dev.Name())

	prog, err := shader.NewScene()
	if err != nil {
		return err
	}
	defer prog.Delete()

	store := meshes.New(dev, log)
	defer store.Destroy()

	scn := scene.New(dev, prog, store, log)
	defer scn.Destroy()

	room := scene.NewRoom(scn)

	camera := view.NewCamera(mgl32.Vec3{0, 14, 22})
	camera.MovementSpeed = prefs.CameraSpeed
	width, height := win.Size()
	vm := view.NewManager(win.Handle(), camera, width, height)
	vm.SetOrthographic(prefs.Orthographic)

	prog.Use()
	if err := room.Prepare(); err != nil {
		return err
	}

	update := func(dt float32) {
		vm.ProcessInput(dt)
	}
	draw := func() {
		dev.Clear(0.05, 0.05, 0.08, 1)
		prog.Use()
		vm.Apply(prog)
		room.Render()
	}
	win.Run(update, draw)

	prefs.Orthographic = vm.Orthographic()
	prefs.CameraSpeed = camera.MovementSpeed
	if err := engineconfig.Save(prefs); err != nil {
		log.Logf("save prefs: %v", err)
	}
	return nil
}
