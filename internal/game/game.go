// Package game runs the client: window, renderer and driving session.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stunts/internal/assets"
	"github.com/Faultbox/stunts/internal/config"
	"github.com/Faultbox/stunts/internal/engine/camera"
	"github.com/Faultbox/stunts/internal/engine/debug"
	"github.com/Faultbox/stunts/internal/engine/input"
	"github.com/Faultbox/stunts/internal/engine/renderer"
	"github.com/Faultbox/stunts/internal/engine/window"
	"github.com/Faultbox/stunts/internal/logger"
	"github.com/Faultbox/stunts/internal/physics"
	"github.com/Faultbox/stunts/internal/sim"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/math"
)

// Game is the main client instance.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	driving  input.Driving
	session  *sim.Session

	screenshots       *debug.Screenshots
	pendingScreenshot bool

	// GPU copies of what the session has active
	shownTrack   *sim.Track
	shownVehicle *sim.Vehicle
	trackMesh    *renderer.Mesh
	chassisMesh  *renderer.Mesh
	wheelMesh    *renderer.Mesh
}

// New loads the assets and the start track, then opens the window.
func New(cfg *config.Config) (*Game, error) {
	lib, err := assets.Open(cfg.Data.AssetsPath)
	if err != nil {
		return nil, err
	}

	cat := track.DefaultCatalog()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if err := lib.Check(cat.ModelNames()...); err != nil {
		return nil, fmt.Errorf("asset check: %w", err)
	}

	world := physics.NewKinematic(physics.DefaultGrid())
	session := sim.New(world, lib, cat, cfg.Game.Car)
	if err := session.LoadTrackFile(cfg.Data.TrackPath); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:         cfg,
		session:     session,
		screenshots: debug.NewScreenshots(cfg.Data.ScreenshotDir),
	}

	g.window, err = window.New(window.Config{
		Title:      "Stunts",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer.
	w, h := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	logger.Info("game initialized", zap.String("car", session.CarName()))
	return g, nil
}

// Session returns the driving session.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (g *Game) Run() error {
	g.running = true

	ticker := time.NewTicker(g.cfg.Game.TickInterval)
	defer ticker.Stop()

	frames := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop", zap.Duration("tick", g.cfg.Game.TickInterval))

	for g.running {
		now := <-ticker.C

		if g.input.Update() {
			break
		}
		g.handleEvents()

		if err := g.sync(); err != nil {
			return err
		}
		g.render()
		if g.pendingScreenshot {
			g.saveScreenshot()
		}
		g.window.SwapBuffers()

		g.session.Tick(now)

		frames++
		if g.cfg.Game.ShowFPS && time.Since(fpsTimer) >= time.Second {
			g.window.SetTitle(fmt.Sprintf("Stunts - %s - %d fps", g.session.CarName(), frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, e := range g.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			w, h := g.window.GetSize()
			g.renderer.Resize(w, h)

		case input.EventKeyDown, input.EventKeyUp:
			switch g.driving.Handle(e) {
			case input.ActionNextCar:
				if err := g.session.NextCar(); err != nil {
					logger.Warn("switching car failed", zap.Error(err))
				}
			case input.ActionReset:
				if err := g.session.ResetCar(); err != nil {
					logger.Warn("resetting car failed", zap.Error(err))
				}
			case input.ActionScreenshot:
				g.pendingScreenshot = true
			case input.ActionFullscreen:
				if err := g.window.ToggleFullscreen(); err != nil {
					logger.Warn("toggling fullscreen failed", zap.Error(err))
				}
			case input.ActionQuit:
				g.running = false
			}
		}
	}

	g.session.SetControls(sim.Controls{
		Accelerate: g.driving.Accelerate,
		Steer:      g.driving.Steer,
		Handbrake:  g.driving.Handbrake,
	})
}

// sync uploads meshes for a track or car the session switched to.
func (g *Game) sync() error {
	if t := g.session.Track(); t != g.shownTrack {
		g.trackMesh.Delete()
		g.trackMesh = nil
		if t != nil {
			m, err := renderer.Upload(t.VisualMesh)
			if err != nil {
				return fmt.Errorf("uploading track: %w", err)
			}
			g.trackMesh = m
		}
		g.shownTrack = t
	}

	if v := g.session.Vehicle(); v != g.shownVehicle {
		g.chassisMesh.Delete()
		g.wheelMesh.Delete()
		g.chassisMesh, g.wheelMesh = nil, nil
		if v != nil {
			var err error
			if g.chassisMesh, err = renderer.Upload(v.ChassisMesh); err != nil {
				return fmt.Errorf("uploading chassis: %w", err)
			}
			if g.wheelMesh, err = renderer.Upload(v.WheelMesh); err != nil {
				return fmt.Errorf("uploading wheel: %w", err)
			}
		}
		g.shownVehicle = v
	}

	return nil
}

func (g *Game) render() {
	v := g.session.Vehicle()
	if v == nil {
		g.renderer.Begin(math.Identity())
		g.renderer.End()
		return
	}

	target := v.Chassis().Position()
	v.Camera.Follow(target)
	vp := v.Camera.ViewProjection(target, g.renderer.Aspect())

	g.renderer.Begin(vp)

	off := track.TrackOffset
	g.renderer.Draw(g.trackMesh, camera.World(vp, math.Translate(off.X, off.Y, off.Z)))
	g.renderer.Draw(g.chassisMesh, camera.World(vp, v.ChassisTransform()))
	for _, wt := range v.WheelTransforms() {
		g.renderer.Draw(g.wheelMesh, camera.World(vp, wt))
	}

	g.renderer.End()
}

// saveScreenshot captures the frame just rendered, before the swap.
func (g *Game) saveScreenshot() {
	g.pendingScreenshot = false

	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.Save(g.cfg.Data.TrackPath, pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	g.trackMesh.Delete()
	g.chassisMesh.Delete()
	g.wheelMesh.Delete()

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
