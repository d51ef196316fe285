// Package game wires the window, input, audio and the button engine into
// the main loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/squish/internal/button"
	"github.com/Faultbox/squish/internal/config"
	"github.com/Faultbox/squish/internal/engine/audio"
	"github.com/Faultbox/squish/internal/engine/camera"
	"github.com/Faultbox/squish/internal/engine/debug"
	"github.com/Faultbox/squish/internal/engine/input"
	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/internal/engine/renderer"
	"github.com/Faultbox/squish/internal/engine/window"
	"github.com/Faultbox/squish/internal/logger"
	"github.com/Faultbox/squish/pkg/math"
)

const windowTitle = "squish"

// Body and particle tints.
var (
	bodyColor = math.Vec3{X: 0.93, Y: 0.22, Z: 0.31}
	dripColor = math.Vec3{X: 0.85, Y: 0.17, Z: 0.26}
)

// Game owns the main loop and every subsystem in it.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	audio    *audio.Manager
	engine   *button.Engine
	body     *mesh.Mesh

	screenshots *debug.ScreenshotCapture
}

// New builds the window, GL renderer, audio backend and button engine.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	drawW, drawH := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: drawW, Height: drawH})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.Resize(drawW, drawH)

	logicalW, logicalH := g.window.Size()
	g.input = input.New(logicalW, logicalH)

	g.camera = camera.New()
	g.camera.SetViewport(drawW, drawH)

	// Audio is best-effort: a machine without a sound device still runs,
	// just silently.
	g.audio = audio.New()
	g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	g.audio.SetMuted(cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}

	g.screenshots = debug.NewScreenshotCapture("", "squish")

	g.body = mesh.NewButton(48, 16, 1.0, 1.2)
	g.engine = button.New(g.body, tuningFromConfig(cfg.Button), g.audio, time.Now().UnixNano())
	g.renderer.UploadBody(g.body)

	logger.Info("game initialized")
	return g, nil
}

// Run starts the main loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.engine.SetView(g.camera.InvViewProj(), g.camera.Position())
		g.engine.Tick(dt)

		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.String("state", g.engine.State().String()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents routes the frame's input events to their subsystems.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			drawW, drawH := g.window.DrawableSize()
			g.renderer.Resize(drawW, drawH)
			g.camera.SetViewport(drawW, drawH)
			g.cfg.Graphics.Width = event.Width
			g.cfg.Graphics.Height = event.Height

		case input.EventWindowHidden:
			g.engine.SetActive(false)

		case input.EventWindowShown:
			g.engine.SetActive(true)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_M:
				g.cfg.Audio.Muted = !g.cfg.Audio.Muted
				g.audio.SetMuted(g.cfg.Audio.Muted)
			case sdl.SCANCODE_F12:
				g.captureScreenshot()
			}

		case input.EventPointerDown:
			g.engine.PointerDown(event.X, event.Y)
		case input.EventPointerMove:
			g.engine.PointerMove(event.X, event.Y)
		case input.EventPointerUp:
			g.engine.PointerUp(event.X, event.Y)
		case input.EventPointerCancel:
			g.engine.PointerCancel()
		}
	}
}

// render draws the body, the drips and the confetti for the current frame.
func (g *Game) render() {
	g.renderer.BeginFrame(g.camera.ViewMatrix(), g.camera.ProjMatrix(), g.camera.Position())

	if g.engine.Visible() {
		pos, scale, rotZ := g.engine.Transform()
		g.renderer.DrawBody(g.body, pos, scale, rotZ, bodyColor)
	}

	for _, d := range g.engine.Drips().Drips() {
		if !d.Active && d.Phase == button.PhasePooling {
			continue
		}
		g.renderer.DrawCube(d.Position, d.Scale, math.Vec3{}, dripColor)
	}

	for _, p := range g.engine.Confetti().Particles() {
		if !p.Visible {
			continue
		}
		s := p.Scale * 0.06
		g.renderer.DrawCube(p.Position,
			math.Vec3{X: s, Y: s * 0.4, Z: s},
			p.Rotation,
			math.Vec3{X: p.Color[0], Y: p.Color[1], Z: p.Color[2]})
	}
}

// captureScreenshot grabs the last presented frame to a PNG.
func (g *Game) captureScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close tears the subsystems down in reverse creation order.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// tuningFromConfig overlays the user-facing knobs onto the default tuning,
// clamped to their documented ranges.
func tuningFromConfig(cfg config.ButtonConfig) button.Tuning {
	tun := button.DefaultTuning()
	tun.Softness = math.Clamp(cfg.Softness, 0.2, 2.0)
	tun.SpringK = math.Clamp(cfg.SpringK, 0.05, 0.3)
	tun.SpringDamping = math.Clamp(cfg.SpringDamping, 0.5, 0.85)
	tun.SnapLimit = math.Clamp(cfg.SnapLimit, 1.0, 4.0)
	tun.BeatPeriod = math.Clamp(cfg.BeatPeriod, 0.6, 3.0)
	tun.ConfettiCapacity = clampInt(cfg.ConfettiCapacity, 100, 2000)
	tun.ConfettiBurst = clampInt(cfg.ConfettiBurst, 50, 600)
	tun.DripCapacity = clampInt(cfg.DripCapacity, 10, 100)
	return tun
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
