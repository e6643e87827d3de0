package game

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/audio"
	"relicrun/internal/config"
	"relicrun/internal/world"
)

var (
	colorBgDark    = rl.NewColor(24, 24, 32, 230)
	colorBgElement = rl.NewColor(38, 38, 50, 255)
	colorAccent    = rl.NewColor(99, 102, 241, 255)
	colorText      = rl.NewColor(220, 220, 230, 255)
)

// Game is the windowed front end around a Session.
type Game struct {
	Session    *Session
	Renderer   *world.Renderer
	Audio      *audio.Bank
	Watcher    *config.Watcher
	TuningPath string
	SoundDir   string
	DebugMode  bool

	log *slog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(s *Session, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		Session:  s,
		Renderer: world.NewRenderer(),
		SoundDir: filepath.Join("assets", "sounds"),
		log:      log,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "relicrun")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	setupStyle()

	g.Audio = audio.Open(g.SoundDir, g.log)
	g.Session.Attach(g.Audio)
	defer audio.CloseDevice()
	defer g.Audio.Close()

	for !rl.WindowShouldClose() {
		g.pollReload()
		g.Update()
		g.Draw()
	}
}

func setupStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// pollReload drains the watcher without blocking the frame.
func (g *Game) pollReload() {
	if g.Watcher == nil {
		return
	}
	for {
		select {
		case file := <-g.Watcher.Events:
			g.reload(file)
		case err := <-g.Watcher.Errors:
			g.log.Warn("watch", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(file string) {
	if g.TuningPath != "" && filepath.Base(file) == filepath.Base(g.TuningPath) {
		t, err := config.Load(g.TuningPath)
		if err != nil {
			g.log.Error("reload tuning", "err", err)
			return
		}
		if err := g.Session.ApplyTuning(t); err != nil {
			g.log.Error("apply tuning", "err", err)
			return
		}
		g.log.Info("tuning reloaded", "file", file)
		return
	}
	reloaded, err := g.Session.ReloadIfCurrent(file)
	if err != nil {
		g.log.Error("reload level", "file", file, "err", err)
		return
	}
	if reloaded {
		g.log.Info("level reloaded", "file", file)
	}
}

func (g *Game) readInput() Input {
	var in Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	in.Jump = rl.IsKeyPressed(rl.KeySpace)
	in.ToggleView = rl.IsKeyPressed(rl.KeyV)

	// Mouse look is off while the debug panel owns the cursor
	if !g.DebugMode {
		delta := rl.GetMouseDelta()
		in.LookDX, in.LookDY = delta.X, delta.Y
	}
	return in
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		if g.DebugMode {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := g.Session.Restart(); err != nil {
			g.log.Error("restart", "err", err)
		}
	}

	if _, err := g.Session.Step(rl.GetFrameTime(), g.readInput()); err != nil {
		g.log.Error("step", "err", err)
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	s := g.Session
	camera := s.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	drawn := g.Renderer.DrawLevel(s.Level, camera)
	if !s.Camera.FirstPerson {
		g.Renderer.DrawPlayer(s.Player, s.Player.Flashing())
	}
	g.Renderer.DrawParticles(s.Particles)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI(drawn)
	rl.EndDrawing()
}

func (g *Game) DrawUI(drawn int) {
	s := g.Session
	rl.DrawText(fmt.Sprintf("%s  hearts %d  coins %d (%d left)", s.Level.Name, s.Player.Hearts, s.Level.Collected, s.Level.Remaining()), 10, 10, 20, rl.RayWhite)
	rl.DrawText("WASD move, Space jump, V view, R restart, F1 debug", 10, 35, 16, rl.Gray)
	rl.DrawFPS(10, 60)

	if !g.DebugMode {
		return
	}

	rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms  Entities: %d/%d", g.updateMs, g.drawMs, drawn, s.Level.Scene.ActiveCount()), 10, 85, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Particles: %d  Triggers: %d  Hits: %d  Restarts: %d", s.Particles.Len(), s.Stats.Triggers, s.Stats.Hits, s.Stats.Restarts), 10, 105, 16, rl.Green)

	panel := rl.Rectangle{X: float32(rl.GetScreenWidth()) - 270, Y: 10, Width: 260, Height: 170}
	rl.DrawRectangleRec(panel, colorBgDark)
	rl.DrawRectangleLinesEx(panel, 1, colorAccent)
	rl.DrawText("Debug", int32(panel.X)+10, int32(panel.Y)+8, 16, colorText)
	x, y := panel.X+90, panel.Y+35

	s.Camera.Distance = gui.Slider(rl.Rectangle{X: x, Y: y, Width: 120, Height: 18}, "Distance", fmt.Sprintf("%.1f", s.Camera.Distance), s.Camera.Distance, 3, 20)
	y += 26
	if g.Audio != nil {
		g.Audio.Master = gui.Slider(rl.Rectangle{X: x, Y: y, Width: 120, Height: 18}, "Volume", fmt.Sprintf("%.2f", g.Audio.Master), g.Audio.Master, 0, 1)
		y += 26
		g.Audio.Enabled = gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y, Width: 16, Height: 16}, "Sound", g.Audio.Enabled)
		y += 24
	}
	g.Renderer.ShowBounds = gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y, Width: 16, Height: 16}, "Show bounds", g.Renderer.ShowBounds)
	y += 24
	g.Renderer.ShowLights = gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y, Width: 16, Height: 16}, "Show lights", g.Renderer.ShowLights)
}
