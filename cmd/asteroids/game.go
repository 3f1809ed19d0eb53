package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/plus3/asteroids/camera"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/debugui"
	debugui_ebiten "github.com/plus3/asteroids/debugui/ebiten"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/render"
	"github.com/plus3/asteroids/world"
)

// Game implements ebiten.Game. Input is polled once per Update, routed through
// the dispatcher, and the world advances by a fixed step.
type Game struct {
	logger  *zap.Logger
	session *world.Session
	tick    float32

	camera      *camera.Camera
	topDown     *camera.TopDownController
	firstPerson *camera.FirstPersonController
	controller  camera.Controller
	ground      camera.Plane

	dispatcher *input.Dispatcher
	poller     *poller
	cursor     mgl32.Vec2

	overlay  *debugui.Overlay
	backend  *debugui_ebiten.ImguiBackend
	renderer *render.Renderer
}

func NewGame(cfg *config.Config, session *world.Session, backend *debugui_ebiten.ImguiBackend, logger *zap.Logger) *Game {
	cam := camera.New(cfg.Camera.FieldOfView, mgl32.Vec3{0, 0, 1})
	cam.SetNearPlane(cfg.Camera.NearPlane)
	cam.SetFarPlane(cfg.Camera.FarPlane)
	cam.Resize(float32(cfg.Window.Width), float32(cfg.Window.Height))

	ground := camera.GroundPlane()
	g := &Game{
		logger:   logger,
		session:  session,
		tick:     1 / float32(cfg.Simulation.TPS),
		camera:   cam,
		topDown:  camera.NewTopDownController(cam, ground, cfg.Camera.Height, cfg.Camera.KeyboardSpeed),
		ground:   ground,
		poller:   newPoller(),
		overlay:  debugui.NewGameOverlay(session),
		backend:  backend,
		renderer: render.NewRenderer(),
	}
	g.firstPerson = camera.NewFirstPersonController(cam, cfg.Camera.MouseSensitivity, cfg.Camera.FlySpeed)

	g.controller = g.topDown
	if cfg.Camera.Mode == config.CameraModeFirstPerson {
		g.controller = g.firstPerson
	}
	g.dispatcher = input.NewDispatcher(&gameplay{game: g}, g.controller)
	return g
}

// toggleController switches between the top-down and first-person controllers.
func (g *Game) toggleController() {
	next := camera.Controller(g.topDown)
	if g.controller == camera.Controller(g.topDown) {
		next = g.firstPerson
	}
	g.controller.Release()
	g.dispatcher.Replace(g.controller, next)
	g.controller = next
	g.logger.Debug("camera controller switched", zap.String("controller", fmt.Sprintf("%T", next)))
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	g.overlay.Render()

	g.cursor = g.poller.poll(g.dispatcher, g.overlay.InputState(), g.camera.Size())
	g.controller.Tick(g.tick)
	g.updateCursor()

	g.session.World.Tick(g.tick)

	g.backend.EndFrame()
	return nil
}

// updateCursor projects the mouse onto the ground plane. When the ray misses the
// previous cursor position is kept.
func (g *Game) updateCursor() {
	ray, err := g.camera.CreateRayForMouse(g.cursor)
	if err != nil {
		g.logger.Debug("cursor ray", zap.Error(err))
		return
	}
	// Looking at the horizon is routine in first person; keep the last cursor.
	p, err := camera.Intersect(g.ground, ray)
	if err != nil {
		g.logger.Debug("cursor off ground", zap.Error(err))
		return
	}
	pos := p.Vec2()
	g.session.World.SetCursorPosition(pos)
	g.session.Construction.SetCursorPosition(pos)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.session.World.Render(g.renderer, g.camera.ProjectionViewMatrix(), g.session.Construction)

	resources := g.session.World.Resources()
	cursor := g.session.World.CursorPosition()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Electricity: %d  Minerals: %d\nCursor: %.1f, %.1f  Construction: %s\nTab: camera  R: regenerate  F1: debug UI",
		resources.Electricity(), resources.Minerals(),
		cursor.X(), cursor.Y(), g.session.Construction.State()))

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	g.camera.Resize(float32(outsideWidth), float32(outsideHeight))
	return outsideWidth, outsideHeight
}

// gameplay handles construction and session keys ahead of the camera controller.
type gameplay struct {
	input.NopHandler
	game *Game
}

func (h *gameplay) OnMousePressed(event input.MouseEvent) bool {
	g := h.game
	construction := g.session.Construction
	switch event.Button {
	case input.MouseButtonLeft:
		if construction.IsBuilding() {
			construction.Build()
			return true
		}
		if id := g.session.World.EntityUnderCursor(); id.IsValid() {
			if e, ok := g.session.World.Entity(id); ok {
				g.logger.Debug("entity picked", zap.Stringer("type", e.Type), zap.Uint32("index", id.Index()))
			}
		}
	case input.MouseButtonRight:
		if construction.IsBuilding() {
			construction.Cancel()
			return true
		}
	}
	return false
}

func (h *gameplay) OnKeyPressed(event input.KeyEvent) {
	g := h.game
	switch event.Key {
	case input.KeyEscape:
		g.session.Construction.Cancel()
	case input.KeyTab:
		g.toggleController()
	case input.KeyF1:
		g.overlay.Toggle()
	case input.KeyR:
		if err := g.session.Regenerate(); err != nil {
			g.logger.Error("regenerate failed", zap.Error(err))
		}
	case input.Key1, input.Key2, input.Key3, input.Key4:
		buildable := debugui.BuildableTypes(g.session.Prefabs)
		i := int(event.Key - input.Key1)
		if i < len(buildable) {
			if err := g.session.Construction.StartBuilding(buildable[i]); err != nil {
				g.logger.Warn("start building", zap.Error(err))
			}
		}
	}
}
