package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/OpticalFlyer/shapeui/geom"
	"github.com/OpticalFlyer/shapeui/render"
	"github.com/OpticalFlyer/shapeui/ui"
)

// Window and input settings
const (
	screenWidth  = 800
	screenHeight = 600
	windowTitle  = "shapeui"

	toggleUIKey    = ebiten.KeyD
	toggleDebugKey = ebiten.KeyF1
)

var backgroundColor = color.RGBA{220, 220, 220, 255}

// App implements ebiten.Game interface.
type App struct {
	ui        *ui.Manager
	canvas    *render.Canvas
	showUI    bool
	debugMode bool

	// Last cursor position forwarded as a move
	lastMouseX int
	lastMouseY int
	mouseSeen  bool

	// Touches already forwarded as presses
	activeTouches map[ebiten.TouchID]bool
}

// NewApp creates the host and registers the example buttons
func NewApp() *App {
	a := &App{
		ui:            ui.NewManager(),
		canvas:        render.NewCanvas(),
		showUI:        true,
		activeTouches: make(map[ebiten.TouchID]bool),
	}
	a.setup()
	return a
}

func (a *App) setup() {
	a.ui.AddShape(100, 100, 50, 50, ui.Rectangle, ui.ButtonConfig{
		Label:  "Button 1",
		Action: ui.ActionFunc(a.action1),
		Type:   ui.Push,
	})
	a.ui.AddShape(100, 200, 50, 50, ui.Ellipse, ui.ButtonConfig{
		Label:  "Button 2",
		Action: ui.ActionFunc(a.action2),
		Type:   ui.Toggle,
	})
	a.ui.AddShape(200, 200, 100, 50, ui.Ellipse, ui.ButtonConfig{
		Label:  "Button 3",
		Action: ui.ActionFunc(a.action3),
		Type:   ui.Toggle,
	})
	a.ui.AddPolygon(100, 300, []geom.Vec2{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 50, Y: 0}}, ui.ButtonConfig{
		Label:  "Button 4",
		Action: ui.ActionFunc(a.action4),
		Type:   ui.Push,
	})
	a.ui.AddShape(250, 100, 80, 40, ui.Rectangle, ui.ButtonConfig{
		Label:    "Button 5",
		Rotation: 45,
		Action:   ui.ActionFunc(a.action5),
		Type:     ui.Push,
	})
}

func (a *App) action1() { log.Printf("Action 1 executed!") }
func (a *App) action2() { log.Printf("Action 2 executed!") }
func (a *App) action3() { log.Printf("Action 3 executed!") }
func (a *App) action4() { log.Printf("Action 4 executed!") }
func (a *App) action5() { log.Printf("Action 5 executed!") }

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(toggleUIKey) {
		a.showUI = !a.showUI
	}
	if inpututil.IsKeyJustPressed(toggleDebugKey) {
		a.debugMode = !a.debugMode
	}

	// Forward the cursor only when it moved
	x, y := ebiten.CursorPosition()
	if !a.mouseSeen || x != a.lastMouseX || y != a.lastMouseY {
		a.ui.OnMouseMoved(x, y)
		a.lastMouseX, a.lastMouseY = x, y
		a.mouseSeen = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.ui.OnMousePressed(x, y)
	}

	a.handleTouchEvents()

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if a.showUI {
		a.canvas.Begin(screen)
		a.ui.Draw(a.canvas)
		a.canvas.End()
	}

	if a.debugMode {
		ebitenutil.DebugPrint(screen, a.debugText())
	}
}

// debugText summarizes frame rate and button state
func (a *App) debugText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.2f TPS: %.2f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&sb, "UI visible: %v  hovered: %v\n", a.showUI, a.ui.IsHovered())
	for _, b := range a.ui.Buttons() {
		fmt.Fprintf(&sb, "%-9s %-9s %-6s %s\n", b.Label, b.Shape, b.Type, b.State)
	}
	return sb.String()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	app := NewApp()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(errors.Wrap(err, "run game"))
	}
}
