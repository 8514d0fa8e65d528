package ui

import (
	"io"
	"log"

	"github.com/OpticalFlyer/shapeui/geom"
)

// Handle identifies a button inside a Manager. Handles stay valid while more
// buttons are added and go stale when the Manager is cleared.
type Handle struct {
	index int
	gen   uint32
}

// ButtonConfig carries the optional fields of the convenience add calls
type ButtonConfig struct {
	Label    string
	Rotation float64
	Action   Action
	Type     Type
	Name     string
}

// Manager owns a set of buttons and the action registry used to bind them.
// It is not safe for concurrent use; all calls belong on the game loop.
type Manager struct {
	buttons  []*Button
	registry *Registry
	palette  Palette
	gen      uint32
	logger   *log.Logger
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{
		buttons:  make([]*Button, 0),
		registry: NewRegistry(),
		palette:  DefaultPalette(),
		logger:   log.New(io.Discard, "", 0),
	}
}

// SetLogger routes debug output to l. A nil logger silences it.
func (m *Manager) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	m.logger = l
}

// SetPalette replaces the colors used by Draw
func (m *Manager) SetPalette(p Palette) {
	m.palette = p
}

// Palette returns the colors used by Draw
func (m *Manager) Palette() Palette {
	return m.palette
}

// Registry returns the manager's action registry
func (m *Manager) Registry() *Registry {
	return m.registry
}

// RegisterAction binds name to a in the registry, replacing any previous
// entry. Buttons added earlier keep the action they were added with.
func (m *Manager) RegisterAction(name string, a Action) {
	m.registry.Register(name, a)
	m.logger.Printf("registered action %q", name)
}

// RegisterFunc is RegisterAction for a plain function
func (m *Manager) RegisterFunc(name string, fn func()) {
	m.RegisterAction(name, ActionFunc(fn))
}

// HasAction reports whether name is registered
func (m *Manager) HasAction(name string) bool {
	return m.registry.Has(name)
}

// AddButton stores a copy of b. When b.Name is registered, the registry's
// action replaces b.Action; an unregistered name leaves b.Action as is.
//
// This differs from AddShape and AddPolygon, where an unregistered name
// falls back to the action passed in the config.
func (m *Manager) AddButton(b Button) Handle {
	if b.Name != "" {
		if a, ok := m.registry.Lookup(b.Name); ok {
			b.Action = a
		}
	}
	return m.add(&b)
}

// AddShape adds a rectangle or ellipse button with its top-left corner at
// (x, y). Negative extents are clamped to zero.
func (m *Manager) AddShape(x, y, w, h float64, shape Shape, cfg ButtonConfig) Handle {
	b := &Button{
		Position: geom.Vec2{X: x, Y: y},
		Size:     geom.Vec2{X: max(w, 0), Y: max(h, 0)},
		Rotation: cfg.Rotation,
		Shape:    shape,
		Type:     cfg.Type,
		Label:    cfg.Label,
		Name:     cfg.Name,
		Action:   m.resolve(cfg),
	}
	return m.add(b)
}

// AddPolygon adds a polygon button. points are relative to (x, y) and are
// stored unmodified; Size becomes the extent of their bounding box.
func (m *Manager) AddPolygon(x, y float64, points []geom.Vec2, cfg ButtonConfig) Handle {
	pts := make([]geom.Vec2, len(points))
	copy(pts, points)

	b := &Button{
		Position: geom.Vec2{X: x, Y: y},
		Size:     geom.Extent(pts),
		Rotation: cfg.Rotation,
		Shape:    Polygon,
		Points:   pts,
		Type:     cfg.Type,
		Label:    cfg.Label,
		Name:     cfg.Name,
		Action:   m.resolve(cfg),
	}
	return m.add(b)
}

// resolve picks the action for a convenience add: a registered name wins,
// otherwise the config's own action is used.
func (m *Manager) resolve(cfg ButtonConfig) Action {
	if cfg.Name != "" {
		if a, ok := m.registry.Lookup(cfg.Name); ok {
			return a
		}
	}
	return cfg.Action
}

func (m *Manager) add(b *Button) Handle {
	m.buttons = append(m.buttons, b)
	m.logger.Printf("added %s button %q (name %q) at %v size %v rot %.1f",
		b.Shape, b.Label, b.Name, b.Position, b.Size, b.Rotation)
	return Handle{index: len(m.buttons) - 1, gen: m.gen}
}

// Button resolves a handle. It returns false for handles issued before the
// last Clear.
func (m *Manager) Button(h Handle) (*Button, bool) {
	if h.gen != m.gen || h.index < 0 || h.index >= len(m.buttons) {
		return nil, false
	}
	return m.buttons[h.index], true
}

// Buttons returns the buttons in draw order
func (m *Manager) Buttons() []*Button {
	out := make([]*Button, len(m.buttons))
	copy(out, m.buttons)
	return out
}

func (m *Manager) Len() int {
	return len(m.buttons)
}

// Clear removes all buttons and registry entries and invalidates every
// outstanding handle.
func (m *Manager) Clear() {
	m.buttons = make([]*Button, 0)
	m.registry.Reset()
	m.gen++
	m.logger.Printf("cleared buttons and actions")
}

// Draw renders every button in order
func (m *Manager) Draw(c Canvas) {
	for _, b := range m.buttons {
		drawButton(c, b, m.palette)
	}
}

// OnMouseMoved recomputes the hover flag of every button
func (m *Manager) OnMouseMoved(x, y int) {
	p := geom.Vec2{X: float64(x), Y: float64(y)}
	for _, b := range m.buttons {
		b.Hovered = b.Contains(p)
	}
}

// OnMousePressed presses every button under (x, y). Overlapping buttons all
// fire, in draw order.
//
// Actions run synchronously. Buttons added by an action are not tested for
// the current press, and an action that calls Clear stops the dispatch.
func (m *Manager) OnMousePressed(x, y int) {
	p := geom.Vec2{X: float64(x), Y: float64(y)}
	gen := m.gen
	n := len(m.buttons)
	for i := 0; i < n; i++ {
		if m.gen != gen {
			return
		}
		b := m.buttons[i]
		if b.Contains(p) {
			b.press()
		}
	}
}

// IsHovered reports whether any button was under the cursor at the last
// OnMouseMoved.
func (m *Manager) IsHovered() bool {
	for _, b := range m.buttons {
		if b.Hovered {
			return true
		}
	}
	return false
}

// Hovered returns handles of the buttons currently hovered
func (m *Manager) Hovered() []Handle {
	var hs []Handle
	for i, b := range m.buttons {
		if b.Hovered {
			hs = append(hs, Handle{index: i, gen: m.gen})
		}
	}
	return hs
}
