package game

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/universe"
)

// Visual characters for rendering
const (
	ShipChar     = '@'
	StarbaseChar = '◇'
)

// nebulaRamp maps background brightness to increasingly dense glyphs.
var nebulaRamp = []rune{' ', '·', '░', '▒'}

// cell is an integer galaxy coordinate.
type cell struct {
	X, Y int
}

// Explorer implements the space exploration game. The player flies a ship
// over an infinite seeded galaxy, warps into star systems, and journals
// each first visit.
type Explorer struct {
	config core.RuntimeConfig
	opts   universe.Options
	logger *log.Logger

	u *universe.Universe

	shipX, shipY int
	inSystem     bool
	current      *universe.StarSystem

	seen       map[cell]bool
	discovered int
	paused     bool
	tickCount  int
}

// NewExplorer creates an explorer over the given universe options.
// A nil logger disables diagnostics.
func NewExplorer(opts universe.Options, logger *log.Logger) *Explorer {
	return &Explorer{opts: opts, logger: logger}
}

// Reset initializes or restarts the session. A new seed builds a new
// galaxy; the discovery log of previous sessions lives in storage, not
// here.
func (g *Explorer) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.u = universe.New(cfg.Seed, g.opts, g.logger)
	g.shipX, g.shipY = 0, 0
	g.inSystem = false
	g.current = nil
	g.seen = make(map[cell]bool)
	g.discovered = 0
	g.paused = false
	g.tickCount = 0
}

// Universe exposes the underlying galaxy, for headless inspection.
func (g *Explorer) Universe() *universe.Universe {
	return g.u
}

// Step advances the game by one tick.
func (g *Explorer) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.inSystem {
		return g.stepSystem(in)
	}
	return g.stepGalaxy(in)
}

// stepGalaxy handles ship movement and warping on the galaxy map.
func (g *Explorer) stepGalaxy(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionUp) {
		g.shipY--
	}
	if in.Has(core.ActionDown) {
		g.shipY++
	}
	if in.Has(core.ActionLeft) {
		g.shipX--
	}
	if in.Has(core.ActionRight) {
		g.shipX++
	}

	var discovery *core.Discovery
	if in.Has(core.ActionWarp) && g.u.HasStar(g.shipX, g.shipY) {
		g.inSystem = true
		g.current = g.u.SystemAt(g.shipX, g.shipY)
		discovery = g.noteDiscovery(g.current)
	}

	return core.StepResult{State: g.State(), Discovery: discovery}
}

// stepSystem advances orbits inside the current system.
func (g *Explorer) stepSystem(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionBack) {
		g.inSystem = false
		g.current = nil
		return core.StepResult{State: g.State()}
	}

	tickRate := g.config.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.u.Advance(g.current, 1.0/float64(tickRate))

	return core.StepResult{State: g.State()}
}

// noteDiscovery records a first visit this session and builds the event
// the platform persists. Revisits return nil.
func (g *Explorer) noteDiscovery(sys *universe.StarSystem) *core.Discovery {
	key := cell{X: sys.X, Y: sys.Y}
	if g.seen[key] {
		return nil
	}
	g.seen[key] = true
	g.discovered++

	return &core.Discovery{
		X:        sys.X,
		Y:        sys.Y,
		Name:     sys.Name,
		Class:    sys.Class.Code,
		Planets:  sys.PlanetCount(),
		Starbase: sys.Starbase != nil,
	}
}

// Render draws the current view to the screen.
func (g *Explorer) Render(dst *core.Screen) {
	dst.Clear()
	if g.u == nil {
		return
	}

	if g.inSystem {
		g.renderSystem(dst)
	} else {
		g.renderGalaxy(dst)
	}

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// renderGalaxy draws the nebula background, stars and the ship, with the
// viewport centered on the ship.
func (g *Explorer) renderGalaxy(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx := g.shipX + x - cx
			wy := g.shipY + y - cy

			if g.u.HasStar(wx, wy) {
				sys := g.u.SystemAt(wx, wy)
				dst.SetCell(x, y, sys.Class.Glyph, sys.Class.Color)
				continue
			}

			col := g.u.NebulaColor(float64(wx), float64(wy))
			dst.SetCell(x, y, nebulaGlyph(col), col)
		}
	}

	dst.SetCell(cx, cy, ShipChar, core.White)
	g.drawGalaxyHUD(dst)
}

// nebulaGlyph picks a density glyph for a background color. The palette
// is deliberately dark, so the thresholds sit low.
func nebulaGlyph(col core.RGB) rune {
	lum := col.Luminance()
	switch {
	case lum < 0.02:
		return nebulaRamp[0]
	case lum < 0.06:
		return nebulaRamp[1]
	case lum < 0.12:
		return nebulaRamp[2]
	default:
		return nebulaRamp[3]
	}
}

func (g *Explorer) drawGalaxyHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" (%d, %d)  discovered: %d ", g.shipX, g.shipY, g.discovered)
	dst.DrawText(1, 0, hud)

	if g.u.HasStar(g.shipX, g.shipY) {
		sys := g.u.SystemAt(g.shipX, g.shipY)
		dst.DrawTextColored(1, dst.Height()-1,
			fmt.Sprintf(" %s (class %s)  press enter to warp ", sys.Name, sys.Class.Code),
			sys.Class.Color)
	}
}

// renderSystem draws the current system: star at center, bodies at their
// orbital positions scaled to fit the viewport. Cells are roughly twice
// as tall as wide, so x uses double the y scale.
func (g *Explorer) renderSystem(dst *core.Screen) {
	sys := g.current
	if sys == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2

	scaleY := float64(h-4) / 2.0 / sys.EdgeRadius
	scaleX := scaleY * 2
	if maxX := float64(w-4) / 2.0 / sys.EdgeRadius; scaleX > maxX {
		scaleX = maxX
	}

	for _, p := range sys.Planets {
		if p != nil {
			drawOrbitRing(dst, cx, cy, p.Distance, scaleX, scaleY)
		}
	}
	if sb := sys.Starbase; sb != nil {
		drawOrbitRing(dst, cx, cy, sb.Distance, scaleX, scaleY)
	}

	for _, p := range sys.Planets {
		if p == nil {
			continue
		}
		x := cx + int(p.X*scaleX)
		y := cy + int(p.Y*scaleY)
		dst.SetCell(x, y, p.Type.Glyph(), p.Type.Color())
	}

	if sb := sys.Starbase; sb != nil {
		x := cx + int(sb.X*scaleX)
		y := cy + int(sb.Y*scaleY)
		dst.SetCell(x, y, StarbaseChar, core.White)
	}

	dst.SetCell(cx, cy, sys.Class.Glyph, sys.Class.Color)
	g.drawSystemHUD(dst, sys)
}

// ringColor is the dim gray used for orbit rings.
var ringColor = core.RGB{R: 60, G: 60, B: 70}

// drawOrbitRing traces one orbit as sparse dots, skipping occupied cells
// so bodies always draw on top.
func drawOrbitRing(dst *core.Screen, cx, cy int, distance, scaleX, scaleY float64) {
	const steps = 128
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x := cx + int(math.Cos(a)*distance*scaleX)
		y := cy + int(math.Sin(a)*distance*scaleY)
		if dst.Get(x, y) == ' ' {
			dst.SetCell(x, y, '·', ringColor)
		}
	}
}

func (g *Explorer) drawSystemHUD(dst *core.Screen, sys *universe.StarSystem) {
	title := fmt.Sprintf(" %s  %s  planets: %d ", sys.Name, sys.Class.Name, sys.PlanetCount())
	dst.DrawTextColored(1, 0, title, sys.Class.Color)

	footer := " esc: leave system "
	if sys.Starbase != nil {
		footer = " starbase in orbit  " + footer
	}
	dst.DrawText(1, dst.Height()-1, footer)
}

// State returns the current game state.
func (g *Explorer) State() core.GameState {
	return core.GameState{
		Discovered: g.discovered,
		InSystem:   g.inSystem,
		Paused:     g.paused,
	}
}
