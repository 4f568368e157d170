package ui2d

import (
	"github.com/Faultbox/midgard-nav/internal/engine/viewport"
	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Canvas is the drawing surface used by Drawer. Renderer implements it.
type Canvas interface {
	DrawRect(x, y, width, height float32, color Color)
	DrawRectOutline(x, y, width, height, thickness float32, color Color)
	DrawPanel(x, y, width, height float32, bg, border Color)
	DrawText(x, y float32, text string, scale float32, color Color)
	MeasureText(text string, scale float32) (float32, float32)
}

// Display is the source of what to draw: layers bottom first, and the
// on-screen rectangle of each element.
type Display interface {
	Layers() []viewport.Layer
	Geometry(e nav.ElementID) (math.Rect, bool)
}

// Theme holds the sizes and colors the drawer does not take from elements.
type Theme struct {
	Padding      float32
	TextScale    float32
	TitleScale   float32
	SelectorSize float32
	GrowOnFocus  float32 // pixels added around an element at full animation

	PanelBg      Color
	PanelBorder  Color
	TitleColor   Color
	MessageColor Color
	Outline      Color
	Selector     Color
}

// DefaultTheme returns the menu theme.
func DefaultTheme() Theme {
	return Theme{
		Padding:      12,
		TextScale:    1,
		TitleScale:   2,
		SelectorSize: 8,
		GrowOnFocus:  3,

		PanelBg:      ColorPanelBg,
		PanelBorder:  ColorPanelBorder,
		TitleColor:   ColorText,
		MessageColor: ColorTextDim,
		Outline:      ColorHighlight,
		Selector:     ColorSelector,
	}
}

// Drawer draws every displayed container of a navigator.
type Drawer struct {
	nav     *nav.Navigator
	display Display
	theme   Theme
}

// NewDrawer returns a drawer for the containers of n shown on display.
func NewDrawer(n *nav.Navigator, display Display, theme Theme) *Drawer {
	return &Drawer{nav: n, display: display, theme: theme}
}

// Theme returns the drawer's theme.
func (d *Drawer) Theme() Theme { return d.theme }

// Draw paints all layers, bottom first.
func (d *Drawer) Draw(c Canvas) {
	for _, l := range d.display.Layers() {
		root := d.nav.Container(l.Container)
		if root == nil {
			continue
		}
		d.drawLayer(c, root)
	}
}

func (d *Drawer) drawLayer(c Canvas, root *nav.Container) {
	containers := d.tree(root)

	bounds, ok := d.bounds(containers)
	if !ok {
		return
	}
	t := d.theme
	header := d.headerHeight(c, root)
	panel := math.Rect{
		X: bounds.X - t.Padding,
		Y: bounds.Y - t.Padding - header,
		W: bounds.W + 2*t.Padding,
		H: bounds.H + 2*t.Padding + header,
	}
	c.DrawPanel(panel.X, panel.Y, panel.W, panel.H, t.PanelBg, t.PanelBorder)

	y := panel.Y + t.Padding
	if title := root.Title(); title != "" {
		c.DrawText(panel.X+t.Padding, y, title, t.TitleScale, t.TitleColor)
		_, h := c.MeasureText(title, t.TitleScale)
		y += h
	}
	if msg := root.Message(); msg != "" {
		c.DrawText(panel.X+t.Padding, y, msg, t.TextScale, t.MessageColor)
	}

	for _, ct := range containers {
		for _, id := range ct.Elements() {
			d.drawElement(c, id)
		}
	}
	for _, ct := range containers {
		d.drawSelector(c, ct)
	}
}

func (d *Drawer) headerHeight(c Canvas, root *nav.Container) float32 {
	var h float32
	if title := root.Title(); title != "" {
		_, th := c.MeasureText(title, d.theme.TitleScale)
		h += th
	}
	if msg := root.Message(); msg != "" {
		_, mh := c.MeasureText(msg, d.theme.TextScale)
		h += mh
	}
	if h > 0 {
		h += d.theme.Padding
	}
	return h
}

func (d *Drawer) drawElement(c Canvas, id nav.ElementID) {
	e := d.nav.Element(id)
	if e == nil || !e.IsVisible() {
		return
	}
	r, ok := d.display.Geometry(id)
	if !ok {
		return
	}
	if a := e.Animation(); a != nil && a.Progress() > 0 {
		g := d.theme.GrowOnFocus * a.Progress()
		r = math.Rect{X: r.X - g, Y: r.Y - g, W: r.W + 2*g, H: r.H + 2*g}
	}

	fill := FromNav(e.DisplayColor())
	if !e.IsEnabled() {
		fill = fill.Darken(0.5)
	}
	c.DrawRect(r.X, r.Y, r.W, r.H, fill)
	if style, forced := e.ForcedStyle(); forced && style == nav.StyleHovered {
		c.DrawRectOutline(r.X, r.Y, r.W, r.H, 2, d.theme.Outline)
	}

	if text := e.Text(); text != "" {
		tw, th := c.MeasureText(text, d.theme.TextScale)
		c.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, text, d.theme.TextScale, FromNav(e.TextColor()))
	}
}

func (d *Drawer) drawSelector(c Canvas, ct *nav.Container) {
	s := ct.Selector()
	if s == nil || !ct.IsSelectorVisible() {
		return
	}
	p := s.Translation()
	scale := s.Scale()
	w := d.theme.SelectorSize * scale.X
	h := d.theme.SelectorSize * scale.Y
	c.DrawRect(p.X-w/2, p.Y-h/2, w, h, d.theme.Selector)
}

// tree lists root and its nested containers breadth first.
func (d *Drawer) tree(root *nav.Container) []*nav.Container {
	out := []*nav.Container{root}
	for i := 0; i < len(out); i++ {
		for _, id := range out[i].Children() {
			if child := d.nav.Container(id); child != nil {
				out = append(out, child)
			}
		}
	}
	return out
}

// bounds is the union of the visible element rectangles.
func (d *Drawer) bounds(containers []*nav.Container) (math.Rect, bool) {
	var (
		minX, minY, maxX, maxY float32
		found                  bool
	)
	for _, ct := range containers {
		for _, id := range ct.Elements() {
			e := d.nav.Element(id)
			if e == nil || !e.IsVisible() {
				continue
			}
			r, ok := d.display.Geometry(id)
			if !ok {
				continue
			}
			if !found {
				minX, minY, maxX, maxY = r.X, r.Y, r.X+r.W, r.Y+r.H
				found = true
				continue
			}
			minX = min(minX, r.X)
			minY = min(minY, r.Y)
			maxX = max(maxX, r.X+r.W)
			maxY = max(maxY, r.Y+r.H)
		}
	}
	return math.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, found
}
