package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/chem"
)

// SoluteOption is one catalog entry offered by the panel.
type SoluteOption struct {
	Name    string
	StockPH float64
	Swatch  rl.Color
}

// ControlsState is the model state the panel renders from.
type ControlsState struct {
	Solutes      []SoluteOption
	ActiveSolute int // index into Solutes, -1 when a custom solute is active

	DropperFlow, FaucetFlow, DrainFlow float32
	DropperMax, FaucetMax, DrainMax    float32

	DropperEnabled, FaucetEnabled, DrainEnabled bool
	Autofilling                                 bool
}

// Action is what the user did to the panel this frame.
type Action struct {
	SoluteSelected int // index into Solutes, -1 = none
	CustomPH       float32
	CustomPHSet    bool

	DropperFlow, FaucetFlow, DrainFlow float32

	Reset bool
}

// ControlsPanel renders the solute selector, the custom pH slider, and
// the three flow sliders.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	// Slider position kept locally so dragging does not re-trigger a
	// solute change until the user applies it.
	customPH float32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		customPH: float32(chem.NeutralPH),
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) { c.visible = visible }

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool { return c.visible }

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and reports user actions.
func (c *ControlsPanel) Draw(state ControlsState) Action {
	action := Action{SoluteSelected: -1}
	if !c.visible {
		return action
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	rows := int32(len(state.Solutes))
	panelHeight := padding*2 +
		lineHeight + 4 + // title
		lineHeight + rows*(r.Theme.ButtonHeight+2) + 6 + // catalog
		lineHeight + r.Theme.SliderHeight + r.Theme.ButtonHeight + 10 + // custom pH
		lineHeight + 3*(r.Theme.SliderHeight+lineHeight) + 8 + // flows
		r.Theme.ButtonHeight + 6 // reset

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	w := c.width - padding*2
	y := c.y + padding

	rl.DrawText("Controls", x, y, 16, rl.White)
	y += lineHeight + 4

	y = c.drawCatalog(x, y, w, state, &action)
	y = c.drawCustomPH(x, y, w, &action)
	y = c.drawFlows(x, y, w, state, &action)

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 80, Height: float32(r.Theme.ButtonHeight)}, "Reset") {
		action.Reset = true
	}

	return action
}

// drawCatalog renders one button per catalog solute with its stock
// color swatch.
func (c *ControlsPanel) drawCatalog(x, y, w int32, state ControlsState, action *Action) int32 {
	r := c.renderer
	y = r.DrawSectionHeader(x, y, "Solute")

	for i, s := range state.Solutes {
		swatch := rl.Rectangle{X: float32(x), Y: float32(y) + 4, Width: 14, Height: 14}
		rl.DrawRectangleRec(swatch, s.Swatch)
		rl.DrawRectangleLinesEx(swatch, 1, r.Theme.PanelBorder)

		if i == state.ActiveSolute {
			rl.DrawRectangle(x-4, y+2, 2, r.Theme.ButtonHeight-4, r.Theme.ActiveColor)
		}

		label := fmt.Sprintf("%s (pH %.1f)", s.Name, s.StockPH)
		bounds := rl.Rectangle{
			X:      float32(x) + 20,
			Y:      float32(y),
			Width:  float32(w - 20),
			Height: float32(r.Theme.ButtonHeight),
		}
		if gui.Button(bounds, label) {
			action.SoluteSelected = i
		}
		y += r.Theme.ButtonHeight + 2
	}

	return y + 6
}

// drawCustomPH renders the custom stock slider with an apply button, so
// dragging only takes effect once.
func (c *ControlsPanel) drawCustomPH(x, y, w int32, action *Action) int32 {
	r := c.renderer
	y = r.DrawSectionHeader(x, y, "Custom pH")

	c.customPH = gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w - 50), Height: float32(r.Theme.SliderHeight)},
		"0", "14",
		c.customPH, float32(chem.MinPH), float32(chem.MaxPH),
	)
	rl.DrawText(fmt.Sprintf("%.1f", c.customPH), x+w-34, y+4, r.Theme.FontSize, r.Theme.ValueColor)
	y += r.Theme.SliderHeight + 4

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 80, Height: float32(r.Theme.ButtonHeight)}, "Apply") {
		action.CustomPH = c.customPH
		action.CustomPHSet = true
	}

	return y + r.Theme.ButtonHeight + 6
}

// drawFlows renders the three flow sliders. Disabled devices show a
// dead slider pinned at zero.
func (c *ControlsPanel) drawFlows(x, y, w int32, state ControlsState, action *Action) int32 {
	r := c.renderer
	y = r.DrawSectionHeader(x, y, "Flow")

	action.DropperFlow = c.drawFlowSlider(x, &y, w, "Dropper", state.DropperFlow, state.DropperMax, state.DropperEnabled)
	action.FaucetFlow = c.drawFlowSlider(x, &y, w, "Water", state.FaucetFlow, state.FaucetMax, state.FaucetEnabled)
	action.DrainFlow = c.drawFlowSlider(x, &y, w, "Drain", state.DrainFlow, state.DrainMax, state.DrainEnabled)

	if state.Autofilling {
		rl.DrawText("autofilling...", x, y, r.Theme.FontSize, r.Theme.SectionHeader)
	}
	return y + 8
}

func (c *ControlsPanel) drawFlowSlider(x int32, y *int32, w int32, label string, value, max float32, enabled bool) float32 {
	r := c.renderer

	labelColor := r.Theme.LabelColor
	if !enabled {
		labelColor = r.Theme.DisabledColor
		gui.Disable()
	}
	rl.DrawText(label, x, *y, r.Theme.FontSize, labelColor)
	*y += r.Theme.LineHeight

	bounds := rl.Rectangle{X: float32(x), Y: float32(*y), Width: float32(w - 60), Height: float32(r.Theme.SliderHeight)}
	next := gui.SliderBar(bounds, "", "", value, 0, max)
	rl.DrawText(fmt.Sprintf("%.2f L/s", next), x+w-56, *y+4, r.Theme.FontSize, labelColor)
	*y += r.Theme.SliderHeight

	if !enabled {
		gui.Enable()
		return 0
	}
	return next
}
