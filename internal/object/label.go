package object

// Label is a line of text anchored at a logical position and centered on it.
// It is drawn through the chunk writer, on top of the canvas.
type Label struct {
	X, Y float64

	text string
}

// NewLabel creates a label centered at x, y.
func NewLabel(x, y float64, text string) *Label {
	return &Label{X: x, Y: y, text: text}
}

// SetText replaces the label's text.
func (l *Label) SetText(s string) {
	l.text = s
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// Update is a no-op for static text.
func (l *Label) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw writes the text centered on its anchor in the theme's label style.
func (l *Label) Draw(ctx DrawContext) error {
	if l.text == "" {
		return nil
	}
	col, row := ctx.Canvas.LogicalToTerminal(l.X, l.Y)
	col -= len(l.text) / 2
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	ctx.Writer.WriteAt(col, row, ctx.Theme.Label(l.text)+ctx.Theme.Reset())
	return nil
}
