package qlam

import (
	"fmt"
	"strings"
)

// Diagram is a 2D grid rendering of a Term, Tromp-style
// (https://tromp.github.io/cl/diagrams.html). Adapted from the
// teacher's diagram.go, which draws this style of diagram for the
// teacher's Object tree; generalized to the eight-variant Term set.
type Diagram struct {
	Grid   [][]rune
	Width  int
	Height int
}

// NewDiagram creates a blank diagram of the given dimensions.
func NewDiagram(width, height int) *Diagram {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	return &Diagram{Grid: grid, Width: width, Height: height}
}

// Set writes a character at the given position, ignoring out-of-range
// writes.
func (d *Diagram) Set(row, col int, ch rune) {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		d.Grid[row][col] = ch
	}
}

// Get reads the character at the given position.
func (d *Diagram) Get(row, col int) rune {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		return d.Grid[row][col]
	}
	return ' '
}

// ToUnicode renders the diagram as box-drawing text.
func (d *Diagram) ToUnicode() string {
	var sb strings.Builder
	for i, row := range d.Grid {
		for _, ch := range row {
			sb.WriteRune(ch)
		}
		if i < len(d.Grid)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ToSVG renders the diagram as an SVG document.
func (d *Diagram) ToSVG() string {
	const cellWidth = 20
	const cellHeight = 20

	width := d.Width * cellWidth
	height := d.Height * cellHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height))
	sb.WriteString("\n")
	sb.WriteString(`<style>line{stroke:black;stroke-width:2;stroke-linecap:round;}.dashed{stroke-dasharray:4,3;}text{font-family:monospace;font-size:14px;}</style>`)
	sb.WriteString("\n")

	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			ch := d.Grid[row][col]
			x := col*cellWidth + cellWidth/2
			y := row*cellHeight + cellHeight/2

			switch {
			case ch == '─' || ch == '━' || ch == '═':
				x1, x2 := col*cellWidth, (col+1)*cellWidth
				class := ""
				if ch == '═' {
					class = ` class="double"`
				}
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"%s/>`, x1, y, x2, y, class))
				sb.WriteString("\n")
			case ch == '│' || ch == '┃':
				y1, y2 := row*cellHeight, (row+1)*cellHeight
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, y1, x, y2))
				sb.WriteString("\n")
			case ch == '┄' || ch == '┆':
				y1, y2 := row*cellHeight, (row+1)*cellHeight
				x1, x2 := col*cellWidth, (col+1)*cellWidth
				if ch == '┄' {
					sb.WriteString(fmt.Sprintf(`<line class="dashed" x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y, x2, y))
				} else {
					sb.WriteString(fmt.Sprintf(`<line class="dashed" x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, y1, x, y2))
				}
				sb.WriteString("\n")
			case ch != ' ':
				sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">%c</text>`, x, y+5, ch))
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// diagramContext tracks drawing state across the recursive descent.
type diagramContext struct {
	currentCol int
}

// ToDiagram renders t as a Diagram.
func ToDiagram(t Term) *Diagram {
	width, height := calculateDimensions(t, 0)
	width += 2
	height += 2

	d := NewDiagram(width, height)
	ctx := &diagramContext{currentCol: 1}
	drawTerm(d, t, ctx, 1)
	return d
}

// calculateDimensions computes the grid size needed to draw t,
// grounded on the teacher's calculateDimensions, generalized from the
// three-variant Object set to all eight Term variants: Ket/Gate/Meas
// are leaves like Var, NonlinearAbs takes the same space as Abs (only
// its stroke style differs), and Bang adds one padding row/column for
// its dashed border.
func calculateDimensions(t Term, depth int) (width, height int) {
	switch n := t.(type) {
	case Var, Ket, Gate, Meas:
		return 2, depth + 1
	case Abs:
		w, h := calculateDimensions(n.Body, depth+1)
		return w + 2, maxInt(h, depth+2)
	case NonlinearAbs:
		w, h := calculateDimensions(n.Body, depth+1)
		return w + 2, maxInt(h, depth+2)
	case App:
		w1, h1 := calculateDimensions(n.Func, depth)
		w2, h2 := calculateDimensions(n.Arg, depth)
		return w1 + w2 + 2, maxInt(h1, h2)
	case Bang:
		w, h := calculateDimensions(n.Inner, depth+1)
		return w + 2, h + 1
	}
	return 4, depth + 1
}

// drawTerm draws t into d starting at row, returning the column of
// its leftmost connection point. Grounded on the teacher's
// drawObject.
func drawTerm(d *Diagram, t Term, ctx *diagramContext, row int) int {
	switch n := t.(type) {
	case Var:
		col := ctx.currentCol
		ctx.currentCol += 2
		for r := row; r < d.Height-1; r++ {
			d.Set(r, col, '│')
		}
		return col

	case Ket, Gate, Meas:
		// A leaf that binds nothing: a single labeled cell rather than
		// a line running down to a binder, per spec's diagram module.
		col := ctx.currentCol
		ctx.currentCol += 2
		d.Set(row, col, leafRune(n))
		return col

	case Abs:
		return drawBinder(d, n.Body, ctx, row, '─')

	case NonlinearAbs:
		return drawBinder(d, n.Body, ctx, row, '═')

	case App:
		funcCol := drawTerm(d, n.Func, ctx, row)
		argCol := drawTerm(d, n.Arg, ctx, row)
		if funcCol < argCol {
			for c := funcCol; c <= argCol; c++ {
				if d.Get(row, c) == ' ' {
					d.Set(row, c, '─')
				}
			}
		}
		return funcCol

	case Bang:
		startCol := ctx.currentCol
		innerCol := drawTerm(d, n.Inner, ctx, row+1)
		endCol := ctx.currentCol - 1
		for c := startCol; c <= endCol; c++ {
			d.Set(row, c, '┄')
		}
		d.Set(row, startCol, '┄')
		d.Set(row, endCol, '┄')
		for r := row; r <= row+1; r++ {
			d.Set(r, startCol, '┆')
			d.Set(r, endCol, '┆')
		}
		return innerCol
	}
	return ctx.currentCol
}

// drawBinder draws a single-line abstraction bar using barRune (solid
// for Abs, doubled for NonlinearAbs) and recurses into the body.
func drawBinder(d *Diagram, body Term, ctx *diagramContext, row int, barRune rune) int {
	startCol := ctx.currentCol
	for c := startCol; c < startCol+4 && c < d.Width; c++ {
		d.Set(row, c, barRune)
	}
	ctx.currentCol = startCol + 1
	drawTerm(d, body, ctx, row+1)
	return startCol
}

// leafRune returns the single character used to label a Ket, Gate, or
// Meas leaf cell.
func leafRune(t Term) rune {
	switch n := t.(type) {
	case Ket:
		if n.Bit {
			return '1'
		}
		return '0'
	case Gate:
		return []rune(n.Symbol)[0]
	case Meas:
		return 'M'
	}
	return '?'
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
