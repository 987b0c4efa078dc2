package tui

// layer tags which kind of geometry lit a cell; higher layers win.
type layer uint8

const (
	layerNone layer = iota
	layerFill
	layerPolygon
	layerLine
	layerWindow
	layerPreview
	layerCursor
)

// brailleBuf is a dot canvas with 2x4 dots per terminal cell.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	layer [][]layer // topmost layer per cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	l := make([][]layer, h)
	for i := range m {
		m[i] = make([]uint8, w)
		l[i] = make([]layer, w)
	}
	return &brailleBuf{w: w, h: h, m: m, layer: l}
}

// dotWidth and dotHeight give the canvas size in dots.
func (b *brailleBuf) dotWidth() int  { return b.w * 2 }
func (b *brailleBuf) dotHeight() int { return b.h * 4 }

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel lights the dot at (mx, my). Dots off the canvas are dropped.
func (b *brailleBuf) setPixel(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	if l > b.layer[cy][cx] {
		b.layer[cy][cx] = l
	}
}

// drawLine draws a dot line with Bresenham.
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int, l layer) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the braille rune and layer of a cell.
func (b *brailleBuf) cell(x, y int) (rune, layer) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', layerNone
	}
	return rune(0x2800 + int(mask)), b.layer[y][x]
}

// toLines renders each row, styling runs of cells that share a layer.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var row []rune
		var line string
		cur := layerNone
		flush := func() {
			if len(row) == 0 {
				return
			}
			if st, ok := layerStyles[cur]; ok {
				line += st.Render(string(row))
			} else {
				line += string(row)
			}
			row = row[:0]
		}
		for x := 0; x < b.w; x++ {
			r, l := b.cell(x, y)
			if l != cur {
				flush()
				cur = l
			}
			row = append(row, r)
		}
		flush()
		out[y] = line
	}
	return out
}
