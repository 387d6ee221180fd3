package ascii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

const sgrReset = "\x1b[0m"

// bytesPerColoredCell approximates the serialized size of one colored cell
// ("ESC[38;2;R;G;Bm" + glyph + reset), used to presize the output buffer.
const bytesPerColoredCell = 24

// RenderText serializes a glyph grid to multi-line text. Rows are joined by
// "\n" with no trailing newline.
//
// A colored cell is wrapped individually in a truecolor foreground escape,
// ESC[38;2;R;G;Bm<char>ESC[0m, so color never bleeds across cells or into
// the surrounding terminal.
func RenderText(g Grid) string {
	var b strings.Builder

	perCell := 1
	if len(g) > 0 && len(g[0]) > 0 && g[0][0].Colored {
		perCell = bytesPerColoredCell
	}
	b.Grow(g.Height() * (g.Width()*perCell + 1))

	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Colored {
				b.WriteString("\x1b[38;2;")
				b.WriteString(strconv.Itoa(int(c.Color.R)))
				b.WriteByte(';')
				b.WriteString(strconv.Itoa(int(c.Color.G)))
				b.WriteByte(';')
				b.WriteString(strconv.Itoa(int(c.Color.B)))
				b.WriteByte('m')
				b.WriteRune(c.Char)
				b.WriteString(sgrReset)
			} else {
				b.WriteRune(c.Char)
			}
		}
	}

	return b.String()
}

// ParseText is the inverse of RenderText: it reads plain or ANSI-escaped
// multi-line text back into a glyph grid.
//
// Truecolor foreground escapes (38;2;R;G;B) set the color of the following
// cells until a reset (0). Other escape sequences are an error. Ragged input
// rows are padded with blank cells so every row of the returned grid has
// equal length. Empty input yields an empty grid.
func ParseText(text string) (Grid, error) {
	if text == "" {
		return Grid{}, nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	grid := make(Grid, 0, len(lines))
	width := 0

	for n, line := range lines {
		row, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if len(row) > width {
			width = len(row)
		}
		grid = append(grid, row)
	}

	for i, row := range grid {
		for len(row) < width {
			row = append(row, Cell{Char: ' '})
		}
		grid[i] = row
	}

	return grid, nil
}

// parseLine converts one line of text into cells, tracking the foreground
// color set by escape sequences.
func parseLine(line string) ([]Cell, error) {
	runes := []rune(line)
	row := make([]Cell, 0, len(runes))
	var cur *imaging.RGBColor

	for i := 0; i < len(runes); {
		if runes[i] != '\x1b' {
			cell := Cell{Char: runes[i]}
			if cur != nil {
				cell.Color = *cur
				cell.Colored = true
			}
			row = append(row, cell)
			i++
			continue
		}

		if i+1 >= len(runes) || runes[i+1] != '[' {
			return nil, fmt.Errorf("malformed escape sequence at column %d", i+1)
		}
		end := i + 2
		for end < len(runes) && runes[end] != 'm' {
			end++
		}
		if end >= len(runes) {
			return nil, fmt.Errorf("unterminated escape sequence at column %d", i+1)
		}

		color, err := parseSGRColor(string(runes[i+2 : end]))
		if err != nil {
			return nil, err
		}
		cur = color
		i = end + 1
	}

	return row, nil
}

// parseSGRColor interprets the parameter list of an SGR escape. A reset ("0"
// or empty) returns nil; a truecolor foreground (38;2;R;G;B) returns the
// color; anything else is unsupported.
func parseSGRColor(params string) (*imaging.RGBColor, error) {
	if params == "" || params == "0" {
		return nil, nil
	}

	parts := strings.Split(params, ";")
	if len(parts) != 5 || parts[0] != "38" || parts[1] != "2" {
		return nil, fmt.Errorf("unsupported escape sequence %q", params)
	}

	var ch [3]uint8
	for i, p := range parts[2:] {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("invalid color component %q in escape sequence", p)
		}
		ch[i] = uint8(v)
	}

	return &imaging.RGBColor{R: ch[0], G: ch[1], B: ch[2]}, nil
}
