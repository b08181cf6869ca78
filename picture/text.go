package picture

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/glyphfsm/palette"
)

// Legend maps fixture runes to colours. '.' and ' ' are always blank
// unless the legend overrides them.
type Legend map[rune]palette.Color

// FromText builds a picture from ASCII art, one string per row:
//
//	FromText(Legend{'F': palette.Pink, 'i': in},
//		"FFF.",
//		".i..",
//	)
//
// Returns ErrEmptyPicture, ErrNonRectangular or ErrUnknownSymbol.
func FromText(legend Legend, rows ...string) (*Picture, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyPicture
	}
	w := utf8.RuneCountInString(rows[0])
	grid := make([][]palette.Color, 0, len(rows))
	for y, row := range rows {
		if utf8.RuneCountInString(row) != w {
			return nil, ErrNonRectangular
		}
		line := make([]palette.Color, 0, w)
		for _, r := range row {
			c, ok := legend[r]
			if !ok {
				if r != '.' && r != ' ' {
					return nil, fmt.Errorf("picture: FromText row %d rune %q: %w", y, r, ErrUnknownSymbol)
				}
				c = palette.White
			}
			line = append(line, c)
		}
		grid = append(grid, line)
	}
	return From2D(grid)
}

// MustText is FromText for test fixtures; it panics on error.
func MustText(legend Legend, rows ...string) *Picture {
	pic, err := FromText(legend, rows...)
	if err != nil {
		panic(err)
	}
	return pic
}
