package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// Cell is one square of an initial layout.
type Cell struct {
	Kind chess.Kind
	Side chess.Side
}

// Layout is a validated square grid of cells, row-major.
type Layout struct {
	Size  int
	Cells [][]Cell
}

// ParseLayout reads a board layout. Each non-blank line is a row of glyphs
// from {K,Q,R,N,B,P,-}; lower case belongs to SideA, upper case to SideB.
// Spaces and tabs are ignored. Every row must have the same width and the
// number of rows must equal that width.
func ParseLayout(r io.Reader) (*Layout, error) {
	layout := &Layout{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var row []Cell
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c == ' ' || c == '\t' {
				continue
			}
			kind, side, ok := chess.ParseGlyph(c)
			if !ok {
				return nil, &errors.ParseError{
					Err:      errors.ErrMalformedBoard,
					Line:     lineNum,
					Column:   i + 1,
					Expected: "one of K Q R N B P -",
					Got:      fmt.Sprintf("%q", c),
				}
			}
			row = append(row, Cell{Kind: kind, Side: side})
		}

		if layout.Size == 0 {
			layout.Size = len(row)
		} else if len(row) != layout.Size {
			return nil, &errors.ParseError{
				Err:      errors.ErrMalformedBoard,
				Line:     lineNum,
				Expected: fmt.Sprintf("%d squares", layout.Size),
				Got:      fmt.Sprintf("%d squares", len(row)),
			}
		}
		layout.Cells = append(layout.Cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading board layout")
	}

	if len(layout.Cells) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrMalformedBoard, Expected: "at least one row"}
	}
	if len(layout.Cells) != layout.Size {
		return nil, &errors.ParseError{
			Err:      errors.ErrMalformedBoard,
			Line:     lineNum,
			Expected: fmt.Sprintf("%d rows", layout.Size),
			Got:      fmt.Sprintf("%d rows", len(layout.Cells)),
		}
	}
	return layout, nil
}

// ParseLayoutString parses a layout held in a string.
func ParseLayoutString(s string) (*Layout, error) {
	return ParseLayout(strings.NewReader(s))
}

// LoadLayoutFile parses the layout stored in path.
func LoadLayoutFile(path string) (*Layout, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path is the user's board file
	if err != nil {
		return nil, err
	}
	defer file.Close()

	layout, err := ParseLayout(file)
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) {
			perr.File = path
			return nil, perr
		}
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return layout, nil
}

// String renders the layout in the format ParseLayout reads.
func (l *Layout) String() string {
	var sb strings.Builder
	for _, row := range l.Cells {
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(chess.Glyph(cell.Kind, cell.Side))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
