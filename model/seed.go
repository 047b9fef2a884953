package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	aliveChar = '1'
	deadChar  = '0'
)

// DecodeReport describes how much of the board a seed actually filled
type DecodeReport struct {
	Cells      int
	RowsFilled int
}

// Short reports whether the seed ended before every row was filled
func (r DecodeReport) Short() bool {
	return r.RowsFilled < Height
}

func isLayout(c byte) bool {
	return c == '\n' || c == '\r' || c == '\t'
}

// Decode reads a seed from r. Layout characters are skipped, '1' is alive and
// any other character is dead. Reading stops once every row is filled; a short
// seed leaves the remaining cells dead and is reported, not rejected. The only
// error is a failure of r itself.
func Decode(r io.Reader) (*Grid, DecodeReport, error) {
	var (
		grid   = NewGrid()
		report DecodeReport
		br     = bufio.NewReader(r)
		x, y   int
	)

	for y < Height {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return grid, report, errors.Wrap(err, "[Decode] failed to read seed")
		}
		if isLayout(c) {
			continue
		}

		grid.cells[idx(x, y)] = c == aliveChar
		report.Cells++

		x++
		if x == Width {
			x = 0
			y++
		}
	}

	report.RowsFilled = y
	return grid, report, nil
}

// Encode writes each row as Width '1'/'0' characters followed by a newline
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := byte(deadChar)
			if g.Get(x, y) {
				c = aliveChar
			}
			if err := bw.WriteByte(c); err != nil {
				return errors.Wrap(err, "[Encode] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Encode] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[Encode] failed to flush")
}

// Load decodes the seed file at path. Any failure to open or read it is a *SeedLoadError.
func Load(path string) (*Grid, DecodeReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DecodeReport{}, &SeedLoadError{Path: path, Err: errors.Wrapf(err, "[Load] failed to open file: %+v", path)}
	}
	defer f.Close()

	grid, report, err := Decode(f)
	if err != nil {
		return nil, report, &SeedLoadError{Path: path, Err: err}
	}
	return grid, report, nil
}

// Save encodes g to the file at path, replacing it. Any failure is an *IoError.
func Save(path string, g *Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IoError{Path: path, Err: errors.Wrapf(err, "[Save] failed to create file: %+v", path)}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IoError{Path: path, Err: errors.Wrapf(cerr, "[Save] failed to close file: %+v", path)}
		}
	}()

	if err = Encode(f, g); err != nil {
		return &IoError{Path: path, Err: err}
	}
	return nil
}
