// Package pointsfile loads the ASCII points file spec §6 defines: one point
// per line, two whitespace-separated decimal numbers, blank lines and
// trailing whitespace ignored, no header.
//
// Grounded on point_set_oracle_2.cpp's load_points: a single scan that
// parses each line and accumulates the bounding box as it goes, though here
// the bounding box is left to geom2.BoxOf / the oracle rather than
// duplicated locally.
package pointsfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
)

// ErrEmptyPointSet is returned by Load/LoadFile when the input contains no
// points at all.
var ErrEmptyPointSet = errors.New("pointsfile: input contains no points")

// ErrMalformedLine is returned (wrapped with the offending line number and
// text) when a non-blank line does not parse as "x y".
var ErrMalformedLine = errors.New("pointsfile: malformed line")

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]geom2.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointsfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads points from r, one per non-blank line as "x y".
func Load(r io.Reader) ([]geom2.Point, error) {
	var points []geom2.Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}

		points = append(points, geom2.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pointsfile: read: %w", err)
	}

	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}
	return points, nil
}
