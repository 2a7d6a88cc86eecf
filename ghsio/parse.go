package ghsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ghsmst/ghsmst/graphview"
)

// Parse reads the edge-list format from r: a header line giving the
// vertex count N, followed by zero or more "(u, v, w)" lines (u and v
// in [0,N), w an int64 edge weight; surrounding whitespace ignored).
//
// Every malformed edge line is collected and returned together via
// *multierror.Error rather than failing on the first one, so a caller
// pointed at a hand-edited fixture sees every mistake in one pass.
func Parse(r io.Reader) (*graphview.View, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, ErrEmptyInput
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, scanner.Text())
	}

	var edges []graphview.Edge
	var lineNo int
	var errs *multierror.Error

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		e, parseErr := parseEdgeLine(line)
		if parseErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", lineNo, parseErr))
			continue
		}
		edges = append(edges, e)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("ghsio: reading input: %w", scanErr))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return graphview.New(n, edges)
}

// parseEdgeLine parses one "(u, v, w)" line. The surrounding
// parentheses are optional on read (stripped if present) so a
// hand-edited fixture missing them still parses, but the comma
// separators are required.
func parseEdgeLine(line string) (graphview.Edge, error) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	fields := strings.Split(trimmed, ",")
	if len(fields) != 3 {
		return graphview.Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeLine, line)
	}

	u, errU := strconv.Atoi(strings.TrimSpace(fields[0]))
	v, errV := strconv.Atoi(strings.TrimSpace(fields[1]))
	w, errW := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if errU != nil || errV != nil || errW != nil {
		return graphview.Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeLine, line)
	}

	return graphview.Edge{U: u, V: v, Weight: w}, nil
}
