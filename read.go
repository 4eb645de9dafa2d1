package elevation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The longest line ReadGrid will accept, in bytes.
const maxLineBytes = 16 * 1024 * 1024

// Reads a grid from text containing one row per line, with each row's
// elevations separated by whitespace. Lines containing only whitespace are
// ignored. Returns an error wrapping ErrMalformedInput if a value isn't an
// integer or the rows have different lengths, and ErrEmptyInput if there are
// no values at all.
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	values := make([][]int, 0, 100)
	width := -1
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if width < 0 {
			width = len(tokens)
		}
		if len(tokens) != width {
			return nil, fmt.Errorf("%w: line %d contains %d values, "+
				"expected %d", ErrMalformedInput, lineNumber, len(tokens),
				width)
		}
		row := make([]int, len(tokens))
		for i, token := range tokens {
			v, e := strconv.Atoi(token)
			if e != nil {
				return nil, fmt.Errorf("%w: line %d: invalid elevation %q",
					ErrMalformedInput, lineNumber, token)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if e := scanner.Err(); e != nil {
		return nil, fmt.Errorf("Error reading elevation data: %w", e)
	}
	return NewGrid(values)
}

// Reads a grid from the file at the given path. See ReadGrid for the format.
func LoadGridFile(path string) (*Grid, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("Error opening %s: %w", path, e)
	}
	defer f.Close()
	toReturn, e := ReadGrid(f)
	if e != nil {
		return nil, fmt.Errorf("Error loading %s: %w", path, e)
	}
	return toReturn, nil
}
