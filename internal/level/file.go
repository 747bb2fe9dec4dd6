package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrUnreadable reports a level file that is missing or cannot be read.
	ErrUnreadable = errors.New("level file unreadable")
	// ErrMalformed reports a level file whose content does not follow the format.
	ErrMalformed = errors.New("level file malformed")
)

// Load reads a level file from disk.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse reads a level: one line of minutes, one line of seconds, then one
// symbol per cell. Line breaks between symbols are ignored.
func Parse(r io.Reader) (*Level, error) {
	br := bufio.NewReader(r)

	minutes, err := readInt(br, "minutes")
	if err != nil {
		return nil, err
	}
	seconds, err := readInt(br, "seconds")
	if err != nil {
		return nil, err
	}
	if seconds >= 60 {
		return nil, fmt.Errorf("%w: seconds %d out of range", ErrMalformed, seconds)
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	l := New()
	count := 0
	for _, b := range body {
		if b == '\n' || b == '\r' {
			continue
		}
		t, ok := ParseCellType(b)
		if !ok {
			return nil, fmt.Errorf("%w: unknown symbol %q at cell %d", ErrMalformed, b, count)
		}
		if count >= CellsPerLevel {
			return nil, fmt.Errorf("%w: more than %d cells", ErrMalformed, CellsPerLevel)
		}
		l.cells[count].Type = t
		count++
	}
	if count != CellsPerLevel {
		return nil, fmt.Errorf("%w: %d cells, expected %d", ErrMalformed, count, CellsPerLevel)
	}

	if err := l.Recount(); err != nil {
		return nil, err
	}
	l.SetTime(minutes, seconds)
	return l, nil
}

func readInt(br *bufio.Reader, field string) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: missing %s line", ErrMalformed, field)
		}
		return 0, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformed, field, strings.TrimSpace(line))
	}
	return n, nil
}

// Format writes l in the level file format, one floor row per line.
func Format(w io.Writer, l *Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", l.minutes, l.seconds)
	for i := range l.cells {
		bw.WriteByte(l.cells[i].Type.Symbol())
		if ColOf(i) == CellsPerLine-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
