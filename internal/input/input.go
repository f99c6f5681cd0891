// Package input expands command-line values that name other sources of
// values: "-" reads stdin and "@path" reads a file, one value per line.
package input

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Stdin is where "-" reads from.
var Stdin io.Reader = os.Stdin

// ReadLinesFromReader returns the trimmed, non-blank lines of r.
func ReadLinesFromReader(r io.Reader) []string {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		slog.Warn("read lines", "err", err)
	}
	return lines
}

// ExpandFlagValues replaces "-" with the lines of stdin and "@path" with the
// lines of the file. Stdin is read at most once; stdinUsed carries that
// across calls. Unreadable files are logged and skipped.
func ExpandFlagValues(values []string, stdinUsed bool) ([]string, bool) {
	var out []string
	for _, v := range values {
		switch {
		case v == "-":
			if stdinUsed {
				slog.Warn("stdin already consumed, skipping '-'")
				continue
			}
			stdinUsed = true
			out = append(out, ReadLinesFromReader(Stdin)...)
		case strings.HasPrefix(v, "@") && len(v) > 1:
			f, err := os.Open(v[1:])
			if err != nil {
				slog.Warn("skip value file", "path", v[1:], "err", err)
				continue
			}
			out = append(out, ReadLinesFromReader(f)...)
			f.Close()
		default:
			out = append(out, v)
		}
	}
	return out, stdinUsed
}
