// Package ingest reads undirected edge lists from local files, stdin and S3.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Options controls parsing.
type Options struct {
	// Lenient skips malformed lines instead of failing on the first one.
	Lenient bool
	// S3Region overrides the region from the default AWS config chain.
	S3Region string
}

// Result is the outcome of reading one source.
type Result struct {
	Source    string
	Edges     []graph.Edge
	Lines     int
	Malformed int
	// Bytes is the number of raw bytes consumed from the reader, line
	// endings included.
	Bytes int64
	// FirstError is the first skipped line in lenient mode.
	FirstError *ParseError
}

// ReadEdges parses "<from> <to>" lines. Blank lines and lines starting with
// '#' are skipped; columns after the second are ignored.
func ReadEdges(r io.Reader, source string, opts Options) (*Result, error) {
	res := &Result{Source: source}
	counter := &countingReader{r: r}

	scanner := bufio.NewScanner(counter)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		res.Lines++
		line := scanner.Text()

		edge, skip, err := parseLine(line)
		if skip {
			continue
		}
		if err != nil {
			perr := &ParseError{Source: source, Line: res.Lines, Text: line, Err: err}
			if !opts.Lenient {
				return nil, perr
			}
			if res.FirstError == nil {
				res.FirstError = perr
			}
			res.Malformed++
			continue
		}
		res.Edges = append(res.Edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, source, err)
	}
	res.Bytes = counter.n
	return res, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func parseLine(line string) (graph.Edge, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return graph.Edge{}, true, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return graph.Edge{}, false, ErrMalformedLine
	}

	from, err := parseNodeID(fields[0])
	if err != nil {
		return graph.Edge{}, false, err
	}
	to, err := parseNodeID(fields[1])
	if err != nil {
		return graph.Edge{}, false, err
	}
	return graph.Edge{From: from, To: to}, false, nil
}

func parseNodeID(field string) (uint64, error) {
	id, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNodeID, field)
	}
	return id, nil
}
