/*
The edgelist package loads an undirected graph from a text edge list, one
edge per line written as two integer node IDs:

	# comment
	0 1
	1 2

Node IDs don't need to be continuous. Lines starting with '#' or '%' are
comments. Self-loops and repeated edges (in either direction) are skipped.
*/
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/kpath/pkg/graph"
	"github.com/vertex-lab/kpath/pkg/models"
)

// Options of the reader.
type Options struct {
	// The separator between the two node IDs. If empty, any run of
	// whitespace separates them.
	Separator string
}

// ReadStats count the lines the reader has seen.
type ReadStats struct {
	Lines      int
	Edges      int
	Comments   int
	SelfLoops  int
	Duplicates int
}

// Read() parses the edge list from r into a new graph with all weights at zero.
func Read(r io.Reader, opts Options) (*graph.Graph, ReadStats, error) {
	if r == nil {
		return nil, ReadStats{}, ErrNilReader
	}

	G := graph.New()
	seen := mapset.NewThreadUnsafeSet[models.Edge]()
	stats := ReadStats{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' || line[0] == '%' {
			stats.Comments++
			continue
		}

		u, v, err := parseLine(line, opts.Separator)
		if err != nil {
			return nil, stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}

		if u == v {
			stats.SelfLoops++
			continue
		}

		edge := models.NewEdge(u, v)
		if !seen.Add(edge) {
			stats.Duplicates++
			continue
		}

		if err := G.AddEdge(u, v, 0); err != nil {
			return nil, stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		stats.Edges++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return G, stats, nil
}

// ReadFile() opens the file at path and parses it with Read().
func ReadFile(path string, opts Options) (*graph.Graph, ReadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ReadStats{}, err
	}
	defer file.Close()

	return Read(file, opts)
}

// parseLine() returns the two node IDs of the line. Fields after the second
// (e.g. weights or timestamps) are ignored.
func parseLine(line, separator string) (int64, int64, error) {
	var fields []string
	if separator == "" {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, separator)
	}

	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	u, err := parseID(fields[0])
	if err != nil {
		return 0, 0, err
	}

	v, err := parseID(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}

func parseID(field string) (int64, error) {
	ID, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a node ID", ErrMalformedLine, field)
	}

	if ID < 0 {
		return 0, fmt.Errorf("%w: negative node ID %d", ErrMalformedLine, ID)
	}

	return ID, nil
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilReader = errors.New("nil reader")
var ErrMalformedLine = errors.New("malformed edge list line")
