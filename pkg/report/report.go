// The report package writes the centrality scores of a run as a CSV table.
package report

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/vertex-lab/kpath/pkg/models"
)

// Header is the first row of the CSV table.
var Header = []string{"edge", "centrality"}

// WriteCSV() writes the scores to w, one row per edge in the specified order.
// The edge column is formatted as "u, v".
func WriteCSV(w io.Writer, scores []models.EdgeScore) error {
	if w == nil {
		return ErrNilWriter
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, s := range scores {
		row := []string{s.Edge.String(), strconv.FormatFloat(s.Score, 'g', -1, 64)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile() writes the scores sorted by descending centrality to the file at path.
func WriteFile(path string, cm models.CentralityMap) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, models.Sorted(cm)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilWriter = errors.New("nil writer")
