package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// FirstDataRow is the file line number of the first row after the header
const FirstDataRow = 2

// Mapper converts a valid row into an entity
type Mapper[D, E any] func(row D) (E, error)

// Validator returns the problems found in a row; rowNumber counts file lines from 1
type Validator[D any] func(row D, rowNumber int) []models.CSVValidationError

// Reader reads rows of D from a file and maps the valid ones to E
type Reader[D, E any] interface {
	Read(ctx context.Context, path string, mapper Mapper[D, E], validator Validator[D]) ([]E, []models.CSVValidationError, error)
}

// CSVReader decodes comma separated files with a header row into D by csv tag
type CSVReader[D, E any] struct{}

// NewCSVReader creates a CSV reader
func NewCSVReader[D, E any]() *CSVReader[D, E] {
	return &CSVReader[D, E]{}
}

// Read validates every row first and maps it only when it has no errors.
// Columns missing from the header decode as empty strings. A byte order mark is skipped.
func (r *CSVReader[D, E]) Read(ctx context.Context, path string, mapper Mapper[D, E], validator Validator[D]) ([]E, []models.CSVValidationError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	entities := []E{}
	var problems []models.CSVValidationError

	// a leading byte order mark would otherwise stay on the first header
	in := transform.NewReader(f, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	dec, err := csvutil.NewDecoder(csv.NewReader(in))
	if errors.Is(err, io.EOF) {
		return entities, problems, nil
	}
	if err != nil {
		return nil, nil, err
	}

	for rowNumber := FirstDataRow; ; rowNumber++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		var row D
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, err
		}

		if rowProblems := validator(row, rowNumber); len(rowProblems) > 0 {
			problems = append(problems, rowProblems...)
			continue
		}

		entity, err := mapper(row)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", rowNumber, err)
		}
		entities = append(entities, entity)
	}

	return entities, problems, nil
}
