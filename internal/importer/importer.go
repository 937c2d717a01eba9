package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// Adder stores one entity
type Adder[E any] interface {
	Add(ctx context.Context, entity E) (E, error)
}

// Importer loads entities from a file and hands them to an Adder
type Importer[D, E any] struct {
	reader Reader[D, E]
	log    logrus.FieldLogger
}

// NewImporter creates a new Importer
func NewImporter[D, E any](reader Reader[D, E], log logrus.FieldLogger) *Importer[D, E] {
	return &Importer[D, E]{reader: reader, log: log}
}

// Import adds every entity of the file in row order.
// Nothing is added when any row is invalid. The first failed add stops the import
// and entities added before it stay stored.
func (i *Importer[D, E]) Import(ctx context.Context, path string, mapper Mapper[D, E], adder Adder[E], validator Validator[D]) ([]E, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperr.CSVFilePath
	}

	log := i.log.WithField("path", path)

	entities, problems, err := i.reader.Read(ctx, path, mapper, validator)
	if err != nil {
		log.WithError(err).Error("failed to read import file")
		readErr := apperr.CSVReadError.Wrap(err)
		readErr.Description = fmt.Sprintf("%s: %v", apperr.CSVReadError.Description, err)
		return nil, readErr
	}

	if len(problems) > 0 {
		log.WithField("errors", len(problems)).Warn("import file has invalid rows")
		return nil, validationError(problems)
	}

	added := make([]E, 0, len(entities))
	for _, entity := range entities {
		stored, err := adder.Add(ctx, entity)
		if err != nil {
			log.WithFields(logrus.Fields{"rows": len(entities), "added": len(added)}).WithError(err).Warn("import stopped")
			return nil, err
		}
		added = append(added, stored)
	}

	log.WithField("rows", len(added)).Info("import finished")
	return added, nil
}

func validationError(problems []models.CSVValidationError) *apperr.Error {
	lines := lo.Map(problems, func(p models.CSVValidationError, _ int) string { return p.String() })
	return apperr.New(apperr.CSVValidationError.Code, strings.Join(lines, "; "), apperr.ErrNotValid)
}
