package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type completedStep struct {
	name string
	undo func(ctx context.Context) error
}

// unitOfWork runs steps in order and undoes the completed ones when a step fails
type unitOfWork struct {
	log  logrus.FieldLogger
	done []completedStep
}

func newUnitOfWork(log logrus.FieldLogger) *unitOfWork {
	return &unitOfWork{log: log}
}

// do runs action. On failure every completed step is undone in reverse order
// and the returned error joins the failure with any undo errors.
// undo may be nil for a step that needs no compensation.
func (u *unitOfWork) do(ctx context.Context, name string, action, undo func(ctx context.Context) error) error {
	if err := action(ctx); err != nil {
		u.log.WithField("step", name).WithError(err).Warn("step failed, rolling back")
		return u.rollback(ctx, err)
	}
	if undo != nil {
		u.done = append(u.done, completedStep{name: name, undo: undo})
	}
	return nil
}

func (u *unitOfWork) rollback(ctx context.Context, cause error) error {
	errs := []error{cause}
	for i := len(u.done) - 1; i >= 0; i-- {
		step := u.done[i]
		if err := step.undo(ctx); err != nil {
			u.log.WithField("step", step.name).WithError(err).Error("failed to undo step")
			errs = append(errs, fmt.Errorf("failed to undo %s: %w", step.name, err))
		}
	}
	u.done = nil

	if len(errs) == 1 {
		return cause
	}
	return errors.Join(errs...)
}
