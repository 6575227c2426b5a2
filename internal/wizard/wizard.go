// Package wizard sequences the timesheet validation steps. Forward moves are
// gated on the current step's validity and persisted before advancing;
// backward moves are unconditional and persist nothing.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// Step identifies a wizard step.
type Step int

const (
	StepDateShift Step = 1 // date & shift selection
	StepTrips     Step = 2 // manual rotation inject
	StepHM        Step = 3 // realtime HM validation
)

// ErrStepIncomplete means the current step fails its forward gate.
var ErrStepIncomplete = errors.New("current step is incomplete")

// StateStore persists per-step wizard state between visits.
type StateStore interface {
	SaveStep1(ctx context.Context, s models.Step1State) error
	SaveStep2(ctx context.Context, s models.Step2State) error
	LoadStep1(ctx context.Context) (models.Step1State, error)
	LoadStep2(ctx context.Context) (models.Step2State, error)
	Clear(ctx context.Context) error
}

// Controller owns the step position and the per-step state for one user's
// wizard session.
type Controller struct {
	store StateStore
	step  Step
	step1 models.Step1State
	step2 models.Step2State
}

// New creates a controller positioned on step 1.
func New(store StateStore) *Controller {
	return &Controller{store: store, step: StepDateShift}
}

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Goto positions the controller on a step directly, as when a user revisits
// a step in an established session. Out-of-range steps are ignored.
func (c *Controller) Goto(step Step) {
	if step >= StepDateShift && step <= StepHM {
		c.step = step
	}
}

// Step1 returns the date/shift selection.
func (c *Controller) Step1() models.Step1State { return c.step1 }

// Step2 returns the trip reconciliation state.
func (c *Controller) Step2() models.Step2State { return c.step2 }

// SetStep1 replaces the step-1 state.
func (c *Controller) SetStep1(s models.Step1State) { c.step1 = s }

// SetStep2 replaces the step-2 state.
func (c *Controller) SetStep2(s models.Step2State) { c.step2 = s }

// Restore loads persisted step state, leaving the position on step 1.
// Missing state is not an error; the steps simply start blank.
func (c *Controller) Restore(ctx context.Context) error {
	s1, err := c.store.LoadStep1(ctx)
	if err != nil {
		return fmt.Errorf("restore step 1: %w", err)
	}
	s2, err := c.store.LoadStep2(ctx)
	if err != nil {
		return fmt.Errorf("restore step 2: %w", err)
	}
	c.step1 = s1
	c.step2 = s2
	return nil
}

// Next persists the current step's state and advances. Step 1 requires a
// date and at least one shift; step 2 has no gate -- proceeding with zero
// trips fetched is allowed. On persistence failure the controller stays put.
func (c *Controller) Next(ctx context.Context) error {
	switch c.step {
	case StepDateShift:
		if !c.step1.Valid() {
			return ErrStepIncomplete
		}
		if err := c.store.SaveStep1(ctx, c.step1); err != nil {
			return fmt.Errorf("save step 1: %w", err)
		}
		c.step = StepTrips
	case StepTrips:
		if err := c.store.SaveStep2(ctx, c.step2); err != nil {
			return fmt.Errorf("save step 2: %w", err)
		}
		c.step = StepHM
	default:
		// Last implemented step; nowhere to go.
	}
	return nil
}

// Back moves one step backward without persisting. On step 1 it is a no-op.
func (c *Controller) Back() {
	if c.step > StepDateShift {
		c.step--
	}
}

// Cancel clears all persisted state and resets the wizard to step 1.
func (c *Controller) Cancel(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear wizard state: %w", err)
	}
	c.step = StepDateShift
	c.step1 = models.Step1State{}
	c.step2 = models.Step2State{}
	return nil
}
