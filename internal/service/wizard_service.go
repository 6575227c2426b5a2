package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
	"github.com/mosaops/timesheet-backend-go/internal/wizard"
)

// WizardService binds the step controller to one user's persisted state.
type WizardService struct {
	states *repository.StateRepository
}

// NewWizardService creates a new wizard service
func NewWizardService(states *repository.StateRepository) *WizardService {
	return &WizardService{states: states}
}

func (s *WizardService) controller(userID int64) *wizard.Controller {
	return wizard.New(&userStateStore{repo: s.states, userID: userID})
}

// Step1State returns the persisted step-1 state for a user.
func (s *WizardService) Step1State(ctx context.Context, userID int64) (models.Step1State, error) {
	c := s.controller(userID)
	if err := c.Restore(ctx); err != nil {
		return models.Step1State{}, err
	}
	return c.Step1(), nil
}

// Step2State returns the persisted step-2 state for a user.
func (s *WizardService) Step2State(ctx context.Context, userID int64) (models.Step2State, error) {
	c := s.controller(userID)
	if err := c.Restore(ctx); err != nil {
		return models.Step2State{}, err
	}
	return c.Step2(), nil
}

// AdvanceStep1 applies the submitted step-1 state and moves the wizard
// forward, enforcing the date/shift gate.
func (s *WizardService) AdvanceStep1(ctx context.Context, userID int64, st models.Step1State) error {
	c := s.controller(userID)
	c.SetStep1(st)
	return c.Next(ctx)
}

// AdvanceStep2 applies the submitted step-2 state and moves the wizard
// forward. Step 2 has no gate; an empty trip set still advances.
func (s *WizardService) AdvanceStep2(ctx context.Context, userID int64, st models.Step2State) error {
	c := s.controller(userID)
	c.Goto(wizard.StepTrips)
	c.SetStep2(st)
	return c.Next(ctx)
}

// Clear wipes a user's wizard state and resets to step 1.
func (s *WizardService) Clear(ctx context.Context, userID int64) error {
	return s.controller(userID).Cancel(ctx)
}

// userStateStore adapts the state repository to the wizard's StateStore for
// one user, marshalling step state as JSON.
type userStateStore struct {
	repo   *repository.StateRepository
	userID int64
}

func (s *userStateStore) SaveStep1(ctx context.Context, st models.Step1State) error {
	return s.save(ctx, 1, st)
}

func (s *userStateStore) SaveStep2(ctx context.Context, st models.Step2State) error {
	return s.save(ctx, 2, st)
}

func (s *userStateStore) save(ctx context.Context, step int, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode step %d state: %w", step, err)
	}
	return s.repo.SaveStep(ctx, s.userID, step, data)
}

func (s *userStateStore) LoadStep1(ctx context.Context) (models.Step1State, error) {
	var st models.Step1State
	err := s.load(ctx, 1, &st)
	return st, err
}

func (s *userStateStore) LoadStep2(ctx context.Context) (models.Step2State, error) {
	var st models.Step2State
	err := s.load(ctx, 2, &st)
	return st, err
}

func (s *userStateStore) load(ctx context.Context, step int, v interface{}) error {
	data, err := s.repo.LoadStep(ctx, s.userID, step)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode step %d state: %w", step, err)
	}
	return nil
}

func (s *userStateStore) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx, s.userID)
}
