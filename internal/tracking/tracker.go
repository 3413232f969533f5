package tracking

import (
	"errors"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
)

var ErrUnknownStage = errors.New("unknown order stage")

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

type Stage struct {
	ID          models.OrderStage
	Name        string
	Description string
}

var stages = []Stage{
	{ID: models.OrderStagePlaced, Name: "Order Placed", Description: "We have received your order and are confirming it with the restaurant."},
	{ID: models.OrderStagePreparing, Name: "Preparing Food", Description: "The restaurant is preparing your meal."},
	{ID: models.OrderStageOutForDelivery, Name: "Out for Delivery", Description: "Your rider is on the way with your order."},
	{ID: models.OrderStageDelivered, Name: "Delivered", Description: "Your order has been delivered. Enjoy your meal!"},
}

type Step struct {
	Stage
	State StepState
}

// Stages returns the tracker stages in order.
func Stages() []Stage {
	return append([]Stage(nil), stages...)
}

func indexOf(stage models.OrderStage) (int, error) {
	for i, s := range stages {
		if s.ID == stage {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
}

// Progress lays out every stage relative to the current one. Everything
// before it is completed; a delivered order has no pending steps.
func Progress(current models.OrderStage) ([]Step, error) {
	idx, err := indexOf(current)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(stages))
	for i, s := range stages {
		state := StepPending
		switch {
		case i < idx:
			state = StepCompleted
		case i == idx:
			state = StepCurrent
		}
		steps[i] = Step{Stage: s, State: state}
	}
	return steps, nil
}

// Next advances to the following stage. Delivered is terminal and returns itself.
func Next(current models.OrderStage) (models.OrderStage, error) {
	idx, err := indexOf(current)
	if err != nil {
		return "", err
	}
	if idx == len(stages)-1 {
		return current, nil
	}
	return stages[idx+1].ID, nil
}

// Percent is the share of the journey completed, 0 at placed and 100 at delivered.
func Percent(current models.OrderStage) (int, error) {
	idx, err := indexOf(current)
	if err != nil {
		return 0, err
	}
	return idx * 100 / (len(stages) - 1), nil
}
