// Package workout defines the scheduled workout record and its payloads.
package workout

import (
	"github.com/deppfellow/fitness-center/internal/validation"
)

// Workout is a scheduled session belonging to one customer.
//
// Start and end times are stored as the client sent them.
type Workout struct {
	ID               int64  `json:"id" db:"id"`
	WorkoutStartTime string `json:"workout_start_time" db:"workout_start_time"`
	WorkoutEndTime   string `json:"workout_end_time" db:"workout_end_time"`
	WorkoutType      string `json:"workout_type" db:"workout_type"`
	CustomerID       int64  `json:"customer_id" db:"customer_id"`
}

// Input carries the writable workout fields.
type Input struct {
	WorkoutStartTime *string
	WorkoutEndTime   *string
	WorkoutType      *string
	CustomerID       *int64

	decodeErrors validation.CustomValidationErrors
}

func (in *Input) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}

	in.WorkoutStartTime = fields.String("workout_start_time")
	in.WorkoutEndTime = fields.String("workout_end_time")
	in.WorkoutType = fields.String("workout_type")
	in.CustomerID = fields.Int64("customer_id")
	in.decodeErrors = fields.Errors()
	return nil
}

// Validate requires all four fields.
func (in *Input) Validate() error {
	check := validation.NewChecker(in.decodeErrors)
	check.RequiredString("workout_start_time", in.WorkoutStartTime)
	check.RequiredString("workout_end_time", in.WorkoutEndTime)
	check.RequiredString("workout_type", in.WorkoutType)
	check.PositiveInt("customer_id", in.CustomerID)
	return check.Err()
}

// Values returns the validated fields in column order.
//
// It must only be called after Validate succeeded.
func (in *Input) Values() (start, end, workoutType string, customerID int64) {
	return *in.WorkoutStartTime, *in.WorkoutEndTime, *in.WorkoutType, *in.CustomerID
}
