package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskBookingConfirmation is the job type string Asynq uses to route
	// booking confirmation emails to their handler.
	TaskBookingConfirmation = "email:booking_confirmation"
)

// BookingConfirmationPayload is the JSON payload for the booking
// confirmation email task.
type BookingConfirmationPayload struct {
	To          string `json:"to"`
	FirstName   string `json:"first_name"`
	PackageName string `json:"package_name"`
	BookingDate string `json:"booking_date"`
	BookingID   int64  `json:"booking_id"`
}

// NewBookingConfirmationTask constructs the Asynq task for a booking
// confirmation email. Retried up to 3 times with a 30 second handler
// timeout.
func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBookingConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
