package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleBookingConfirmationTask decodes the payload and sends the
// confirmation email. A returned error makes Asynq retry the task.
func (j *JobService) handleBookingConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "booking_confirmation").
		Str("to", p.To).
		Int64("booking_id", p.BookingID).
		Msg("Processing booking confirmation task")

	err := j.email.SendBookingConfirmation(p.To, p.FirstName, p.PackageName, p.BookingDate, p.BookingID)
	if err != nil {
		j.logger.Error().
			Str("type", "booking_confirmation").
			Str("to", p.To).
			Int64("booking_id", p.BookingID).
			Err(err).
			Msg("Failed to send booking confirmation email")
		return err
	}

	j.logger.Info().
		Str("type", "booking_confirmation").
		Str("to", p.To).
		Int64("booking_id", p.BookingID).
		Msg("Successfully sent booking confirmation email")

	return nil
}
