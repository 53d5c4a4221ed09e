package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateBookingConfirmation corresponds to
	// templates/emails/booking_confirmation.html
	TemplateBookingConfirmation Template = "booking_confirmation"
)
