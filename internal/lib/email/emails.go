package email

import "fmt"

// SendBookingConfirmation sends the booking confirmation email to the
// customer who just booked a package.
func (c *Client) SendBookingConfirmation(to, firstName, packageName, bookingDate string, bookingID int64) error {
	data := map[string]string{
		"CustomerFirstName": firstName,
		"PackageName":       packageName,
		"BookingDate":       bookingDate,
		"BookingReference":  fmt.Sprintf("%d", bookingID),
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Your booking for %s is confirmed", packageName),
		TemplateBookingConfirmation,
		data,
	)
}
