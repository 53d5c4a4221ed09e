package model

// User is a booking customer. The id comes from the users_seq sequence;
// email is unique at storage and matched case-insensitively on lookup.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
