package models

// User is the raw user record as shaped by the clinic backend. The portal
// keeps a read-only cached copy inside the session for as long as the session
// lives; everything display-oriented is derived from it, never stored back.
type User struct {
	UUID           string `json:"uuid"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email,omitempty"`
	Mobile         string `json:"mobile"`
	ISOCode        string `json:"isoCode,omitempty"`
	MobileVerified bool   `json:"mobileVerified"`
	EmailVerified  bool   `json:"emailVerified"`
	UserType       string `json:"userType"`
	Status         bool   `json:"status"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}
