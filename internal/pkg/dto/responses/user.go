package responses

// UserProfile is the display-oriented projection of the raw backend user
// record. It is recomputed from the record on every change and never mutated
// on its own.
type UserProfile struct {
	UUID           string `json:"uuid"`
	DisplayName    string `json:"displayName"`
	Initials       string `json:"initials"`
	Role           string `json:"role"`
	Email          string `json:"email,omitempty"`
	Mobile         string `json:"mobile"`
	MobileVerified bool   `json:"mobileVerified"`
	EmailVerified  bool   `json:"emailVerified"`
}
