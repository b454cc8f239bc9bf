package requests

// RequestOTP asks the clinic backend to send a one-time code to a mobile
// number. The same shape is reused for resending an existing challenge.
type RequestOTP struct {
	Mobile   string `json:"mobile" validate:"required,phone_number"`
	ISOCode  string `json:"isoCode" validate:"required,alpha,min=2,max=3"`
	UserType string `json:"userType" validate:"required,user_type"`
}

type ValidateOTP struct {
	Mobile   string `json:"mobile" validate:"required,phone_number"`
	ISOCode  string `json:"isoCode" validate:"required,alpha,min=2,max=3"`
	OTP      string `json:"otp" validate:"required,numeric,min=4,max=8"`
	UserType string `json:"userType" validate:"required,user_type"`
}

// BackendOTP is the on-wire body the clinic backend expects for the three
// auth endpoints. LoginWithPin is always false for the OTP flow.
type BackendOTP struct {
	Mobile       string `json:"mobile"`
	ISOCode      string `json:"isoCode"`
	UserType     string `json:"userType"`
	OTP          string `json:"otp,omitempty"`
	LoginWithPin bool   `json:"loginWithPin"`
}
