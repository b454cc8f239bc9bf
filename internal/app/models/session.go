package models

import "time"

// Session is the single server-side slot holding the clinic backend bearer
// token and the cached raw user record. Created by a successful OTP
// validation, destroyed by logout or by a detected session expiry.
type Session struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}
