package routers

import (
	"time"

	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, m *middlewares.Middlewares, authController *controllers.AuthController) {
	// OTP endpoints trigger SMS sends on the clinic backend, so they get a
	// tighter per-IP limiter with temporary blocking on top of the global one.
	otpLimiter := middlewares.NewRateLimiter(
		internalConfig.App.OTPMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.OTPBlockTimeInMinutes)*time.Minute,
	)

	router.With(otpLimiter.Limit).Post("/request-otp", authController.RequestOTP)
	router.With(otpLimiter.Limit).Post("/resend-otp", authController.ResendOTP)
	router.Post("/validate-otp", authController.ValidateOTP)

	router.With(m.Session).Post("/logout", authController.Logout)
	router.With(m.Session).Get("/me", authController.CurrentUser)
}
