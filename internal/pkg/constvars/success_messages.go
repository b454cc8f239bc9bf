package constvars

const (
	OTPRequestedSuccess = "OTP has been sent to your mobile number"
	OTPResentSuccess    = "OTP has been resent to your mobile number"
	LoginSuccess        = "Login successful"
	LogoutSuccess       = "Logout successful"
	ProfileFetched      = "Profile fetched successfully"

	PatientListFetched = "Patients fetched successfully"
	PatientFetched     = "Patient fetched successfully"
	PatientCreated     = "Patient created successfully"
	PatientUpdated     = "Patient updated successfully"
	PatientDeleted     = "Patient deleted successfully"

	AppointmentListFetched   = "Appointments fetched successfully"
	AppointmentFetched       = "Appointment fetched successfully"
	AppointmentCreated       = "Appointment created successfully"
	AppointmentScheduled     = "Appointment scheduled successfully"
	AppointmentUpdated       = "Appointment updated successfully"
	AppointmentRescheduled   = "Appointment rescheduled successfully"
	AppointmentCancelled     = "Appointment cancelled successfully"
	AppointmentCompleted     = "Appointment completed successfully"
	AppointmentStatusUpdated = "Appointment status updated successfully"
	AppointmentDeleted       = "Appointment deleted successfully"
	AvailabilityChecked      = "Availability checked successfully"
	AvailableSlotsFetched    = "Available slots fetched successfully"

	DashboardStatsFetched = "Dashboard statistics fetched successfully"

	// Appended to list messages when the fixture dataset is served instead of
	// live backend data.
	FixtureDataNotice = "showing sample data, clinic backend unreachable"
)
