package models

type DashboardStats struct {
	TotalPatients         int `json:"totalPatients"`
	TodaysAppointments    int `json:"todaysAppointments"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
}
