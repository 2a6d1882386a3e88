package entity

// DashboardStats is the admin landing page summary from GET /admin/dashboard/.
type DashboardStats struct {
	TotalPatients       int `json:"total_patients"`
	TotalDoctors        int `json:"total_doctors"`
	TotalAppointments   int `json:"total_appointments"`
	TodayAppointments   int `json:"today_appointments"`
	PendingDoctors      int `json:"pending_doctors"`
	PendingAppointments int `json:"pending_appointments"`
}
