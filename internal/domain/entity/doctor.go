package entity

// Specialty is static reference data served by GET /doctors/specialties/.
type Specialty struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Doctor is the public doctor profile.
type Doctor struct {
	ID                      int         `json:"id"`
	User                    User        `json:"user"`
	Specialization          []Specialty `json:"specialization"`
	ExperienceYears         int         `json:"experience_years"`
	ConsultationFee         float64     `json:"consultation_fee"`
	Qualification           string      `json:"qualification"`
	RegistrationNumber      string      `json:"registration_number"`
	ClinicAddress           string      `json:"clinic_address"`
	ClinicCity              string      `json:"clinic_city"`
	ClinicState             string      `json:"clinic_state"`
	ClinicPincode           string      `json:"clinic_pincode"`
	OnlineConsultation      bool        `json:"online_consultation_available"`
	IsApproved              bool        `json:"is_approved"`
	IsActive                bool        `json:"is_active"`
	Rating                  float64     `json:"rating"`
	TotalReviews            int         `json:"total_reviews"`
	ProfilePhoto            string      `json:"profile_photo,omitempty"`
}

// DoctorFilter narrows a doctor listing. Zero values mean "no filter".
type DoctorFilter struct {
	Search         string
	Specialization string
	City           string
}

// ScheduleEntry is one weekday row of a doctor's availability template.
type ScheduleEntry struct {
	ID          int    `json:"id,omitempty"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}
