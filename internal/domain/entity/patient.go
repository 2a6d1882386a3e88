package entity

// Patient is the patient profile wrapping its identity.
type Patient struct {
	ID               int    `json:"id"`
	User             User   `json:"user"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Gender           string `json:"gender,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}
