package sandbox

import (
	"net/http"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/pkg/response"

	"golang.org/x/crypto/bcrypt"
)

// tokenPayload is the login/register success body. The access token is
// duplicated under "token" for older clients, as the real backend does.
func (s *Server) tokenPayload(user entity.User) (map[string]interface{}, error) {
	access, _, err := s.jwt.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.jwt.GenerateRefreshToken(&user)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"user":    user,
		"access":  access,
		"refresh": refresh,
		"token":   access,
	}, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil || req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc := s.store.accountByEmail(req.Email)
	if acc == nil {
		response.Error(w, http.StatusUnauthorized, "Wrong email entered")
		return
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)); err != nil {
		response.Error(w, http.StatusUnauthorized, "Wrong password entered")
		return
	}
	if !acc.user.IsActive {
		response.Error(w, http.StatusForbidden, "Account is inactive")
		return
	}

	payload, err := s.tokenPayload(acc.user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}
	response.JSON(w, http.StatusOK, payload)
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

func (s *Server) validateRegister(w http.ResponseWriter, req *registerRequest) bool {
	fields := make(map[string][]string)
	if req.Email == "" {
		fields["email"] = []string{"This field is required."}
	}
	if len(req.Password) < 8 {
		fields["password"] = []string{"Ensure this field has at least 8 characters."}
	}
	if req.PasswordConfirm != req.Password {
		fields["password"] = []string{"Password fields didn't match."}
	}
	if s.store.accountByEmail(req.Email) != nil {
		fields["email"] = []string{"user with this email already exists."}
	}
	if len(fields) > 0 {
		response.FieldErrors(w, fields)
		return false
	}
	return true
}

func (s *Server) handleRegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.validateRegister(w, &req) {
		return
	}

	acc := s.store.addAccount(req.Email, req.Password, req.FirstName+" "+req.LastName, entity.UserTypePatient)
	acc.user.Phone = req.Phone
	s.store.ensurePatient(acc.user)

	payload, err := s.tokenPayload(acc.user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}
	response.JSON(w, http.StatusCreated, payload)
}

func (s *Server) handleRegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		registerRequest
		SpecializationIDs  []int   `json:"specialization_ids"`
		ExperienceYears    int     `json:"experience_years"`
		ConsultationFee    float64 `json:"consultation_fee"`
		Qualification      string  `json:"qualification"`
		RegistrationNumber string  `json:"registration_number"`
		ClinicAddress      string  `json:"clinic_address"`
		ClinicCity         string  `json:"clinic_city"`
		ClinicState        string  `json:"clinic_state"`
		ClinicPincode      string  `json:"clinic_pincode"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.validateRegister(w, &req.registerRequest) {
		return
	}

	acc := s.store.addAccount(req.Email, req.Password, req.FirstName+" "+req.LastName, entity.UserTypeDoctor)
	acc.user.Phone = req.Phone

	var specs []entity.Specialty
	for _, id := range req.SpecializationIDs {
		for _, sp := range s.store.specialties {
			if sp.ID == id {
				specs = append(specs, sp)
			}
		}
	}

	doctor := &entity.Doctor{
		ID:                 s.store.nextDoctorID,
		User:               acc.user,
		Specialization:     specs,
		ExperienceYears:    req.ExperienceYears,
		ConsultationFee:    req.ConsultationFee,
		Qualification:      req.Qualification,
		RegistrationNumber: req.RegistrationNumber,
		ClinicAddress:      req.ClinicAddress,
		ClinicCity:         req.ClinicCity,
		ClinicState:        req.ClinicState,
		ClinicPincode:      req.ClinicPincode,
		IsActive:           true,
		// New doctors wait for admin approval.
		IsApproved: false,
	}
	s.store.nextDoctorID++
	s.store.doctors[doctor.ID] = doctor

	payload, err := s.tokenPayload(acc.user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}
	response.JSON(w, http.StatusCreated, payload)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := decode(r, &req); err != nil || req.Refresh == "" {
		response.Error(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	claims, err := s.jwt.ValidateToken(req.Refresh)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Token is invalid or expired")
		return
	}

	s.store.mu.Lock()
	alreadyRevoked := s.store.revoked[claims.TokenID]
	if !alreadyRevoked {
		s.store.revoked[claims.TokenID] = true
		// Kill the access token presented alongside the refresh token, so
		// a logged-out bearer stops working immediately.
		if access, err := s.jwt.ValidateToken(bearerToken(r)); err == nil {
			s.store.revoked[access.TokenID] = true
		}
	}
	s.store.mu.Unlock()

	if alreadyRevoked {
		response.Error(w, http.StatusBadRequest, "Token is invalid or expired")
		return
	}
	response.Message(w, http.StatusOK, "Successfully logged out")
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, requestUser(r))
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	users := s.store.sortedUsers()
	s.store.mu.Unlock()

	// The user list is a paginated DRF view: envelope shape.
	response.Paginated(w, users, len(users))
}
