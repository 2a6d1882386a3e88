// Package sandbox is an in-process stand-in for the platform's REST backend.
// It reproduces the backend's wire shapes and workflow rules closely enough
// that the portals and their tests run against it unchanged: tokens are real
// JWTs, passwords are bcrypt-hashed, list endpoints answer both bare-array
// and paginated shapes, and failures carry the backend's error strings.
package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"medibook-portals/config"
	"medibook-portals/internal/domain/entity"
	"medibook-portals/pkg/jwt"
	"medibook-portals/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userKey contextKey = "user"

type Server struct {
	log   *logrus.Logger
	jwt   *jwt.JWTService
	store *store
}

func New(log *logrus.Logger, cfg config.JWTConfig) *Server {
	return &Server{
		log:   log,
		jwt:   jwt.NewJWTService(cfg),
		store: newStore(),
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login/", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/register/", s.handleRegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/auth/register/doctor/", s.handleRegisterDoctor).Methods(http.MethodPost)
	api.Handle("/auth/logout/", s.authenticated(s.handleLogout)).Methods(http.MethodPost)

	api.Handle("/users/me/", s.authenticated(s.handleMe)).Methods(http.MethodGet)
	api.Handle("/users/", s.role(entity.UserTypeAdmin, s.handleUserList)).Methods(http.MethodGet)

	api.HandleFunc("/doctors/", s.handleDoctorList).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties/", s.handleSpecialties).Methods(http.MethodGet)
	api.Handle("/doctors/profile/", s.role(entity.UserTypeDoctor, s.handleDoctorProfile)).Methods(http.MethodGet)
	api.Handle("/doctors/update_profile/", s.role(entity.UserTypeDoctor, s.handleDoctorUpdateProfile)).Methods(http.MethodPut)
	api.Handle("/doctors/schedule/", s.role(entity.UserTypeDoctor, s.handleScheduleGet)).Methods(http.MethodGet)
	api.Handle("/doctors/schedule/", s.role(entity.UserTypeDoctor, s.handleScheduleUpdate)).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id:[0-9]+}/", s.handleDoctorGet).Methods(http.MethodGet)
	api.Handle("/doctors/{id:[0-9]+}/", s.role(entity.UserTypeAdmin, s.handleDoctorPatch)).Methods(http.MethodPatch)
	api.Handle("/doctors/{id:[0-9]+}/", s.role(entity.UserTypeAdmin, s.handleDoctorDelete)).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id:[0-9]+}/available_slots/", s.handleAvailableSlots).Methods(http.MethodGet)

	api.Handle("/appointments/", s.authenticated(s.handleAppointmentList)).Methods(http.MethodGet)
	api.Handle("/appointments/", s.authenticated(s.handleAppointmentCreate)).Methods(http.MethodPost)
	api.Handle("/appointments/upcoming/", s.authenticated(s.handleUpcoming)).Methods(http.MethodGet)
	api.Handle("/appointments/past/", s.authenticated(s.handlePast)).Methods(http.MethodGet)
	api.Handle("/appointments/{id:[0-9]+}/", s.authenticated(s.handleAppointmentGet)).Methods(http.MethodGet)
	api.Handle("/appointments/{id:[0-9]+}/cancel/", s.authenticated(s.handleCancel)).Methods(http.MethodPost)
	api.Handle("/appointments/{id:[0-9]+}/approve/", s.authenticated(s.handleApprove)).Methods(http.MethodPost)
	api.Handle("/appointments/{id:[0-9]+}/reject/", s.authenticated(s.handleReject)).Methods(http.MethodPost)
	api.Handle("/appointments/{id:[0-9]+}/update_status/", s.authenticated(s.handleUpdateStatus)).Methods(http.MethodPatch, http.MethodPut)

	api.Handle("/patients/profile/", s.role(entity.UserTypePatient, s.handlePatientProfile)).Methods(http.MethodGet)
	api.Handle("/patients/update_profile/", s.role(entity.UserTypePatient, s.handlePatientUpdateProfile)).Methods(http.MethodPut)
	api.Handle("/patients/appointments/", s.role(entity.UserTypePatient, s.handleAppointmentList)).Methods(http.MethodGet)

	api.Handle("/admin/dashboard/", s.role(entity.UserTypeAdmin, s.handleDashboard)).Methods(http.MethodGet)
	api.Handle("/admin/doctors/{id:[0-9]+}/approve/", s.role(entity.UserTypeAdmin, s.handleDoctorApprove)).Methods(http.MethodPost)

	return r
}

// authenticated resolves the bearer token into the acting identity.
func (s *Server) authenticated(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			response.Unauthorized(w, "")
			return
		}
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := s.jwt.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Given token not valid for any token type")
			return
		}

		s.store.mu.Lock()
		revoked := s.store.revoked[claims.TokenID]
		acc := s.store.accounts[claims.UserID]
		s.store.mu.Unlock()
		if revoked {
			response.Unauthorized(w, "Given token not valid for any token type")
			return
		}
		if acc == nil {
			response.Unauthorized(w, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, acc.user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) role(required entity.UserType, next http.HandlerFunc) http.Handler {
	return s.authenticated(func(w http.ResponseWriter, r *http.Request) {
		user := requestUser(r)
		if user.UserType != required {
			response.Forbidden(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func requestUser(r *http.Request) entity.User {
	user, _ := r.Context().Value(userKey).(entity.User)
	return user
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
