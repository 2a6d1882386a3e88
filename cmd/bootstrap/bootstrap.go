// Package bootstrap assembles a portal from its layers: configuration,
// logger, credential store, API gateway, repositories and screens.
package bootstrap

import (
	"fmt"
	"os"

	"medibook-portals/config"
	"medibook-portals/internal/delivery/cli"
	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
	"medibook-portals/internal/repository"
	"medibook-portals/internal/screen"
	"medibook-portals/internal/session"
	"medibook-portals/internal/storage"
	"medibook-portals/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds the layers shared by every portal binary.
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	Store    storage.TokenStore
	Client   *gateway.Client
	Session  *session.Session
	Terminal *cli.Terminal

	Auth         domainRepo.AuthRepository
	Users        domainRepo.UserRepository
	Doctors      domainRepo.DoctorRepository
	Appointments domainRepo.AppointmentRepository
	Patients     domainRepo.PatientRepository
	Admin        domainRepo.AdminRepository

	Validator *validator.CustomValidator
}

// New wires the shared layers. publicPaths is the portal's 401 allowlist:
// endpoints an anonymous visitor may call without the session being wiped
// on a 401.
func New(publicPaths []string) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg.Log)

	store, err := newTokenStore(cfg, log)
	if err != nil {
		return nil, err
	}

	client, err := gateway.New(gateway.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		PublicPaths: publicPaths,
	}, store, log)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Log:      log,
		Store:    store,
		Client:   client,
		Terminal: cli.NewTerminal(os.Stdin, os.Stdout),

		Auth:         repository.NewAuthRepository(client),
		Users:        repository.NewUserRepository(client),
		Doctors:      repository.NewDoctorRepository(client),
		Appointments: repository.NewAppointmentRepository(client),
		Patients:     repository.NewPatientRepository(client),
		Admin:        repository.NewAdminRepository(client),

		Validator: validator.NewValidator(),
	}

	app.Session = session.New(log, store, app.Auth, app.Validator)
	client.SetUnauthorizedHook(app.Session.HandleUnauthorized)

	return app, nil
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func newTokenStore(cfg *config.Config, log *logrus.Logger) (storage.TokenStore, error) {
	switch cfg.Storage.Driver {
	case "redis":
		client, err := storage.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("Credential store: redis")
		return storage.NewRedisStore(client), nil
	case "file", "":
		store, err := storage.NewFileStore(cfg.Storage.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open credentials file: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown token store driver %q", cfg.Storage.Driver)
	}
}

// AdminPortal builds the admin console. The session refuses non-admin
// logins before anything is persisted.
func (a *App) AdminPortal() *cli.AdminPortal {
	a.Session.RequireRole(entity.UserTypeAdmin)

	return cli.NewAdminPortal(
		a.Log,
		a.Terminal,
		a.Session,
		screen.NewDashboard(a.Log, a.Admin, a.Terminal),
		screen.NewUserList(a.Log, a.Users, a.Terminal),
		screen.NewDoctorList(a.Log, a.Doctors, a.Admin, a.Terminal, a.Terminal),
		screen.NewAppointmentList(a.Log, a.Appointments, a.Terminal, a.Terminal),
	)
}

func (a *App) DoctorPortal() *cli.DoctorPortal {
	a.Session.RequireRole(entity.UserTypeDoctor)

	return cli.NewDoctorPortal(
		a.Log,
		a.Terminal,
		a.Session,
		screen.NewAppointmentList(a.Log, a.Appointments, a.Terminal, a.Terminal),
		screen.NewDoctorProfile(a.Log, a.Doctors, a.Terminal, a.Validator),
		screen.NewSchedule(a.Log, a.Doctors, a.Terminal),
	)
}

func (a *App) PatientPortal() *cli.PatientPortal {
	a.Session.RequireRole(entity.UserTypePatient)

	home := screen.NewAppointmentList(a.Log, a.Appointments, a.Terminal, a.Terminal)
	home.SetScope(screen.ScopeUpcoming)

	return cli.NewPatientPortal(
		a.Log,
		a.Terminal,
		a.Session,
		home,
		screen.NewDoctorList(a.Log, a.Doctors, a.Admin, a.Terminal, a.Terminal),
		screen.NewAppointmentList(a.Log, a.Appointments, a.Terminal, a.Terminal),
		screen.NewPatientProfile(a.Log, a.Patients, a.Terminal, a.Validator),
		func(doctorID int) *screen.BookingFlow {
			return screen.NewBookingFlow(a.Log, a.Doctors, a.Appointments, a.Terminal, a.Validator, doctorID)
		},
	)
}
