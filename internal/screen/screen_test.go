package screen

import (
	"context"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// notifierRecorder collects the toasts a screen emitted.
type notifierRecorder struct {
	successes []string
	errors    []string
}

func (n *notifierRecorder) Success(message string) { n.successes = append(n.successes, message) }
func (n *notifierRecorder) Error(message string)   { n.errors = append(n.errors, message) }

// confirmerScript answers every confirm with a fixed yes/no and every prompt
// with a fixed value.
type confirmerScript struct {
	answer      bool
	promptValue string
	promptOK    bool

	confirms []string
	prompts  []string
}

func (c *confirmerScript) Confirm(prompt string) bool {
	c.confirms = append(c.confirms, prompt)
	return c.answer
}

func (c *confirmerScript) Prompt(prompt string) (string, bool) {
	c.prompts = append(c.prompts, prompt)
	return c.promptValue, c.promptOK
}

// fakeAppointments scripts the appointment backend and counts calls.
type fakeAppointments struct {
	items    []entity.Appointment
	upcoming []entity.Appointment
	past     []entity.Appointment
	listErr  error

	created   []*repository.CreateAppointmentInput
	createErr error
	createRes *entity.Appointment

	approveIDs []int
	approveErr error
	rejected   []string
	cancelled  []string
	statuses   []entity.AppointmentStatus
	actionErr  error

	listCalls     int
	upcomingCalls int
	pastCalls     int
}

func (f *fakeAppointments) List(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeAppointments) Get(ctx context.Context, id int) (*entity.Appointment, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, f.listErr
}

func (f *fakeAppointments) Create(ctx context.Context, input *repository.CreateAppointmentInput) (*entity.Appointment, error) {
	f.created = append(f.created, input)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createRes != nil {
		return f.createRes, nil
	}
	return &entity.Appointment{ID: 1, Status: entity.AppointmentStatusPending}, nil
}

func (f *fakeAppointments) Cancel(ctx context.Context, id int, reason string) error {
	f.cancelled = append(f.cancelled, reason)
	return f.actionErr
}

func (f *fakeAppointments) Approve(ctx context.Context, id int) error {
	f.approveIDs = append(f.approveIDs, id)
	return f.approveErr
}

func (f *fakeAppointments) Reject(ctx context.Context, id int, reason string) error {
	f.rejected = append(f.rejected, reason)
	return f.actionErr
}

func (f *fakeAppointments) UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus) error {
	f.statuses = append(f.statuses, status)
	return f.actionErr
}

func (f *fakeAppointments) Upcoming(ctx context.Context) ([]entity.Appointment, error) {
	f.upcomingCalls++
	return f.upcoming, f.listErr
}

func (f *fakeAppointments) Past(ctx context.Context) ([]entity.Appointment, error) {
	f.pastCalls++
	return f.past, f.listErr
}

// fakeDoctors scripts the doctor backend for booking and list tests.
type fakeDoctors struct {
	doctor    *entity.Doctor
	getErr    error
	items     []entity.Doctor
	listErr   error
	slots     map[string][]string
	slotsErr  error
	slotCalls []string

	patches    []*repository.DoctorPatch
	deletedIDs []int
	updateErr  error

	schedule    []entity.ScheduleEntry
	scheduleErr error
}

func (f *fakeDoctors) List(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	return f.items, f.listErr
}

func (f *fakeDoctors) Get(ctx context.Context, id int) (*entity.Doctor, error) {
	return f.doctor, f.getErr
}

func (f *fakeDoctors) AvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	f.slotCalls = append(f.slotCalls, date)
	return f.slots[date], f.slotsErr
}

func (f *fakeDoctors) Specialties(ctx context.Context) ([]entity.Specialty, error) {
	return nil, nil
}

func (f *fakeDoctors) Update(ctx context.Context, id int, patch *repository.DoctorPatch) (*entity.Doctor, error) {
	f.patches = append(f.patches, patch)
	return f.doctor, f.updateErr
}

func (f *fakeDoctors) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.updateErr
}

func (f *fakeDoctors) Profile(ctx context.Context) (*entity.Doctor, error) {
	return f.doctor, f.getErr
}

func (f *fakeDoctors) UpdateProfile(ctx context.Context, input *repository.DoctorProfileInput) (*entity.Doctor, error) {
	return f.doctor, f.updateErr
}

func (f *fakeDoctors) Schedule(ctx context.Context) ([]entity.ScheduleEntry, error) {
	return f.schedule, f.scheduleErr
}

func (f *fakeDoctors) UpdateSchedule(ctx context.Context, entries []entity.ScheduleEntry) error {
	f.schedule = entries
	return f.scheduleErr
}

// fakeAdmin scripts the admin endpoints.
type fakeAdmin struct {
	stats       *entity.DashboardStats
	statsErr    error
	approvedIDs []int
	approveErr  error
}

func (f *fakeAdmin) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAdmin) ApproveDoctor(ctx context.Context, doctorID int) error {
	f.approvedIDs = append(f.approvedIDs, doctorID)
	return f.approveErr
}

// fakePatients scripts the patient's own-profile endpoints.
type fakePatients struct {
	patient   *entity.Patient
	getErr    error
	updates   []*repository.PatientProfileInput
	updateErr error
}

func (f *fakePatients) Profile(ctx context.Context) (*entity.Patient, error) {
	return f.patient, f.getErr
}

func (f *fakePatients) UpdateProfile(ctx context.Context, input *repository.PatientProfileInput) (*entity.Patient, error) {
	f.updates = append(f.updates, input)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.patient, nil
}

func (f *fakePatients) Appointments(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}

// fakeUsers scripts the user listing.
type fakeUsers struct {
	items   []entity.User
	listErr error
}

func (f *fakeUsers) List(ctx context.Context) ([]entity.User, error) {
	return f.items, f.listErr
}
