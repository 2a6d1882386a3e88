package screen

import (
	"context"
	"testing"

	"medibook-portals/internal/domain/entity"
)

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, User: entity.User{FullName: "Dr. Mehta", Email: "mehta@x.y"}, IsApproved: true, IsActive: true,
			Specialization: []entity.Specialty{{ID: 1, Name: "Cardiology"}}},
		{ID: 2, User: entity.User{FullName: "Dr. Rao", Email: "rao@x.y"}, IsApproved: false, IsActive: true},
		{ID: 3, User: entity.User{FullName: "Dr. Iyer", Email: "iyer@x.y"}, IsApproved: true, IsActive: false},
	}
}

func newDoctorListFixture(doctors *fakeDoctors, admin *fakeAdmin, confirmer *confirmerScript) (*DoctorList, *notifierRecorder) {
	notifier := &notifierRecorder{}
	return NewDoctorList(testLogger(), doctors, admin, notifier, confirmer), notifier
}

func TestDoctorTabs(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	list, _ := newDoctorListFixture(repo, &fakeAdmin{}, &confirmerScript{})
	ctx := context.Background()
	list.Load(ctx)

	cases := []struct {
		tab  string
		want int
	}{
		{TabAll, 3},
		{TabPending, 1},
		{TabApproved, 2},
		{TabInactive, 1},
	}
	for _, tc := range cases {
		list.SetTab(tc.tab)
		if got := len(list.Visible()); got != tc.want {
			t.Errorf("tab %q: visible = %d, want %d", tc.tab, got, tc.want)
		}
	}
}

func TestDoctorSearchMatchesSpecialty(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	list, _ := newDoctorListFixture(repo, &fakeAdmin{}, &confirmerScript{})
	ctx := context.Background()
	list.Load(ctx)

	list.SetSearch("cardio")
	visible := list.Visible()
	if len(visible) != 1 || visible[0].ID != 1 {
		t.Errorf("visible = %+v", visible)
	}
}

func TestApproveDoctorGoesThroughAdminEndpoint(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	admin := &fakeAdmin{}
	list, notifier := newDoctorListFixture(repo, admin, &confirmerScript{answer: true})
	ctx := context.Background()
	list.Load(ctx)

	list.Approve(ctx, 2)

	if len(admin.approvedIDs) != 1 || admin.approvedIDs[0] != 2 {
		t.Errorf("approved = %v", admin.approvedIDs)
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Doctor approved successfully" {
		t.Errorf("successes = %v", notifier.successes)
	}
}

func TestToggleActiveSendsPartialPatch(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	list, _ := newDoctorListFixture(repo, &fakeAdmin{}, &confirmerScript{answer: true})
	ctx := context.Background()
	list.Load(ctx)

	active := sampleDoctors()[0]
	list.ToggleActive(ctx, &active)

	if len(repo.patches) != 1 {
		t.Fatalf("patches = %d", len(repo.patches))
	}
	patch := repo.patches[0]
	if patch.IsActive == nil || *patch.IsActive {
		t.Errorf("patch.IsActive = %v, want false", patch.IsActive)
	}
	if patch.ConsultationFee != nil || patch.Qualification != nil {
		t.Errorf("patch carries unrelated fields: %+v", patch)
	}
}

func TestDeleteRequiresTypedConfirmation(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	list, notifier := newDoctorListFixture(repo, &fakeAdmin{}, &confirmerScript{answer: true, promptValue: "delete", promptOK: true})
	ctx := context.Background()
	list.Load(ctx)

	// Lowercase "delete" does not count.
	list.Delete(ctx, 1)

	if len(repo.deletedIDs) != 0 {
		t.Errorf("deleted despite wrong confirmation text")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "Deletion cancelled" {
		t.Errorf("notifications = %v", notifier.errors)
	}
}

func TestDeleteWithTypedConfirmation(t *testing.T) {
	repo := &fakeDoctors{items: sampleDoctors()}
	list, notifier := newDoctorListFixture(repo, &fakeAdmin{}, &confirmerScript{answer: true, promptValue: "DELETE", promptOK: true})
	ctx := context.Background()
	list.Load(ctx)

	list.Delete(ctx, 1)

	if len(repo.deletedIDs) != 1 || repo.deletedIDs[0] != 1 {
		t.Errorf("deleted = %v", repo.deletedIDs)
	}
	if len(notifier.successes) != 1 {
		t.Errorf("successes = %v", notifier.successes)
	}
}
