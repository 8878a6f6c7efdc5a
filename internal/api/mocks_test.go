package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api/shared"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/domain/insight"
)

// fakeJournalService implements service.JournalService for handler tests.
type fakeJournalService struct {
	entries   []*domain.JournalEntry
	createErr error
	listErr   error
}

func (f *fakeJournalService) CreateEntry(
	_ context.Context,
	userID uuid.UUID,
	content string,
) (*domain.JournalEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	entry, err := domain.NewJournalEntry(userID, content, 0.5, "Joy", false)
	if err != nil {
		return nil, err
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeJournalService) ListEntries(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.JournalEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

// fakeMedicationService implements service.MedicationService for handler tests.
type fakeMedicationService struct {
	meds      []*domain.Medication
	logs      []*domain.MedicationLog
	createErr error
	deleteErr error
	logErr    error
}

func (f *fakeMedicationService) CreateMedication(
	_ context.Context,
	userID uuid.UUID,
	name, dosage string,
	frequencyPerDay int,
	reminderTime string,
) (*domain.Medication, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	med, err := domain.NewMedication(userID, name, dosage, frequencyPerDay, reminderTime)
	if err != nil {
		return nil, err
	}
	f.meds = append(f.meds, med)
	return med, nil
}

func (f *fakeMedicationService) ListMedications(
	_ context.Context,
	_ uuid.UUID,
) ([]*domain.Medication, error) {
	return f.meds, nil
}

func (f *fakeMedicationService) DeleteMedication(
	_ context.Context,
	_, _ uuid.UUID,
) error {
	return f.deleteErr
}

func (f *fakeMedicationService) LogTaken(
	_ context.Context,
	userID, medicationID uuid.UUID,
	takenDate string,
) (*domain.MedicationLog, error) {
	if f.logErr != nil {
		return nil, f.logErr
	}
	medLog, err := domain.NewMedicationLog(userID, medicationID, takenDate)
	if err != nil {
		return nil, err
	}
	f.logs = append(f.logs, medLog)
	return medLog, nil
}

func (f *fakeMedicationService) ListLogs(
	_ context.Context,
	_ uuid.UUID,
) ([]*domain.MedicationLog, error) {
	return f.logs, nil
}

// fakeUserService implements service.UserService for handler tests.
type fakeUserService struct {
	registerErr error
	authErr     error
	user        *domain.User
}

func (f *fakeUserService) Register(
	_ context.Context,
	email, password string,
) (*domain.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return domain.NewUser(email, password)
}

func (f *fakeUserService) Authenticate(
	_ context.Context,
	_, _ string,
) (*domain.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.user, nil
}

func (f *fakeUserService) GetUser(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	return f.user, nil
}

// fakeInsightService implements service.InsightService for handler tests.
type fakeInsightService struct {
	result insight.WeeklyInsight
	err    error
}

func (f *fakeInsightService) WeeklyInsight(
	_ context.Context,
	_ uuid.UUID,
) (insight.WeeklyInsight, error) {
	if f.err != nil {
		return insight.WeeklyInsight{}, f.err
	}
	return f.result, nil
}

// authenticatedRequest builds a request with the user ID already in context,
// as the auth middleware would leave it.
func authenticatedRequest(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// execute serves the request against a handler func and returns the recorder.
func execute(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}
