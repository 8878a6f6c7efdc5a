package service_test

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/events"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// fakeUserStore is an in-memory UserStore for unit tests.
type fakeUserStore struct {
	users      map[uuid.UUID]*domain.User
	getErr     error
	getByEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      make(map[uuid.UUID]*domain.User),
		getByEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserStore) add(user *domain.User) {
	f.users[user.ID] = user
	f.getByEmail[user.Email] = user
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.getByEmail[user.Email]; ok {
		return store.ErrEmailExists
	}
	f.add(user)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.getByEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) WithTx(_ *sql.Tx) store.UserStore { return f }

// fakeJournalStore is an in-memory JournalStore for unit tests.
type fakeJournalStore struct {
	entries []*domain.JournalEntry
	listErr error
}

func (f *fakeJournalStore) Create(_ context.Context, entry *domain.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeJournalStore) ListByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.JournalEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.JournalEntry, 0)
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeJournalStore) WithTx(_ *sql.Tx) store.JournalStore { return f }

// fakeMedicationStore is an in-memory MedicationStore for unit tests.
type fakeMedicationStore struct {
	meds      map[uuid.UUID]*domain.Medication
	createErr error
}

func newFakeMedicationStore() *fakeMedicationStore {
	return &fakeMedicationStore{meds: make(map[uuid.UUID]*domain.Medication)}
}

func (f *fakeMedicationStore) Create(_ context.Context, med *domain.Medication) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.meds[med.ID] = med
	return nil
}

func (f *fakeMedicationStore) GetByID(
	_ context.Context,
	id uuid.UUID,
) (*domain.Medication, error) {
	med, ok := f.meds[id]
	if !ok {
		return nil, store.ErrMedicationNotFound
	}
	return med, nil
}

func (f *fakeMedicationStore) ListByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.Medication, error) {
	out := make([]*domain.Medication, 0)
	for _, m := range f.meds {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMedicationStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.meds[id]; !ok {
		return store.ErrMedicationNotFound
	}
	delete(f.meds, id)
	return nil
}

func (f *fakeMedicationStore) WithTx(_ *sql.Tx) store.MedicationStore { return f }

// fakeMedicationLogStore is an in-memory MedicationLogStore for unit tests.
type fakeMedicationLogStore struct {
	logs      []*domain.MedicationLog
	createErr error
	listErr   error
}

func (f *fakeMedicationLogStore) Create(_ context.Context, medLog *domain.MedicationLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.logs = append(f.logs, medLog)
	return nil
}

func (f *fakeMedicationLogStore) ListByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.MedicationLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.MedicationLog, 0)
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeMedicationLogStore) DeleteByMedication(
	_ context.Context,
	medicationID uuid.UUID,
) error {
	remaining := f.logs[:0]
	for _, l := range f.logs {
		if l.MedicationID != medicationID {
			remaining = append(remaining, l)
		}
	}
	f.logs = remaining
	return nil
}

func (f *fakeMedicationLogStore) WithTx(_ *sql.Tx) store.MedicationLogStore { return f }

// fakeFitnessLogStore is an in-memory FitnessLogStore for unit tests.
type fakeFitnessLogStore struct {
	logs      []*domain.FitnessLog
	createErr error
	listErr   error
}

func (f *fakeFitnessLogStore) Create(_ context.Context, fitLog *domain.FitnessLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.logs = append(f.logs, fitLog)
	return nil
}

func (f *fakeFitnessLogStore) ListByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.FitnessLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.FitnessLog, 0)
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeFitnessLogStore) WithTx(_ *sql.Tx) store.FitnessLogStore { return f }

// fakeEmitter records emitted events.
type fakeEmitter struct {
	events  []*events.Event
	emitErr error
}

func (f *fakeEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	if f.emitErr != nil {
		return f.emitErr
	}
	f.events = append(f.events, event)
	return nil
}

var errMismatch = errors.New("password mismatch")

// fakeVerifier accepts exactly one password.
type fakeVerifier struct {
	accepted string
}

func (f *fakeVerifier) Compare(_, password string) error {
	if password == f.accepted {
		return nil
	}
	return errMismatch
}
