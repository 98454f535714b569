package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/jobs"
)

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByDeliveryNote(ctx context.Context, noteID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllAwaitedBefore(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type alertRecord struct {
	title   string
	message string
	link    string
}

type RecordingAlerter struct {
	alerts []alertRecord
}

func (a *RecordingAlerter) AlertAdministrators(_ context.Context, title, message, link string) {
	a.alerts = append(a.alerts, alertRecord{title: title, message: message, link: link})
}

func TestStaleParcelJob_Run_AlertsPerStaleParcel(t *testing.T) {
	stale1, err := parcel.NewParcel(kernel.NewUUID(), nil, "CHRO-1", "Chronopost", "")
	require.NoError(t, err)
	stale2, err := parcel.NewParcel(kernel.NewUUID(), nil, "", "", "")
	require.NoError(t, err)

	parcels := new(MockParcelRepository)
	parcels.On("GetAllAwaitedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{stale1, stale2}, nil)

	alerter := &RecordingAlerter{}
	job := jobs.NewStaleParcelJob(parcels, alerter, 7*24*time.Hour, slog.Default())

	job.Run()

	require.Len(t, alerter.alerts, 2)
	assert.Equal(t, "Colis CHRO-1", alerter.alerts[0].title)
	assert.Contains(t, alerter.alerts[0].message, "7 jours")
	assert.Equal(t, "/colis/"+stale1.ID().String(), alerter.alerts[0].link)
	assert.Equal(t, "Colis "+stale2.Label(), alerter.alerts[1].title)
	parcels.AssertExpectations(t)
}

func TestStaleParcelJob_Run_NoStaleParcels(t *testing.T) {
	parcels := new(MockParcelRepository)
	parcels.On("GetAllAwaitedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{}, nil)

	alerter := &RecordingAlerter{}
	job := jobs.NewStaleParcelJob(parcels, alerter, 7*24*time.Hour, slog.Default())

	job.Run()

	assert.Empty(t, alerter.alerts)
	parcels.AssertExpectations(t)
}

func TestStaleParcelJob_Run_RepositoryErrorDoesNotAlert(t *testing.T) {
	parcels := new(MockParcelRepository)
	parcels.On("GetAllAwaitedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError)

	alerter := &RecordingAlerter{}
	job := jobs.NewStaleParcelJob(parcels, alerter, 24*time.Hour, slog.Default())

	job.Run()

	assert.Empty(t, alerter.alerts)
	parcels.AssertExpectations(t)
}
