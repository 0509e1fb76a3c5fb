package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fadebook/fadebook-api/internal/audit"
	dbpkg "github.com/fadebook/fadebook-api/internal/db"
	"github.com/fadebook/fadebook-api/internal/httperr"
	infraRepo "github.com/fadebook/fadebook-api/internal/infra/repository"
	"github.com/fadebook/fadebook-api/internal/models"
)

type fixture struct {
	db       *gorm.DB
	svc      *Service
	customer *models.Customer
	barber   *models.Barber
	service  *models.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	customer := models.Customer{Username: "alice", Name: "Alice", ContactInfo: "555-1111"}
	barber := models.Barber{Username: "dean", Name: "Dean", ContactInfo: "555-2222"}
	service := models.Service{Name: "Haircut", Price: 20}
	require.NoError(t, gdb.Create(&customer).Error)
	require.NoError(t, gdb.Create(&barber).Error)
	require.NoError(t, gdb.Create(&service).Error)

	log := zerolog.Nop()
	dispatcher := audit.NewDispatcher(audit.New(gdb), &log)

	return &fixture{
		db: gdb,
		svc: NewService(gdb,
			infraRepo.NewAppointmentGormRepository(gdb),
			infraRepo.NewCustomerGormRepository(gdb),
			dispatcher),
		customer: &customer,
		barber:   &barber,
		service:  &service,
	}
}

func (f *fixture) candidate() *models.Appointment {
	return &models.Appointment{
		AppointmentDate: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Status:          "Pending",
		CustomerID:      f.customer.ID,
		BarberID:        f.barber.ID,
		ServiceID:       f.service.ID,
	}
}

func TestCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", got.Status)
}

func TestCreate_IncompletePayload(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Appointment)
	}{
		{"missing customer", func(ap *models.Appointment) { ap.CustomerID = 0 }},
		{"missing barber", func(ap *models.Appointment) { ap.BarberID = 0 }},
		{"missing service", func(ap *models.Appointment) { ap.ServiceID = 0 }},
		{"missing status", func(ap *models.Appointment) { ap.Status = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := f.candidate()
			tt.mutate(ap)
			_, err := f.svc.Create(ctx, ap)
			var he *httperr.Error
			require.ErrorAs(t, err, &he)
			assert.Equal(t, 400, he.Status)
		})
	}
}

func TestCreate_UnknownReference(t *testing.T) {
	f := setup(t)

	ap := f.candidate()
	ap.BarberID = 999
	_, err := f.svc.Create(context.Background(), ap)

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Message, "Verify that customer, barber, and service IDs exist")
}

func TestCreate_RetryWithExistingID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)

	retry := f.candidate()
	retry.ID = created.ID
	retry.Status = "Cancelled"

	again, err := f.svc.Create(ctx, retry)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Pending", again.Status)
}

func TestUpdate_MissingAndBadReferenceBothReadAsNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, 999, f.candidate())
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)

	bad := f.candidate()
	bad.ServiceID = 999
	_, err = f.svc.Update(ctx, created.ID, bad)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}

func TestUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)

	next := f.candidate()
	next.Status = "Completed"
	updated, err := f.svc.Update(ctx, created.ID, next)
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated.Status)
}

func TestDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, created.ID)
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}

func TestLookupByUsername(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.candidate())
	require.NoError(t, err)

	aps, err := f.svc.LookupByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aps, 1)

	// Known customer without bookings resolves to an empty list.
	require.NoError(t, f.db.Create(&models.Customer{
		Username: "bob", Name: "Bob", ContactInfo: "555-3333",
	}).Error)
	aps, err = f.svc.LookupByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, aps)

	_, err = f.svc.LookupByUsername(ctx, "nobody")
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}
