package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

func TestBarberRepository_CreateDuplicateUsername(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBarberGormRepository(gdb)
	ctx := context.Background()

	seedBarber(t, gdb, "dean")

	_, err := repo.Create(ctx, &models.Barber{
		Username: "dean", Name: "Other Dean", ContactInfo: "555-9999",
	})
	assert.ErrorIs(t, err, booking.ErrConflict)
}

func TestBarberRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBarberGormRepository(gdb)
	ctx := context.Background()

	dean := seedBarber(t, gdb, "dean")
	seedBarber(t, gdb, "victor")

	updated, err := repo.Update(ctx, dean.ID, &models.Barber{
		Username: "dean-2", Name: "Dean", Specialty: "Beards", ContactInfo: "555-0200",
	})
	require.NoError(t, err)
	assert.Equal(t, "dean-2", updated.Username)
	assert.Equal(t, "Beards", updated.Specialty)

	_, err = repo.Update(ctx, dean.ID, &models.Barber{Username: "victor", Name: "Dean"})
	assert.ErrorIs(t, err, booking.ErrConflict)

	_, err = repo.Update(ctx, 999, &models.Barber{Username: "ghost", Name: "Ghost"})
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBarberRepository_DeleteRemovesDependents(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBarberGormRepository(gdb)
	ctx := context.Background()

	dean := seedBarber(t, gdb, "dean")
	alice := seedCustomer(t, gdb, "alice")
	haircut := seedService(t, gdb, "Haircut")

	require.NoError(t, gdb.Create(&models.BarberService{
		BarberID: dean.ID, ServiceID: haircut.ID,
	}).Error)
	require.NoError(t, gdb.Create(&models.Appointment{
		AppointmentDate: time.Now().UTC(),
		Status:          "Pending",
		CustomerID:      alice.ID,
		BarberID:        dean.ID,
		ServiceID:       haircut.ID,
	}).Error)

	deleted, err := repo.DeleteByID(ctx, dean.ID)
	require.NoError(t, err)
	assert.Equal(t, dean.ID, deleted.ID)

	_, err = repo.GetByID(ctx, dean.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	var links, appointments int64
	require.NoError(t, gdb.Model(&models.BarberService{}).Count(&links).Error)
	require.NoError(t, gdb.Model(&models.Appointment{}).Count(&appointments).Error)
	assert.Zero(t, links)
	assert.Zero(t, appointments)

	// The service catalog is untouched.
	var services int64
	require.NoError(t, gdb.Model(&models.Service{}).Count(&services).Error)
	assert.Equal(t, int64(1), services)
}
