package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/fadebook/fadebook-api/internal/db"
	"github.com/fadebook/fadebook-api/internal/httperr"
	infraRepo "github.com/fadebook/fadebook-api/internal/infra/repository"
	"github.com/fadebook/fadebook-api/internal/models"
)

func setup(t *testing.T) *Service {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return NewService(gdb, infraRepo.NewCustomerGormRepository(gdb))
}

func TestSignUp(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestSignUp_IncompleteCustomer(t *testing.T) {
	svc := setup(t)

	_, err := svc.SignUp(context.Background(), &models.Customer{Username: "alice"})

	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Message, "name, contact_info")
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Imposter", ContactInfo: "555-2222",
	})
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 409, he.Status)
}

func TestLogin(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)

	customer, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", customer.Name)

	var he *httperr.Error

	_, err = svc.Login(ctx, "nobody")
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)

	_, err = svc.Login(ctx, "   ")
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
}

func TestUsernameExists(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)

	exists, err := svc.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.UsernameExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.UsernameExists(ctx, "")
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
}

func TestUpdateCustomer(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	alice, err := svc.SignUp(ctx, &models.Customer{
		Username: "alice", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)
	bob, err := svc.SignUp(ctx, &models.Customer{
		Username: "bob", Name: "Bob", ContactInfo: "555-2222",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(ctx, alice.ID, &models.Customer{
		Username: "alice-2", Name: "Alice", ContactInfo: "555-1111",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice-2", updated.Username)

	var he *httperr.Error

	_, err = svc.UpdateCustomer(ctx, bob.ID, &models.Customer{
		Username: "alice-2", Name: "Bob", ContactInfo: "555-2222",
	})
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 409, he.Status)

	_, err = svc.UpdateCustomer(ctx, 999, &models.Customer{Username: "ghost"})
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}
