package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/repository"
	"github.com/unclebandit/autoshop-backend/internal/store"
)

func newBackend(t *testing.T) store.Backend {
	t.Helper()
	b, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return b
}

func TestCustomerRecordDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCustomerRecordRepository(newBackend(t))

	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, repo.Create(ctx, model.CustomerRecord{ID: id, Type: model.TypeAppointment, Name: "n-" + id}))
	}

	require.NoError(t, repo.Delete(ctx, "r2"))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "r3", records[1].ID)

	err = repo.Delete(ctx, "r2")
	assert.True(t, appErrors.IsNotFound(err))

	records, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestDeletingCustomerRecordKeepsAppointment(t *testing.T) {
	ctx := context.Background()
	backend := newBackend(t)
	appointments := repository.NewAppointmentRepository(backend)
	customers := repository.NewCustomerRecordRepository(backend)

	a, err := model.NewAppointment(model.AppointmentInput{
		Name: "Ravi", Phone: "9876543210", Address: "MG Road", Vehicle: "Swift", Issue: "AC",
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, appointments.Create(ctx, a))
	require.NoError(t, customers.Create(ctx, a.CustomerRecord()))

	require.NoError(t, customers.Delete(ctx, a.ID))

	list, err := appointments.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestListAllOnFreshStoreIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := newBackend(t)

	fb, err := repository.NewFeedbackRepository(backend).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, fb)

	contacts, err := repository.NewContactRepository(backend).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	spares, err := repository.NewSpareRepository(backend).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, spares)
}
