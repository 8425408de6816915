package repository

import (
	"context"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/store"
)

// CustomerRecordRepositoryInterface defines methods used by service and handler
type CustomerRecordRepositoryInterface interface {
	Create(ctx context.Context, rec model.CustomerRecord) error
	ListAll(ctx context.Context) ([]model.CustomerRecord, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRecordRepository is the concrete implementation
type CustomerRecordRepository struct {
	Store *store.Collection[model.CustomerRecord]
}

func NewCustomerRecordRepository(b store.Backend) *CustomerRecordRepository {
	return &CustomerRecordRepository{Store: store.NewCollection[model.CustomerRecord](b, store.CustomerRecords)}
}

func (r *CustomerRecordRepository) Create(ctx context.Context, rec model.CustomerRecord) error {
	_, err := r.Store.Append(ctx, rec)
	return err
}

func (r *CustomerRecordRepository) ListAll(ctx context.Context) ([]model.CustomerRecord, error) {
	return r.Store.Load(ctx)
}

// Delete removes the record with the given id. Source appointments and
// spare-parts requests are left untouched.
func (r *CustomerRecordRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.Store.Remove(ctx, func(rec model.CustomerRecord) bool {
		return rec.ID == id
	})
	if err != nil {
		return err
	}
	if !removed {
		return appErrors.NewRecordNotFound(store.CustomerRecords, id)
	}
	return nil
}
