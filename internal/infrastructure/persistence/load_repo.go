package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

type LoadRepository struct {
	db *sqlx.DB
}

func NewLoadRepository(db *sqlx.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

// GetReferenceRate returns the posted rate of the load.
func (r *LoadRepository) GetReferenceRate(ctx context.Context, loadID string) (value.Rate, error) {
	query := `SELECT reference_rate FROM loads WHERE load_id = $1`

	var rate value.Rate
	if err := r.db.GetContext(ctx, &rate, query, loadID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return value.Rate{}, domain.NewError(errcodes.LoadNotFound, fmt.Sprintf("load %s not found", loadID))
		}
		return value.Rate{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get load")
	}

	return rate, nil
}
