package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/pkg/errcodes"
)

const negotiationColumns = `
	id, load_id, mc_number, round_number, max_rounds, reference_rate, carrier_offer,
	minimum_acceptable, maximum_acceptable, decision, counter_offer, decision_factors,
	final_status, agreed_rate, reason, is_active, session_start, session_end,
	total_duration_seconds, version, created_at, updated_at`

type NegotiationRepository struct {
	db *sqlx.DB
}

func NewNegotiationRepository(db *sqlx.DB) *NegotiationRepository {
	return &NegotiationRepository{db: db}
}

// Create stores a new session with version 1.
func (r *NegotiationRepository) Create(ctx context.Context, session *entity.NegotiationSession) error {
	schema, err := fromNegotiation(session)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO negotiations (` + negotiationColumns + `)
		VALUES (
			:id, :load_id, :mc_number, :round_number, :max_rounds, :reference_rate, :carrier_offer,
			:minimum_acceptable, :maximum_acceptable, :decision, :counter_offer, :decision_factors,
			:final_status, :agreed_rate, :reason, :is_active, :session_start, :session_end,
			:total_duration_seconds, 1, :created_at, :updated_at
		)`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create negotiation")
		}

		session.Version = 1

		return nil
	})
}

func (r *NegotiationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.NegotiationSession, error) {
	query := `SELECT ` + negotiationColumns + ` FROM negotiations WHERE id = $1`

	var schema negotiationSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.NegotiationNotFound, fmt.Sprintf("negotiation %s not found", id))
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get negotiation")
	}

	return schema.toDomain()
}

// Update writes the session if nobody changed it since it was read. A stale
// version fails with NegotiationConflict.
func (r *NegotiationRepository) Update(ctx context.Context, session *entity.NegotiationSession) error {
	schema, err := fromNegotiation(session)
	if err != nil {
		return err
	}

	query := `
		UPDATE negotiations SET
			round_number = :round_number,
			carrier_offer = :carrier_offer,
			minimum_acceptable = :minimum_acceptable,
			maximum_acceptable = :maximum_acceptable,
			decision = :decision,
			counter_offer = :counter_offer,
			decision_factors = :decision_factors,
			final_status = :final_status,
			agreed_rate = :agreed_rate,
			reason = :reason,
			is_active = :is_active,
			session_end = :session_end,
			total_duration_seconds = :total_duration_seconds,
			version = version + 1,
			updated_at = :updated_at
		WHERE id = :id AND version = :version`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, query, schema)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update negotiation")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows affected")
		}

		if rows == 0 {
			return r.missingOrStale(ctx, tx, session.ID)
		}

		session.Version++

		return nil
	})
}

func (r *NegotiationRepository) missingOrStale(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM negotiations WHERE id = $1)`, id); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check negotiation")
	}

	if !exists {
		return domain.NewError(errcodes.NegotiationNotFound, fmt.Sprintf("negotiation %s not found", id))
	}

	return domain.NewError(errcodes.NegotiationConflict, fmt.Sprintf("negotiation %s was modified concurrently", id))
}
