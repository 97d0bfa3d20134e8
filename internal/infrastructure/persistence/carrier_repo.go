package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

const carrierColumns = `
	id, mc_number, dot_number, legal_name, dba_name, operating_status, status,
	entity_type, address, phone, total_drivers, total_power_units,
	bipd_on_file, bipd_required, cargo_on_file, bond_on_file, insurance_on_file,
	safety_rating, safety_rating_date, driver_oos_rate, vehicle_oos_rate,
	crash_total, fatal_crash, injury_crash,
	verification_source, verified_at, version, created_at, updated_at`

type CarrierRepository struct {
	db *sqlx.DB
}

func NewCarrierRepository(db *sqlx.DB) *CarrierRepository {
	return &CarrierRepository{db: db}
}

// GetByMCNumber returns the stored carrier, including deactivated ones.
func (r *CarrierRepository) GetByMCNumber(ctx context.Context, mc value.MCNumber) (*entity.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers WHERE mc_number = $1`

	var schema carrierSchema
	if err := r.db.GetContext(ctx, &schema, query, mc.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.CarrierNotFound, fmt.Sprintf("carrier %s not found", mc))
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get carrier")
	}

	return schema.toDomain()
}

// Create inserts the carrier. A concurrent insert of the same MC number turns
// into an update of the existing row, which keeps its id.
func (r *CarrierRepository) Create(ctx context.Context, carrier *entity.Carrier) error {
	query := `
		INSERT INTO carriers (` + carrierColumns + `)
		VALUES (
			:id, :mc_number, :dot_number, :legal_name, :dba_name, :operating_status, :status,
			:entity_type, :address, :phone, :total_drivers, :total_power_units,
			:bipd_on_file, :bipd_required, :cargo_on_file, :bond_on_file, :insurance_on_file,
			:safety_rating, :safety_rating_date, :driver_oos_rate, :vehicle_oos_rate,
			:crash_total, :fatal_crash, :injury_crash,
			:verification_source, :verified_at, 1, now(), now()
		)
		ON CONFLICT (mc_number) DO UPDATE SET
			dot_number = EXCLUDED.dot_number,
			legal_name = EXCLUDED.legal_name,
			dba_name = EXCLUDED.dba_name,
			operating_status = EXCLUDED.operating_status,
			status = EXCLUDED.status,
			entity_type = EXCLUDED.entity_type,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			total_drivers = EXCLUDED.total_drivers,
			total_power_units = EXCLUDED.total_power_units,
			bipd_on_file = EXCLUDED.bipd_on_file,
			bipd_required = EXCLUDED.bipd_required,
			cargo_on_file = EXCLUDED.cargo_on_file,
			bond_on_file = EXCLUDED.bond_on_file,
			insurance_on_file = EXCLUDED.insurance_on_file,
			safety_rating = EXCLUDED.safety_rating,
			safety_rating_date = EXCLUDED.safety_rating_date,
			driver_oos_rate = EXCLUDED.driver_oos_rate,
			vehicle_oos_rate = EXCLUDED.vehicle_oos_rate,
			crash_total = EXCLUDED.crash_total,
			fatal_crash = EXCLUDED.fatal_crash,
			injury_crash = EXCLUDED.injury_crash,
			verification_source = EXCLUDED.verification_source,
			verified_at = EXCLUDED.verified_at,
			version = carriers.version + 1,
			updated_at = now()
		RETURNING id, version, created_at, updated_at`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.writeTx(ctx, tx, query, carrier)
	})
}

// Update overwrites the stored record and bumps its version.
func (r *CarrierRepository) Update(ctx context.Context, carrier *entity.Carrier) error {
	query := `
		UPDATE carriers SET
			dot_number = :dot_number,
			legal_name = :legal_name,
			dba_name = :dba_name,
			operating_status = :operating_status,
			status = :status,
			entity_type = :entity_type,
			address = :address,
			phone = :phone,
			total_drivers = :total_drivers,
			total_power_units = :total_power_units,
			bipd_on_file = :bipd_on_file,
			bipd_required = :bipd_required,
			cargo_on_file = :cargo_on_file,
			bond_on_file = :bond_on_file,
			insurance_on_file = :insurance_on_file,
			safety_rating = :safety_rating,
			safety_rating_date = :safety_rating_date,
			driver_oos_rate = :driver_oos_rate,
			vehicle_oos_rate = :vehicle_oos_rate,
			crash_total = :crash_total,
			fatal_crash = :fatal_crash,
			injury_crash = :injury_crash,
			verification_source = :verification_source,
			verified_at = :verified_at,
			version = version + 1,
			updated_at = now()
		WHERE mc_number = :mc_number
		RETURNING id, version, created_at, updated_at`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.writeTx(ctx, tx, query, carrier)
	})
}

// Deactivate marks the carrier inactive. The row is kept for audit.
func (r *CarrierRepository) Deactivate(ctx context.Context, mc value.MCNumber) error {
	query := `
		UPDATE carriers
		SET status = $1, version = version + 1, updated_at = now()
		WHERE mc_number = $2`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, string(value.CarrierInactive), mc.String())
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to deactivate carrier")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows affected")
		}

		if rows == 0 {
			return domain.NewError(errcodes.CarrierNotFound, fmt.Sprintf("carrier %s not found", mc))
		}

		return nil
	})
}

// writeTx runs an insert or update returning the store-owned fields and copies
// them back into carrier.
func (r *CarrierRepository) writeTx(ctx context.Context, tx *sqlx.Tx, query string, carrier *entity.Carrier) error {
	bound, args, err := sqlx.Named(query, fromCarrier(carrier))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to bind carrier")
	}

	var schema carrierSchema
	err = tx.QueryRowxContext(ctx, tx.Rebind(bound), args...).
		Scan(&schema.ID, &schema.Version, &schema.CreatedAt, &schema.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewError(errcodes.CarrierNotFound, fmt.Sprintf("carrier %s not found", carrier.MCNumber))
		}
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save carrier")
	}

	carrier.ID = schema.ID
	carrier.Version = schema.Version
	carrier.CreatedAt = schema.CreatedAt
	carrier.UpdatedAt = schema.UpdatedAt

	return nil
}
