package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// withTx runs fn in a transaction, rolling back on error or panic. An error
// from fn is returned as is, even when the rollback fails too.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger(ctx).Error("tx.Rollback", logx.Error(rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}
