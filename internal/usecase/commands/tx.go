package commands

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isTxClosed filters the expected rollback error after a successful commit.
func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
