package database

import (
	"context"
	"fmt"
)

type TxOptions struct {
	ReadOnly bool
}

func DefaultTxOptions() TxOptions {
	return TxOptions{
		ReadOnly: false,
	}
}

func ReadOnlyTxOptions() TxOptions {
	return TxOptions{
		ReadOnly: true,
	}
}

// WithTransaction runs fn while holding the DB lock. There is no rollback:
// fn must validate its inputs before touching any table.
func WithTransaction(ctx context.Context, db *DB, opts TxOptions, fn func(*DB) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if opts.ReadOnly {
		db.mu.RLock()
		defer db.mu.RUnlock()
	} else {
		db.mu.Lock()
		defer db.mu.Unlock()
	}

	return fn(db)
}
