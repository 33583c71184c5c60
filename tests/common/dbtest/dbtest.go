//go:build e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all ledger tables so each subtest starts from a clean
// slate on the shared per-process database.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE TABLE payment_verifications, access_requests RESTART IDENTITY CASCADE`)
	return err
}
