package store

import "context"

// RunForUser wraps ctx with the acting user and calls fn inside one
// transaction on the provided TxRunner. Read-modify-write flows use this so
// a profile load and its matching store happen atomically
func RunForUser(ctx context.Context, tx TxRunner, userID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithUser(ctx, userID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
