package domain

import "context"

// SyncerPort ingests a correction batch for one user
type SyncerPort interface {
	Sync(ctx context.Context, userID string, in SyncInput) (SyncAck, error)
}

// AuditPort appends accepted corrections to the write-only log. Failures
// must not fail the batch; the log is best-effort history
type AuditPort interface {
	Record(ctx context.Context, entries []AuditEntry) error
}
