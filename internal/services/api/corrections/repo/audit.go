package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mondegreen/internal/platform/logger"
	"mondegreen/internal/platform/store"
	"mondegreen/internal/services/api/corrections/domain"
)

// auditTable is the append-only ClickHouse log of raw corrections
const auditTable = "corrections_log"

// CHAudit writes accepted corrections to ClickHouse
type CHAudit struct{ ch store.Clickhouse }

// NewCHAudit builds an AuditPort over the store ClickHouse seam
func NewCHAudit(ch store.Clickhouse) *CHAudit {
	if ch == nil {
		panic("corrections.CHAudit requires a non nil Clickhouse seam")
	}
	return &CHAudit{ch: ch}
}

// Record appends one row per accepted correction
func (a *CHAudit) Record(ctx context.Context, entries []domain.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			uuid.NewString(),
			e.UserID,
			e.TaskID,
			e.FieldName,
			e.OriginalValue,
			e.CorrectedValue,
			now,
		})
	}
	return a.ch.Insert(ctx, auditTable, rows)
}

// NopAudit drops audit rows; used when ClickHouse is disabled
type NopAudit struct{}

// Record logs at debug so a misconfigured deploy is at least visible
func (NopAudit) Record(ctx context.Context, entries []domain.AuditEntry) error {
	logger.C(ctx).Debug().Int("rows", len(entries)).Msg("corrections audit disabled, dropping rows")
	return nil
}
