package module

import (
	"context"

	"mondegreen/internal/services/api/corrections/domain"
	correctionssvc "mondegreen/internal/services/api/corrections/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSyncerPort adapts the corrections service to the domain port interface
type adaptSyncerPort struct{ svc correctionssvc.Service }

// Sync implements the domain SyncerPort interface
func (a adaptSyncerPort) Sync(ctx context.Context, userID string, in domain.SyncInput) (domain.SyncAck, error) {
	return a.svc.Sync(ctx, userID, in)
}
