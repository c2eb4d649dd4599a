package module

import (
	"context"

	profiledom "mondegreen/internal/services/api/profile/domain"
	profilesvc "mondegreen/internal/services/api/profile/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptProfilePort adapts the profile service to the domain port interface
type adaptProfilePort struct{ svc profilesvc.Service }

// Get implements the domain ReaderPort interface
func (a adaptProfilePort) Get(ctx context.Context, userID string) (profiledom.UserVoiceProfile, error) {
	return a.svc.Get(ctx, userID)
}
