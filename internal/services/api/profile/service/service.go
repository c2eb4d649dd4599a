// Package service contains profile read workflows
package service

import (
	"context"

	"mondegreen/internal/modkit/repokit"
	perr "mondegreen/internal/platform/errors"
	"mondegreen/internal/services/api/profile/domain"
	"mondegreen/internal/services/api/profile/repo"
)

// Service defines the service contract for profiles
type Service interface{ domain.ReaderPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new profile service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("profile.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("profile.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns the stored profile for userID. A user with no row yet gets an
// empty profile, not an error; downstream biasing treats both the same
func (s *Svc) Get(ctx context.Context, userID string) (domain.UserVoiceProfile, error) {
	if userID == "" {
		return domain.UserVoiceProfile{}, perr.Unauthorizedf("missing user identity")
	}
	p, found, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return domain.UserVoiceProfile{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "load voice profile")
	}
	if !found {
		return domain.Empty(userID), nil
	}
	return p, nil
}
