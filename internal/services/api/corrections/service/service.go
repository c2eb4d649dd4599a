// Package service contains the correction ingestion workflow
package service

import (
	"context"
	"time"

	"mondegreen/internal/core/aliasing"
	"mondegreen/internal/core/quota"
	"mondegreen/internal/core/ranked"
	"mondegreen/internal/modkit/repokit"
	perr "mondegreen/internal/platform/errors"
	"mondegreen/internal/platform/logger"
	"mondegreen/internal/platform/store"
	"mondegreen/internal/services/api/corrections/domain"
	"mondegreen/internal/services/api/corrections/repo"
	profiledom "mondegreen/internal/services/api/profile/domain"
)

// now is a seam for tests
var now = time.Now

// Service defines the service contract for correction ingestion
type Service interface{ domain.SyncerPort }

// Svc implements the Service interface
type Svc struct {
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	audit   domain.AuditPort
	limiter *quota.Limiter
}

// New creates a new corrections service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], audit domain.AuditPort, limiter *quota.Limiter) *Svc {
	if db == nil {
		panic("corrections.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("corrections.Service requires a non nil Repo binder")
	}
	if audit == nil {
		panic("corrections.Service requires a non nil AuditPort")
	}
	if limiter == nil {
		panic("corrections.Service requires a non nil Limiter")
	}
	return &Svc{binder: binder, db: db, audit: audit, limiter: limiter}
}

// Sync folds one batch of corrections into the caller's voice profile.
// Each correction either updates one mapping list or is skipped; a skip is
// never an error so one bad row cannot poison the batch. The profile load
// and store run in one transaction
func (s *Svc) Sync(ctx context.Context, userID string, in domain.SyncInput) (domain.SyncAck, error) {
	if userID == "" {
		return domain.SyncAck{}, perr.Unauthorizedf("missing user identity")
	}
	if !s.limiter.Allow(userID) {
		return domain.SyncAck{}, perr.Newf(perr.ErrorCodeTooManyRequests, "correction sync rate limit reached")
	}
	if len(in.Corrections) == 0 {
		return domain.SyncAck{}, perr.Newf(perr.ErrorCodeValidation, "corrections batch is empty")
	}

	var ack domain.SyncAck
	err := store.RunForUser(ctx, s.db, userID, func(ctx context.Context, q repokit.Queryer) error {
		r := s.binder.Bind(q)
		prof, err := r.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		var entries []domain.AuditEntry
		ack, entries = s.learn(&prof, userID, in.Corrections)

		// the audit log is best-effort history on a separate store; it is
		// written before the upsert and never rolled back with it
		if err := s.audit.Record(ctx, entries); err != nil {
			logger.C(ctx).Warn().Err(err).Int("rows", len(entries)).Msg("corrections audit write failed")
		}

		prof.UserID = userID
		prof.UpdatedAt = now().UTC()
		return r.UpsertProfile(ctx, prof)
	})
	if err != nil {
		return domain.SyncAck{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "sync voice profile")
	}
	return ack, nil
}

// learn folds corrections into prof in place and reports what changed
func (s *Svc) learn(prof *profiledom.UserVoiceProfile, userID string, batch []domain.Correction) (domain.SyncAck, []domain.AuditEntry) {
	day := ranked.Day(now())
	ack := domain.SyncAck{OK: true}
	entries := make([]domain.AuditEntry, 0, len(batch))

	for _, c := range batch {
		if c.TaskID == "" || c.FieldName == "" {
			ack.Skipped++
			continue
		}
		entries = append(entries, domain.AuditEntry{
			UserID:         userID,
			TaskID:         c.TaskID,
			FieldName:      c.FieldName,
			OriginalValue:  c.OriginalValue,
			CorrectedValue: c.CorrectedValue,
		})
		ack.Synced++

		switch domain.FieldKind(c.FieldName) {
		case domain.FieldTitle:
			alias, ok := aliasing.Extract(c.OriginalValue, c.CorrectedValue)
			if !ok {
				continue
			}
			prof.VocabularyAliases = ranked.Upsert(prof.VocabularyAliases, profiledom.VocabAlias{
				Spoken:    alias.Spoken,
				Canonical: alias.Canonical,
			}, day)
			ack.Vocabulary++

		case domain.FieldCategory:
			if c.OriginalValue == "" || c.CorrectedValue == "" {
				continue
			}
			prof.CategoryMappings = ranked.Upsert(prof.CategoryMappings, profiledom.CategoryMapping{
				From: c.OriginalValue,
				To:   c.CorrectedValue,
			}, day)
			ack.Categories++

		case domain.FieldHasTime:
			if c.OriginalValue != "true" && c.OriginalValue != "false" {
				continue
			}
			pattern := profiledom.PatternUsuallyDateOnly
			if c.CorrectedValue == "true" {
				pattern = profiledom.PatternUsuallyHasTime
			}
			category := c.Category
			if category == "" {
				category = profiledom.DefaultTimeHabitCategory
			}
			prof.TimeHabits = ranked.Upsert(prof.TimeHabits, profiledom.TimeHabit{
				Category: category,
				Pattern:  pattern,
			}, day)
			ack.TimeHabits++
		}
	}
	return ack, entries
}
