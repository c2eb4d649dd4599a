// Package repo provides postgres access for the profile read side
package repo

import (
	"context"
	"encoding/json"
	"time"

	"mondegreen/internal/modkit/repokit"
	"mondegreen/internal/services/api/profile/domain"
)

// Repo defines the repository contract for reading voice profiles
type Repo interface {
	Get(ctx context.Context, userID string) (domain.UserVoiceProfile, bool, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Get fetches a profile row; found=false when the user has no row yet
func (r *queries) Get(ctx context.Context, userID string) (domain.UserVoiceProfile, bool, error) {
	const sql = `
select user_id,
coalesce(vocabulary_aliases, '[]'::jsonb),
coalesce(category_mappings, '[]'::jsonb),
coalesce(store_aliases, '[]'::jsonb),
coalesce(time_habits, '[]'::jsonb),
updated_at
from user_voice_profiles
where user_id = $1
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return domain.UserVoiceProfile{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.UserVoiceProfile{}, false, rows.Err()
	}

	var (
		p                      domain.UserVoiceProfile
		vocab, cats, st, times []byte
		updated                time.Time
	)
	if err := rows.Scan(&p.UserID, &vocab, &cats, &st, &times, &updated); err != nil {
		return domain.UserVoiceProfile{}, false, err
	}
	if err := json.Unmarshal(vocab, &p.VocabularyAliases); err != nil {
		return domain.UserVoiceProfile{}, false, err
	}
	if err := json.Unmarshal(cats, &p.CategoryMappings); err != nil {
		return domain.UserVoiceProfile{}, false, err
	}
	if err := json.Unmarshal(times, &p.TimeHabits); err != nil {
		return domain.UserVoiceProfile{}, false, err
	}
	p.StoreAliases = json.RawMessage(st)
	p.UpdatedAt = updated
	return p, true, rows.Err()
}
