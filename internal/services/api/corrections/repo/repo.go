// Package repo provides postgres access for correction ingestion
package repo

import (
	"context"
	"encoding/json"
	"time"

	"mondegreen/internal/modkit/repokit"
	profiledom "mondegreen/internal/services/api/profile/domain"
)

// Repo defines the repository contract for correction ingestion
type Repo interface {
	// GetProfile fetches the stored profile; a user with no row yet gets
	// an empty profile so the merge can start from zero
	GetProfile(ctx context.Context, userID string) (profiledom.UserVoiceProfile, error)

	// UpsertProfile replaces the four mapping lists and updated_at for one
	// user, creating the row on first sync
	UpsertProfile(ctx context.Context, p profiledom.UserVoiceProfile) error
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

func (r *queries) GetProfile(ctx context.Context, userID string) (profiledom.UserVoiceProfile, error) {
	const sql = `
select
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
		return profiledom.UserVoiceProfile{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return profiledom.UserVoiceProfile{}, err
		}
		return profiledom.Empty(userID), nil
	}

	var (
		vocab, cats, st, times []byte
		updated                time.Time
	)
	if err := rows.Scan(&vocab, &cats, &st, &times, &updated); err != nil {
		return profiledom.UserVoiceProfile{}, err
	}

	p := profiledom.Empty(userID)
	if err := json.Unmarshal(vocab, &p.VocabularyAliases); err != nil {
		return profiledom.UserVoiceProfile{}, err
	}
	if err := json.Unmarshal(cats, &p.CategoryMappings); err != nil {
		return profiledom.UserVoiceProfile{}, err
	}
	if err := json.Unmarshal(times, &p.TimeHabits); err != nil {
		return profiledom.UserVoiceProfile{}, err
	}
	p.StoreAliases = json.RawMessage(st)
	p.UpdatedAt = updated
	return p, rows.Err()
}

func (r *queries) UpsertProfile(ctx context.Context, p profiledom.UserVoiceProfile) error {
	vocab, err := marshalList(p.VocabularyAliases)
	if err != nil {
		return err
	}
	cats, err := marshalList(p.CategoryMappings)
	if err != nil {
		return err
	}
	times, err := marshalList(p.TimeHabits)
	if err != nil {
		return err
	}
	st := p.StoreAliases
	if len(st) == 0 {
		st = json.RawMessage("[]")
	}

	const sql = `
insert into user_voice_profiles
(user_id, vocabulary_aliases, category_mappings, store_aliases, time_habits, updated_at)
values ($1, $2::jsonb, $3::jsonb, $4::jsonb, $5::jsonb, $6)
on conflict (user_id) do update set
vocabulary_aliases = excluded.vocabulary_aliases,
category_mappings  = excluded.category_mappings,
store_aliases      = excluded.store_aliases,
time_habits        = excluded.time_habits,
updated_at         = excluded.updated_at
`
	_, err = r.q.Exec(ctx, sql, p.UserID, vocab, cats, []byte(st), times, p.UpdatedAt)
	return err
}

// marshalList renders a mapping list as a JSON array, never null
func marshalList[E any](list []E) ([]byte, error) {
	if list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(list)
}
