// Package ranked implements the merge algorithm shared by every learned
// mapping list: counted, day-stamped entries, unique by identity key, sorted
// by observation count then recency, capped at MaxEntries.
//
// The profile keeps three such lists (vocabulary aliases, category mappings,
// time habits); they differ only in identity fields, so the algorithm is
// written once over a small entry constraint instead of three times
package ranked

import (
	"sort"
	"time"
)

// MaxEntries bounds every mapping list. Entries ranked below the cap after a
// merge are dropped and only come back if re-observed
const MaxEntries = 50

// Entry is the surface a mapping entry exposes to the merge.
// Seen returns a copy with the count incremented and the day refreshed;
// identity fields must survive Seen unchanged and are compared only via Key
type Entry[E any] interface {
	Key() string
	Rank() (count int, lastUsed string)
	Seen(day string) E
}

// Day renders t as the UTC calendar day in ISO form. Lexicographic
// comparison of these stamps matches calendar order
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Upsert merges candidate into list and returns a new, ranked, capped list.
// The input list is never mutated; callers rebind to the result.
//
// If an entry with candidate's identity exists its count is bumped and its
// day refreshed; otherwise candidate joins with count 1 (candidate carries
// identity fields only, Seen supplies the bookkeeping)
func Upsert[E Entry[E]](list []E, candidate E, day string) []E {
	out := make([]E, 0, len(list)+1)
	key := candidate.Key()
	merged := false
	for _, e := range list {
		if !merged && e.Key() == key {
			out = append(out, e.Seen(day))
			merged = true
			continue
		}
		out = append(out, e)
	}
	if !merged {
		out = append(out, candidate.Seen(day))
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, di := out[i].Rank()
		cj, dj := out[j].Rank()
		if ci != cj {
			return ci > cj
		}
		return di > dj
	})

	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
