package domain

import "context"

// ReaderPort serves the learned profile to callers (the transcription
// pipeline consults it to bias future results)
type ReaderPort interface {
	Get(ctx context.Context, userID string) (UserVoiceProfile, error)
}
