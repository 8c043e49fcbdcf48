package core

import (
	"context"
	"time"
)

// TranscriptEntry is one archived exchange line. The archive is write-only
// for the dialogue core; only operator tooling reads it back.
type TranscriptEntry struct {
	ID        int64
	SessionID string
	Role      string
	Text      string
	CreatedAt time.Time
}

type TranscriptRepository interface {
	Append(ctx context.Context, sessionID, role, text string) error
	Recent(ctx context.Context, sessionID string, limit int) ([]TranscriptEntry, error)
}
