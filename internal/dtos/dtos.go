package dtos

import (
	"time"

	"github.com/google/uuid"
)

// Update is implemented by every edit payload. LastUpdated is the
// client's last-seen concurrency token; nil means the client has never
// seen the aggregate, which counts as stale when the aggregate exists.
// A zero GetID means "create".
type Update interface {
	GetID() uuid.UUID
	GetLastUpdated() *time.Time
}
