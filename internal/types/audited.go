package types

import (
	"time"

	"github.com/google/uuid"
)

// AuditedEntity is embedded in every persisted aggregate. Updated doubles
// as the optimistic-concurrency token: a write only succeeds when the
// caller's last-seen Updated value still matches the stored one.
type AuditedEntity struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Created time.Time  `gorm:"not null" json:"created"`
	Author  string     `gorm:"column:author" json:"author"`
	Updated time.Time  `gorm:"not null;index" json:"updated"`
	Editor  string     `gorm:"column:editor" json:"editor"`
	Deleted *time.Time `gorm:"index" json:"deleted,omitempty"`
	Remover string     `gorm:"column:remover" json:"remover,omitempty"`
}

func (a *AuditedEntity) Audit() *AuditedEntity { return a }
