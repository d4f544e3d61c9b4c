package types

import (
	"time"

	"gorm.io/datatypes"
)

// ErrorDetail is a client- or server-reported error captured for later
// inspection. Stack and UserAgent arrive as-is from the reporter.
type ErrorDetail struct {
	AuditedEntity
	Source    string         `gorm:"column:source;index" json:"source"`
	Time      time.Time      `gorm:"column:time;index" json:"time"`
	Message   string         `gorm:"column:message" json:"message"`
	Stack     datatypes.JSON `gorm:"column:stack;type:jsonb" json:"stack,omitempty"`
	Type      string         `gorm:"column:type" json:"type,omitempty"`
	UserName  string         `gorm:"column:user_name" json:"userName,omitempty"`
	UserAgent string         `gorm:"column:user_agent" json:"userAgent,omitempty"`
	URL       string         `gorm:"column:url" json:"url,omitempty"`
}

func (ErrorDetail) TableName() string { return "error_detail" }
