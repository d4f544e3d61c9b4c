package types

type Division struct {
	AuditedEntity
	Name string `gorm:"column:name;not null;index" json:"name"`
}

func (Division) TableName() string { return "division" }
