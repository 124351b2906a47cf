package models

// Group is a community posts can be published into. Read-only over
// the API; rows are provisioned directly by the operator.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_group_slug,unique"`
	Description string `gorm:"type:text"`
}
