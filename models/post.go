package models

import "blogserver/db"

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"` // publication date
	UpdatedAt int64
	AuthorID  uint64
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
}

// CommentCount counts the post's comments at read time.
func (p *Post) CommentCount() int64 {
	count := int64(0)
	db.Instance.Model(&Comment{}).Where("post_id = ?", p.ID).Count(&count)
	return count
}
