package models

import "blogserver/db"

// Follow is a directed subscription from User to Following. The
// composite unique index is the real guard against duplicate pairs;
// serializer checks are a pre-check only.
type Follow struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UserID      uint64 `gorm:"index:uniq_user_following,unique"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowingID uint64 `gorm:"index:uniq_user_following,unique"`
	Following   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func FollowExists(userID, followingID uint64) bool {
	count := int64(0)
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count)
	return count > 0
}

// PostCountByAuthor counts the posts published by a user.
func PostCountByAuthor(userID uint64) int64 {
	count := int64(0)
	db.Instance.Model(&Post{}).Where("author_id = ?", userID).Count(&count)
	return count
}
