package models

import (
	"strings"

	"blogserver/db"

	"github.com/google/uuid"
)

// AuthToken is an opaque bearer token, one per user.
type AuthToken struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_token_user,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func newTokenKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// TokenForUser returns the user's token, creating one on first login.
func TokenForUser(u *User) (t AuthToken, err error) {
	result := db.Instance.First(&t, "user_id = ?", u.ID)
	if result.Error == nil {
		return t, nil
	}
	t = AuthToken{
		Key:    newTokenKey(),
		UserID: u.ID,
	}
	return t, db.Instance.Create(&t).Error
}

// TokenUser resolves a token key to its owner.
func TokenUser(key string) (u User, ok bool) {
	t := AuthToken{}
	if db.Instance.First(&t, "`key` = ?", key).Error != nil {
		return User{}, false
	}
	if db.Instance.First(&u, t.UserID).Error != nil {
		return User{}, false
	}
	return u, true
}
