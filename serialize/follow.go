package serialize

import (
	"strings"

	"blogserver/models"
)

const (
	MsgSelfFollow      = "cannot follow yourself"
	MsgDuplicateFollow = "such subscription already exists"
)

type FollowInfo struct {
	ID        uint64 `json:"id"`
	User      string `json:"user"`
	Following string `json:"following"`
	PostCount int64  `json:"post_count"`
}

// FollowToInfo expects User and Following preloaded. PostCount is the
// followed author's post count, derived at read time.
func FollowToInfo(f *models.Follow) FollowInfo {
	return FollowInfo{
		ID:        f.ID,
		User:      f.User.Name,
		Following: f.Following.Name,
		PostCount: models.PostCountByAuthor(f.FollowingID),
	}
}

// FollowWrite names the followed user; the follower is always the
// acting identity.
type FollowWrite struct {
	Following string `json:"following"`
}

// Apply validates the payload against the acting user and fills in
// the follow row. The duplicate check here is a pre-check; the unique
// index remains the authoritative guard.
func (w *FollowWrite) Apply(f *models.Follow, actor *models.User) FieldErrors {
	errs := FieldErrors{}
	name := strings.TrimSpace(w.Following)
	if name == "" {
		errs.Add("following", msgRequired)
		return errs
	}
	if strings.EqualFold(name, actor.Name) {
		errs.Add("following", MsgSelfFollow)
		return errs
	}
	target, err := models.UserByName(name)
	if err != nil {
		errs.Add("following", "Object with username="+name+" does not exist.")
		return errs
	}
	if models.FollowExists(actor.ID, target.ID) {
		errs.Add("following", MsgDuplicateFollow)
		return errs
	}
	f.UserID = actor.ID
	f.User = *actor
	f.FollowingID = target.ID
	f.Following = target
	return errs
}
