package serialize

import (
	"strings"

	"blogserver/db"
	"blogserver/models"
	"blogserver/utils"
)

// summaryTextLimit bounds list-view text including the ellipsis.
const summaryTextLimit = 100

type PostInfo struct {
	ID           uint64        `json:"id"`
	Author       string        `json:"author"`
	Text         string        `json:"text"`
	PubDate      string        `json:"pub_date"`
	Group        *GroupSummary `json:"group"`
	CommentCount int64         `json:"comment_count"`
}

// PostToSummary is the list representation: truncated text, derived
// comment count. Expects Author and Group preloaded.
func PostToSummary(p *models.Post) PostInfo {
	info := postInfo(p)
	info.Text = utils.TruncateWords(p.Text, summaryTextLimit)
	return info
}

// PostToDetail is the single-object representation: full text.
func PostToDetail(p *models.Post) PostInfo {
	return postInfo(p)
}

func postInfo(p *models.Post) PostInfo {
	info := PostInfo{
		ID:           p.ID,
		Author:       p.Author.Name,
		Text:         p.Text,
		PubDate:      formatTime(p.CreatedAt),
		CommentCount: p.CommentCount(),
	}
	if p.Group != nil {
		g := GroupToSummary(p.Group)
		info.Group = &g
	}
	return info
}

// PostWrite is the accepted write payload. Author and pub date are
// server-assigned and never read from here.
type PostWrite struct {
	Text    *string `json:"text"`
	GroupID *uint64 `json:"group_id"`
}

// Apply validates the payload and copies it onto the post. With
// partial set (PATCH), absent fields keep their current values.
func (w *PostWrite) Apply(p *models.Post, partial bool) FieldErrors {
	errs := FieldErrors{}
	if w.Text == nil {
		if !partial {
			errs.Add("text", msgRequired)
		}
	} else if strings.TrimSpace(*w.Text) == "" {
		errs.Add("text", msgBlank)
	} else {
		p.Text = *w.Text
	}
	if w.GroupID != nil {
		group := models.Group{}
		if db.Instance.First(&group, *w.GroupID).Error != nil {
			errs.Add("group_id", "Invalid group id.")
		} else {
			p.GroupID = &group.ID
			p.Group = &group
		}
	}
	return errs
}
