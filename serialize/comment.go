package serialize

import (
	"strings"

	"blogserver/models"
)

type CommentInfo struct {
	ID      uint64 `json:"id"`
	Author  string `json:"author"`
	Post    uint64 `json:"post"`
	Text    string `json:"text"`
	Created string `json:"created"`
}

// CommentToInfo serves both list and detail contexts; comments have
// no summary/detail split. Expects Author preloaded.
func CommentToInfo(c *models.Comment) CommentInfo {
	return CommentInfo{
		ID:      c.ID,
		Author:  c.Author.Name,
		Post:    c.PostID,
		Text:    c.Text,
		Created: formatTime(c.CreatedAt),
	}
}

// CommentWrite carries the only writable field. The owning post is
// bound from the URL, never from the payload.
type CommentWrite struct {
	Text *string `json:"text"`
}

func (w *CommentWrite) Apply(m *models.Comment, partial bool) FieldErrors {
	errs := FieldErrors{}
	if w.Text == nil {
		if !partial {
			errs.Add("text", msgRequired)
		}
	} else if strings.TrimSpace(*w.Text) == "" {
		errs.Add("text", msgBlank)
	} else {
		m.Text = *w.Text
	}
	return errs
}
