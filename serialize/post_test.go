package serialize

import (
	"strings"
	"testing"

	"blogserver/models"
)

func TestPostSummaryTruncatesDetailDoesNot(t *testing.T) {
	author := models.User{Name: "serializer_author"}
	mustCreate(t, &author)
	text := strings.Repeat("lorem ipsum ", 20) // 240 runes
	post := models.Post{AuthorID: author.ID, Text: text}
	mustCreate(t, &post)
	post.Author = author

	summary := PostToSummary(&post)
	if n := len([]rune(summary.Text)); n > 100 {
		t.Errorf("summary text is %d runes, limit is 100", n)
	}
	if !strings.HasSuffix(summary.Text, "…") {
		t.Errorf("summary text should carry the truncation marker: %q", summary.Text)
	}
	detail := PostToDetail(&post)
	if detail.Text != text {
		t.Error("detail text must be untruncated")
	}
	if summary.Author != "serializer_author" || detail.Author != "serializer_author" {
		t.Error("author should serialize as the username")
	}
}

func TestPostCommentCountDerived(t *testing.T) {
	author := models.User{Name: "count_author"}
	mustCreate(t, &author)
	post := models.Post{AuthorID: author.ID, Text: "short"}
	mustCreate(t, &post)
	post.Author = author

	if got := PostToSummary(&post).CommentCount; got != 0 {
		t.Fatalf("comment_count = %d, want 0", got)
	}
	for i := 0; i < 3; i++ {
		mustCreate(t, &models.Comment{AuthorID: author.ID, PostID: post.ID, Text: "hi"})
	}
	if got := PostToSummary(&post).CommentCount; got != 3 {
		t.Errorf("comment_count = %d, want 3", got)
	}
}

func TestPostWriteValidation(t *testing.T) {
	blank := "   "
	text := "ok"
	badGroup := uint64(99999)
	tests := []struct {
		name      string
		write     PostWrite
		partial   bool
		wantField string
	}{
		{"missing text on full write", PostWrite{}, false, "text"},
		{"blank text", PostWrite{Text: &blank}, false, "text"},
		{"blank text on patch", PostWrite{Text: &blank}, true, "text"},
		{"absent text on patch ok", PostWrite{}, true, ""},
		{"unknown group", PostWrite{Text: &text, GroupID: &badGroup}, false, "group_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := models.Post{Text: "previous"}
			errs := tt.write.Apply(&post, tt.partial)
			if tt.wantField == "" {
				if !errs.Empty() {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs[tt.wantField]) == 0 {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}
