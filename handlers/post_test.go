package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"blogserver/db"
	"blogserver/models"
	"blogserver/serialize"
)

func TestPostAuthorAlwaysActingUser(t *testing.T) {
	_, token := newUserToken(t, "post_author")

	// The payload tries to claim another author; the field is not
	// writable and must be overwritten server-side.
	rec := doJSON(t, http.MethodPost, "/api/v1/posts/", token, map[string]interface{}{
		"text":   "my first post",
		"author": "post_intruder",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := serialize.PostInfo{}
	decode(t, rec, &created)
	if created.Author != "post_author" {
		t.Errorf("author = %q, want post_author", created.Author)
	}

	// Same invariant on update by the owner.
	rec = doJSON(t, http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d/", created.ID), token,
		map[string]interface{}{"text": "edited", "author": "post_intruder"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
	}
	updated := serialize.PostInfo{}
	decode(t, rec, &updated)
	if updated.Author != "post_author" {
		t.Errorf("author after update = %q, want post_author", updated.Author)
	}
}

func TestPostOwnerOnlyWrites(t *testing.T) {
	owner, ownerToken := newUserToken(t, "perm_owner")
	_, otherToken := newUserToken(t, "perm_other")
	post := createPost(t, &owner, "owner's post")
	path := fmt.Sprintf("/api/v1/posts/%d/", post.ID)

	tests := []struct {
		name   string
		method string
		token  string
		want   int
	}{
		{"anonymous get", http.MethodGet, "", http.StatusOK},
		{"other get", http.MethodGet, otherToken, http.StatusOK},
		{"other put", http.MethodPut, otherToken, http.StatusForbidden},
		{"other patch", http.MethodPatch, otherToken, http.StatusForbidden},
		{"other delete", http.MethodDelete, otherToken, http.StatusForbidden},
		{"anonymous post list", http.MethodGet, "", http.StatusOK},
		{"owner patch", http.MethodPatch, ownerToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body interface{}
			if tt.method == http.MethodPut || tt.method == http.MethodPatch {
				body = map[string]string{"text": "changed"}
			}
			rec := doJSON(t, tt.method, path, tt.token, body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestPostAnonymousWritesRejected(t *testing.T) {
	owner, _ := newUserToken(t, "anon_target")
	post := createPost(t, &owner, "text")
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/posts/"},
		{http.MethodPut, fmt.Sprintf("/api/v1/posts/%d/", post.ID)},
		{http.MethodPatch, fmt.Sprintf("/api/v1/posts/%d/", post.ID)},
		{http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d/", post.ID)},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := doJSON(t, tt.method, tt.path, "", map[string]string{"text": "x"})
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestPostListSummaryTruncation(t *testing.T) {
	author, _ := newUserToken(t, "trunc_author")
	long := strings.Repeat("many words here ", 20)
	post := createPost(t, &author, long)

	rec := doJSON(t, http.MethodGet, "/api/v1/posts/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	posts := []serialize.PostInfo{}
	decode(t, rec, &posts)
	var listed *serialize.PostInfo
	for i := range posts {
		if posts[i].ID == post.ID {
			listed = &posts[i]
		}
	}
	if listed == nil {
		t.Fatal("created post missing from list")
	}
	if n := len([]rune(listed.Text)); n > 100 {
		t.Errorf("summary text is %d runes, limit is 100", n)
	}
	if !strings.HasSuffix(listed.Text, "…") {
		t.Errorf("summary text should end with the marker: %q", listed.Text)
	}

	rec = doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/", post.ID), "", nil)
	detail := serialize.PostInfo{}
	decode(t, rec, &detail)
	if detail.Text != long {
		t.Error("detail text must be returned unmodified")
	}
}

func TestPostValidationAndGroupReference(t *testing.T) {
	_, token := newUserToken(t, "validation_author")
	group := createGroup(t, "Validation Group", "validation-group")

	rec := doJSON(t, http.MethodPost, "/api/v1/posts/", token, map[string]string{"text": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank text status = %d", rec.Code)
	}
	errs := map[string][]string{}
	decode(t, rec, &errs)
	if len(errs["text"]) == 0 {
		t.Errorf("expected a field error on text, got %v", errs)
	}

	rec = doJSON(t, http.MethodPost, "/api/v1/posts/", token,
		map[string]interface{}{"text": "grouped", "group_id": group.ID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("grouped create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := serialize.PostInfo{}
	decode(t, rec, &created)
	if created.Group == nil || created.Group.ID != group.ID || created.Group.Title != "Validation Group" {
		t.Errorf("group reference not serialized: %+v", created.Group)
	}

	rec = doJSON(t, http.MethodPost, "/api/v1/posts/", token,
		map[string]interface{}{"text": "bad group", "group_id": 99999})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown group status = %d", rec.Code)
	}
}

func TestPostDeleteCascadesComments(t *testing.T) {
	owner, token := newUserToken(t, "cascade_owner")
	post := createPost(t, &owner, "doomed post")
	for i := 0; i < 2; i++ {
		comment := models.Comment{AuthorID: owner.ID, PostID: post.ID, Text: "doomed"}
		if err := db.Instance.Create(&comment).Error; err != nil {
			t.Fatal(err)
		}
	}

	rec := doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d/", post.ID), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	count := int64(-1)
	db.Instance.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Errorf("%d comments survived the post delete", count)
	}
}

func TestPostUnknownIDIs404(t *testing.T) {
	rec := doJSON(t, http.MethodGet, "/api/v1/posts/424242/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
