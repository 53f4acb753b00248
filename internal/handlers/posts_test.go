package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lukhatek/Fsociety/internal/models"
)

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListPosts(t *testing.T) {
	s, _, _, _, content := newMockServices()
	r := newTestRouter(s)

	w := get(r, "/api/posts")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("empty list: status=%d body=%s", w.Code, w.Body.String())
	}

	content.posts = []models.Post{{ID: "b", Title: "newer"}, {ID: "a", Title: "older"}}
	w = get(r, "/api/posts")
	var got []models.Post
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order not kept: %+v", got)
	}

	content.listErr = errors.New("boom")
	if w := get(r, "/api/posts"); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestCreatePost(t *testing.T) {
	s, _, _, _, content := newMockServices()
	r := newTestRouter(s)

	w := postJSON(r, "/api/posts", `{"title":"Hello","content":"World"}`, "good")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got models.Post
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Title != "Hello" || got.AuthorUsername != "neo" || got.AuthorID != "u-neo" {
		t.Fatalf("unexpected post: %+v", got)
	}
	if content.lastAuthor.Username != "neo" {
		t.Fatalf("author not taken from token: %+v", content.lastAuthor)
	}
}

func TestCreatePost_Rejected(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		token string
		code  int
	}{
		{"no token", `{"title":"Hello","content":"World"}`, "", http.StatusUnauthorized},
		{"bad token", `{"title":"Hello","content":"World"}`, "forged", http.StatusUnauthorized},
		{"missing title", `{"content":"World"}`, "good", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _, _, content := newMockServices()
			w := postJSON(newTestRouter(s), "/api/posts", tc.body, tc.token)
			if w.Code != tc.code {
				t.Fatalf("status=%d want %d", w.Code, tc.code)
			}
			if len(content.created) != 0 {
				t.Fatalf("post stored despite rejection")
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	s, _, _, _, content := newMockServices()
	content.posts = []models.Post{{ID: "p1", Title: "Hello"}}
	r := newTestRouter(s)

	w := get(r, "/api/posts/p1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	w = get(r, "/api/posts/nope")
	if w.Code != http.StatusNotFound || errorOf(t, w) != msgPostNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestComments(t *testing.T) {
	s, _, _, _, content := newMockServices()
	r := newTestRouter(s)

	w := postJSON(r, "/api/comments", `{"post_id":"ghost","content":"nice"}`, "good")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var c models.Comment
	_ = json.Unmarshal(w.Body.Bytes(), &c)
	if c.PostID != "ghost" || c.AuthorUsername != "neo" {
		t.Fatalf("unexpected comment: %+v", c)
	}

	content.comments = content.createdComment
	w = get(r, "/api/posts/ghost/comments")
	var list []models.Comment
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 1 || list[0].Content != "nice" {
		t.Fatalf("status=%d list=%+v", w.Code, list)
	}

	w = get(r, "/api/posts/other/comments")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	if w := postJSON(r, "/api/comments", `{"post_id":"ghost","content":"x"}`, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if len(content.createdComment) != 1 {
		t.Fatalf("comment stored without token")
	}
}

func TestCreate_EmptyStringsAccepted(t *testing.T) {
	s, _, _, _, content := newMockServices()
	r := newTestRouter(s)

	w := postJSON(r, "/api/posts", `{"title":"","content":"x"}`, "good")
	if w.Code != http.StatusOK {
		t.Fatalf("empty title: status=%d body=%s", w.Code, w.Body.String())
	}
	if len(content.created) != 1 || content.created[0].Title != "" || content.created[0].Content != "x" {
		t.Fatalf("unexpected stored post: %+v", content.created)
	}

	w = postJSON(r, "/api/comments", `{"post_id":"x","content":""}`, "good")
	if w.Code != http.StatusOK {
		t.Fatalf("empty comment: status=%d body=%s", w.Code, w.Body.String())
	}
	if len(content.createdComment) != 1 || content.createdComment[0].Content != "" {
		t.Fatalf("unexpected stored comment: %+v", content.createdComment)
	}
}

func TestCreate_MissingOrNullKeysRejected(t *testing.T) {
	cases := []struct {
		name, path, body string
	}{
		{"post without content", "/api/posts", `{"title":"t"}`},
		{"post with null title", "/api/posts", `{"title":null,"content":"x"}`},
		{"comment without post_id", "/api/comments", `{"content":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _, _, content := newMockServices()
			w := postJSON(newTestRouter(s), tc.path, tc.body, "good")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d want 400", w.Code)
			}
			if len(content.created)+len(content.createdComment) != 0 {
				t.Fatalf("record stored for invalid body")
			}
		})
	}
}
