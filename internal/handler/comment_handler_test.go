package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

func newCommentRouter(svc service.CommentService, identity *middleware.Identity) *gin.Engine {
	r := gin.New()
	h := NewCommentHandler(svc)
	group := r.Group("/article")
	group.GET("/:id/comment", h.GetComments)
	if identity != nil {
		group.POST("/:id/comment", fakeAuth(*identity), h.Create)
		group.PATCH("/:id/comment/:commentId", fakeAuth(*identity), h.Update)
	} else {
		group.POST("/:id/comment", h.Create)
		group.PATCH("/:id/comment/:commentId", h.Update)
	}
	return r
}

func TestCommentHandler_Create(t *testing.T) {
	identity := middleware.Identity{ID: 7, Username: "alice"}

	t.Run("creates comment and echoes it back", func(t *testing.T) {
		svc := &MockCommentService{
			CreateCommentFunc: func(ctx context.Context, articleID uint, id middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
				if articleID != 5 || id.ID != 7 {
					t.Errorf("CreateComment(article=%d, user=%d), want (5, 7)", articleID, id.ID)
				}
				return &dto.CommentResponse{ID: 11, Body: req.Body, ArticleID: articleID,
					User: dto.AuthorResponse{ID: id.ID, Username: id.Username}}, nil
			},
		}
		r := newCommentRouter(svc, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/article/5/comment", strings.NewReader(`{"body":"Nice article"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
		var body struct {
			Message string              `json:"message"`
			Comment dto.CommentResponse `json:"comment"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Message != "Comment created successfully" {
			t.Errorf("message = %q", body.Message)
		}
		if body.Comment.ID != 11 || body.Comment.User.ID != 7 {
			t.Errorf("unexpected comment: %+v", body.Comment)
		}
	})

	t.Run("empty body fails binding", func(t *testing.T) {
		r := newCommentRouter(&MockCommentService{}, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/article/5/comment", strings.NewReader(`{"body":""}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing article maps to 404", func(t *testing.T) {
		svc := &MockCommentService{
			CreateCommentFunc: func(ctx context.Context, articleID uint, id middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Article with id 999 does not exist", "")
			},
		}
		r := newCommentRouter(svc, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/article/999/comment", strings.NewReader(`{"body":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestCommentHandler_Update(t *testing.T) {
	identity := middleware.Identity{ID: 7, Username: "alice"}

	t.Run("updates comment with 201", func(t *testing.T) {
		svc := &MockCommentService{
			UpdateCommentFunc: func(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
				if articleID != 5 || commentID != 11 || userID != 7 {
					t.Errorf("UpdateComment(%d, %d, %d), want (5, 11, 7)", articleID, commentID, userID)
				}
				return &dto.CommentResponse{ID: commentID, Body: req.Body, ArticleID: articleID}, nil
			},
		}
		r := newCommentRouter(svc, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/article/5/comment/11", strings.NewReader(`{"body":"edited"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
		var body struct {
			Message string              `json:"message"`
			Comment dto.CommentResponse `json:"comment"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Message != "Comment updated successfully" || body.Comment.Body != "edited" {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("non-owner maps to 401", func(t *testing.T) {
		svc := &MockCommentService{
			UpdateCommentFunc: func(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
				return nil, response.NewAppError(response.ErrCodeUnauthorized, "You are not allowed to update this comment 7", "")
			},
		}
		r := newCommentRouter(svc, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/article/5/comment/11", strings.NewReader(`{"body":"edited"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid comment id is rejected", func(t *testing.T) {
		r := newCommentRouter(&MockCommentService{}, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/article/5/comment/xyz", strings.NewReader(`{"body":"edited"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCommentHandler_GetComments(t *testing.T) {
	t.Run("lists comments without authentication", func(t *testing.T) {
		svc := &MockCommentService{
			GetCommentsFunc: func(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error) {
				return []*dto.CommentResponse{
					{ID: 1, Body: "first", ArticleID: articleID},
					{ID: 2, Body: "second", ArticleID: articleID},
				}, nil
			},
		}
		r := newCommentRouter(svc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/article/5/comment", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		body := decodeBody(t, w)
		var data []dto.CommentResponse
		if err := json.Unmarshal(body["data"], &data); err != nil {
			t.Fatal(err)
		}
		if len(data) != 2 {
			t.Errorf("len(data) = %d, want 2", len(data))
		}
	})

	t.Run("missing article maps to 404", func(t *testing.T) {
		svc := &MockCommentService{
			GetCommentsFunc: func(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Article with id 999 does not exist", "")
			},
		}
		r := newCommentRouter(svc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/article/999/comment", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}
