package handlers

import (
	"net/http"

	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"
)

type createPostRequest struct {
	Title   *string `json:"title" binding:"required" example:"Hello world"`
	Content *string `json:"content" binding:"required" example:"first post"`
}

type createCommentRequest struct {
	PostID  *string `json:"post_id" binding:"required" example:"3f0b6c1e-9a43-4a5e-9b7e-2f1d1c0a7e11"`
	Content *string `json:"content" binding:"required" example:"nice"`
}

// @Summary      List posts
// @Description  Newest first.
// @Tags         posts
// @Produce      json
// @Success      200  {array}   models.Post
// @Failure      500  {object}  errorResponse
// @Router       /api/posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Content.ListPosts(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "posts_list_failed")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "post"
// @Success      200   {object}  models.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	author, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgUnauthenticated})
		return
	}

	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Content.CreatePost(c.Request.Context(), author, service.PostInput{
		Title:   *input.Title,
		Content: *input.Content,
	})
	if err != nil {
		h.respondError(c, err, "posts_create_failed", "author", author.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("post_created", "post_id", post.ID, "author", author.Username)
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "post id"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id := c.Param("id")
	post, err := h.services.Content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "posts_get_failed", "post_id", id)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      List comments of a post
// @Description  Oldest first. Unknown post ids yield an empty list.
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "post id"
// @Success      200  {array}   models.Comment
// @Failure      500  {object}  errorResponse
// @Router       /api/posts/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	id := c.Param("id")
	comments, err := h.services.Content.ListComments(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "comments_list_failed", "post_id", id)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// @Summary      Create comment
// @Description  post_id is stored as given and not checked against existing posts.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "comment"
// @Success      200   {object}  models.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/comments [post]
// @Security     BearerAuth
func (h *Handler) createComment(c *gin.Context) {
	author, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgUnauthenticated})
		return
	}

	var input createCommentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	comment, err := h.services.Content.CreateComment(c.Request.Context(), author, service.CommentInput{
		PostID:  *input.PostID,
		Content: *input.Content,
	})
	if err != nil {
		h.respondError(c, err, "comments_create_failed", "post_id", *input.PostID)
		return
	}
	c.JSON(http.StatusOK, comment)
}
