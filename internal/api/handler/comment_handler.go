package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iustudy/blog-platform/internal/api/metrics"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
}

// Create handles POST /api/comments.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment content and parent post"
// @Success      200   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.CreateComment(c.Request().Context(), claims, req.PostID, req.Content)
	if err != nil {
		return err
	}
	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, comment)
}

// ListByPost handles GET /api/comments/post/:postId.
//
// @Summary      List comments of a post, oldest first
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {array}   domain.Comment
// @Router       /api/comments/post/{postId} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Mine handles GET /api/comments/my-comments.
//
// @Summary      List the caller's comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Comment
// @Failure      401  {object}  map[string]string
// @Router       /api/comments/my-comments [get]
func (h *CommentHandler) Mine(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	comments, err := h.service.ListMyComments(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/:commentId.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        commentId  path  string  true  "Comment id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), claims, c.Param("commentId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
