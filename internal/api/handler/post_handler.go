package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iustudy/blog-platform/internal/api/metrics"
	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// --- Request / Response types ---

type postRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// postPageResponse keeps the field names of the paged listing the web
// client reads.
type postPageResponse struct {
	Content       []*domain.Post `json:"content"`
	TotalElements int64          `json:"totalElements"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
	TotalPages    int            `json:"totalPages"`
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post title and content"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), claims, ports.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, post)
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Param        page  query     int  false  "Zero-based page"   default(0)
// @Param        size  query     int  false  "Page size (max 100)"  default(5)
// @Success      200   {object}  postPageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var page, size int
	if err := echo.QueryParamsBinder(c).Int("page", &page).Int("size", &size).BindError(); err != nil {
		return domain.ErrInvalidPayload
	}

	res, err := h.service.ListPosts(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postPageResponse{
		Content:       res.Items,
		TotalElements: res.Total,
		Number:        res.Page,
		Size:          res.Size,
		TotalPages:    res.TotalPages,
	})
}

// Mine handles GET /api/posts/my-posts.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  map[string]string
// @Router       /api/posts/my-posts [get]
func (h *PostHandler) Mine(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	posts, err := h.service.ListMyPosts(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/posts/:id.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "New title and content"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	// Content rules are enforced by the service after the ownership check, so
	// a non-author always gets 403.
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}

	post, err := h.service.UpdatePost(c.Request().Context(), claims, c.Param("id"), ports.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Comments of the post go with it.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.DeletePost(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
