package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/domain/entity"
	"choukette/internal/usecase"
	"choukette/pkg/response"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

// ListPosts returns posts newest first, filtered by ?category when set.
func (h *BlogHandler) ListPosts(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return response.Success(c, h.blogUseCase.PostsByCategory(entity.BlogCategory(category)))
	}
	return response.Success(c, h.blogUseCase.SortedPosts())
}

func (h *BlogHandler) GetFeaturedPosts(c echo.Context) error {
	return response.Success(c, h.blogUseCase.FeaturedPosts())
}

func (h *BlogHandler) GetLatestPost(c echo.Context) error {
	post, err := h.blogUseCase.LatestPost()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) GetCategories(c echo.Context) error {
	return response.Success(c, h.blogUseCase.Categories())
}

// GetPost returns a post and counts the read.
func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.blogUseCase.IncrementViews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}
