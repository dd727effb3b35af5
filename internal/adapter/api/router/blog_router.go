package router

import (
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"
	"choukette/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupBlogRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	blogHandler := handler.GetBlogHandler()

	blog := e.Group("/v1/blog")
	blog.GET("/categories", blogHandler.GetCategories)
	blog.GET("/posts", blogHandler.ListPosts)
	blog.GET("/posts/featured", blogHandler.GetFeaturedPosts)
	blog.GET("/posts/latest", blogHandler.GetLatestPost)
	blog.GET("/posts/:id", blogHandler.GetPost, rateLimitMiddleware.Limit(ratelimit.ActionView))
}
