package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, identityMiddleware gin.HandlerFunc) {
	group := g.Group("/items")
	group.Use(identityMiddleware)
	{
		group.GET("", h.ListOwn)
		group.GET("/search", h.Search)
		group.GET("/:itemId", h.Get)
	}
}
