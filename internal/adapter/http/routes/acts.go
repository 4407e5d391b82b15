package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stroyset/acts-service/internal/adapter/http/handlers"
)

const (
	PathActs = "/acts"
)

func addActRoutes(rg *gin.RouterGroup, actHandler *handlers.ActHandler) {
	acts := rg.Group(PathActs)
	{
		// Single action-discriminated endpoint, kept wire-compatible with
		// the mobile client's ks2_operations contract.
		acts.POST("/ks2", actHandler.GenerateKS2)
	}
}
