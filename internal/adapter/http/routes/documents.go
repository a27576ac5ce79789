package routes

import (
	"domeo_docs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.CreateDocument)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.PUT("/:id/status", documentHandler.ChangeStatus)
		documents.GET("/:id/chain", documentHandler.GetChain)
	}
}
