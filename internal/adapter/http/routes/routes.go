package routes

import (
	"strconv"

	_ "domeo_docs/docs" // This will be auto-generated
	"domeo_docs/internal/adapter/http/handlers"
	repository2 "domeo_docs/internal/adapter/persistence/repository"
	"domeo_docs/internal/infrastructure/database"
	"domeo_docs/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)

	documentUseCase := usecase.NewDocumentUseCase(documentRepo, clientRepo)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentRoutes(v1, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
