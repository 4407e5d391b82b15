package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/stroyset/acts-service/docs"
	"github.com/stroyset/acts-service/internal/adapter/http/handlers"
	"github.com/stroyset/acts-service/internal/adapter/persistence/repository"
	"github.com/stroyset/acts-service/internal/infrastructure/database"
	"github.com/stroyset/acts-service/internal/usecase"
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
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	workEntryRepo := repository.NewWorkEntryDynamoRepository(ddb)
	actRepo := repository.NewActDynamoRepository(ddb)

	allocationUseCase := usecase.NewAllocationUseCase(estimateRepo, workEntryRepo)
	actUseCase := usecase.NewActUseCase(allocationUseCase, actRepo, workEntryRepo)

	actHandler := handlers.NewActHandler(allocationUseCase, actUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addActRoutes(v1, actHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
