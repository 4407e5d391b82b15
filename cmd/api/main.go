package main

import (
	_ "github.com/stroyset/acts-service/docs"
	"github.com/stroyset/acts-service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           KS-2 Acts Service API
// @version         1.0
// @description     Contract-limit allocation engine: previews and creates KS-2 completed-work acts backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
