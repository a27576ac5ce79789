package main

import (
	_ "domeo_docs/docs"
	"domeo_docs/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Document Lifecycle API
// @version         1.0
// @description     Document lifecycle engine (quotes, invoices, orders, supplier orders) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	routes.Run()
}
