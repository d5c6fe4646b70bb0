package main

import (
	"context"
	"log"

	"github.com/eventware/survey-go/config"
	"github.com/eventware/survey-go/internal/api/middleware"
	"github.com/eventware/survey-go/internal/api/routes"
	"github.com/eventware/survey-go/internal/db"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	store, err := db.Connect(context.Background(), config.MongoURI(), config.MongoName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close(context.Background())
	log.Printf("Connected to MongoDB: %s", config.MongoName)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())

	routes.RegisterRoutes(router, store)

	addr := config.AppHost + ":" + config.ServerPort
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
