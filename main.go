package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"citifix-be/config"
	"citifix-be/controllers"
	"citifix-be/repository"
	"citifix-be/routes"
	"citifix-be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	issueStore := repository.NewMongoIssueStore(db.Collection("issues"))
	userStore := repository.NewMongoUserStore(db.Collection("users"))
	lifecycle := services.NewLifecycleService(issueStore, userStore)

	authController := controllers.NewAuthController(userStore, config.RedisClient)
	issueController := controllers.NewIssueController(lifecycle)
	adminController := controllers.NewAdminController(lifecycle)

	rateLimit := 5
	if v := os.Getenv("ISSUE_RATE_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			rateLimit = parsed
		}
	}

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:5173"
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r, authController)
	routes.IssueRoutes(r, issueController, config.RedisClient, rateLimit)
	routes.AdminRoutes(r, adminController)
	routes.AssistantRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
