package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"assovol/internal/config"
	"assovol/internal/database"
	"assovol/internal/domain/auth"
	"assovol/internal/domain/contact"
	"assovol/internal/domain/document"
	"assovol/internal/domain/news"
	"assovol/internal/domain/project"
	"assovol/internal/domain/stat"
	"assovol/internal/middleware"
	jwtsvc "assovol/internal/pkg/jwt"
	"assovol/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&news.News{},
		&project.Project{},
		&stat.Stat{},
		&document.Document{},
		&contact.Contact{},
	); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, j))
	newsHandler := news.NewHandler(news.NewService(db, store))
	projectHandler := project.NewHandler(project.NewService(db, store))
	statHandler := stat.NewHandler(stat.NewService(db, store))
	documentHandler := document.NewHandler(document.NewService(db, store))
	contactHandler := contact.NewHandler(contact.NewService(db, store))

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS(cfg.FrontendURL))

	r.Static("/uploads", store.Dir())

	api := r.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))

		news.RegisterRoutes(api, protected, newsHandler)
		project.RegisterRoutes(api, protected, projectHandler)
		stat.RegisterRoutes(api, protected, statHandler)
		document.RegisterRoutes(api, protected, documentHandler)
		contact.RegisterRoutes(api, protected, contactHandler)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
