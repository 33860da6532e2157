package api

import (
	"context"

	_ "garage-backend/docs"
	"garage-backend/internal/app/config"
	"garage-backend/internal/app/dsn"
	"garage-backend/internal/app/handler"
	"garage-backend/internal/app/middleware"
	"garage-backend/internal/app/redis"
	"garage-backend/internal/app/repository"
	"garage-backend/internal/app/storage"
	"garage-backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer собирает все зависимости и запускает HTTP-сервер гаража
func StartServer() {
	logrus.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("error initializing redis client: %v", err)
	}
	defer redisClient.Close()

	// MinIO опционален: без него каталог запчастей работает, но без картинок
	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Warnf("minio is not available, part images disabled: %v", err)
		minioClient = nil
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, minioClient, cfg, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	application := pkg.NewApp(cfg, router, h, authMiddleware)
	application.RunApp()

	logrus.Println("Server down")
}
