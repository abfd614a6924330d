package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/api/handlers"
	"github.com/devfolio/api/internal/auth"
	"github.com/devfolio/api/internal/config"
	"github.com/devfolio/api/internal/database"
	"github.com/devfolio/api/internal/storage"
	"github.com/devfolio/api/pkg/logger"
	"github.com/devfolio/api/pkg/metrics"
	"github.com/devfolio/api/pkg/middleware"

	profilerepo "github.com/devfolio/api/internal/profile/repository"
	profilesvc "github.com/devfolio/api/internal/profile/service"
	projectrepo "github.com/devfolio/api/internal/project/repository"
	projectsvc "github.com/devfolio/api/internal/project/service"
	skillrepo "github.com/devfolio/api/internal/skill/repository"
	skillsvc "github.com/devfolio/api/internal/skill/service"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v auth=%v",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "",
		cfg.Auth.OwnerEmail != "" && cfg.Auth.JWTSecret != "")

	r := gin.New()

	// Lightweight CORS middleware: the API serves a single known frontend.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.Server.ClientOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery + request metrics
	r.Use(gin.Logger(), gin.Recovery(), middleware.MetricsMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(startTime).String()})
	})

	ctx := context.Background()

	// Connect to Redis early so the login rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// The limiter guards the login route only; everything else is unmetered.
	var loginLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			loginLimiter = middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			loginLimiter = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	// Repositories: MongoDB when configured and reachable, in-memory otherwise.
	// Retry/backoff on the Mongo connection to tolerate startup races.
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			mongoClient = nil
		}
	}

	var projectRepo projectrepo.ProjectRepository
	var profileRepo profilerepo.ProfileRepository
	var skillRepo skillrepo.SkillRepository
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		db := mongoClient.Database(cfg.MongoDB.Database)
		counters := db.Collection("counters")
		projectRepo = projectrepo.NewMongoRepo(db.Collection("projects"), counters)
		profileRepo = profilerepo.NewMongoRepo(db.Collection("profile"))
		skillRepo = skillrepo.NewMongoRepo(db.Collection("skills"), counters)
		logger.Infof("Using MongoDB storage: %s", cfg.MongoDB.Database)
	} else {
		projectRepo = projectrepo.NewMemoryRepo()
		profileRepo = profilerepo.NewMemoryRepo()
		skillRepo = skillrepo.NewMemoryRepo()
		logger.Warnf("MongoDB unavailable, falling back to in-memory storage (data is lost on restart)")
	}

	// Object storage for image and resume uploads. Optional: without it the
	// API still runs, upload routes fail with a clear error.
	var uploads storage.Uploader
	if cfg.MinIO.Endpoint != "" {
		s, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			logger.Warnf("failed to initialize MinIO storage: %v", err)
		} else {
			uploads = s
			logger.Infof("Connected to MinIO: %s/%s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
		}
	}

	gate := auth.NewGate(auth.Owner{
		Email:        cfg.Auth.OwnerEmail,
		PasswordHash: cfg.Auth.OwnerPasswordHash,
	}, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	requireAuth := middleware.RequireAuth(gate)

	api := r.Group("/api")
	handlers.NewAuthHandler(gate, loginLimiter).Register(api, requireAuth)
	handlers.NewProjectHandler(projectsvc.NewService(projectRepo), uploads).Register(api, requireAuth)
	handlers.NewProfileHandler(profilesvc.NewService(profileRepo), uploads).Register(api, requireAuth)
	handlers.NewSkillHandler(skillsvc.NewService(skillRepo)).Register(api, requireAuth)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting portfolio API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
