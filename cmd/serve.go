package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-manager-api.com/task-manager-api/internal/cache"
	config "task-manager-api.com/task-manager-api/internal/configs"
	httpapi "task-manager-api.com/task-manager-api/internal/http"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/seed"
	"task-manager-api.com/task-manager-api/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		if cfg.SeedSampleData {
			if err := seed.Run(context.Background(), database); err != nil {
				return err
			}
		}

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		if redisClient != nil {
			defer redisClient.Close()
		}
		statsCache := cache.NewStatsCache(
			redisClient,
			"task_stats_summary",
			time.Duration(cfg.StatsCacheTTLSeconds)*time.Second,
		)

		taskRepo := repository.NewTaskRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		userRepo := repository.NewUserRepository(database)
		tagRepo := repository.NewTagRepository(database)
		commentRepo := repository.NewCommentRepository(database)

		taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, tagRepo, commentRepo, statsCache)
		projectService := services.NewProjectService(projectRepo, userRepo)
		userService := services.NewUserService(userRepo)
		tagService := services.NewTagService(tagRepo)
		commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)

		e := echo.New()
		httpapi.Register(e,
			httpapi.NewTaskHandler(taskService),
			httpapi.NewProjectHandler(projectService),
			httpapi.NewUserHandler(userService),
			httpapi.NewTagHandler(tagService),
			httpapi.NewCommentHandler(commentService),
			cfg.RateLimit,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
