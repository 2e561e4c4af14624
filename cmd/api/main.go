package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/handlers"
	httpmiddleware "github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/middleware"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/store"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/app/service"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/config"
	"github.com/jumpman-cmd/ToDoTaskMaster/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	memStore := store.New()
	if cfg.SeedDemoData {
		memStore.SeedDemoTasks()
	}

	taskService := service.NewTaskService(memStore)
	taskHandler := handlers.NewTaskHandler(taskService)
	healthHandler := handlers.NewHealthHandler(memStore)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.MetricsMiddleware())
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
