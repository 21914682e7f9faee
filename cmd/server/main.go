package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/opsdeck/console/internal/api"
	"github.com/opsdeck/console/internal/core/seed"
	"github.com/opsdeck/console/internal/core/service"
	"github.com/opsdeck/console/internal/infrastructure/auth"
	"github.com/opsdeck/console/internal/infrastructure/db/memory"
	"github.com/opsdeck/console/internal/infrastructure/queue"
	"github.com/opsdeck/console/internal/pkg/config"
	"github.com/opsdeck/console/pkg/logger"
)

func main() {
	// 1. Load env; a missing .env is fine.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})
	if envErr != nil {
		log.Debug().Msg(".env not found, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Repositories and seed data
	menuRepo := memory.NewMenuRepository()
	moduleRepo := memory.NewModuleRepository()
	if err := seed.Load(ctx, menuRepo, moduleRepo); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// 3. Services
	menuService := service.NewMenuService(menuRepo, moduleRepo, logger.Component("menus"))
	editorService := service.NewEditorService(menuService, logger.Component("editor"))
	menuService.SetDraftGuard(editorService)
	moduleService := service.NewModuleService(moduleRepo, menuService, logger.Component("modules"))
	flagService := service.NewFlagService(seed.DefaultFlags(), logger.Component("flags"))
	identityService := service.NewIdentityService(auth.NewMockProvider(), logger.Component("identity"))
	navService := service.NewNavigationService(identityService, menuService, flagService)

	// 4. Action loop; it outlives the server so in-flight requests drain.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	loop := queue.NewLoop(cfg.ActionBuffer, logger.Component("loop"))
	loop.Start(loopCtx)

	// 5. HTTP shell
	e := api.NewRouter(api.Deps{
		Identity:    identityService,
		Flags:       flagService,
		Modules:     moduleService,
		Menus:       menuService,
		Editor:      editorService,
		Navigation:  navService,
		Runner:      loop,
		MenuCount:   menuRepo,
		ModuleCount: moduleRepo,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
