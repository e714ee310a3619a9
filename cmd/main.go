// Package main wires the HTTP server for the contribution-gated invite service.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaimerodas/elixirschool/config"
	"github.com/jaimerodas/elixirschool/internal/catalog"
	githubgw "github.com/jaimerodas/elixirschool/internal/gateway/github"
	slackgw "github.com/jaimerodas/elixirschool/internal/gateway/slack"
	"github.com/jaimerodas/elixirschool/internal/repository"
	"github.com/jaimerodas/elixirschool/internal/session"
	"github.com/jaimerodas/elixirschool/internal/transport/http/middleware"
	handlers_fiber "github.com/jaimerodas/elixirschool/internal/transport/http/server/handlers-fiber"
	"github.com/jaimerodas/elixirschool/internal/usecase"
	"github.com/jaimerodas/elixirschool/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	cat, err := catalog.Parse(cfg.Catalog.Sources)
	if err != nil {
		log.Errorw("catalog parse error", "error", err)
		return
	}
	log.Infow("catalog loaded", "orgs", len(cat.Entries()), "pairs", cat.Len())

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Errorw("redis ping error", "error", err)
		return
	}
	defer func() { _ = redisClient.Close() }()
	sessions := session.NewRedisStore(redisClient)

	contributors := githubgw.NewClient(log, cfg.GitHub.APIBaseURL)

	oauth, err := githubgw.NewOAuth(log, cfg.GitHub.ClientID, cfg.GitHub.ClientSecret, cfg.GitHub.RedirectURL, cfg.GitHub.APIBaseURL)
	if err != nil {
		log.Errorw("oauth initialization error", "error", err)
		return
	}

	inviter, err := slackgw.NewTeamInviter(log, cfg.Slack.Token, cfg.Slack.Team)
	if err != nil {
		log.Errorw("slack initialization error", "error", err)
		return
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, cat, contributors, inviter, repo, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, sessions, oauth, cfg.Session.TTL)
	h.RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
