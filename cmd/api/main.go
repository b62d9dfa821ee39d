package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"momentum-tab/config"
	_ "momentum-tab/docs" // Swagger docs
	"momentum-tab/internal/background"
	bgUsecase "momentum-tab/internal/background/usecase"
	greetingUsecase "momentum-tab/internal/greeting/usecase"
	"momentum-tab/internal/httpserver"
	"momentum-tab/internal/model"
	"momentum-tab/internal/reminder"
	"momentum-tab/internal/task/repository/gtasks"
	taskUsecase "momentum-tab/internal/task/usecase"
	"momentum-tab/internal/trigger"
	"momentum-tab/pkg/clock"
	"momentum-tab/pkg/datemath"
	"momentum-tab/pkg/gauth"
	"momentum-tab/pkg/log"
	"momentum-tab/pkg/telegram"
	"momentum-tab/pkg/unsplash"
)

// @title       Momentum Tab API
// @description Backend for the momentum new-tab page: Google Tasks, reminders, clock and background.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting momentum-tab...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "momentum-tab stopped: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// Timezone shared by reminders and due-date phrases
	dates, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Local: %v", cfg.Reminder.Timezone, err)
		dates, _ = datemath.NewParser("Local")
	}
	clk := clock.In(dates.Location())

	// Google credential
	scopes := append(append([]string{}, gtasks.Scopes...), gauth.ProfileScopes...)
	cred, err := gauth.NewFromFiles(ctx, cfg.GoogleTasks.CredentialsPath, cfg.GoogleTasks.TokenPath, scopes,
		gauth.WithHookError(func(err error) {
			logger.Warnf(ctx, "Failed to persist refreshed token: %v", err)
		}),
	)
	if err != nil {
		logger.Warn(ctx, "→ Run `go run ./scripts/gtasks-auth` to generate the token file")
		return fmt.Errorf("google credential: %w", err)
	}

	// Task domain
	repo, err := gtasks.New(ctx, logger, cred, cfg.GoogleTasks.TaskListID)
	if err != nil {
		return err
	}
	taskUC := taskUsecase.New(logger, repo, cfg.GoogleTasks.StaleAfter)
	poller := taskUsecase.NewPoller(logger, taskUC, cfg.GoogleTasks.PollInterval)

	// Reminder scheduler fed by every task snapshot
	scheduler := trigger.New(logger, trigger.Config{
		Lead:     cfg.Reminder.Lead,
		MinDelay: cfg.Reminder.MinDelay,
		MaxDelay: cfg.Reminder.MaxDelay,
	}, trigger.WithClock(clk))
	unsubscribe := taskUC.Subscribe(func(_ context.Context, tasks []model.Task) {
		scheduler.SetTasks(tasks)
	})
	defer unsubscribe()

	// Optional Telegram push
	var notifier *reminder.Notifier
	if cfg.Telegram.Enabled() {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		me, meErr := bot.GetMe(ctx)
		if meErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", meErr)
		} else {
			notifier = reminder.New(logger, bot, cfg.Telegram.ChatID, clk)
			scheduler.Subscribe(notifier.Handle)
			logger.Infof(ctx, "✅ Telegram reminders enabled as @%s", me.Username)
		}
	} else {
		logger.Info(ctx, "Telegram reminders skipped: telegram.bot_token or telegram.chat_id is missing")
	}

	// Background photo (optional)
	var backgroundUC background.UseCase
	if cfg.Unsplash.AccessKey != "" {
		client := unsplash.NewClient(unsplash.DefaultBaseURL, cfg.Unsplash.AccessKey, cfg.Unsplash.RatePerHour)
		backgroundUC = bgUsecase.New(logger, client, unsplash.RandomRequest{
			Query:       cfg.Unsplash.Query,
			Orientation: cfg.Unsplash.Orientation,
		})
	} else {
		logger.Info(ctx, "Background photo skipped: unsplash.access_key is missing")
	}

	// Clock greeting
	profileClient := cred.Client(nil)
	greetingUC := greetingUsecase.New(logger, clk, func(ctx context.Context) (gauth.Profile, error) {
		return gauth.UserInfo(ctx, profileClient)
	}, 0)

	// HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TaskUC:          taskUC,
		Dates:           dates,
		Reminders:       scheduler,
		BackgroundUC:    backgroundUC,
		GreetingUC:      greetingUC,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// Run
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		poller.Run(gctx)
		return nil
	})
	if notifier != nil {
		g.Go(func() error {
			notifier.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		return httpServer.Run(gctx)
	})

	return g.Wait()
}
