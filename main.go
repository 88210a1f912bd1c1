package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/bot"
	"github.com/clarkio/discord-wordle-bot/internal/commands"
	"github.com/clarkio/discord-wordle-bot/internal/config"
	"github.com/clarkio/discord-wordle-bot/internal/database"
	server "github.com/clarkio/discord-wordle-bot/internal/http"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/notifier/discord"
	"github.com/clarkio/discord-wordle-bot/internal/processor"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	scoreStore := wordle.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	session, err := bot.NewSession(cfg.Discord.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %s", err)
	}
	notifier := discord.NewNotifier(session, cfg.Discord.ChannelID, cfg.Discord.UserTagging, metricsSvc)
	resultProcessor := processor.New(scoreStore, notifier, metricsSvc)
	registry := commands.NewRegistry(scoreStore)

	wordleBot := bot.New(session, resultProcessor, registry, metricsSvc, cfg.Discord.ChannelID, cfg.Discord.CommandPrefix)
	if err := wordleBot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %s", err)
	}
	defer func() {
		log.Info("Closing Discord gateway connection")
		if err := wordleBot.Stop(); err != nil {
			log.Error("Failed to close Discord gateway connection", "error", err)
		}
	}()

	s := server.NewServer(
		scoreStore,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
