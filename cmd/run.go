package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecotokens/api"
	"ecotokens/config"
	"ecotokens/database"
	"ecotokens/events"
	"ecotokens/repository"
	"ecotokens/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting carbon rewards service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()
	subscribeEventLoggers(eventBus)

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	rewardsService := service.NewRewardsService(uowFactory, cfg)
	leaderboardService := service.NewLeaderboardService(uowFactory)
	achievementService := service.NewAchievementService(uowFactory)

	// Initialize HTTP server
	handler := api.NewHandler(rewardsService, leaderboardService, achievementService, cfg)
	srv := api.NewServer(cfg, handler)

	errChan := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Infof("Server is running in %s mode", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for context cancellation or server failure
	select {
	case err := <-errChan:
		db.Close()
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Info("Shutting down server...")

	if err := api.Shutdown(context.Background(), srv); err != nil {
		log.WithError(err).Warn("Error shutting down HTTP server")
	}

	// Close database connection
	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}

// subscribeEventLoggers attaches structured-log consumers to the domain
// events emitted after each committed earn
func subscribeEventLoggers(bus *events.Bus) {
	bus.Subscribe(events.EventTypeTokensEarned, func(ctx context.Context, event events.Event) {
		e := event.(events.TokensEarnedEvent)
		log.WithFields(log.Fields{
			"userId":         e.UserID,
			"carbonSavedKg":  e.CarbonSavedKG,
			"tokensEarned":   e.TokensEarned,
			"lifetimeTokens": e.LifetimeTokens,
		}).Info("Tokens earned")
	})

	bus.Subscribe(events.EventTypeUserRegistered, func(ctx context.Context, event events.Event) {
		e := event.(events.UserRegisteredEvent)
		log.WithFields(log.Fields{
			"userId":      e.UserID,
			"displayName": e.DisplayName,
		}).Info("New user joined the leaderboard")
	})

	bus.Subscribe(events.EventTypeBadgeUnlocked, func(ctx context.Context, event events.Event) {
		e := event.(events.BadgeUnlockedEvent)
		log.WithFields(log.Fields{
			"userId":         e.UserID,
			"badge":          e.Badge,
			"lifetimeTokens": e.LifetimeTokens,
		}).Info("Badge unlocked")
	})
}
