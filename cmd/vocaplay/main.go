package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/catalog"
	"github.com/vocaplay/engine/internal/config"
	"github.com/vocaplay/engine/internal/logger"
	"github.com/vocaplay/engine/internal/repositories"
	"github.com/vocaplay/engine/internal/services"
	"github.com/vocaplay/engine/internal/storage"
	"github.com/vocaplay/engine/internal/wordtables"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting VocaPlay Engine")

	// Open the durable store
	db, err := storage.Open(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := storage.RunMigrations(db, cfg.Storage.Driver); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Logger.Info("Storage ready", zap.String("driver", cfg.Storage.Driver))

	// Load word tables
	registry := wordtables.Builtin()
	if cfg.WordTableDir != "" {
		if err := registry.LoadDir(cfg.WordTableDir); err != nil {
			logger.Logger.Fatal("Failed to load word tables", zap.Error(err))
		}
	}
	logger.Logger.Info("Word tables loaded", zap.Strings("languages", registry.Languages()))

	// Initialize repositories
	appState := repositories.NewAppStateRepository(db)
	userRecords := repositories.NewUserRecordRepository(appState, logger.Logger)
	gameScores := repositories.NewGameScoreRepository(db)

	// Initialize services
	clock := services.SystemClock{}
	catalogBuilder := catalog.NewBuilder(registry, logger.Logger)
	progressService := services.NewProgressService(userRecords, logger.Logger, clock, cfg.DailyGoal)
	sessionService := services.NewSessionService(catalogBuilder, progressService, services.NoopPronouncer{}, logger.Logger)
	gameService := services.NewGameService(gameScores, logger.Logger, clock)

	ctx := context.Background()

	// Daily maintenance of the user record
	if err := progressService.OnAppStart(ctx); err != nil {
		logger.Logger.Fatal("Failed to run app start maintenance", zap.Error(err))
	}

	record, err := progressService.User(ctx)
	if err != nil {
		logger.Logger.Fatal("Failed to load user", zap.Error(err))
	}
	if record == nil {
		logger.Logger.Info("No user profile yet; waiting for the presentation layer to create one")
		return
	}

	// Bind the session to the current language pair and report where the
	// learner stands
	if err := sessionService.Start(ctx); err != nil {
		logger.Logger.Fatal("Failed to start session", zap.Error(err))
	}

	plan := sessionService.Plan()
	stats, err := progressService.LessonStats(ctx)
	if err != nil {
		logger.Logger.Fatal("Failed to compute lesson stats", zap.Error(err))
	}
	goalReached, err := progressService.DailyGoalReached(ctx)
	if err != nil {
		logger.Logger.Fatal("Failed to check daily goal", zap.Error(err))
	}
	scores, err := gameService.ScoresForPair(ctx, record.CurrentLanguagePair)
	if err != nil {
		logger.Logger.Fatal("Failed to load game scores", zap.Error(err))
	}

	logger.Logger.Info("Session ready",
		zap.String("user", record.Name),
		zap.String("pair", record.CurrentLanguagePair),
		zap.Int("lessons", len(plan.Lessons)),
		zap.Strings("categories", plan.Categories),
		zap.Int("continueAt", sessionService.ContinueIndex()),
		zap.Int("streak", record.Progress.CurrentStreak),
		zap.Int("sectionsCompleted", stats.SectionsCompleted),
		zap.Bool("dailyGoalReached", goalReached),
		zap.Int("gamesPlayed", len(scores)),
	)
}
