package main

import (
	"os"

	arcadeapp "github.com/angmar3019/space-defenders/internal/application/arcade"
	scoreboardapp "github.com/angmar3019/space-defenders/internal/application/scoreboard"
	"github.com/angmar3019/space-defenders/internal/domain/arcade"
	"github.com/angmar3019/space-defenders/internal/infrastructure/assets"
	"github.com/angmar3019/space-defenders/internal/infrastructure/audio"
	"github.com/angmar3019/space-defenders/internal/infrastructure/config"
	"github.com/angmar3019/space-defenders/internal/infrastructure/logger"
	"github.com/angmar3019/space-defenders/internal/infrastructure/migration"
	"github.com/angmar3019/space-defenders/internal/infrastructure/persistence"
	"github.com/angmar3019/space-defenders/internal/interfaces/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Echo:       cfg.App.Env == "development",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Space Defenders",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Initialize database with GORM logging routed into the application log
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Bring the scoreboard schema up to date and seed the initial entries
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}
	migrator, err := migration.New(sqlDB, cfg.Database.Driver, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Up(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Load assets
	lib, err := assets.Load(cfg.Assets.Dir, cfg.Window.Width, cfg.Window.Height, log)
	if err != nil {
		log.Fatal("Failed to load assets", zap.Error(err))
	}

	// Initialize music
	music, err := audio.NewMusicPlayer(lib.MenuMusic, lib.GameMusic, cfg.Audio.Volume, cfg.Audio.FadeIn, log)
	if err != nil {
		log.Fatal("Failed to initialize music", zap.Error(err))
	}

	// Wire repositories and services
	scoreRepo := persistence.NewGormScoreboardRepository(db.DB)
	runs := arcadeapp.NewRunService(scoreRepo, arcadeConfig(cfg, lib), log)
	scores := scoreboardapp.NewService(scoreRepo, log)

	// Run the game loop
	app := ui.NewApp(cfg, log, lib, music, runs, scores)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(ui.NewGame(app)); err != nil {
		log.Error("Game loop failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Game ended via close button on window")
}

// arcadeConfig maps the configured gameplay tunables onto the simulation,
// converting wall-clock intervals to ticks
func arcadeConfig(cfg *config.Config, lib *assets.Library) arcade.Config {
	return arcade.Config{
		Width:              float64(cfg.Window.Width),
		Height:             float64(cfg.Window.Height),
		PlayerSpeed:        cfg.Game.PlayerSpeed,
		BulletSpeed:        cfg.Game.BulletSpeed,
		ShotCooldown:       arcade.Ticks(cfg.Game.ShotCooldown),
		MeteoroidSpeed:     cfg.Game.MeteoroidSpeed,
		SpawnInterval:      arcade.Ticks(cfg.Game.SpawnInterval),
		MinSpawnInterval:   arcade.Ticks(cfg.Game.MinSpawnInterval),
		DifficultyInterval: arcade.Ticks(cfg.Game.DifficultyInterval),
		SpeedIncrement:     cfg.Game.SpeedIncrement,
		SpawnIntervalStep:  arcade.Ticks(cfg.Game.SpawnIntervalStep),
		SurvivalPoints:     cfg.Game.SurvivalPoints,
		KillPoints:         cfg.Game.KillPoints,
		ExplosionFrames:    lib.ExplosionFrames(),
	}
}
