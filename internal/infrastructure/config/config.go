package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Window   WindowConfig
	Log      LogConfig
	Database DatabaseConfig
	Assets   AssetsConfig
	Audio    AudioConfig
	Game     GameConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// WindowConfig holds the game window settings
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// DatabaseConfig holds scoreboard database settings. The default driver is
// sqlite with a local file; postgres is available for shared scoreboards.
type DatabaseConfig struct {
	Driver   string // sqlite or postgres
	Path     string // sqlite database file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AssetsConfig holds asset loading settings
type AssetsConfig struct {
	Dir string
}

// AudioConfig holds music playback settings
type AudioConfig struct {
	Volume float64
	FadeIn time.Duration
}

// GameConfig holds the gameplay tunables
type GameConfig struct {
	PlayerSpeed        float64
	BulletSpeed        float64
	ShotCooldown       time.Duration
	MeteoroidSpeed     float64
	SpawnInterval      time.Duration
	MinSpawnInterval   time.Duration
	DifficultyInterval time.Duration
	SpeedIncrement     float64
	SpawnIntervalStep  time.Duration
	SurvivalPoints     int64
	KillPoints         int64
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SPACE_ prefix (e.g., SPACE_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys where zero is a valid configured value get their defaults via
	// viper, so an explicit 0 is not mistaken for "unset". Everything else
	// defaults in applyDefaults, which treats the zero value as unset.
	v.SetDefault("audio.volume", 1.0)
	v.SetDefault("game.speed_increment", 0.25)
	v.SetDefault("game.spawn_interval_step", "100ms")
	v.SetDefault("game.survival_points", 1)
	v.SetDefault("game.kill_points", 100)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Window: WindowConfig{
			Width:  v.GetInt("window.width"),
			Height: v.GetInt("window.height"),
			Title:  v.GetString("window.title"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("database.driver"),
			Path:     v.GetString("database.path"),
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Assets: AssetsConfig{
			Dir: v.GetString("assets.dir"),
		},
		Audio: AudioConfig{
			Volume: v.GetFloat64("audio.volume"),
			FadeIn: v.GetDuration("audio.fade_in"),
		},
		Game: GameConfig{
			PlayerSpeed:        v.GetFloat64("game.player_speed"),
			BulletSpeed:        v.GetFloat64("game.bullet_speed"),
			ShotCooldown:       v.GetDuration("game.shot_cooldown"),
			MeteoroidSpeed:     v.GetFloat64("game.meteoroid_speed"),
			SpawnInterval:      v.GetDuration("game.spawn_interval"),
			MinSpawnInterval:   v.GetDuration("game.min_spawn_interval"),
			DifficultyInterval: v.GetDuration("game.difficulty_interval"),
			SpeedIncrement:     v.GetFloat64("game.speed_increment"),
			SpawnIntervalStep:  v.GetDuration("game.spawn_interval_step"),
			SurvivalPoints:     v.GetInt64("game.survival_points"),
			KillPoints:         v.GetInt64("game.kill_points"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "space-defenders"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Space Defenders"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "game.log"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./db/highscore.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = "./assets"
	}
	if cfg.Audio.FadeIn == 0 {
		cfg.Audio.FadeIn = time.Second
	}
	if cfg.Game.PlayerSpeed == 0 {
		cfg.Game.PlayerSpeed = 3
	}
	if cfg.Game.BulletSpeed == 0 {
		cfg.Game.BulletSpeed = 5
	}
	if cfg.Game.ShotCooldown == 0 {
		cfg.Game.ShotCooldown = 500 * time.Millisecond
	}
	if cfg.Game.MeteoroidSpeed == 0 {
		cfg.Game.MeteoroidSpeed = 4.0
	}
	if cfg.Game.SpawnInterval == 0 {
		cfg.Game.SpawnInterval = 1500 * time.Millisecond
	}
	if cfg.Game.MinSpawnInterval == 0 {
		cfg.Game.MinSpawnInterval = 200 * time.Millisecond
	}
	if cfg.Game.DifficultyInterval == 0 {
		cfg.Game.DifficultyInterval = 15 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for the postgres driver")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database.dbname is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q (supported: sqlite, postgres)", c.Database.Driver)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0.0 and 1.0, got %f", c.Audio.Volume)
	}

	if c.Game.PlayerSpeed <= 0 {
		return fmt.Errorf("game.player_speed must be positive")
	}
	if c.Game.BulletSpeed <= 0 {
		return fmt.Errorf("game.bullet_speed must be positive")
	}
	if c.Game.MeteoroidSpeed <= 0 {
		return fmt.Errorf("game.meteoroid_speed must be positive")
	}
	if c.Game.MinSpawnInterval > c.Game.SpawnInterval {
		return fmt.Errorf("game.min_spawn_interval (%s) cannot exceed game.spawn_interval (%s)",
			c.Game.MinSpawnInterval, c.Game.SpawnInterval)
	}

	return nil
}

// DSN returns the postgres connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
