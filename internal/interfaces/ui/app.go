// Package ui renders the game with Ebitengine: the menu screens, the play
// field and the widgets they share. All game rules live in the arcade
// domain; this package only draws state and samples input.
package ui

import (
	arcadeapp "github.com/angmar3019/space-defenders/internal/application/arcade"
	scoreboardapp "github.com/angmar3019/space-defenders/internal/application/scoreboard"
	"github.com/angmar3019/space-defenders/internal/infrastructure/assets"
	"github.com/angmar3019/space-defenders/internal/infrastructure/audio"
	"github.com/angmar3019/space-defenders/internal/infrastructure/config"
	"go.uber.org/zap"
)

// App bundles everything the scenes need
type App struct {
	Cfg    *config.Config
	Log    *zap.Logger
	Assets *assets.Library
	Music  *audio.MusicPlayer
	Runs   *arcadeapp.RunService
	Scores *scoreboardapp.Service

	// Backdrop is shared by all menu screens so the background animation
	// carries on across screen changes
	Backdrop *MenuBackdrop
}

// NewApp creates the scene context
func NewApp(
	cfg *config.Config,
	log *zap.Logger,
	lib *assets.Library,
	music *audio.MusicPlayer,
	runs *arcadeapp.RunService,
	scores *scoreboardapp.Service,
) *App {
	return &App{
		Cfg:      cfg,
		Log:      log.Named("ui"),
		Assets:   lib,
		Music:    music,
		Runs:     runs,
		Scores:   scores,
		Backdrop: NewMenuBackdrop(lib.MenuBackground),
	}
}
