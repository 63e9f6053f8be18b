package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/notice/internal/app"
	"github.com/llehouerou/notice/internal/config"
	"github.com/llehouerou/notice/internal/errmsg"
	"github.com/llehouerou/notice/internal/history"
	"github.com/llehouerou/notice/internal/logging"
	"github.com/llehouerou/notice/internal/notify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	var startup []string

	cfg, err := config.Load()
	if err != nil {
		// run on defaults; the error is shown once the UI is up
		startup = append(startup, errmsg.Format(errmsg.OpConfigLoad, err))
		cfg = &config.Config{}
	}

	logger, logCloser, err := logging.Open(cfg.Logging())
	if err != nil {
		startup = append(startup, errmsg.FormatWith(errmsg.OpLogOpen, cfg.Log.Path, err))
		logger = logging.Nop()
	} else {
		defer logCloser.Close()
	}

	deps := app.Deps{
		Config:        cfg,
		Logger:        logger,
		StartupErrors: startup,
	}

	if cfg.HistoryEnabled() {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			deps.StartupErrors = append(deps.StartupErrors, errmsg.Format(errmsg.OpHistoryOpen, err))
		} else {
			defer store.Close()
			store.SetRetention(cfg.HistoryRetain())
			deps.History = store
		}
	}

	if cfg.Desktop.Enabled {
		deps.Announcer = openAnnouncer(cfg, logger)
	}

	logger.Info().
		Str("placement", cfg.Placement()).
		Bool("history", deps.History != nil).
		Bool("desktop", deps.Announcer != nil).
		Msg("starting")

	p := tea.NewProgram(
		app.New(deps),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info().Msg("exiting")
	return nil
}

func openAnnouncer(cfg *config.Config, logger zerolog.Logger) *notify.Announcer {
	n, err := notify.New()
	if err != nil {
		logger.Warn().Err(err).Msg("desktop notifications unavailable")
		return nil
	}
	return notify.NewAnnouncer(n, notify.AnnouncerOptions{
		AssertiveOnly: cfg.DesktopAssertiveOnly(),
		Timeout:       cfg.DesktopTimeout(),
		Logger:        logger,
	})
}
