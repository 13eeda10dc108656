// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/thatcatcamp/workbench/internal/clipboard"
	"github.com/thatcatcamp/workbench/internal/commit"
	"github.com/thatcatcamp/workbench/internal/config"
	"github.com/thatcatcamp/workbench/internal/db"
	"github.com/thatcatcamp/workbench/internal/logging"
	"github.com/thatcatcamp/workbench/internal/notify"
	"github.com/thatcatcamp/workbench/internal/palette"
	"github.com/thatcatcamp/workbench/internal/storage"
	"github.com/thatcatcamp/workbench/internal/themes"
	"go.uber.org/zap"
)

// app is everything a command needs, built from configuration
type app struct {
	logger    *zap.Logger
	platform  themes.Platform
	store     storage.Store
	notifier  *notify.Notifier
	clipboard clipboard.Writer
}

func newApp() (*app, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level: config.GetString("log.level"),
		File:  config.GetString("log.file"),
	})
	if err != nil {
		return nil, err
	}

	platform := themes.Platform{Browser: config.GetBool("ui.browser")}
	store, err := openStore(config.GetString("storage.type"), config.GetString("storage.path"))
	if err != nil {
		return nil, err
	}

	notifier := notify.New(config.GetDuration("ui.message_timeout"))
	notifier.Subscribe(func(m notify.Message) {
		logger.Debug("message", zap.String("type", string(m.Kind)), zap.String("text", m.Text))
	})

	return &app{
		logger:    logger,
		platform:  platform,
		store:     storage.ForPlatform(platform.Browser, store),
		notifier:  notifier,
		clipboard: clipboard.NewSystem(),
	}, nil
}

func openStore(storeType, path string) (storage.Store, error) {
	switch storeType {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "sqlite", "mysql", "mariadb", "":
		if err := db.InitDB(storeType, path); err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		return storage.NewDBStore(db.GetDB()), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storeType)
	}
}

func (a *app) editor() *palette.Editor {
	e := palette.NewEditor(a.store, a.notifier, a.logger)
	e.SetAutoSave(config.GetBool("palette.auto_save"))
	return e
}

// composer loads the saved messages. Unreadable data is logged by the
// composer and leaves the list empty.
func (a *app) composer() *commit.Composer {
	c := commit.NewComposer(a.store, a.notifier, a.logger)
	c.LoadSaved()
	return c
}

func (a *app) themes(scheme themes.ColorScheme, doc themes.Document) *themes.Service {
	svc := themes.NewService(a.platform, a.store, scheme, doc, a.logger)
	svc.Initialize()
	return svc
}

// configInput is the palette input from configuration
func configInput() palette.Input {
	return palette.Input{
		BaseColorHex: config.GetString("palette.base_color"),
		Saturation:   config.GetFloat("palette.saturation"),
		Lightness:    config.GetFloat("palette.lightness"),
	}
}

func (a *app) close() {
	a.logger.Sync()
}
