package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"geministudio/internal/config"
	"geministudio/internal/database"
	"geministudio/internal/events"
	"geministudio/internal/locales"
	"geministudio/internal/logging"
	"geministudio/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	logs := logging.New(cfg.WorkDir, logging.ParseLevel(cfg.LogLevel))
	defer logs.Close()
	// Every component shares this logger; it picks up the runtime sink once
	// OnStartup enables it.
	log := logs.Slog()

	dbLevel := logger.Warn
	if cfg.Debug {
		dbLevel = logger.Info
	}
	db, err := database.Init(database.Config{Path: cfg.DBPath, LogLevel: dbLevel})
	if err != nil {
		log.Error("open database failed", "reason", err.Error())
		os.Exit(1)
	}

	ring, persistent := services.OpenKeyring(cfg.KeyringService)
	if !persistent {
		log.Warn("no OS keyring available, connection secrets are kept in memory only")
	}

	emitter := events.NewRuntimeEmitter()

	var settingsStore *services.SettingsStore
	dbService := services.NewDbServices(db, services.NewKeyringService(ring), func() int {
		return settingsStore.Settings().MaxHistoryCount
	}, log)
	backend := newDebugTracker(dbService.AppSettings)
	settingsStore = services.NewSettingsStore(backend,
		services.WithSettingsLogger(log),
		services.WithSettingsEmitter(emitter),
	)

	// Device capabilities are chosen once here; headless runs get no-ops.
	document := services.NewRuntimeDocument()
	var storage services.LocalStorage = services.NewFileStorage(cfg.ThemeStoragePath())
	var doc services.Document = document
	if cfg.Headless {
		storage = services.NoopStorage{}
		doc = services.NoopDocument{}
	}
	themeStore := services.NewThemeStore(storage, doc,
		services.WithThemeLogger(log),
		services.WithThemeEmitter(emitter),
	)
	themeStore.Init()

	app := NewApp(log, dbService, backend, settingsStore, themeStore, locales.Default(), cfg.Locale)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "openGemini Studio",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "openGemini Studio",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			emitter.Startup(ctx)
			logs.EnableRuntime(ctx)
			app.startup(ctx)
			settingsStore.Start(ctx)
		},
		OnDomReady: func(ctx context.Context) {
			document.DomReady(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Error("wails run failed", "reason", err.Error())
	}
}
