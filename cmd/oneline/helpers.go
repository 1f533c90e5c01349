package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jundev/oneline/internal/config"
	"github.com/jundev/oneline/internal/database"
	"github.com/jundev/oneline/internal/database/repository"
	"github.com/jundev/oneline/internal/prefs"
	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/service"
	"github.com/jundev/oneline/internal/widget"
)

// env is everything a command needs: config, the shared store and the engine.
type env struct {
	cfg    config.Config
	store  widget.StateStore
	db     *sql.DB
	engine *widget.Engine
	bridge *service.WidgetBridge
	loc    *time.Location
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	return &env{
		cfg:    cfg,
		store:  store,
		db:     db,
		engine: engine,
		bridge: &service.WidgetBridge{Store: store, Notifier: triggerNotifier(cfg.TriggerPath())},
		loc:    loc,
	}, nil
}

func (e *env) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

func openStore(cfg config.Config) (widget.StateStore, *sql.DB, error) {
	switch cfg.State.Backend {
	case config.BackendFile:
		return prefs.NewFileStore(cfg.State.Path), nil, nil
	case config.BackendMemory:
		return widget.NewMemoryStore(), nil, nil
	default:
		db, err := database.OpenMigrated(cfg.State.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return repository.NewWidgetStateRepo(db), db, nil
	}
}

// newEngine loads the message catalogs. A non-empty locale.primary replaces
// the language the messages file gives the primary catalog.
func newEngine(cfg config.Config) (*widget.Engine, error) {
	cats, err := widget.LoadCatalogs(cfg.App.MessagesPath)
	if err != nil {
		return nil, err
	}
	if p := strings.TrimSpace(cfg.Locale.Primary); p != "" {
		tag, err := language.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("locale.primary: %w", err)
		}
		cats.Primary.Tag = tag
	}
	return widget.NewEngine(widget.WithCatalogs(cats)), nil
}

// triggerNotifier reaches widgets running in other processes by touching the
// file they watch.
func triggerNotifier(path string) service.Notifier {
	return service.NotifierFunc(func() {
		if err := refresh.Touch(path); err != nil {
			log.Printf("warn: touch reload trigger: %v", err)
		}
	})
}

// watchPaths lists the files whose changes mean the snapshot may have moved.
func (e *env) watchPaths() []string {
	paths := []string{e.cfg.TriggerPath()}
	switch e.cfg.State.Backend {
	case config.BackendSQLite:
		paths = append(paths, e.cfg.State.Path, e.cfg.State.Path+"-wal")
	case config.BackendFile:
		paths = append(paths, e.cfg.State.Path)
	}
	return paths
}

func (e *env) renderer(locale string) *service.Renderer {
	if locale == "" {
		locale = e.cfg.SystemLocale()
	}
	return &service.Renderer{
		Bridge:    e.bridge,
		Engine:    e.engine,
		Instances: service.NewInstances(e.cfg.Layouts()...),
		Locale:    locale,
	}
}

func (e *env) now() time.Time {
	return time.Now().In(e.loc)
}
