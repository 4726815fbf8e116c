package entrypoint

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/exporters"
	"github.com/mrlokans/bookshelf/internal/session"
)

// App holds the wired components for one process.
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	DB       *database.Database
	Auth     *auth.Service
	Catalog  *catalog.Service
	Exporter *exporters.SnapshotExporter
}

// Open bootstraps the store if it is missing and wires every component on
// top of it.
func Open(cfg *config.Config, log *logrus.Logger) (*App, error) {
	created, err := database.EnsureStore(cfg, log)
	if err != nil {
		return nil, err
	}
	if !created {
		log.WithField("path", cfg.Database.Path).Debug("Using existing store")
	}

	db, err := database.NewDatabase(cfg.Database.Path, log)
	if err != nil {
		return nil, apperr.StoreAccess("open", "failed to open store", err)
	}
	if !db.HasSchema() {
		db.Close()
		return nil, apperr.StoreAccess("open", fmt.Sprintf("store %s has no catalog tables; remove it to bootstrap again", cfg.Database.Path), nil)
	}

	bookRepo := books.NewRepository(db.DB)
	exporter := exporters.NewSnapshotExporter(bookRepo, cfg.Export.Path)

	return &App{
		Config:   cfg,
		Log:      log,
		DB:       db,
		Auth:     auth.NewService(users.NewRepository(db.DB)),
		Catalog:  catalog.NewService(bookRepo, exporter),
		Exporter: exporter,
	}, nil
}

// Session returns an interactive session bound to in and out.
func (a *App) Session(in io.Reader, out io.Writer) *session.Session {
	return session.New(a.Auth, a.Catalog, in, out, a.Log)
}

func (a *App) Close() error {
	return a.DB.Close()
}
