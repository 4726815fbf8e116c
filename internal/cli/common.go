package cli

import (
	"flag"

	"github.com/mrlokans/bookshelf/internal/config"
)

// storeFlags are the path overrides every command accepts. Defaults come
// from the environment via config.NewConfig.
type storeFlags struct {
	cfg *config.Config
}

func newStoreFlags() storeFlags {
	return storeFlags{cfg: config.NewConfig()}
}

func (f storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.cfg.Database.Path, "db", f.cfg.Database.Path, "Path to the catalog database")
	fs.StringVar(&f.cfg.Sources.UsersPath, "users", f.cfg.Sources.UsersPath, "CSV file users are seeded from on first start")
	fs.StringVar(&f.cfg.Sources.BooksPath, "books", f.cfg.Sources.BooksPath, "JSON file books are seeded from on first start")
	fs.StringVar(&f.cfg.Export.Path, "export", f.cfg.Export.Path, "JSON file rewritten after every change")
	fs.StringVar(&f.cfg.Log.Level, "log-level", f.cfg.Log.Level, "Log level (debug, info, warn, error)")
}
