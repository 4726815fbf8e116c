package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/logger"
)

// BootstrapCommand creates and seeds the store without starting a session.
type BootstrapCommand struct {
	storeFlags
	Out io.Writer
}

func NewBootstrapCommand() *BootstrapCommand {
	return &BootstrapCommand{storeFlags: newStoreFlags(), Out: os.Stdout}
}

func (cmd *BootstrapCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s bootstrap [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the store from the users CSV and books JSON files.\n")
		fmt.Fprintf(os.Stderr, "Does nothing if the store file already exists.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BootstrapCommand) Run() error {
	log := logger.New(cmd.cfg.Log.Level)

	created, err := database.EnsureStore(cmd.cfg, log)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.Out, "Store created at %s\n", cmd.cfg.Database.Path)
	} else {
		fmt.Fprintf(cmd.Out, "Store already exists at %s, nothing to do\n", cmd.cfg.Database.Path)
	}
	return nil
}
