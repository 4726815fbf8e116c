package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logger"
)

// ExportCommand rewrites the export snapshot once and exits.
type ExportCommand struct {
	storeFlags
	Out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{storeFlags: newStoreFlags(), Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write every book in the store to the export JSON file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	log := logger.New(cmd.cfg.Log.Level)

	app, err := entrypoint.Open(cmd.cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Exporter.Sync()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Exported %d books to %s\n", result.BooksProcessed, result.Path)
	return nil
}
