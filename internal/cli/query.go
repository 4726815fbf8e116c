package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logger"
	"github.com/mrlokans/bookshelf/internal/utils"
)

// ListCommand prints every book, syncing the export first like the menu does.
type ListCommand struct {
	storeFlags
	Out io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{storeFlags: newStoreFlags(), Out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print every book and refresh the export file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	log := logger.New(cmd.cfg.Log.Level)

	app, err := entrypoint.Open(cmd.cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	listing, err := app.Catalog.ListAll()
	if err != nil {
		return err
	}
	if listing.SyncErr != nil {
		log.WithError(listing.SyncErr).Warn("Export snapshot not updated")
	}
	return utils.WriteBookTable(cmd.Out, listing.Books)
}

// SearchCommand prints the books matching a keyword exactly.
type SearchCommand struct {
	storeFlags
	Keyword string
	Out     io.Writer
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{storeFlags: newStoreFlags(), Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Keyword, "q", "", "Exact title, author, publisher or year to look for (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <keyword> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print books whose title, author, publisher or year equals the keyword.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -q Herbert\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -q 1965\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Keyword == "" {
		return fmt.Errorf("required flag -q not provided")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
	log := logger.New(cmd.cfg.Log.Level)

	app, err := entrypoint.Open(cmd.cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	found, err := app.Catalog.Search(cmd.Keyword)
	if err != nil {
		return err
	}
	return utils.WriteBookTable(cmd.Out, found)
}
