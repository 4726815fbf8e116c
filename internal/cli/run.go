package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logger"
)

// RunCommand starts the interactive login and menu session.
type RunCommand struct {
	storeFlags
	In  io.Reader
	Out io.Writer
}

func NewRunCommand() *RunCommand {
	return &RunCommand{storeFlags: newStoreFlags(), In: os.Stdin, Out: os.Stdout}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Log in and manage the book catalog interactively.\n")
		fmt.Fprintf(os.Stderr, "The store is created from the users and books files if it does not exist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *RunCommand) Run() error {
	log := logger.New(cmd.cfg.Log.Level)

	app, err := entrypoint.Open(cmd.cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Session(cmd.In, cmd.Out).Run()
}
