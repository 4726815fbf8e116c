package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookshelf/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every type in internal/cli.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// No arguments or "run" starts the interactive session
	if len(os.Args) < 2 || os.Args[1] == "run" {
		var args []string
		if len(os.Args) > 2 {
			args = os.Args[2:]
		}
		execute(cli.NewRunCommand(), args)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	switch name {
	case "bootstrap":
		execute(cli.NewBootstrapCommand(), args)

	case "export":
		execute(cli.NewExportCommand(), args)

	case "list":
		execute(cli.NewListCommand(), args)

	case "search":
		execute(cli.NewSearchCommand(), args)

	case "version":
		fmt.Printf("bookshelf %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}
}

func execute(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  run         Log in and manage books interactively (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  bootstrap   Create the store from the users and books files\n")
	fmt.Fprintf(os.Stderr, "  export      Rewrite the export JSON file from the store\n")
	fmt.Fprintf(os.Stderr, "  list        Print every book\n")
	fmt.Fprintf(os.Stderr, "  search      Print books matching a keyword exactly\n")
	fmt.Fprintf(os.Stderr, "  version     Print version information\n")
	fmt.Fprintf(os.Stderr, "\nPaths default to DATABASE_PATH, USERS_SOURCE_PATH, BOOKS_SOURCE_PATH and\n")
	fmt.Fprintf(os.Stderr, "EXPORT_PATH from the environment or a .env file.\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
