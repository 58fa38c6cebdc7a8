package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/genmo/core/content"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
)

type commandLine struct {
	store *content.Store
	in    io.Reader
	out   io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed - write the default content into an empty store")
	fmt.Fprintln(cli.out, "  stats - print content counts")
	fmt.Fprintln(cli.out, "  activities [-limit N] - print the most recent activities")
	fmt.Fprintln(cli.out, "  reset [-yes] - restore the default content and drop the activity log")
	fmt.Fprintln(cli.out, "  export [-file PATH] - write all content as YAML (stdout by default)")
	fmt.Fprintln(cli.out, "  import -file PATH - replace all content with a YAML export")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	activitiesCmd := flag.NewFlagSet("activities", flag.ContinueOnError)
	activitiesLimit := activitiesCmd.Int("limit", 10, "How many activities to print.")

	resetCmd := flag.NewFlagSet("reset", flag.ContinueOnError)
	resetYes := resetCmd.Bool("yes", false, "Do not ask for confirmation.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportFile := exportCmd.String("file", "", "Destination file. Defaults to stdout.")

	importCmd := flag.NewFlagSet("import", flag.ContinueOnError)
	importFile := importCmd.String("file", "", "YAML file produced by export.")

	for _, fs := range []*flag.FlagSet{activitiesCmd, resetCmd, exportCmd, importCmd} {
		fs.SetOutput(cli.out)
	}

	ctx := context.Background()

	switch args[1] {
	case "seed":
		return cli.seed(ctx)
	case "stats":
		return cli.stats()
	case "activities":
		if err := activitiesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.activities(*activitiesLimit)
	case "reset":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return err
		}
		if !*resetYes {
			if err := cli.confirm("This will erase all content. Continue? [y/N] "); err != nil {
				return err
			}
		}
		return cli.reset(ctx)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.export(*exportFile)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importFile(ctx, *importFile)
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm asks on an interactive stdin only.
func (cli *commandLine) confirm(prompt string) error {
	if !isTerminalFunc(int(os.Stdin.Fd())) {
		return errors.New("refusing to prompt on a non-interactive input, pass -yes")
	}
	fmt.Fprint(cli.out, prompt)
	answer, err := bufio.NewReader(cli.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errAborted
	}
}
