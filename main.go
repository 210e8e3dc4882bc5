package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oaiiae/address-book/cli/app"
	"github.com/oaiiae/address-book/cli/logger"
	"github.com/oaiiae/address-book/cli/repl"
)

// Options for the CLI. Pass `--data` or set the `SERVICE_DATA` env var,
// possibly from a .env file.
type Options struct {
	Data      string `doc:"address book file"                   short:"d" default:"contacts.yaml"`
	LogLevel  string `doc:"log from debug, info, warn or error"           default:"warn"`
	LogFile   string `doc:"append logs to file"`
	LogFormat string `doc:"format logs as text or json"                   default:"text"`
}

func main() {
	dotenvErr := godotenv.Load()

	var book *app.App
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		logger := logger.New(&logger.Options{
			Level:  options.LogLevel,
			File:   options.LogFile,
			Format: options.LogFormat,
		})
		if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
			logger.Warn("could not load .env file", "err", dotenvErr)
		}

		var err error
		book, err = app.New(options.Data, logger, time.Now)
		if err != nil {
			logger.Error("could not open address book", "err", err)
			fmt.Fprintln(os.Stderr, "could not open address book:", err)
			os.Exit(1)
		}

		hooks.OnStart(func() {
			err := repl.Run(context.Background(), os.Stdin, os.Stdout, book)
			if err != nil {
				logger.Error("failed to read commands", "err", err)
			}
		})
		hooks.OnStop(func() {
			logger.LogAttrs(context.Background(), slog.LevelInfo, "interrupted")
		})
	})

	root := cli.Root()
	root.Use = "address-book"
	root.Short = "Keep contacts, phone numbers and birthdays"
	root.AddCommand(newExecCommand(func() *app.App { return book }))

	cli.Run()
}

// newExecCommand runs one address book command. book is resolved when the
// command runs, after humacli has parsed the options.
func newExecCommand(book func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec command [args...]",
		Short: "Run a single command and exit",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			command, _ := repl.Parse(args[0])
			reply := book().Handle(cmd.Context(), command, args[1:])
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		},
	}
}
