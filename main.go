package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datatug/filepeek/pkg/filepeek"
	"github.com/datatug/filepeek/pkg/filepeek/fpsettings"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

var runBrowser = filepeek.Run

func main() {
	run(newRootCommand())
}

func newRootCommand() *cobra.Command {
	var opts fpsettings.Options
	cmd := &cobra.Command{
		Use:   "filepeek [dir]",
		Short: "Browse directories and read text files in the terminal",
		Long: `filepeek lists a directory, lets you walk into subdirectories
and shows the text of the file you select.

Keys: enter opens, esc goes back, q quits.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Dir = args[0]
			}
			return runBrowser(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", fpsettings.DefaultDir, "directory to start in")
	cmd.Flags().StringVar(&opts.LogFile, "log", "", "append diagnostic log to `file`")
	return cmd
}

type command interface {
	ExecuteContext(ctx context.Context) error
}

var run = func(cmd command) {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "filepeek: %v\n", err)
		osExit(1)
	}
}
