package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"msfmt/config"
	"msfmt/convert"
	"msfmt/misc"
	"msfmt/state"
)

const sourceHelpTemplate = `%s
SOURCE:
    DOCX manuscript(s) to process:
        path to a file: "[path_to_file]file.docx"
        path to a directory: "[path_to_directory]directory" - all DOCX files under directory, recursively (symbolic links are not followed)

DESTINATION:
    directory for %s, file names and extensions are derived from configuration
    if absent - current working directory
`

const dumpHelpTemplate = `%s
DESTINATION:
    file name to write configuration to, if absent - STDOUT

Without --default writes active configuration: embedded defaults, selected
preset and values from configuration file combined.
`

func formatFlags() []cli.Flag {
	names, _ := config.PresetNames()
	return []cli.Flag{
		&cli.StringFlag{Name: "preset", Aliases: []string{"p"},
			Usage: "format `PRESET` replacing configured one (one of: " + strings.Join(names, ", ") + ")"},
		&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "do not keep source directory structure in destination"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing output files"},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "formatter for DOCX manuscripts",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "produce debug report archive with logs, configuration and intermediate results"},
		},
		Commands: []*cli.Command{
			{
				Name:               "format",
				Usage:              "Formats DOCX manuscript(s) into print ready DOCX",
				OnUsageError:       usageErrorHandler,
				Action:             convert.Run,
				Flags:              formatFlags(),
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(sourceHelpTemplate, cli.CommandHelpTemplate, "formatted document(s)"),
			},
			{
				Name:               "preview",
				Usage:              "Produces HTML preview with CSS stylesheet for DOCX manuscript(s)",
				OnUsageError:       usageErrorHandler,
				Action:             convert.RunPreview,
				Flags:              formatFlags(),
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(sourceHelpTemplate, cli.CommandHelpTemplate, "preview HTML and CSS files"),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or active configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError:       usageErrorHandler,
				Action:             outputConfiguration,
				ArgsUsage:          "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(dumpHelpTemplate, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()

	if err != nil {
		// logger is either not ready yet or already closed
		if !errWasHandled {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
