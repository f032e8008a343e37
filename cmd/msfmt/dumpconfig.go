package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"msfmt/config"
	"msfmt/state"
)

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		err  error
		kind = "active"
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		env.Log.Info("Writing configuration", zap.String("state", kind), zap.String("file", "STDOUT"))
		return writeConfiguration(os.Stdout, data)
	}

	env.Log.Info("Writing configuration", zap.String("state", kind), zap.String("file", fname))
	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	return writeConfiguration(out, data)
}

func writeConfiguration(out io.WriteCloser, data []byte) error {
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	if out == os.Stdout {
		return nil
	}
	return out.Close()
}
