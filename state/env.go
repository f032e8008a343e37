// Package state defines shared program state.
package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"msfmt/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by format and preview subcommands
	NoDirs    bool
	Overwrite bool
	// UserStyle is stylesheet appended to generated preview CSS.
	UserStyle []byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

// ContextWithEnv attaches empty environment to the context. Configuration,
// report and logger are filled in by the command line Before hook.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// StoreDebug puts data into debug report if one is being produced.
func (e *LocalEnv) StoreDebug(name string, data []byte) {
	if e.Rpt != nil {
		e.Rpt.StoreData(name, data)
	}
}

// CheckDestination returns error if output file exists and overwriting was
// not requested.
func (e *LocalEnv) CheckDestination(name string) error {
	if _, err := os.Stat(name); err == nil && !e.Overwrite {
		return fmt.Errorf("output file already exists: %s", name)
	}
	return nil
}

// WriteDestination creates output file together with missing directories,
// refusing to replace existing one unless asked to.
func (e *LocalEnv) WriteDestination(name string, data []byte) error {
	if _, err := os.Stat(name); err == nil {
		if err := e.CheckDestination(name); err != nil {
			return err
		}
		if e.Log != nil {
			e.Log.Warn("Overwriting existing file", zap.String("file", name))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
