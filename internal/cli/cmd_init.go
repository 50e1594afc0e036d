package cli

import (
	"context"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func initCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("init", flag.ContinueOnError),
		Usage: "init [<directory>]",
		Short: "Initialize kpd in a directory",
		Long: `Create an empty task document in <directory>, or in the working directory.
An existing document is left untouched.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execInit(o, a, args)
		},
	}
}

func execInit(o *IO, a *app, args []string) error {
	if len(args) > 1 {
		return errTooManyArgs
	}

	dir := a.cfg.EffectiveCwd
	if len(args) == 1 {
		dir = args[0]
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(a.cfg.EffectiveCwd, dir)
		}
	}

	path, created, err := todo.Init(a.fsys, dir, a.cfg.File)
	if err != nil {
		return err
	}

	if !created {
		o.Println(a.cfg.File, "already exists")

		return nil
	}

	a.logger.Debug("document created", "path", path)
	o.Println("Created", path)

	return nil
}
