package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func printConfigCmd(cfg *todo.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			execPrintConfig(o, cfg)

			return nil
		},
	}
}

func execPrintConfig(o *IO, cfg *todo.Config) {
	o.Println("effective_cwd=" + cfg.EffectiveCwd)
	o.Println("file=" + cfg.File)
	o.Println("color=" + cfg.Color)
	o.Println("git=" + cfg.Git)

	if cfg.LogLevel != "" {
		o.Println("log_level=" + cfg.LogLevel)
	}

	o.Println("")
	o.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			o.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			o.Println("project_config=" + cfg.Sources.Project)
		}
	}
}
