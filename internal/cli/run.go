package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/fs"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

// Version is the program version.
const Version = "0.1.0"

const (
	consumedNone = 0
	consumedOne  = 1
	consumedTwo  = 2
	helpFlag     = "--help"
	versionFlag  = "--version"
	defaultCmd   = "sort"
)

// Run is the main entry point. Returns exit code.
//
// args includes the program name. sigCh may be nil; a signal on it cancels
// the running command.
func Run(stdin io.Reader, out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(stdin, out, errOut)

	if len(args) > 0 {
		args = args[1:]
	}

	flags, err := parseGlobalFlags(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(o.Stderr(), nil)

		return exitUsage
	}

	if flags.help {
		printUsage(o, nil)

		return exitOK
	}

	if flags.version {
		printVersion(o)

		return exitOK
	}

	cfg, err := todo.LoadConfig(todo.LoadConfigInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		FileOverride:    flags.file,
		ColorOverride:   flags.color,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return exitFailure
	}

	logger := newLogger(errOut, cfg.LogLevel, flags.verbose)
	logger.Debug("config loaded", "global", cfg.Sources.Global, "project", cfg.Sources.Project)

	a := &app{
		cfg:    &cfg,
		fsys:   fs.NewReal(),
		logger: logger,
		prompt: newPrompter(stdin, out, errOut),
		render: newRenderer(out, cfg.Color),
		git:    vcs.Git{Binary: cfg.Git, Logger: logger},
	}

	commands := allCommands(a)

	name := defaultCmd

	var cmdArgs []string

	if len(flags.remaining) > 0 {
		name, cmdArgs = flags.remaining[0], flags.remaining[1:]
	}

	cmd := lookupCommand(commands, name)
	if cmd == nil {
		o.ErrPrintln("error:", invalidArg(name, "command"))
		o.ErrPrintln()
		printUsage(o.Stderr(), commands)

		return exitUsage
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, o, cmdArgs)
}

// allCommands returns every command in keyword resolution order.
func allCommands(a *app) []*Command {
	commands := []*Command{
		initCmd(a),
		addCmd(a),
		priorityCmd(a),
		editCmd(a),
		commitCmd(a),
		removeCmd(a),
		doneCmd(a),
		undoCmd(a),
		findCmd(a),
		listCmd(a),
		sortCmd(a),
		nextCmd(a),
		testCmd(a),
	}

	commands = append(commands, helpCmd(&commands), versionCmd(), printConfigCmd(a.cfg))

	return commands
}

// lookupCommand resolves name to the first command it is a prefix of.
func lookupCommand(commands []*Command, name string) *Command {
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}

	i, ok := resolveKeyword(name, names)
	if !ok {
		return nil
	}

	return commands[i]
}

// newLogger writes to errOut. Verbose forces debug; otherwise level comes
// from config and defaults to warn.
func newLogger(errOut io.Writer, level string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(errOut, log.Options{
		Level:           log.WarnLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "kpd",
	})

	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case level != "":
		parsed, err := log.ParseLevel(level)
		if err != nil {
			logger.Warn("ignoring log level", "value", level, "err", err)
		} else {
			logger.SetLevel(parsed)
		}
	}

	return logger
}

type globalFlags struct {
	workDir    string
	configPath string
	file       string
	color      string
	verbose    bool
	help       bool
	version    bool
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == consumedNone {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// valueFlag matches "--name value", "--name=value", and, when short is not
// empty, "-s value" and "-svalue". Returns consumedNone if arg is not this
// flag.
func valueFlag(args []string, idx int, short, long string, dst *string) (int, error) {
	arg := args[idx]

	if arg == long || (short != "" && arg == short) {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagArgument, arg)
		}

		*dst = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, long+"="); ok {
		*dst = after

		return consumedOne, nil
	}

	if short != "" {
		if after, ok := strings.CutPrefix(arg, short); ok && after != "" {
			*dst = after

			return consumedOne, nil
		}
	}

	return consumedNone, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	valueFlags := []struct {
		short, long string
		dst         *string
	}{
		{"-C", "--cwd", &flags.workDir},
		{"-c", "--config", &flags.configPath},
		{"", "--file", &flags.file},
		{"", "--color", &flags.color},
	}

	for _, vf := range valueFlags {
		consumed, err := valueFlag(args, idx, vf.short, vf.long, vf.dst)
		if err != nil || consumed != consumedNone {
			return consumed, err
		}
	}

	switch arg {
	case "--verbose":
		flags.verbose = true

		return consumedOne, nil
	case "-h", helpFlag:
		flags.help = true

		return len(args) - idx, nil
	case "-v", versionFlag:
		flags.version = true

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func printVersion(o *IO) {
	o.Println("Kyrylo's Personal Dispatcher, version " + Version)
}

func printUsage(o *IO, commands []*Command) {
	o.Println(`kpd - Kyrylo's Personal Dispatcher, a task list kept in TODO.md

Usage: kpd [options] [<command>] [args]

Options:
  -C, --cwd <dir>       Run as if started in <dir>
  -c, --config <file>   Use specified config file
      --file <name>     Task document name [default: TODO.md]
      --color <mode>    auto, always, or never
      --verbose         Log debug messages to stderr
  -h, --help            Print this help
  -v, --version         Print version

Placeholders:
  <number>      Task number, range (2-4, 3-), or comma-separated list;
                defaults to the most urgent open task
  <priority>    One of: low | medium | high | critical
  <status>      One of: all | open | done, defaults to open`)

	if commands == nil {
		commands = allCommands(&app{cfg: &todo.Config{}})
	}

	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}

	o.Println()
	o.Println("Without a command, kpd runs sort. Commands and keywords can be shortened")
	o.Println("to any prefix; the first match in the listed order wins.")
}
