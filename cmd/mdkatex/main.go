package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	mdkatex "github.com/dbzhang800/md-katex"
	"github.com/dbzhang800/md-katex/internal/assets"
	"github.com/dbzhang800/md-katex/internal/config"
	"github.com/dbzhang800/md-katex/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches commands and maps errors to exit codes.
func realMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		if err := runConvertCommand(context.Background(), args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, errorWithHints(err))
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "mdkatex %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCommand parses flags, builds the converter pool, and runs the
// conversion. Pool construction lives here rather than in runConvert so that
// tests can drive runConvert with a fake pool.
func runConvertCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFlagParse, err)
	}

	// Configure GOMAXPROCS for containerized environments.
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	opts, err := converterOptions(flags, cfg)
	if err != nil {
		return err
	}

	poolSize := mdkatex.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := newConverterPool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	return runConvert(ctx, positional, flags, cfg, pool, env)
}

// errorWithHints appends an actionable hint to errors with a known remedy.
func errorWithHints(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, mdkatex.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(nil)
	case errors.Is(err, assets.ErrStyleNotFound):
		msg += hints.ForStyleNotFound(assets.AvailableStyles())
	}
	return msg
}
