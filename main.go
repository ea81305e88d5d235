package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/creatures/internal/contract"
	"github.com/olehluchkiv/creatures/internal/creature"
	"github.com/olehluchkiv/creatures/internal/demo"
	"github.com/olehluchkiv/creatures/internal/diagram"
	"github.com/olehluchkiv/creatures/internal/logging"
	"github.com/olehluchkiv/creatures/internal/roster"
)

// options collects everything main parsed from the command line.
type options struct {
	rosterPath string
	plain      bool
	diagramOut string
	verifyDir  string
}

func main() {
	// Flags may appear before or after the optional roster path.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("creatures", flag.ExitOnError)
	rosterFlag := fs.String("roster", "", "TOML roster file (alternative to positional argument)")
	plain := fs.Bool("plain", false, "omit movement symbols")
	diagramOut := fs.String("diagram", "", "write Mermaid class diagram of the creature hierarchy to file")
	verifyDir := fs.String("verify", "", "module directory to inspect for a sealed Creature contract")
	logFile := fs.String("log-file", "", "additional log file path")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	opts := options{
		rosterPath: *rosterFlag,
		plain:      *plain,
		diagramOut: *diagramOut,
		verifyDir:  *verifyDir,
	}
	if len(positional) > 0 {
		opts.rosterPath = positional[0]
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, opts, os.Stdout, logger); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer, logger *slog.Logger) error {
	entries := roster.Default()
	if opts.rosterPath != "" {
		loaded, err := roster.Load(opts.rosterPath)
		if err != nil {
			return err
		}
		entries = loaded
	}

	creatures, err := roster.Build(entries)
	if err != nil {
		return err
	}
	logger.Info("roster built", "creatures", len(creatures), "source", rosterSource(opts.rosterPath))

	if err := demo.Run(stdout, creatures, demo.Options{Plain: opts.plain}); err != nil {
		return err
	}

	if opts.diagramOut != "" {
		diagramOpts := diagram.DefaultOptions()
		diagramOpts.IncludeInit = true
		content := diagram.GenerateMermaid(creature.Kinds(), diagramOpts)
		if err := os.WriteFile(opts.diagramOut, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing diagram to %s: %w", opts.diagramOut, err)
		}
		logger.Info("diagram written", "path", opts.diagramOut)
	}

	if opts.verifyDir != "" {
		report, err := contract.Inspect(ctx, opts.verifyDir, "Creature", logger)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !report.Sealed {
			return fmt.Errorf("verify: %s.Creature is not sealed", report.PkgPath)
		}
		fmt.Fprintf(stdout, "\nCreature contract is sealed; implementations: %s\n", strings.Join(report.Names(), ", "))
	}

	return nil
}

func rosterSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional roster argument).
// Flags that take a value (e.g., -diagram out.mmd) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlagSet := map[string]bool{
		"-roster": true, "-diagram": true, "-verify": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
