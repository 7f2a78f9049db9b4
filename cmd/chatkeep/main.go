// Package main provides chatkeep, a local-only archiver for AI chat exports.
// It watches the downloads folder for exported conversations and saves a
// reformatted, renamed copy of each one; nothing ever leaves the machine.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/chatkeep/pkg/config"
	"github.com/entrhq/chatkeep/pkg/logging"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Defaults()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	parseFlags(cfg, flag.CommandLine, os.Args[1:])

	if cfg.ShowVersion {
		fmt.Printf("chatkeep v%s\n", version)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	fileLog, logErr := logging.NewLogger("chatkeep")
	defer fileLog.Close()

	console := logging.NewConsole(logging.ParseLevel(cfg.LogLevel), consoleOptions(fileLog, logErr)...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, cfg, console, os.Stdin, os.Stdout); err != nil {
		console.Errorf("%v", err)
		_ = fileLog.Close()
		os.Exit(1)
	}
}

// consoleOptions mirrors the console into the session log only when the log
// file opened. The stderr fallback has already printed its own warning.
func consoleOptions(fileLog *logging.Logger, logErr error) []logging.ConsoleOption {
	if logErr != nil {
		return nil
	}
	return []logging.ConsoleOption{logging.WithFileLogger(fileLog)}
}

// parseFlags overlays command line flags on top of cfg, whose current values
// (built-in or from the environment) become the flag defaults.
func parseFlags(cfg *config.Config, fs *flag.FlagSet, args []string) {
	fs.StringVar(&cfg.SourceDir, "source", cfg.SourceDir, "Directory to watch or list exports from (or set "+config.EnvSourceDir+")")
	fs.StringVar(&cfg.DestDir, "dest", cfg.DestDir, "Watch-mode destination directory (or set "+config.EnvDestDir+")")
	fs.StringVar(&cfg.ManualDestDir, "manual-dest", cfg.ManualDestDir, "Manual-mode destination directory (or set "+config.EnvManualDestDir+")")
	fs.StringVar(&cfg.Dialect, "dialect", cfg.Dialect, "Export dialect: inline or block (default: inline when watching, block in manual mode)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Console verbosity: quiet, normal, verbose or debug (or set "+config.EnvLogLevel+")")
	fs.BoolVar(&cfg.Manual, "manual", false, "Process a single file instead of watching")
	fs.StringVar(&cfg.File, "file", "", "File to process in manual mode (skips the prompt)")
	fs.BoolVar(&cfg.TUI, "tui", false, "Pick the file from an interactive list in manual mode")
	fs.BoolVar(&cfg.Copy, "copy", false, "Copy the saved path to the clipboard in manual mode")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "chatkeep - keep local copies of AI chat exports\n\n")
		fmt.Fprintf(out, "Usage: chatkeep [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  chatkeep                                 # Watch the downloads folder\n")
		fmt.Fprintf(out, "  chatkeep -manual                         # Choose a file from a numbered list\n")
		fmt.Fprintf(out, "  chatkeep -manual -tui                    # Choose a file interactively\n")
		fmt.Fprintf(out, "  chatkeep -manual -file export.txt -copy\n")
	}

	// ExitOnError: a bad flag prints usage and exits 2.
	_ = fs.Parse(args)
}
