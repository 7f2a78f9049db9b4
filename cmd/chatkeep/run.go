package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/entrhq/chatkeep/pkg/archive"
	"github.com/entrhq/chatkeep/pkg/classifier"
	"github.com/entrhq/chatkeep/pkg/config"
	"github.com/entrhq/chatkeep/pkg/logging"
	"github.com/entrhq/chatkeep/pkg/picker"
	"github.com/entrhq/chatkeep/pkg/transcript"
	"github.com/entrhq/chatkeep/pkg/watcher"
)

// errManualFailed signals that manual mode reported a failure already.
var errManualFailed = errors.New("manual processing failed")

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// run executes the selected mode
func run(ctx context.Context, cfg *config.Config, console *logging.Console, in io.Reader, out io.Writer) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	dialect, err := cfg.EffectiveDialect()
	if err != nil {
		return err
	}
	seg := transcript.SegmenterFor(dialect)
	console.Debugf("dialect: %s", dialect)

	if cfg.Manual {
		if !runManual(cfg, console, seg, in, out) {
			return errManualFailed
		}
		return nil
	}
	return runWatch(ctx, cfg, console, seg)
}

// runWatch processes every conversation created in the source directory
// until ctx is cancelled.
func runWatch(ctx context.Context, cfg *config.Config, console *logging.Console, seg transcript.Segmenter) error {
	cls, err := classifier.New()
	if err != nil {
		return err
	}

	proc := archive.NewProcessor(cls, seg, archive.NewWriter(cfg.DestDir),
		archive.WithTracker(archive.NewProcessedSet()),
		archive.WithReporter(console),
	)

	w, err := watcher.New(cfg.SourceDir, proc.HandleCreated,
		watcher.WithErrorHandler(func(err error) {
			console.Warningf("watcher error: %v", err)
		}),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	console.Header("🔒 Surveillance RGPD initialisée")
	console.Infof("📂 Dossier source: %s", cfg.SourceDir)
	console.Infof("📂 Dossier destination: %s", cfg.DestDir)
	console.Header("🔐 Surveillance RGPD des conversations activée")
	console.Infof("👀 Utilise le bouton de téléchargement de ton interface de chat")
	console.Infof("📝 Les fichiers seront automatiquement convertis au format approprié")
	console.Infof("⌨️ Appuyez sur Ctrl+C pour arrêter")

	err = w.Run(ctx)
	if closeErr := w.Close(); closeErr != nil {
		console.Warningf("%v", closeErr)
	}
	console.Newline()
	console.Infof("👋 Surveillance arrêtée")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runManual processes one file chosen by flag, prompt or picker and reports
// whether it was saved.
func runManual(cfg *config.Config, console *logging.Console, seg transcript.Segmenter, in io.Reader, out io.Writer) bool {
	path, err := choose(cfg, console, in, out)
	if err != nil {
		console.Errorf("❌ %v", err)
		return false
	}

	proc := archive.NewProcessor(archive.AcceptAll, seg, archive.NewWriter(cfg.ManualDestDir), archive.WithReporter(console))
	dest, err := proc.ProcessFile(path)
	if err != nil {
		console.Errorf("❌ Erreur traitement fichier %s: %v", path, err)
		return false
	}
	console.Successf("✅ Conversation sauvegardée: %s", dest)

	if cfg.Copy {
		if err := copyToClipboard(dest); err != nil {
			console.Warningf("could not copy to clipboard: %v", err)
		} else {
			console.Verbosef("path copied to clipboard")
		}
	}
	return true
}

func choose(cfg *config.Config, console *logging.Console, in io.Reader, out io.Writer) (string, error) {
	if cfg.File != "" {
		return picker.ResolvePath(cfg.File)
	}

	candidates, err := picker.ListCandidates(cfg.SourceDir)
	if err != nil {
		console.Warningf("%v", err)
	}

	if cfg.TUI {
		return picker.RunTUI(candidates)
	}

	path, err := picker.NewPrompt(in, out).Select(candidates)
	if err != nil {
		return "", fmt.Errorf("selection: %w", err)
	}
	return path, nil
}
