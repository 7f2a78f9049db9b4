// Package archive saves reformatted copies of conversation exports.
//
// A Processor ties the pieces together: it asks a Classifier whether a file
// is worth keeping, reads and decodes it, runs it through a transcript
// Segmenter, and hands the rendered result to a Writer. Source files are only
// ever read.
package archive

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/entrhq/chatkeep/pkg/transcript"
)

// Classifier decides whether a path is a conversation export.
type Classifier interface {
	IsConversation(path string) bool
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(path string) bool

// IsConversation calls f(path).
func (f ClassifierFunc) IsConversation(path string) bool {
	return f(path)
}

// AcceptAll treats every file as a conversation.
var AcceptAll Classifier = ClassifierFunc(func(string) bool { return true })

// Reporter receives user-facing progress messages.
type Reporter interface {
	Successf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Verbosef(format string, args ...interface{})
}

// Processor runs the classify, read, format, write pipeline for one file at a time.
type Processor struct {
	classifier Classifier
	segmenter  transcript.Segmenter
	writer     *Writer
	tracker    Tracker
	reporter   Reporter
	now        func() time.Time
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithTracker sets the set of already handled paths. Defaults to a fresh ProcessedSet.
func WithTracker(t Tracker) ProcessorOption {
	return func(p *Processor) {
		p.tracker = t
	}
}

// WithReporter sets where progress messages go. Defaults to discarding them.
func WithReporter(r Reporter) ProcessorOption {
	return func(p *Processor) {
		p.reporter = r
	}
}

// WithClock overrides the time source used for names and headers.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		p.now = now
	}
}

// NewProcessor creates a Processor. A nil Classifier means AcceptAll.
func NewProcessor(c Classifier, seg transcript.Segmenter, w *Writer, opts ...ProcessorOption) *Processor {
	if c == nil {
		c = AcceptAll
	}

	p := &Processor{
		classifier: c,
		segmenter:  seg,
		writer:     w,
		tracker:    NewProcessedSet(),
		reporter:   nopReporter{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// HandleCreated is the watch-mode entry point, called once per created file.
// Failures are reported and swallowed so the caller's loop keeps going.
func (p *Processor) HandleCreated(path string) {
	name := filepath.Base(path)

	// Browsers write partial downloads to dot-files first.
	if strings.HasPrefix(name, ".") {
		return
	}
	if p.tracker.Seen(path) {
		p.reporter.Verbosef("Already processed: %s", name)
		return
	}
	if !p.classifier.IsConversation(path) {
		p.reporter.Verbosef("Not a conversation: %s", name)
		return
	}

	// Marked before processing so a broken file is not retried on every event.
	p.tracker.Mark(path)

	dest, err := p.process(path)
	if err != nil {
		p.reporter.Errorf("❌ Erreur traitement fichier %s: %v", name, err)
		return
	}
	p.reporter.Successf("✅ Conversation sauvegardée: %s", filepath.Base(dest))
}

// ProcessFile is the manual-mode entry point. It skips classification and
// returns the path of the saved transcript.
func (p *Processor) ProcessFile(path string) (string, error) {
	return p.process(path)
}

func (p *Processor) process(path string) (string, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return "", err
	}

	now := p.now()
	content := transcript.Format(doc.Content, transcript.DisplayTimestamp(now), p.segmenter)

	return p.writer.Write(DestinationName(doc.Name, now), content)
}

type nopReporter struct{}

func (nopReporter) Successf(string, ...interface{}) {}
func (nopReporter) Errorf(string, ...interface{})   {}
func (nopReporter) Verbosef(string, ...interface{}) {}
