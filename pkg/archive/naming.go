package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// NamePrefix starts every saved transcript name.
	NamePrefix = "vie_privee"

	// NameTimestampLayout is the layout of the timestamp embedded in saved names.
	NameTimestampLayout = "20060102_1504"

	defaultTitle = "conversation"
)

var chatTitlePattern = regexp.MustCompile(`chat-(.*?)\.txt`)

// Title derives a title from a source file name. Names containing
// "chat-<title>.txt" use the first such title; anything else uses the name
// without its extension. Spaces become underscores.
func Title(name string) string {
	var title string
	if m := chatTitlePattern.FindStringSubmatch(name); m != nil {
		title = m[1]
	} else {
		title = stem(name)
	}

	title = strings.ReplaceAll(title, " ", "_")
	if title == "" {
		return defaultTitle
	}
	return title
}

// stem strips the extension. A leading dot alone does not start one, so
// ".txt" keeps its whole name.
func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// DestinationName builds the saved file name for a source name at time now.
func DestinationName(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.txt", NamePrefix, now.Format(NameTimestampLayout), Title(name))
}
