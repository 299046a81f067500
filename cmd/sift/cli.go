package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sift"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Videos      sift.VideoSearcher
	Transcripts sift.TranscriptService
	Web         sift.WebSearcher
	Images      sift.ImageSearcher
	Crawler     sift.PageCrawler

	// Pages is nil unless the archive database was opened.
	Pages sift.PageService

	// NewWriter returns the exporter for crawl --out.
	NewWriter func(dir string) sift.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log requests to stderr"`
	Timeout   time.Duration `default:"10s" env:"SIFT_TIMEOUT" help:"HTTP timeout per request"`
	UserAgent string        `env:"SIFT_USER_AGENT" help:"User-Agent header (default: desktop Chrome)"`
	DB        string        `env:"SIFT_DB" help:"Archive database path (default: ~/.sift/sift.db)"`
	Lang      string        `default:"ko" env:"SIFT_LANG" help:"Web search interface language"`
	Region    string        `default:"KR" env:"SIFT_REGION" help:"Web search region"`

	Videos     VideosCmd     `cmd:"" help:"Search YouTube videos"`
	Web        WebCmd        `cmd:"" help:"Search the web and describe result pages"`
	Images     ImagesCmd     `cmd:"" help:"Search Google Images"`
	Crawl      CrawlCmd      `cmd:"" help:"Extract the text of a web page"`
	Transcript TranscriptCmd `cmd:"" help:"Fetch a YouTube video's captions"`
	History    HistoryCmd    `cmd:"" help:"List archived pages"`
}

// VideosCmd is the "videos" subcommand.
type VideosCmd struct {
	Query string `arg:"" help:"Search query"`
	Num   int    `short:"n" default:"5" help:"Maximum number of videos"`
}

// WebCmd is the "web" subcommand.
type WebCmd struct {
	Query string `arg:"" help:"Search query"`
	Num   int    `short:"n" default:"5" help:"Number of result pages to describe"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	Query string `arg:"" help:"Search query"`
	Num   int    `short:"n" default:"5" help:"Maximum number of images"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Format    string `short:"f" enum:"text,markdown" default:"text" help:"Output format (text, markdown)"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Main-content extractor for markdown (trafilatura, readability)"`
	Save      bool   `short:"s" help:"Archive the page"`
	Out       string `short:"o" type:"path" help:"Also write the page as a file below this directory"`
}

// TranscriptCmd is the "transcript" subcommand.
type TranscriptCmd struct {
	VideoID   string   `arg:"" help:"YouTube video ID"`
	Languages []string `short:"l" name:"language" default:"ko" help:"Caption language preference (repeatable)"`
	Lines     bool     `help:"Print start:duration:text lines instead of JSON"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `help:"Only pages crawled from this URL"`
	Limit  int    `default:"20" help:"Maximum number of pages"`
	Offset int    `help:"Number of pages to skip"`
}
