package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/crawl"
	"github.com/fwojciec/sift/fs"
	"github.com/fwojciec/sift/google"
	"github.com/fwojciec/sift/goquery"
	"github.com/fwojciec/sift/htmltomarkdown"
	sifthttp "github.com/fwojciec/sift/http"
	"github.com/fwojciec/sift/readability"
	siftslog "github.com/fwojciec/sift/slog"
	"github.com/fwojciec/sift/sqlite"
	"github.com/fwojciec/sift/trafilatura"
	"github.com/fwojciec/sift/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the crawl archive. Opened only by commands
	// that read or write the archive.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sift"),
		kong.Description("Search YouTube and Google and extract clean text from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sift --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetchOpts := []sifthttp.Option{sifthttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetchOpts = append(fetchOpts, sifthttp.WithUserAgent(cli.UserAgent))
	}
	var fetcher sift.Fetcher = sifthttp.NewFetcher(fetchOpts...)
	fetcher = siftslog.NewLoggingFetcher(fetcher, logger)

	deps.Videos = siftslog.NewLoggingVideoSearcher(youtube.NewVideoSearcher(fetcher), logger)
	deps.Transcripts = siftslog.NewLoggingTranscriptService(youtube.NewTranscriptService(fetcher), logger)
	deps.Web = siftslog.NewLoggingWebSearcher(google.NewWebSearcher(fetcher, goquery.NewMetadataScraper(),
		google.WithLanguage(cli.Lang),
		google.WithRegion(cli.Region),
		google.WithDomainLimiter(crawl.NewDomainLimiter(google.DefaultDomainRPS)),
	), logger)
	deps.Images = siftslog.NewLoggingImageSearcher(google.NewImageSearcher(fetcher, goquery.NewImageScraper()), logger)

	command := kongCtx.Command()
	if strings.HasPrefix(command, "crawl") {
		crawler, err := newPageCrawler(fetcher, &cli.Crawl)
		if err != nil {
			return err
		}
		deps.Crawler = siftslog.NewLoggingPageCrawler(crawler, logger)
		deps.NewWriter = func(dir string) sift.PageWriter { return fs.NewWriter(dir) }
	}

	if (strings.HasPrefix(command, "crawl") && cli.Crawl.Save) || strings.HasPrefix(command, "history") {
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SIFT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()
		deps.Pages = sqlite.NewPageService(m.DB)
	}

	return kongCtx.Run(deps)
}

// newPageCrawler builds the crawler for the crawl command's format and
// extractor flags.
func newPageCrawler(fetcher sift.Fetcher, c *CrawlCmd) (*crawl.PageCrawler, error) {
	crawler := &crawl.PageCrawler{
		Fetcher:    fetcher,
		Normalizer: goquery.NewTextNormalizer(),
		Format:     sift.Format(c.Format),
	}
	if crawler.Format != sift.FormatMarkdown {
		return crawler, nil
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, sift.WrapError(sift.EINVALID, err, "invalid URL %q", c.URL)
	}

	switch c.Extractor {
	case "readability":
		crawler.Extractor = &readability.Extractor{BaseURL: u}
	default:
		crawler.Extractor = trafilatura.NewExtractor()
	}

	conv := htmltomarkdown.NewConverter()
	if u.Host != "" {
		conv.Domain = u.Scheme + "://" + u.Host
	}
	crawler.Converter = conv

	return crawler, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sift.db"
	}
	dir := filepath.Join(home, ".sift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sift.db")
}
