// Package pdf rasterizes rendered resume HTML into fixed-page-size PDF
// documents with a headless Chrome instance.
package pdf

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"resume-builder/internal/countries"
)

const (
	// DefaultTimeout bounds a single rasterization, browser startup included.
	DefaultTimeout = 8 * time.Second

	// DefaultMaxConcurrent caps simultaneous Chrome instances; each costs
	// roughly 200MB of memory.
	DefaultMaxConcurrent = 2
)

// Engine renders HTML to PDF via chromedp. Safe for concurrent use; the
// semaphore bounds how many Chrome instances run at once.
type Engine struct {
	chromePath string
	timeout    time.Duration
	sem        chan struct{}
}

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	ChromePath    string
	Timeout       time.Duration
	MaxConcurrent int
}

// NewEngine constructs an Engine.
func NewEngine(opts Options) *Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = DefaultMaxConcurrent
	}
	return &Engine{
		chromePath: opts.ChromePath,
		timeout:    opts.Timeout,
		sem:        make(chan struct{}, opts.MaxConcurrent),
	}
}

// Render rasterizes html using the page geometry of the given country rule.
// The caller's context cancels in-flight work; on top of it the engine
// enforces its own timeout so a stuck browser never hangs the request.
func (e *Engine) Render(ctx context.Context, html string, rule countries.Rule) ([]byte, error) {
	select {
	case e.sem <- struct{}{}:
		defer func() { <-e.sem }()
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for render slot")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Chrome resolves file:// URLs reliably across platforms; srcdoc-style
	// injection does not support print CSS the same way.
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, errors.Wrap(err, "create temp dir")
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, errors.Wrap(err, "write html")
	}

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			buf, _, printErr = printParams(rule).Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "print to pdf")
	}
	return buf, nil
}

// printParams maps a country rule onto Chrome print settings. Chrome takes
// all distances in inches.
func printParams(rule countries.Rule) *page.PrintToPDFParams {
	width, height := rule.PageSize.Dimensions()
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(width).
		WithPaperHeight(height).
		WithMarginTop(rule.Margins.Top).
		WithMarginRight(rule.Margins.Right).
		WithMarginBottom(rule.Margins.Bottom).
		WithMarginLeft(rule.Margins.Left)
}
