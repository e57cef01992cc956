package reportgen

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:embed templates/report.html
var reportTemplate string

// A4 in inches, with the report's print margins (15/20/12/12 mm).
const (
	paperWidth   = 8.27
	paperHeight  = 11.69
	marginTop    = 0.59
	marginBottom = 0.79
	marginLeft   = 0.47
	marginRight  = 0.47
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "echoreport_renders_total",
		Help: "Total number of PDF render attempts",
	}, []string{"status"})
	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "echoreport_render_duration_seconds",
		Help:    "Time spent rendering a PDF",
		Buckets: prometheus.DefBuckets,
	})
)

// Config holds renderer settings.
type Config struct {
	// ChromePath overrides the browser binary; empty means chromedp's
	// default lookup.
	ChromePath string
	// Timeout bounds a single render.
	Timeout time.Duration
}

// PDFRenderer prints template models to A4 PDFs through a headless
// browser. The layout template is parsed once at construction, so a broken
// layout fails startup instead of requests. Each render runs in its own
// browser tab; renders are independent and may run concurrently.
type PDFRenderer struct {
	tmpl        *template.Template
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

// NewPDFRenderer parses the layout and prepares the browser allocator.
func NewPDFRenderer(cfg Config) (*PDFRenderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &PDFRenderer{
		tmpl:        tmpl,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		timeout:     timeout,
	}, nil
}

// Close releases the browser allocator.
func (r *PDFRenderer) Close() {
	r.allocCancel()
}

// HTML executes the layout for a model into a fresh buffer.
func (r *PDFRenderer) HTML(m *TemplateModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces the PDF bytes for a model. The tab context is cancelled
// on every exit path, so the browser never leaks a page.
func (r *PDFRenderer) Render(ctx context.Context, m *TemplateModel) ([]byte, error) {
	start := time.Now()

	html, err := r.HTML(m)
	if err != nil {
		rendersTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(r.allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// Stop when the caller gives up even though the tab hangs off the
	// shared allocator.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-tabCtx.Done():
		}
	}()

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginTop).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithMarginRight(marginRight).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		rendersTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to print report: %w", err)
	}
	if len(pdf) == 0 {
		rendersTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("renderer produced no output")
	}

	rendersTotal.WithLabelValues("success").Inc()
	renderDuration.Observe(time.Since(start).Seconds())
	return pdf, nil
}
