package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumebuilder/internal/config"
)

const defaultTimeout = 30 * time.Second

// A4，单位英寸；模板可以用 @page 覆盖。
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// 等待 WebFont 就绪，最多 3 秒，避免回退字体导致排版差异。
const waitFontsJS = `() => {
  if (document && document.fonts && document.fonts.ready) {
    return Promise.race([
      document.fonts.ready.then(() => true),
      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
    ]);
  }
  return true;
}`

// RodRenderer 使用 go-rod 在无头浏览器中渲染 HTML 并导出 PDF。
// 每次渲染启动独立的浏览器进程，结束后清理。
type RodRenderer struct {
	chromeBin string
	timeout   time.Duration
}

func NewRodRenderer(cfg config.RendererConfig) *RodRenderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RodRenderer{chromeBin: cfg.ChromeBin, timeout: timeout}
}

// RenderPDF implements document.Renderer.
func (r *RodRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	launch := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)

	switch {
	case r.chromeBin != "":
		launch = launch.Bin(r.chromeBin)
	default:
		if path, ok := launcher.LookPath(); ok {
			launch = launch.Bin(path)
		}
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Timeout(r.timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(r.timeout)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}
	// 字体等待失败不影响导出，只是可能用回退字体。
	_, _ = page.Timeout(5 * time.Second).Eval(waitFontsJS)

	if err := (proto.EmulationSetEmulatedMedia{Media: "print"}).Call(page); err != nil {
		return nil, fmt.Errorf("set emulated media to print: %w", err)
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}

	return data, nil
}

func printOptions() *proto.PagePrintToPDF {
	width, height, margin := a4Width, a4Height, 0.4
	return &proto.PagePrintToPDF{
		PrintBackground:   true,
		PaperWidth:        &width,
		PaperHeight:       &height,
		MarginTop:         &margin,
		MarginBottom:      &margin,
		MarginLeft:        &margin,
		MarginRight:       &margin,
		PreferCSSPageSize: true,
	}
}
