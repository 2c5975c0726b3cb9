package automation

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// A4 (inch)
const (
	a4Width  = 8.27
	a4Height = 11.69
)

const printTimeout = 60 * time.Second

// Printer 는 헤드리스 크롬으로 HTML 을 PDF 로 인쇄합니다.
// 브라우저는 첫 PrintPDF 호출 때 한 번만 띄우고 Close 까지 재사용합니다.
// 실행에 실패하면 그 오류를 기억해 두고 다시 띄우지 않습니다.
type Printer struct {
	bin       string
	launcher  *launcher.Launcher
	browser   *rod.Browser
	launchErr error
}

// NewPrinter 는 Printer 를 만듭니다. bin 이 비어 있으면 rod 가 브라우저를 찾거나 내려받습니다.
func NewPrinter(bin string) *Printer {
	return &Printer{bin: bin}
}

func (p *Printer) connect() error {
	if p.browser != nil {
		return nil
	}
	if p.launchErr != nil {
		return p.launchErr
	}
	// 백신이 leakless 바이너리를 막는 PC 가 있어 끕니다
	l := launcher.New().Headless(true).Leakless(false)
	if p.bin != "" {
		l = l.Bin(p.bin)
	}
	u, err := l.Launch()
	if err != nil {
		p.launchErr = fmt.Errorf("브라우저 실행에 실패했습니다: %w", err)
		return p.launchErr
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		p.launchErr = fmt.Errorf("브라우저 연결에 실패했습니다: %w", err)
		return p.launchErr
	}
	log.Println("Headless browser started for PDF printing.")
	p.launcher = l
	p.browser = browser
	return nil
}

// PrintPDF 는 html 을 A4 PDF 로 path 에 저장합니다.
func (p *Printer) PrintPDF(html, path string) error {
	if err := p.connect(); err != nil {
		return err
	}

	page, err := p.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()
	page = page.Timeout(printTimeout)

	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("failed to set document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        gson.Num(a4Width),
		PaperHeight:       gson.Num(a4Height),
	})
	if err != nil {
		return fmt.Errorf("failed to print pdf: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read pdf stream: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("저장 폴더 생성에 실패했습니다: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Close 는 브라우저를 닫습니다. 실행하지 않았으면 아무것도 하지 않습니다.
func (p *Printer) Close() error {
	if p.browser == nil {
		return nil
	}
	err := p.browser.Close()
	p.launcher.Kill()
	p.browser, p.launcher = nil, nil
	return err
}
