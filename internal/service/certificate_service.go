package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/gcertilab/certilab-api/config"
	"github.com/rs/zerolog/log"
)

// spanishMonths matches the wording printed on the issued certificates.
var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// CertificateIssuer renders a passing certificate and returns the public
// URL of the stored PDF. The file name is deterministic per worker and
// class, so re-rendering overwrites rather than duplicates.
type CertificateIssuer interface {
	Render(workerFullName, workerDNI, classTitle string, classID uint, issueDate time.Time) (string, error)
}

// PDFRenderer turns rendered HTML into PDF bytes. Split out so tests can
// exercise the template and naming logic without a headless browser.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

type chromePDFRenderer struct{}

func NewChromePDFRenderer() PDFRenderer {
	return chromePDFRenderer{}
}

func (chromePDFRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(cctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).WithLandscape(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

type certificateService struct {
	renderer    PDFRenderer
	templateDir string
	outputDir   string
	baseURL     string
}

func NewCertificateService(cfg *config.Config, renderer PDFRenderer) CertificateIssuer {
	return &certificateService{
		renderer:    renderer,
		templateDir: cfg.Storage.TemplateDir,
		outputDir:   cfg.Storage.CertificateDir,
		baseURL:     cfg.Server.PublicBaseURL,
	}
}

type certificateData struct {
	WorkerName string
	ClassTitle string
	IssueDate  string
}

func (s *certificateService) Render(workerFullName, workerDNI, classTitle string, classID uint, issueDate time.Time) (string, error) {
	html, err := s.renderHTML(workerFullName, classTitle, issueDate)
	if err != nil {
		return "", fmt.Errorf("rendering certificate template: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pdf, err := s.renderer.RenderHTML(ctx, html)
	if err != nil {
		return "", fmt.Errorf("rendering certificate PDF: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("preparing certificate directory: %w", err)
	}
	filename := CertificateFilename(workerDNI, classID)
	if err := os.WriteFile(filepath.Join(s.outputDir, filename), pdf, 0o644); err != nil {
		return "", fmt.Errorf("storing certificate %s: %w", filename, err)
	}

	url := s.baseURL + "/certificates/" + filename
	log.Info().Str("file", filename).Msg("Certificate rendered")
	return url, nil
}

func (s *certificateService) renderHTML(workerFullName, classTitle string, issueDate time.Time) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templateDir, "certificate.html"))
	if err != nil {
		return "", err
	}

	data := certificateData{
		WorkerName: workerFullName,
		ClassTitle: classTitle,
		IssueDate:  FormatCertificateDate(issueDate),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CertificateFilename derives the stored name from the worker DNI and the
// class, matching the public download route.
func CertificateFilename(workerDNI string, classID uint) string {
	return fmt.Sprintf("%s-%d.pdf", workerDNI, classID)
}

// FormatCertificateDate renders "2 de Enero de 2026" as printed on the
// certificate.
func FormatCertificateDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[int(t.Month())-1], t.Year())
}
