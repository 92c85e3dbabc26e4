package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportsRepo records finished exports for bookkeeping. Implementations
// tolerate a missing database and drop the record silently.
type ExportsRepo interface {
	Save(ctx context.Context, rec *domain.ExportRecord) error
}

// Artifact is one finished export, both as bytes for the response and as
// a file kept under the output directory.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
	Path        string
}

// Exporter turns the current record into downloadable documents. It
// never holds resume state of its own; callers pass the record in.
type Exporter struct {
	engine   *render.Engine
	renderer Renderer
	repo     ExportsRepo
	outDir   string
}

func NewExporter(engine *render.Engine, renderer Renderer, repo ExportsRepo, outDir string) *Exporter {
	return &Exporter{engine: engine, renderer: renderer, repo: repo, outDir: outDir}
}

// ExportHTML produces a standalone printable page for the record's
// selected template.
func (e *Exporter) ExportHTML(ctx context.Context, rec *domain.Resume) (*Artifact, error) {
	if rec == nil {
		return nil, export.ErrNoResume
	}
	doc, err := e.engine.Render(*rec, rec.SelectedTemplate)
	if err != nil {
		return nil, err
	}
	name := rec.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}
	page := export.Page(doc, name)
	return e.finish(ctx, rec, "html", ".html", "text/html; charset=utf-8", []byte(page))
}

// ExportRTF produces the plain-content RTF document.
func (e *Exporter) ExportRTF(ctx context.Context, rec *domain.Resume) (*Artifact, error) {
	if rec == nil {
		return nil, export.ErrNoResume
	}
	body := export.RTF(*rec)
	return e.finish(ctx, rec, "rtf", ".rtf", "application/rtf", []byte(body))
}

// ExportPDF renders the standalone page through the headless browser.
// Rendering is retried with backoff and the output is checked for the
// PDF signature before it is accepted.
func (e *Exporter) ExportPDF(ctx context.Context, rec *domain.Resume) (*Artifact, error) {
	if rec == nil {
		return nil, export.ErrNoResume
	}
	if e.renderer == nil {
		return nil, fmt.Errorf("pdf renderer not configured")
	}
	doc, err := e.engine.Render(*rec, rec.SelectedTemplate)
	if err != nil {
		return nil, err
	}
	name := rec.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}
	page := export.Page(doc, name)

	var pdf []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdf, renderErr = e.renderer.RenderHTMLToPDF(ctx, page)
		if renderErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		log.Printf("exporter: render attempt %d failed: %v", i+1, renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, fmt.Errorf("pdf rendering failed after %d attempts: %w", attempts, renderErr)
	}
	return e.finish(ctx, rec, "pdf", ".pdf", "application/pdf", pdf)
}

func (e *Exporter) finish(ctx context.Context, rec *domain.Resume, format, ext, contentType string, data []byte) (*Artifact, error) {
	fileName := export.FileName(rec.PersonalInfo.Name) + ext

	path := ""
	if e.outDir != "" {
		if err := os.MkdirAll(e.outDir, 0o755); err != nil {
			return nil, err
		}
		ts := time.Now().Format("20060102T150405")
		path = filepath.Join(e.outDir, fmt.Sprintf("resume_%s%s", ts, ext))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
	}

	if e.repo != nil {
		name := rec.PersonalInfo.Name
		if name == "" {
			name = "Your Name"
		}
		record := &domain.ExportRecord{
			ID:        uuid.New(),
			Format:    format,
			FileName:  fileName,
			FilePath:  path,
			Title:     name + " - Resume",
			CreatedAt: time.Now(),
		}
		if err := e.repo.Save(ctx, record); err != nil {
			log.Printf("exporter: failed to record export: %v", err)
		}
	}

	return &Artifact{
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
		Path:        path,
	}, nil
}
