package usecase

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/render"
)

type fakeRenderer struct {
	output []byte
	calls  int
}

func (r *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	r.calls++
	return r.output, nil
}

type fakeExportsRepo struct {
	saved []*domain.ExportRecord
}

func (r *fakeExportsRepo) Save(ctx context.Context, rec *domain.ExportRecord) error {
	r.saved = append(r.saved, rec)
	return nil
}

func exportResume() domain.Resume {
	rec := domain.NewResume()
	rec.PersonalInfo.Name = "Jane Roe"
	rec.Summary = "Engineer."
	return rec
}

func newTestExporter(t *testing.T, renderer Renderer, repo ExportsRepo) *Exporter {
	t.Helper()
	engine, err := render.NewEngine()
	require.NoError(t, err)
	return NewExporter(engine, renderer, repo, t.TempDir())
}

func TestExportRefusedWithoutRecord(t *testing.T) {
	e := newTestExporter(t, &fakeRenderer{}, &fakeExportsRepo{})
	ctx := context.Background()

	_, err := e.ExportHTML(ctx, nil)
	assert.ErrorIs(t, err, export.ErrNoResume)
	_, err = e.ExportRTF(ctx, nil)
	assert.ErrorIs(t, err, export.ErrNoResume)
	_, err = e.ExportPDF(ctx, nil)
	assert.ErrorIs(t, err, export.ErrNoResume)
}

func TestExportHTML(t *testing.T) {
	repo := &fakeExportsRepo{}
	e := newTestExporter(t, nil, repo)
	rec := exportResume()

	artifact, err := e.ExportHTML(context.Background(), &rec)
	require.NoError(t, err)

	assert.Equal(t, "Jane_Roe.html", artifact.FileName)
	assert.Equal(t, "text/html; charset=utf-8", artifact.ContentType)
	assert.True(t, strings.HasPrefix(string(artifact.Data), "<!DOCTYPE html>"))
	assert.Contains(t, string(artifact.Data), "<title>Jane Roe - Resume</title>")

	// artifact is also written to the output directory
	onDisk, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Data, onDisk)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "html", repo.saved[0].Format)
	assert.Equal(t, "Jane Roe - Resume", repo.saved[0].Title)
}

func TestExportRTF(t *testing.T) {
	e := newTestExporter(t, nil, &fakeExportsRepo{})
	rec := exportResume()

	artifact, err := e.ExportRTF(context.Background(), &rec)
	require.NoError(t, err)

	assert.Equal(t, "Jane_Roe.rtf", artifact.FileName)
	assert.Equal(t, "application/rtf", artifact.ContentType)
	assert.True(t, strings.HasPrefix(string(artifact.Data), `{\rtf1`))
}

func TestExportPDF(t *testing.T) {
	renderer := &fakeRenderer{output: []byte("%PDF-1.4 fake")}
	repo := &fakeExportsRepo{}
	e := newTestExporter(t, renderer, repo)
	rec := exportResume()

	artifact, err := e.ExportPDF(context.Background(), &rec)
	require.NoError(t, err)

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, "Jane_Roe.pdf", artifact.FileName)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.Equal(t, renderer.output, artifact.Data)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "pdf", repo.saved[0].Format)
}

func TestExportPDFWithoutRenderer(t *testing.T) {
	e := newTestExporter(t, nil, &fakeExportsRepo{})
	rec := exportResume()

	_, err := e.ExportPDF(context.Background(), &rec)
	assert.Error(t, err)
}

func TestExportFileNameFallback(t *testing.T) {
	e := newTestExporter(t, nil, nil)
	rec := domain.NewResume()

	artifact, err := e.ExportRTF(context.Background(), &rec)
	require.NoError(t, err)
	assert.Equal(t, "resume.rtf", artifact.FileName)
}
