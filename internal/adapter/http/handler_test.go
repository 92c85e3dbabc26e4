package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
	"resume-builder/internal/storage"
	"resume-builder/internal/suggest"
	"resume-builder/internal/usecase"
)

type fakeHistory struct {
	records []domain.ExportRecord
}

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	return h.records, nil
}

func newTestApp(t *testing.T, loaded bool) *fiber.App {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	builder := usecase.NewBuilder(store)
	if loaded {
		require.NoError(t, builder.Load(context.Background()))
	}

	engine, err := render.NewEngine()
	require.NoError(t, err)
	exporter := usecase.NewExporter(engine, nil, nil, t.TempDir())
	suggester := suggest.NewGenerator(rand.New(rand.NewSource(1)), 0)

	app := fiber.New()
	NewHandler(builder, exporter, engine, suggester, &fakeHistory{}).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestGetResumeDefault(t *testing.T) {
	app := newTestApp(t, true)
	code, body := doJSON(t, app, "GET", "/resume", nil)
	require.Equal(t, fiber.StatusOK, code)

	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, domain.TemplateModern, rec.SelectedTemplate)
	assert.Equal(t, domain.DefaultTheme(), rec.ThemeSettings)
}

func TestPatchPersonal(t *testing.T) {
	app := newTestApp(t, true)

	code, _ := doJSON(t, app, "PATCH", "/resume/personal", fiber.Map{"field": "name", "value": "Jane Roe"})
	require.Equal(t, fiber.StatusOK, code)

	_, body := doJSON(t, app, "GET", "/resume", nil)
	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "Jane Roe", rec.PersonalInfo.Name)
}

func TestPatchPersonalUnknownField(t *testing.T) {
	app := newTestApp(t, true)
	code, _ := doJSON(t, app, "PATCH", "/resume/personal", fiber.Map{"field": "nickname", "value": "JR"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestExperienceLifecycle(t *testing.T) {
	app := newTestApp(t, true)

	code, body := doJSON(t, app, "POST", "/resume/experience", nil)
	require.Equal(t, fiber.StatusCreated, code)
	var created struct {
		Entry domain.Experience `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.Entry.ID)
	id := created.Entry.ID

	code, _ = doJSON(t, app, "PATCH", "/resume/experience/"+id, fiber.Map{"field": "jobTitle", "value": "Engineer"})
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "POST", "/resume/experience/"+id+"/achievements", fiber.Map{"text": "shipped"})
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "DELETE", "/resume/experience/"+id+"/achievements/5", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doJSON(t, app, "DELETE", "/resume/experience/"+id+"/achievements/0", nil)
	require.Equal(t, fiber.StatusOK, code)

	code, body = doJSON(t, app, "DELETE", "/resume/experience/"+id, nil)
	require.Equal(t, fiber.StatusOK, code)
	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Empty(t, rec.Experience)
}

func TestPatchExperienceUnknownEntry(t *testing.T) {
	app := newTestApp(t, true)
	code, _ := doJSON(t, app, "PATCH", "/resume/experience/nope", fiber.Map{"field": "jobTitle", "value": "x"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestSkillsEndpoints(t *testing.T) {
	app := newTestApp(t, true)

	code, body := doJSON(t, app, "POST", "/resume/skills", fiber.Map{"skills": "Go, SQL, Go"})
	require.Equal(t, fiber.StatusOK, code)
	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)

	code, body = doJSON(t, app, "DELETE", "/resume/skills", fiber.Map{"skill": "Go"})
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, []string{"SQL"}, rec.Skills)
}

func TestPutTemplateNormalizes(t *testing.T) {
	app := newTestApp(t, true)
	code, body := doJSON(t, app, "PUT", "/resume/template", fiber.Map{"template": "fancy"})
	require.Equal(t, fiber.StatusOK, code)
	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, domain.TemplateModern, rec.SelectedTemplate)
}

func TestThemeEndpoints(t *testing.T) {
	app := newTestApp(t, true)

	theme := domain.DefaultTheme()
	theme.PrimaryColor = "#0f172a"
	code, _ := doJSON(t, app, "PUT", "/resume/theme", theme)
	require.Equal(t, fiber.StatusOK, code)

	code, body := doJSON(t, app, "GET", "/resume/theme", nil)
	require.Equal(t, fiber.StatusOK, code)
	var got domain.ThemeSettings
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, theme, got)
}

func TestClearResumeEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	doJSON(t, app, "PATCH", "/resume/personal", fiber.Map{"field": "name", "value": "Jane Roe"})

	code, _ := doJSON(t, app, "DELETE", "/resume", nil)
	require.Equal(t, fiber.StatusOK, code)

	// working record stays live until reload
	_, body := doJSON(t, app, "GET", "/resume", nil)
	var rec domain.Resume
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "Jane Roe", rec.PersonalInfo.Name)
}

func TestPreview(t *testing.T) {
	app := newTestApp(t, true)

	req := httptest.NewRequest("GET", "/resume/preview?template=classic", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<style>")
	assert.Contains(t, string(data), "Your Name")
}

func TestExportRTFEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	doJSON(t, app, "PATCH", "/resume/personal", fiber.Map{"field": "name", "value": "Jane Roe"})

	req := httptest.NewRequest("POST", "/exports/rtf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Jane_Roe.rtf"`, resp.Header.Get("Content-Disposition"))
}

func TestExportUnknownFormat(t *testing.T) {
	app := newTestApp(t, true)
	code, _ := doJSON(t, app, "POST", "/exports/docx", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestExportRefusedWithoutData(t *testing.T) {
	app := newTestApp(t, false)
	code, body := doJSON(t, app, "POST", "/exports/rtf", nil)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Contains(t, string(body), "no resume data to export")
}

func TestSuggestions(t *testing.T) {
	app := newTestApp(t, true)

	code, body := doJSON(t, app, "POST", "/suggestions", fiber.Map{
		"type":    "skills",
		"context": fiber.Map{"jobTitle": "Software Engineer"},
	})
	require.Equal(t, fiber.StatusOK, code)
	var resp struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Contains(t, resp.Content, "TypeScript")

	code, _ = doJSON(t, app, "POST", "/suggestions", fiber.Map{"type": "poem"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}
