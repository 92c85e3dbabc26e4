package http

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/render"
	"resume-builder/internal/suggest"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// ExportsHistory lists past exports for the history endpoint.
type ExportsHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.ExportRecord, error)
}

type Handler struct {
	builder   *usecase.Builder
	exporter  *usecase.Exporter
	engine    *render.Engine
	suggester *suggest.Generator
	history   ExportsHistory
}

func NewHandler(b *usecase.Builder, e *usecase.Exporter, engine *render.Engine, s *suggest.Generator, h ExportsHistory) *Handler {
	return &Handler{builder: b, exporter: e, engine: engine, suggester: s, history: h}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Put("/resume", h.PutResume)
	app.Delete("/resume", h.ClearResume)

	app.Patch("/resume/personal", h.PatchPersonal)
	app.Put("/resume/summary", h.PutSummary)
	app.Put("/resume/template", h.PutTemplate)
	app.Get("/resume/theme", h.GetTheme)
	app.Put("/resume/theme", h.PutTheme)

	app.Post("/resume/experience", h.AddExperience)
	app.Patch("/resume/experience/:id", h.PatchExperience)
	app.Delete("/resume/experience/:id", h.RemoveExperience)
	app.Post("/resume/experience/:id/achievements", h.AddExperienceAchievement)
	app.Delete("/resume/experience/:id/achievements/:index", h.RemoveExperienceAchievement)

	app.Post("/resume/education", h.AddEducation)
	app.Patch("/resume/education/:id", h.PatchEducation)
	app.Delete("/resume/education/:id", h.RemoveEducation)
	app.Post("/resume/education/:id/achievements", h.AddEducationAchievement)
	app.Delete("/resume/education/:id/achievements/:index", h.RemoveEducationAchievement)

	app.Post("/resume/skills", h.AddSkills)
	app.Delete("/resume/skills", h.RemoveSkill)

	app.Get("/resume/preview", h.Preview)
	app.Post("/exports/:format", h.Export)
	app.Get("/exports/recent", h.RecentExports)
	app.Post("/suggestions", h.Suggest)
}

func (h *Handler) current() (domain.Resume, bool) {
	return h.builder.Current()
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *Handler) update(c *fiber.Ctx, fn func(domain.Resume) (domain.Resume, error)) error {
	rec, err := h.builder.Update(c.Context(), fn)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(rec)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	rec, ok := h.current()
	if !ok {
		rec = domain.NewResume()
	}
	return c.JSON(rec)
}

func (h *Handler) PutResume(c *fiber.Ctx) error {
	var rec domain.Resume
	if err := c.BodyParser(&rec); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.update(c, func(domain.Resume) (domain.Resume, error) {
		rec.SelectedTemplate = domain.ParseTemplate(string(rec.SelectedTemplate))
		if rec.ThemeSettings == (domain.ThemeSettings{}) {
			rec.ThemeSettings = domain.DefaultTheme()
		}
		return rec, nil
	})
}

// ClearResume drops the persisted snapshot only. The working record
// stays live until the service reloads, matching the reload-to-revert
// behavior of the persisted layout this service inherited.
func (h *Handler) ClearResume(c *fiber.Ctx) error {
	if err := h.builder.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"cleared": true})
}

type fieldReq struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Current bool   `json:"current"`
}

func (h *Handler) PatchPersonal(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	field, err := domain.ParsePersonalField(req.Field)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.ApplyPersonal(domain.PersonalUpdate{Field: field, Value: req.Value}), nil
	})
}

func (h *Handler) PutSummary(c *fiber.Ctx) error {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.WithSummary(req.Summary), nil
	})
}

func (h *Handler) PutTemplate(c *fiber.Ctx) error {
	var req struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.WithTemplate(domain.Template(req.Template)), nil
	})
}

func (h *Handler) GetTheme(c *fiber.Ctx) error {
	rec, ok := h.current()
	if !ok {
		rec = domain.NewResume()
	}
	return c.JSON(rec.ThemeSettings)
}

func (h *Handler) PutTheme(c *fiber.Ctx) error {
	var t domain.ThemeSettings
	if err := c.BodyParser(&t); err != nil {
		return badRequest(c, "invalid payload")
	}
	rec, err := h.builder.SetTheme(c.Context(), t)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rec)
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var added domain.Experience
	rec, err := h.builder.Update(c.Context(), func(r domain.Resume) (domain.Resume, error) {
		next, e := r.AddExperience()
		added = e
		return next, nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": added, "resume": rec})
}

func (h *Handler) PatchExperience(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	field, err := domain.ParseExperienceField(req.Field)
	if err != nil {
		return badRequest(c, err.Error())
	}
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.ApplyExperience(domain.ExperienceUpdate{ID: id, Field: field, Value: req.Value, Current: req.Current})
	})
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.RemoveExperience(id), nil
	})
}

func (h *Handler) AddExperienceAchievement(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.AddExperienceAchievement(id, req.Text)
	})
}

func (h *Handler) RemoveExperienceAchievement(c *fiber.Ctx) error {
	id := c.Params("id")
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "invalid achievement index")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.RemoveExperienceAchievement(id, index)
	})
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var added domain.Education
	rec, err := h.builder.Update(c.Context(), func(r domain.Resume) (domain.Resume, error) {
		next, e := r.AddEducation()
		added = e
		return next, nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": added, "resume": rec})
}

func (h *Handler) PatchEducation(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	field, err := domain.ParseEducationField(req.Field)
	if err != nil {
		return badRequest(c, err.Error())
	}
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.ApplyEducation(domain.EducationUpdate{ID: id, Field: field, Value: req.Value})
	})
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.RemoveEducation(id), nil
	})
}

func (h *Handler) AddEducationAchievement(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id := c.Params("id")
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.AddEducationAchievement(id, req.Text)
	})
}

func (h *Handler) RemoveEducationAchievement(c *fiber.Ctx) error {
	id := c.Params("id")
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "invalid achievement index")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.RemoveEducationAchievement(id, index)
	})
}

func (h *Handler) AddSkills(c *fiber.Ctx) error {
	var req struct {
		Skills string `json:"skills"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.AddSkills(req.Skills), nil
	})
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	var req struct {
		Skill string `json:"skill"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.update(c, func(r domain.Resume) (domain.Resume, error) {
		return r.RemoveSkill(req.Skill), nil
	})
}

// Preview renders the current record with an optional template override
// and returns the fragment with its stylesheet inlined.
func (h *Handler) Preview(c *fiber.Ctx) error {
	rec, ok := h.current()
	if !ok {
		rec = domain.NewResume()
	}
	tpl := rec.SelectedTemplate
	if q := c.Query("template"); q != "" {
		tpl = domain.ParseTemplate(q)
	}
	doc, err := h.engine.Render(rec, tpl)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.SendString(export.Preview(doc))
}

func (h *Handler) Export(c *fiber.Ctx) error {
	var rec *domain.Resume
	if cur, ok := h.current(); ok {
		rec = &cur
	}

	var artifact *usecase.Artifact
	var err error
	switch c.Params("format") {
	case "html":
		artifact, err = h.exporter.ExportHTML(c.Context(), rec)
	case "rtf":
		artifact, err = h.exporter.ExportRTF(c.Context(), rec)
	case "pdf":
		artifact, err = h.exporter.ExportPDF(c.Context(), rec)
	default:
		return badRequest(c, "unknown export format")
	}
	if err != nil {
		if errors.Is(err, export.ErrNoResume) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+artifact.FileName+`"`)
	return c.Send(artifact.Data)
}

func (h *Handler) RecentExports(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	records, err := h.history.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"exports": records})
}

type suggestReq struct {
	Type    string          `json:"type"`
	Context suggest.Context `json:"context"`
}

func (h *Handler) Suggest(c *fiber.Ctx) error {
	var req suggestReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	kind, err := suggest.ParseKind(req.Type)
	if err != nil {
		return badRequest(c, err.Error())
	}
	content, err := h.suggester.Generate(c.Context(), kind, req.Context)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"content": content})
}
