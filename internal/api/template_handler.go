package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/resume"
)

type TemplateHandler struct {
	svc resume.Service
}

func NewTemplateHandler(svc resume.Service) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var in resume.CreateTemplateInput
	if !bindJSON(c, &in) {
		return
	}
	tpl, err := h.svc.CreateTemplate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create template")
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// ListActive 只返回启用中的模板，按 id 升序。
func (h *TemplateHandler) ListActive(c *gin.Context) {
	templates, err := h.svc.ListActiveTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err, "list templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}
