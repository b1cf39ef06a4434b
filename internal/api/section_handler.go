package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/resume"
)

// SectionHandler 处理简历的三类有序子记录：工作经历、教育经历、技能。
type SectionHandler struct {
	svc resume.Service
}

func NewSectionHandler(svc resume.Service) *SectionHandler {
	return &SectionHandler{svc: svc}
}

func (h *SectionHandler) CreateWorkExperience(c *gin.Context) {
	var in resume.CreateWorkExperienceInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := h.svc.CreateWorkExperience(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create work experience")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *SectionHandler) UpdateWorkExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in resume.UpdateWorkExperienceInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	item, err := h.svc.UpdateWorkExperience(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "update work experience")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *SectionHandler) DeleteWorkExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteWorkExperience(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "delete work experience")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *SectionHandler) ListWorkExperiences(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListWorkExperiences(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list work experiences")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SectionHandler) CreateEducation(c *gin.Context) {
	var in resume.CreateEducationInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := h.svc.CreateEducation(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create education")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *SectionHandler) UpdateEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in resume.UpdateEducationInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	item, err := h.svc.UpdateEducation(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "update education")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *SectionHandler) DeleteEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteEducation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "delete education")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *SectionHandler) ListEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListEducation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list education")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SectionHandler) CreateSkill(c *gin.Context) {
	var in resume.CreateSkillInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := h.svc.CreateSkill(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create skill")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *SectionHandler) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in resume.UpdateSkillInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	item, err := h.svc.UpdateSkill(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "update skill")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *SectionHandler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteSkill(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "delete skill")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *SectionHandler) ListSkills(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListSkills(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list skills")
		return
	}
	c.JSON(http.StatusOK, items)
}
