package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/resume"
)

type UserHandler struct {
	svc resume.Service
}

func NewUserHandler(svc resume.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Create(c *gin.Context) {
	var in resume.CreateUserInput
	if !bindJSON(c, &in) {
		return
	}
	user, err := h.svc.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update 只修改请求体中出现的字段；显式 null 清空可空列。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in resume.UpdateUserInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	user, err := h.svc.UpdateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListResumes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resumes, err := h.svc.ListUserResumes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list resumes")
		return
	}
	c.JSON(http.StatusOK, resumes)
}
