package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/api/middleware"
	"resumebuilder/internal/resume"
)

var errInvalidID = errors.New("invalid id")

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string)      { Error(c, http.StatusBadRequest, msg) }
func NotFound(c *gin.Context, msg string)        { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)        { Error(c, http.StatusConflict, msg) }
func Unprocessable(c *gin.Context, msg string)   { Error(c, http.StatusUnprocessableEntity, msg) }
func TooManyRequests(c *gin.Context, msg string) { Error(c, http.StatusTooManyRequests, msg) }
func Internal(c *gin.Context, msg string)        { Error(c, http.StatusInternalServerError, msg) }

// respondError 把领域错误映射为 HTTP 状态码；未知错误记录日志后返回 500。
func respondError(c *gin.Context, err error, action string) {
	switch {
	case resume.IsValidationError(err):
		BadRequest(c, err.Error())
	case errors.Is(err, resume.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, resume.ErrForeignKeyViolation):
		Unprocessable(c, err.Error())
	case errors.Is(err, resume.ErrDuplicateEmail):
		Conflict(c, err.Error())
	default:
		middleware.LoggerFromContext(c).Error(action+" failed", slog.Any("error", err))
		Internal(c, "failed to "+action)
	}
}

// pathID 解析 :id 路径参数，非法时直接写回 400。
func pathID(c *gin.Context) (uint, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return 0, false
	}
	return id, true
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
