package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/session"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// currentSession returns the request's session or writes a 500 when the
// session middleware is not mounted.
func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "session not resolved"))
		return nil, false
	}
	return sess, true
}

func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Validationf("invalid %s %q", name, raw))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return false
	}
	return true
}

// respond writes data with whatever metadata middleware and handlers collected.
func respond(c *gin.Context, status int, data interface{}) {
	response.JSON(c, status, data, middleware.ExtractMeta(c))
}
