package handler

import (
	"net/http"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string           `json:"error"`
	Kind   apperror.Kind    `json:"kind"`
	Issues []apperror.Issue `json:"issues,omitempty"`
}

func genericMessage(kind apperror.Kind) string {
	switch kind {
	case apperror.KindUpstreamRejected:
		return "Upstream rejected the request"
	case apperror.KindUpstreamFailure:
		return "Upstream request failed"
	default:
		return "Internal server error"
	}
}

// writeError maps err onto its status and writes the error body.
// Internal detail is logged and never returned.
func writeError(c *gin.Context, log logger.Logger, err error) {
	appErr := apperror.As(err)
	status := appErr.Status()

	resp := ErrorResponse{Kind: appErr.Kind}
	if appErr.Public() {
		resp.Error = appErr.Message
		resp.Issues = appErr.Issues
	} else {
		resp.Error = genericMessage(appErr.Kind)
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"kind", appErr.Kind,
			"error", appErr)
	} else {
		log.Debug("Request rejected",
			"route", c.FullPath(),
			"kind", appErr.Kind,
			"error", appErr)
	}

	_ = c.Error(appErr)
	c.AbortWithStatusJSON(status, resp)
}

// writeUpstream passes an upstream body through unchanged
func writeUpstream(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json", body)
}
