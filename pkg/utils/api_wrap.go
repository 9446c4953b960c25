package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates pipeline errors into HTTP responses. Fatal
// upstream classifications each get a distinct, actionable message; anything
// unrecognized is a plain 500.
func HandleServiceError(c *gin.Context, err error) {
	logger := LoggerFromContext(c.Request.Context())

	var invalid *InvalidRequestError
	if errors.As(err, &invalid) {
		RespondError(c, http.StatusBadRequest, invalid.Error())
		return
	}

	if errors.Is(err, ErrMissingConfig) {
		RespondError(c, http.StatusServiceUnavailable,
			"Travel planning is not configured on this server. Set the completion API key.")
		return
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		logger.Error("upstream completion failure",
			"kind", upstream.Kind.String(),
			"status", upstream.Status)

		switch upstream.Kind {
		case UpstreamCredential:
			RespondError(c, http.StatusBadGateway,
				"The AI provider rejected the configured API key. Check that it is valid and not expired.")
		case UpstreamAccessDenied:
			RespondError(c, http.StatusBadGateway,
				"The AI provider denied access. Check the account balance, model permissions and account standing.")
		case UpstreamRateLimited:
			RespondError(c, http.StatusServiceUnavailable,
				"The AI provider is rate limiting requests. Try again in a moment.")
		case UpstreamBadRequest:
			RespondError(c, http.StatusBadGateway,
				"The AI provider rejected the request: "+upstream.Message)
		case UpstreamNotFound:
			RespondError(c, http.StatusBadGateway,
				"The configured model or endpoint was not found. Check the model name and base URL.")
		case UpstreamTimeout:
			RespondError(c, http.StatusGatewayTimeout,
				"The AI provider did not respond in time. Try again later.")
		default:
			RespondError(c, http.StatusBadGateway,
				"Failed to generate a travel plan: "+upstream.Message)
		}
		return
	}

	logger.Error("unhandled service error", "error", err)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
