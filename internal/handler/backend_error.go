package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// writeBackendError renders a failed backend call through the response
// envelope. The classification already happened in the outbound layer; this
// only picks the matching envelope code and status.
func writeBackendError(c *gin.Context, err error) {
	var apiErr *httpx.Error
	if !errors.As(err, &apiErr) {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	switch apiErr.Kind {
	case httpx.KindNetworkUnavailable:
		c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable(apiErr.Message))
	case httpx.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, response.Unauthorized(apiErr.Message))
	case httpx.KindForbidden:
		c.JSON(http.StatusForbidden, response.Forbidden(apiErr.Message))
	case httpx.KindRateLimited:
		c.JSON(http.StatusTooManyRequests, response.Error(response.ErrCodeTooManyRequests, apiErr.Message))
	default:
		c.JSON(http.StatusBadGateway, response.UpstreamError(apiErr.Message))
	}
}
