package httpx

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/tenant"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/logger"
)

// RoundFunc sends a single prepared request and returns its response
type RoundFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

// Middleware wraps a RoundFunc with cross-cutting behavior
type Middleware func(RoundFunc) RoundFunc

// Chain composes middlewares around a base RoundFunc. The first middleware
// in the list is the outermost.
func Chain(base RoundFunc, mws ...Middleware) RoundFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// InjectIdentity attaches the identity envelope to every outgoing request:
// a bearer token when one is stored, the active tenant id, and the user id
// derived from the stored identity blob (placeholder when absent). The
// snapshot is taken at dispatch time, never cached, so a tenant switch or
// re-authentication applies to the very next call. Injection never fails.
func InjectIdentity(store session.Store, tenants *tenant.Context) Middleware {
	return func(next RoundFunc) RoundFunc {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			id := session.Snapshot(ctx, store)
			if id.AuthToken != "" {
				req.Header.Set("Authorization", "Bearer "+id.AuthToken)
			}
			req.Header.Set("X-Tenant-ID", tenants.Current(ctx).ID)
			req.Header.Set("X-User-ID", id.UserID)
			return next(ctx, req)
		}
	}
}

// maxErrorBody bounds how much of an error response is read for classification
const maxErrorBody = 64 * 1024

// NormalizeErrors translates transport failures and non-2xx responses into a
// classified *Error and raises exactly one toast per failed call. The error
// is still returned to the caller so view-level state stays accurate.
func NormalizeErrors(notifier toast.Notifier) Middleware {
	return func(next RoundFunc) RoundFunc {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			resp, err := next(ctx, req)
			if err != nil {
				apiErr := &Error{
					Kind:    KindNetworkUnavailable,
					Message: MsgNetworkUnavailable,
					Err:     err,
				}
				notifier.Error(apiErr.Message)
				logger.WarnCtx(ctx, "backend unreachable",
					zap.String("url", req.URL.String()),
					zap.Error(err),
				)
				return nil, apiErr
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()

			apiErr := classifyStatus(resp.StatusCode, body)
			notifier.Error(apiErr.Message)
			logger.WarnCtx(ctx, "backend call failed",
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode),
				zap.String("kind", string(apiErr.Kind)),
			)
			return nil, apiErr
		}
	}
}
