package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

// writeError maps a service error onto a status code and error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := leadsdk.NewAPIError(http.StatusBadRequest, leadsdk.ErrorCodeInvalidRequest)
		apiErr.Details = verr.Fields
		apiErr.WriteError(w)

	case errors.Is(err, httpx.ErrInvalidBody):
		apiErr := leadsdk.NewAPIError(http.StatusBadRequest, leadsdk.ErrorCodeInvalidRequest)
		apiErr.Details = map[string]string{"body": err.Error()}
		apiErr.WriteError(w)

	case errors.Is(err, domain.ErrNotFound):
		leadsdk.ErrNotFound.WriteError(w)

	case errors.Is(err, domain.ErrStoreFailure):
		log.Error("store failure", "err", err)
		leadsdk.ErrStoreFailure.WriteError(w)

	default:
		if kind, ok := domain.KindOf(err); ok && kind != domain.KindConfiguration {
			leadsdk.NewAPIError(http.StatusUnauthorized, string(kind)).WriteError(w)
			return
		}
		log.Error("unhandled error", "err", err)
		leadsdk.ErrServerError.WriteError(w)
	}
}

// writeAuthError renders a request rejected by the bearer token gate.
func (r *Router) writeAuthError(w http.ResponseWriter, req *http.Request, err error) {
	kind := domain.KindMissing
	if !errors.Is(err, httpx.ErrMissingToken) {
		k, ok := domain.KindOf(err)
		if !ok {
			writeError(w, req, err)
			return
		}
		kind = k
	} else {
		r.metrics.ObserveTokenRejection(string(domain.KindMissing))
	}

	httpx.SetBearerChallenge(w, "invalid_token", string(kind))
	leadsdk.NewAPIError(http.StatusUnauthorized, string(kind)).WriteError(w)
}

func invalidRequest(w http.ResponseWriter, details map[string]string) {
	apiErr := leadsdk.NewAPIError(http.StatusBadRequest, leadsdk.ErrorCodeInvalidRequest)
	apiErr.Details = details
	apiErr.WriteError(w)
}
