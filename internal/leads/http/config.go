package http

import (
	"net/http"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
)

// ConfigHandler godoc
//
//	@Summary		Public configuration
//	@Description	Read-only snapshot taken at startup: token parameters, form limits and backend info. Never includes secrets.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	leadsdk.ConfigResponse
//	@Router			/api/config [get].
func ConfigHandler(cfg domain.PublicConfig) http.HandlerFunc {
	types := make([]string, 0, len(cfg.ConsortiumTypes))
	for _, t := range cfg.ConsortiumTypes {
		types = append(types, string(t))
	}

	response := leadsdk.ConfigResponse{
		Service:           cfg.Service,
		Version:           cfg.Version,
		Env:               cfg.Env,
		Issuer:            cfg.Issuer,
		SigningAlg:        cfg.SigningAlg,
		KeyID:             cfg.KeyID,
		TokenTTLSeconds:   int(cfg.TokenTTL.Seconds()),
		RevocationEnabled: cfg.RevocationEnabled,
		OTPRequired:       cfg.OTPRequired,
		DatabaseDriver:    cfg.DatabaseDriver,
		AdminFeeBps:       cfg.AdminFeeBps,
		ConsortiumTypes:   types,
		MinTermMonths:     cfg.MinTermMonths,
		MaxTermMonths:     cfg.MaxTermMonths,
		StartedAt:         cfg.StartedAt,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
