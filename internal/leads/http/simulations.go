package http

import (
	"net/http"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
)

// SimulationsHandler handles the consortium simulation endpoints.
type SimulationsHandler struct {
	LeadService *service.LeadService
}

// HandleCreate handles POST /api/simulations
//
//	@Summary		Submit a consortium simulation
//	@Description	Public form. Prices the monthly installment with the configured admin fee and stores the lead.
//	@Tags			Simulations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.SimulationRequest	true	"Simulation form"
//	@Success		201		{object}	leadsdk.Simulation			"Stored simulation"
//	@Failure		400		{object}	leadsdk.ErrorResponse		"InvalidRequest with per-field details"
//	@Failure		429		{object}	leadsdk.ErrorResponse		"rate_limit_exceeded"
//	@Failure		500		{object}	leadsdk.ErrorResponse		"StoreFailure"
//	@Router			/api/simulations [post].
func (h *SimulationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leadsdk.SimulationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sim, err := h.LeadService.SubmitSimulation(r.Context(), service.SimulationInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		ConsortiumType:    req.ConsortiumType,
		CreditAmountCents: req.CreditAmountCents,
		TermMonths:        req.TermMonths,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSimulation(sim))
}

// HandleList handles GET /api/simulations
//
//	@Summary		List simulations
//	@Description	Newest first. limit defaults to 50 and is capped at 200.
//	@Tags			Simulations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size"
//	@Param			offset	query		int						false	"Rows to skip"
//	@Success		200		{object}	leadsdk.SimulationList	"items, total, limit, offset"
//	@Failure		400		{object}	leadsdk.ErrorResponse	"InvalidRequest"
//	@Failure		401		{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Failure		500		{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/simulations [get].
func (h *SimulationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.LeadService.ListSimulations(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]leadsdk.Simulation, 0, len(list.Items))
	for _, sim := range list.Items {
		items = append(items, toSimulation(sim))
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.SimulationList{
		Items:  items,
		Total:  list.Total,
		Limit:  list.Page.Limit,
		Offset: list.Page.Offset,
	})
}

// HandleGet handles GET /api/simulations/{id}
//
//	@Summary		Get a simulation
//	@Tags			Simulations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Simulation ID"
//	@Success		200	{object}	leadsdk.Simulation		"Simulation"
//	@Failure		401	{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Failure		404	{object}	leadsdk.ErrorResponse	"NotFound"
//	@Failure		500	{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/simulations/{id} [get].
func (h *SimulationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sim, err := h.LeadService.GetSimulation(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSimulation(sim))
}

func toSimulation(s domain.Simulation) leadsdk.Simulation {
	return leadsdk.Simulation{
		ID:                s.ID,
		Name:              s.Name,
		Email:             s.Email,
		Phone:             s.Phone,
		ConsortiumType:    string(s.ConsortiumType),
		CreditAmountCents: s.CreditAmountCents,
		TermMonths:        s.TermMonths,
		AdminFeeBps:       s.AdminFeeBps,
		InstallmentCents:  s.InstallmentCents,
		CreatedAt:         s.CreatedAt,
	}
}
