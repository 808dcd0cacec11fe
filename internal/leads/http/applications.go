package http

import (
	"net/http"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
)

// ApplicationsHandler handles the careers form endpoints.
type ApplicationsHandler struct {
	LeadService *service.LeadService
}

// HandleCreate handles POST /api/applications
//
//	@Summary		Submit a job application
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.ApplicationRequest	true	"Application form"
//	@Success		201		{object}	leadsdk.Application			"Stored application"
//	@Failure		400		{object}	leadsdk.ErrorResponse		"InvalidRequest with per-field details"
//	@Failure		429		{object}	leadsdk.ErrorResponse		"rate_limit_exceeded"
//	@Failure		500		{object}	leadsdk.ErrorResponse		"StoreFailure"
//	@Router			/api/applications [post].
func (h *ApplicationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leadsdk.ApplicationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	app, err := h.LeadService.SubmitApplication(r.Context(), service.ApplicationInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		ResumeURL: req.ResumeURL,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toApplication(app))
}

// HandleList handles GET /api/applications
//
//	@Summary		List job applications
//	@Description	Newest first. limit defaults to 50 and is capped at 200.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size"
//	@Param			offset	query		int						false	"Rows to skip"
//	@Success		200		{object}	leadsdk.ApplicationList	"items, total, limit, offset"
//	@Failure		400		{object}	leadsdk.ErrorResponse	"InvalidRequest"
//	@Failure		401		{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Failure		500		{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/applications [get].
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.LeadService.ListApplications(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]leadsdk.Application, 0, len(list.Items))
	for _, app := range list.Items {
		items = append(items, toApplication(app))
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.ApplicationList{
		Items:  items,
		Total:  list.Total,
		Limit:  list.Page.Limit,
		Offset: list.Page.Offset,
	})
}

// HandleGet handles GET /api/applications/{id}
//
//	@Summary		Get a job application
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"
//	@Success		200	{object}	leadsdk.Application		"Application"
//	@Failure		401	{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Failure		404	{object}	leadsdk.ErrorResponse	"NotFound"
//	@Failure		500	{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/applications/{id} [get].
func (h *ApplicationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	app, err := h.LeadService.GetApplication(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toApplication(app))
}

func toApplication(a domain.JobApplication) leadsdk.Application {
	return leadsdk.Application{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Position:  a.Position,
		ResumeURL: a.ResumeURL,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}
