package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/pkg/idx"
	"github.com/aussiebroadwan/leads/pkg/metricsx"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

const (
	maxNameLen    = 200
	maxPhoneLen   = 40
	maxURLLen     = 2048
	maxMessageLen = 5000
)

// DefaultAdminFeeBps is the consortium admin fee used when none is configured.
const DefaultAdminFeeBps = 1500

// SimulationInput is a consortium quote request as submitted by the public form.
type SimulationInput struct {
	Name              string
	Email             string
	Phone             string
	ConsortiumType    string
	CreditAmountCents int64
	TermMonths        int
}

// ApplicationInput is a job application as submitted by the careers form.
type ApplicationInput struct {
	Name      string
	Email     string
	Phone     string
	Position  string
	ResumeURL string
	Message   string
}

// LeadService accepts public submissions and serves them back to the admin.
type LeadService struct {
	Store       store.Store
	Metrics     *metricsx.Metrics
	AdminFeeBps int
	Now         func() time.Time
}

func (s *LeadService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// SubmitSimulation validates in, prices the installment and stores it.
func (s *LeadService) SubmitSimulation(ctx context.Context, in SimulationInput) (domain.Simulation, error) {
	var v domain.ValidationError
	name := checkText(&v, "name", in.Name, true, maxNameLen)
	email := checkEmail(&v, in.Email)
	phone := checkText(&v, "phone", in.Phone, false, maxPhoneLen)

	kind := domain.ConsortiumType(strings.TrimSpace(in.ConsortiumType))
	if !kind.Valid() {
		v.Add("consortium_type", "must be one of real_estate, vehicle, motorcycle, services")
	}
	switch {
	case in.CreditAmountCents <= 0:
		v.Add("credit_amount_cents", "must be greater than zero")
	case in.CreditAmountCents > domain.MaxCreditAmountCents:
		v.Add("credit_amount_cents", fmt.Sprintf("must be at most %d", domain.MaxCreditAmountCents))
	}
	if in.TermMonths < domain.MinTermMonths || in.TermMonths > domain.MaxTermMonths {
		v.Add("term_months", fmt.Sprintf("must be between %d and %d", domain.MinTermMonths, domain.MaxTermMonths))
	}
	if err := v.Err(); err != nil {
		return domain.Simulation{}, err
	}

	now := s.now()
	sim := domain.Simulation{
		ID:                idx.NewAt(now).String(),
		Name:              name,
		Email:             email,
		Phone:             phone,
		ConsortiumType:    kind,
		CreditAmountCents: in.CreditAmountCents,
		TermMonths:        in.TermMonths,
		AdminFeeBps:       s.AdminFeeBps,
		InstallmentCents:  domain.InstallmentCents(in.CreditAmountCents, s.AdminFeeBps, in.TermMonths),
		CreatedAt:         now,
	}

	if err := s.Store.Simulations().CreateSimulation(ctx, sim); err != nil {
		return domain.Simulation{}, fmt.Errorf("%w: create simulation: %w", domain.ErrStoreFailure, err)
	}

	s.Metrics.ObserveSubmission("simulation")
	slogx.FromContext(ctx).Info("simulation received",
		slog.String("id", sim.ID),
		slog.String("consortium_type", string(sim.ConsortiumType)),
	)
	return sim, nil
}

// SubmitApplication validates in and stores it.
func (s *LeadService) SubmitApplication(ctx context.Context, in ApplicationInput) (domain.JobApplication, error) {
	var v domain.ValidationError
	name := checkText(&v, "name", in.Name, true, maxNameLen)
	email := checkEmail(&v, in.Email)
	phone := checkText(&v, "phone", in.Phone, false, maxPhoneLen)
	position := checkText(&v, "position", in.Position, true, maxNameLen)
	message := checkText(&v, "message", in.Message, false, maxMessageLen)
	resume := checkURL(&v, "resume_url", in.ResumeURL)
	if err := v.Err(); err != nil {
		return domain.JobApplication{}, err
	}

	now := s.now()
	app := domain.JobApplication{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Position:  position,
		ResumeURL: resume,
		Message:   message,
		CreatedAt: now,
	}

	if err := s.Store.Applications().CreateApplication(ctx, app); err != nil {
		return domain.JobApplication{}, fmt.Errorf("%w: create application: %w", domain.ErrStoreFailure, err)
	}

	s.Metrics.ObserveSubmission("application")
	slogx.FromContext(ctx).Info("job application received", slog.String("id", app.ID))
	return app, nil
}

func (s *LeadService) ListSimulations(ctx context.Context, page domain.Page) (domain.List[domain.Simulation], error) {
	page = page.Normalize()

	items, err := s.Store.Simulations().ListSimulations(ctx, page)
	if err != nil {
		return domain.List[domain.Simulation]{}, fmt.Errorf("%w: list simulations: %w", domain.ErrStoreFailure, err)
	}
	total, err := s.Store.Simulations().CountSimulations(ctx)
	if err != nil {
		return domain.List[domain.Simulation]{}, fmt.Errorf("%w: count simulations: %w", domain.ErrStoreFailure, err)
	}
	return domain.List[domain.Simulation]{Items: items, Total: total, Page: page}, nil
}

// GetSimulation looks a simulation up by id. Ids that are not ULIDs are
// reported as not found without touching the store.
func (s *LeadService) GetSimulation(ctx context.Context, id string) (domain.Simulation, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return domain.Simulation{}, domain.ErrNotFound
	}

	sim, err := s.Store.Simulations().GetSimulationByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Simulation{}, domain.ErrNotFound
		}
		return domain.Simulation{}, fmt.Errorf("%w: get simulation: %w", domain.ErrStoreFailure, err)
	}
	return sim, nil
}

func (s *LeadService) ListApplications(ctx context.Context, page domain.Page) (domain.List[domain.JobApplication], error) {
	page = page.Normalize()

	items, err := s.Store.Applications().ListApplications(ctx, page)
	if err != nil {
		return domain.List[domain.JobApplication]{}, fmt.Errorf("%w: list applications: %w", domain.ErrStoreFailure, err)
	}
	total, err := s.Store.Applications().CountApplications(ctx)
	if err != nil {
		return domain.List[domain.JobApplication]{}, fmt.Errorf("%w: count applications: %w", domain.ErrStoreFailure, err)
	}
	return domain.List[domain.JobApplication]{Items: items, Total: total, Page: page}, nil
}

func (s *LeadService) GetApplication(ctx context.Context, id string) (domain.JobApplication, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return domain.JobApplication{}, domain.ErrNotFound
	}

	app, err := s.Store.Applications().GetApplicationByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.JobApplication{}, domain.ErrNotFound
		}
		return domain.JobApplication{}, fmt.Errorf("%w: get application: %w", domain.ErrStoreFailure, err)
	}
	return app, nil
}

func checkText(v *domain.ValidationError, field, s string, required bool, maxLen int) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "" && required:
		v.Add(field, "is required")
	case utf8.RuneCountInString(s) > maxLen:
		v.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return s
}

func checkEmail(v *domain.ValidationError, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		v.Add("email", "is required")
		return s
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || len(s) > 254 {
		v.Add("email", "is not a valid address")
	}
	return s
}

func checkURL(v *domain.ValidationError, field, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || len(s) > maxURLLen {
		v.Add(field, "must be an absolute http(s) URL")
	}
	return s
}
