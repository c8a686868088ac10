package filings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
	"github.com/filingforge/filingforge/internal/platform/httpx"
)

// Enqueuer submits background generation jobs.
type Enqueuer interface {
	EnqueueGenerateFiling(ctx context.Context, id uuid.UUID) error
}

// Handler wires the filings HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	enqueue   Enqueuer
	validator *validator.Validate
}

// NewHandler constructs a Handler. enqueue may be nil when no worker is
// deployed; the async endpoint then responds 503.
func NewHandler(logger *slog.Logger, service *Service, enqueue Enqueuer) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		enqueue:   enqueue,
		validator: validator.New(),
	}
}

// MountRoutes attaches filing routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Post("/{id}/validate", h.validate)
	r.Post("/{id}/generate", h.generate)
	r.Post("/{id}/enqueue", h.enqueueGenerate)
	r.Get("/{id}/preview", h.preview)
	r.Get("/{id}/artifact", h.artifact)
}

// draftPayload is the caller-assembled filing material. Structural
// field checks happen here; accounting rules are the orchestrator's
// business.
type draftPayload struct {
	CompanyName        string    `json:"company_name" validate:"required"`
	RegistrationNumber string    `json:"registration_number" validate:"required,len=8"`
	PeriodStart        time.Time `json:"period_start" validate:"required"`
	PeriodEnd          time.Time `json:"period_end" validate:"required"`
	BalanceSheetDate   time.Time `json:"balance_sheet_date" validate:"required"`
	Currency           string    `json:"currency" validate:"required,len=3"`

	CurrentMetrics  sizing.Metrics  `json:"current_metrics" validate:"required"`
	PreviousMetrics *sizing.Metrics `json:"previous_metrics,omitempty"`

	BalanceSheet      accounts.BalanceSheetRecord     `json:"balance_sheet"`
	PriorBalanceSheet *accounts.BalanceSheetRecord    `json:"prior_balance_sheet,omitempty"`
	ProfitLoss        accounts.ProfitLossRecord       `json:"profit_loss"`
	PriorProfitLoss   *accounts.ProfitLossRecord      `json:"prior_profit_loss,omitempty"`
	CashFlow          *accounts.CashFlowRecord        `json:"cash_flow,omitempty"`
	PriorCashFlow     *accounts.CashFlowRecord        `json:"prior_cash_flow,omitempty"`
	Directors         accounts.DirectorsReportRecord  `json:"directors"`
	Strategic         *accounts.StrategicReportRecord `json:"strategic,omitempty"`
	Notes             accounts.NotesRecord            `json:"notes"`
}

func (p draftPayload) toInput() DraftInput {
	return DraftInput{
		Package: accounts.FilingPackage{
			Context: accounts.FilingContext{
				CompanyName:        p.CompanyName,
				RegistrationNumber: p.RegistrationNumber,
				PeriodStart:        p.PeriodStart,
				PeriodEnd:          p.PeriodEnd,
				BalanceSheetDate:   p.BalanceSheetDate,
				Currency:           p.Currency,
			},
			BalanceSheet:      p.BalanceSheet,
			PriorBalanceSheet: p.PriorBalanceSheet,
			ProfitLoss:        p.ProfitLoss,
			PriorProfitLoss:   p.PriorProfitLoss,
			CashFlow:          p.CashFlow,
			PriorCashFlow:     p.PriorCashFlow,
			Directors:         p.Directors,
			Strategic:         p.Strategic,
			Notes:             p.Notes,
		},
		CurrentMetrics:  p.CurrentMetrics,
		PreviousMetrics: p.PreviousMetrics,
	}
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (draftPayload, bool) {
	var payload draftPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "request body is not valid JSON")
		return draftPayload{}, false
	}
	if err := h.validator.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, verrs[0]))
			return draftPayload{}, false
		}
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return draftPayload{}, false
	}
	return payload, true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	created, err := h.service.CreateDraft(r.Context(), payload.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	updated, err := h.service.UpdateDraft(r.Context(), id, payload.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	items, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"filings": items})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	verrs, err := h.service.Validate(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"valid":  len(verrs) == 0,
		"errors": verrs,
	})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	artifact, verrs, err := h.service.Generate(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if len(verrs) > 0 {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"valid":  false,
			"errors": verrs,
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"artifact_name": artifact.Filename,
		"size_bytes":    len(artifact.Data),
	})
}

func (h *Handler) enqueueGenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if h.enqueue == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "No Worker", "background generation is not configured")
		return
	}
	if err := h.enqueue.EnqueueGenerateFiling(r.Context(), id); err != nil {
		h.logger.Error("enqueue generate", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Enqueue Failed", "")
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]any{"filing_id": id, "status": "queued"})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	preview, err := h.service.Preview(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(preview))
}

func (h *Handler) artifact(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	name, data, err := h.service.Artifact(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "filing id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoArtifact) {
		httpx.Problem(w, http.StatusConflict, "No Artifact", err.Error())
		return
	}
	if !errors.Is(err, httpx.ErrNotFound) && !errors.Is(err, httpx.ErrDuplicate) {
		h.logger.Error("filings handler", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
