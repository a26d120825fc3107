package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"workright/internal/eligibility"
	dErrors "workright/pkg/domain-errors"
	"workright/pkg/platform/httputil"
	"workright/pkg/requestcontext"
)

// Handler serves the eligibility filter contract consumed by the external
// listing service.
type Handler struct {
	logger *slog.Logger
}

// New constructs an eligibility handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/eligibility/filter", h.HandleFilter)
}

// FilterResponse is the HTTP response for GET /eligibility/filter.
type FilterResponse struct {
	Filter          eligibility.Filter `json:"filter"`
	NextUnlockAge   *int               `json:"next_unlock_age"`
	UnlockMessage   string             `json:"unlock_message,omitempty"`
	PreparationTips []string           `json:"preparation_tips"`
}

// HandleFilter handles GET /eligibility/filter requests.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	workerAge, err := strconv.Atoi(r.URL.Query().Get("age"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "age query parameter is required and must be an integer"))
		return
	}
	forNext := r.URL.Query().Get("next") == "true"

	filter, err := eligibility.BuildFilter(workerAge, forNext)
	if err != nil {
		h.logger.WarnContext(ctx, "filter build rejected",
			"request_id", requestID,
			"age", workerAge,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := &FilterResponse{
		Filter:          filter,
		NextUnlockAge:   eligibility.NextAgeUnlock(workerAge),
		PreparationTips: eligibility.PreparationTips(workerAge),
	}
	if resp.NextUnlockAge != nil {
		resp.UnlockMessage = eligibility.UnlockMessage(*resp.NextUnlockAge, workerAge)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
