package order

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-resto/internal/common"
	"github.com/noah-isme/backend-resto/internal/menu"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// Handler exposes the quote endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type quotePayload struct {
	ItemID         string            `json:"item_id" validate:"required,uuid"`
	Customizations []pricing.Request `json:"customizations"`
	Strategy       string            `json:"strategy"`
	MemberTier     string            `json:"member_tier" validate:"max=40"`
	IsBirthday     bool              `json:"is_birthday"`
	// AsOf is an optional RFC3339 pricing instant; omitted means now.
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (p quotePayload) toInput() (QuoteInput, error) {
	id, err := uuid.Parse(p.ItemID)
	if err != nil {
		return QuoteInput{}, err
	}
	in := QuoteInput{
		ItemID:         id,
		Customizations: p.Customizations,
		Strategy:       p.Strategy,
		MemberTier:     p.MemberTier,
		IsBirthday:     p.IsBirthday,
	}
	if p.AsOf != "" {
		asOf, err := time.Parse(time.RFC3339, p.AsOf)
		if err != nil {
			return QuoteInput{}, err
		}
		in.AsOf = asOf
	}
	return in, nil
}

// Routes mounts the quote endpoints on the provided router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.Quote)
	r.Post("/best", h.BestQuote)
}

// Quote prices an item under one named discount strategy.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}
	quote, err := h.Svc.Quote(r.Context(), in)
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": quote})
}

// BestQuote prices an item under every registered strategy and returns the
// one with the largest discount.
func (h *Handler) BestQuote(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}
	quote, err := h.Svc.BestQuote(r.Context(), in)
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": quote})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (QuoteInput, bool) {
	var payload quotePayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid payload", nil)
		return QuoteInput{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, err.Error(), nil)
			return QuoteInput{}, false
		}
	}
	in, err := payload.toInput()
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid payload", nil)
		return QuoteInput{}, false
	}
	return in, true
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, menu.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, common.CodeNotFound, "menu item not found", nil)
	case errors.Is(err, ErrItemUnavailable):
		common.JSONError(w, http.StatusConflict, common.CodeConflict, err.Error(), nil)
	case errors.Is(err, pricing.ErrUnknownStrategy):
		common.JSONError(w, http.StatusBadRequest, common.CodeUnknownStrategy, err.Error(), nil)
	case errors.Is(err, pricing.ErrInvalidAmount):
		common.JSONError(w, http.StatusBadRequest, common.CodeInvalidAmount, "amount must be non-negative", nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "quote failed", nil)
	}
}
