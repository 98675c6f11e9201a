package menu

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-resto/internal/common"
)

// Handler exposes menu management endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type itemPayload struct {
	Kind        string   `json:"kind" validate:"required,oneof=food beverage package"`
	Name        string   `json:"name" validate:"required,min=1,max=120"`
	BasePrice   int64    `json:"basePrice" validate:"gte=0"`
	Description string   `json:"description" validate:"max=500"`
	Size        string   `json:"size" validate:"omitempty,oneof=small regular large"`
	Ingredients []string `json:"ingredients"`
	Includes    []string `json:"includes"`
	Available   *bool    `json:"available"`
}

func (p itemPayload) toItem() Item {
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	return Item{
		Kind:        ItemKind(strings.ToLower(p.Kind)),
		Name:        p.Name,
		BasePrice:   p.BasePrice,
		Description: p.Description,
		Size:        p.Size,
		Ingredients: p.Ingredients,
		Includes:    p.Includes,
		Available:   available,
	}
}

// Routes mounts the menu endpoints on the provided router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns menu items, optionally filtered by ?kind=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	kind := ItemKind(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind"))))
	items, err := h.Svc.List(r.Context(), kind)
	if err != nil {
		h.renderError(w, err)
		return
	}
	if items == nil {
		items = []Item{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": items})
}

// Get returns one menu item by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid item id", nil)
		return
	}
	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": item})
}

// Create inserts a new menu item.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	item, err := h.Svc.Create(r.Context(), payload.toItem())
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": item})
}

// Update mutates an existing menu item.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid item id", nil)
		return
	}
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	item := payload.toItem()
	item.ID = id
	updated, err := h.Svc.Update(r.Context(), item)
	if err != nil {
		h.renderError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": updated})
}

// Delete removes a menu item.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid item id", nil)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (itemPayload, bool) {
	var payload itemPayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, "invalid payload", nil)
		return itemPayload{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, err.Error(), nil)
			return itemPayload{}, false
		}
	}
	return payload, true
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, common.CodeNotFound, "menu item not found", nil)
	case errors.Is(err, ErrDuplicateName):
		common.JSONError(w, http.StatusConflict, common.CodeConflict, "menu item name already exists", nil)
	case errors.Is(err, ErrInvalidInput):
		common.JSONError(w, http.StatusBadRequest, common.CodeBadRequest, err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "menu operation failed", nil)
	}
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(chi.URLParam(r, "id")))
}
