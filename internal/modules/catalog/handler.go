package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/items", h.listItems)
		r.Post("/items", h.createItem)
		r.Get("/items/{id}", h.getItem)
		r.Patch("/items/{id}", h.updateItem)
		r.Delete("/items/{id}", h.deleteItem)
	})
}

// envelope is the uniform response body: {success, data} or {success, message}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
		return
	}
	item, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, item)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
		return
	}
	item, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, envelope{Success: true})
}

func respondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, envelope{Success: true, Data: data})
}

// respondError maps the typed errors from the service and storage layers onto
// HTTP statuses: bad input is the client's fault, a missing row is 404,
// everything else is a server error.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var vErr *ValidationError
	var cErr *ConstraintError
	switch {
	case errors.As(err, &vErr), errors.As(err, &cErr):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	}
	respond(w, status, envelope{Success: false, Message: err.Error()})
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
