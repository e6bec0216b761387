package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caiodev/ms-customer/internal/entity"
	"github.com/caiodev/ms-customer/internal/infra/metrics"
	"github.com/caiodev/ms-customer/internal/usecase"
)

type CustomerHandler struct {
	Service *usecase.CustomerService
}

func NewCustomerHandler(service *usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: service}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	outputs, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outputs)
}

func (h *CustomerHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := customerCode(w, r)
	if !ok {
		return
	}

	output, err := h.Service.FindByCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *CustomerHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	output, err := h.Service.FindByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON payload"))
		return
	}

	output, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordCustomerRegistered()
	writeJSON(w, http.StatusCreated, output)
}

func (h *CustomerHandler) UpdateByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := customerCode(w, r)
	if !ok {
		return
	}

	var input usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON payload"))
		return
	}

	output, err := h.Service.UpdateByCode(r.Context(), code, input)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordCustomerUpdated()
	writeJSON(w, http.StatusOK, output)
}

func (h *CustomerHandler) UpdateByEmail(w http.ResponseWriter, r *http.Request) {
	var input usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON payload"))
		return
	}

	output, err := h.Service.UpdateByEmail(r.Context(), chi.URLParam(r, "email"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordCustomerUpdated()
	writeJSON(w, http.StatusOK, output)
}

func (h *CustomerHandler) DeleteByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := customerCode(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteByCode(r.Context(), code); err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordCustomerDeleted()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteByEmail(r.Context(), chi.URLParam(r, "email")); err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordCustomerDeleted()
	w.WriteHeader(http.StatusNoContent)
}

func customerCode(w http.ResponseWriter, r *http.Request) (int64, bool) {
	code, err := strconv.ParseInt(chi.URLParam(r, "code"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("customer code must be an integer"))
		return 0, false
	}
	return code, true
}

// writeError maps the business error kinds to HTTP statuses: validation
// failures are a bad request, uniqueness and order conflicts a conflict,
// missing customers not found, anything else a server-side failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrCustomerNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, entity.ErrCustomerHasOrders):
		metrics.RecordDeleteBlocked()
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, entity.ErrCPFAlreadyExists), errors.Is(err, entity.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case entity.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
