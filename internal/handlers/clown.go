package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/docport/doctor-portal/internal/repo"
	"github.com/go-playground/validator/v10"
)

type ClownHandler struct {
	Repo *repo.ClownRepo
}

//
// ==========================
// Create Clown
// ==========================
//

func (h *ClownHandler) CreateClown(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name  string `json:"name" validate:"required,min=1,max=255"`
		Color string `json:"color" validate:"required,min=1,max=100"`
		Age   int    `json:"age" validate:"required,gt=0"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	clown, err := h.Repo.Create(r.Context(), input.Name, input.Color, input.Age)
	if err != nil {
		slog.Error("create clown failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(clown)
}

//
// ==========================
// List Clowns
// ==========================
//

func (h *ClownHandler) ListClowns(w http.ResponseWriter, r *http.Request) {
	// Default pagination
	limit := 50
	offset := 0

	// Parse limit
	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	// Parse offset
	if o := r.URL.Query().Get("offset"); o != "" {
		if val, err := strconv.Atoi(o); err == nil && val >= 0 {
			offset = val
		}
	}

	clowns, err := h.Repo.ListPaginated(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list clowns failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clowns)
}
