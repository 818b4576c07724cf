package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoplist/internal/models"
	"shoplist/internal/services"
)

type SharedListHandler struct {
	Service *services.SharedListService
}

// ShareList freezes the posted selection records under a generated id.
// The records are decoded only far enough to confirm the body is a
// JSON array; their content is stored verbatim.
func (h *SharedListHandler) ShareList(w http.ResponseWriter, r *http.Request) {
	var records []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		http.Error(w, "No items provided to share or invalid format", http.StatusBadRequest)
		return
	}

	id, err := h.Service.CreateSnapshot(r.Context(), records)
	if err != nil {
		if errors.Is(err, models.ErrEmptySharedList) {
			http.Error(w, "No items provided to share or invalid format", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *SharedListHandler) GetSharedList(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing list ID", http.StatusBadRequest)
		return
	}

	records, err := h.Service.GetSnapshot(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSharedListNotFound) {
			http.Error(w, "Shared list not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
