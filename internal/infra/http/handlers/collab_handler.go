package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/entity"
	"github.com/glass-strategies/stormcommand/internal/usecase"
)

type CollabHandler struct {
	UC  *usecase.SubmitIdeaUseCase
	Log *zap.Logger
}

func NewCollabHandler(uc *usecase.SubmitIdeaUseCase, logger *zap.Logger) *CollabHandler {
	return &CollabHandler{UC: uc, Log: logger}
}

type collabListResponse struct {
	Submissions []entity.CollabSubmission `json:"submissions"`
}

// HandleList serves the 20 most recent submissions, newest first.
func (h *CollabHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.UC.ListRecent(r.Context())
	if err != nil {
		h.Log.Error("listing submissions failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load submissions")
		return
	}

	respondJSON(w, http.StatusOK, collabListResponse{Submissions: submissions})
}

func (h *CollabHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitIdeaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.UC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("submission insert failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to record submission")
		return
	}

	respondJSON(w, http.StatusOK, output)
}
