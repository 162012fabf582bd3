package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/catalog"
	"github.com/glass-strategies/stormcommand/internal/usecase"
)

type EmailHandler struct {
	UC  *usecase.GenerateEmailUseCase
	Log *zap.Logger
}

func NewEmailHandler(uc *usecase.GenerateEmailUseCase, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{UC: uc, Log: logger}
}

type emailFormResponse struct {
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
}

// HandleForm serves the catalog lists the generator form is built from.
func (h *EmailHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, emailFormResponse{
		Cities:     catalog.Cities,
		Categories: catalog.Categories,
	})
}

// HandleGenerate composes the outreach email and records the contact.
func (h *EmailHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.UC.Execute(r.Context(), input)
	if err != nil {
		h.Log.Error("email generation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to generate email")
		return
	}

	respondJSON(w, http.StatusOK, output)
}
