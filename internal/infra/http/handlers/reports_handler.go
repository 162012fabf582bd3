package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/usecase"
)

type ReportsHandler struct {
	UC  *usecase.ReportsUseCase
	Log *zap.Logger
}

func NewReportsHandler(uc *usecase.ReportsUseCase, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{UC: uc, Log: logger}
}

func (h *ReportsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.UC.Execute(r.Context())
	if err != nil {
		h.Log.Error("report aggregation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to build reports")
		return
	}

	respondJSON(w, http.StatusOK, output)
}
