package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/usecase"
)

type DashboardHandler struct {
	UC  *usecase.DashboardUseCase
	Log *zap.Logger
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{UC: uc, Log: logger}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.UC.Execute(r.Context())
	if err != nil {
		h.Log.Error("dashboard assembly failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, output)
}
