package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/usecase"
)

type ExportHandler struct {
	UC  *usecase.ExportLeadsUseCase
	Log *zap.Logger
}

func NewExportHandler(uc *usecase.ExportLeadsUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{UC: uc, Log: logger}
}

// Handle streams the full lead table as a CSV attachment.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.UC.Execute(r.Context())
	if err != nil {
		h.Log.Error("CSV export failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to export leads")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(output.Data)
}
