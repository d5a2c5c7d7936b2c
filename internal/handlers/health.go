package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// timestampLayout — ISO-8601 в UTC с миллисекундами.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// HealthHandler отвечает на проверку живости.
type HealthHandler struct {
	Logger *zap.SugaredLogger
	now    func() time.Time
}

func NewHealthHandler(logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{Logger: logger, now: time.Now}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}
