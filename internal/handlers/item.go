package handlers

import (
	"ItemGate/internal/config"
	"ItemGate/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обслуживает CRUD по записям.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// itemRequest — тело POST и PUT. Отсутствующее или null имя даёт пустую строку.
type itemRequest struct {
	Name string `json:"name"`
}

// List отдаёт все записи в порядке добавления.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: storage error", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create добавляет запись, имя обязательно.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	it, err := h.ItemService.Create(r.Context(), req.Name)
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// Update переименовывает запись. Имя не проверяется.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}

	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	it, err := h.ItemService.Update(r.Context(), id, req.Name)
	if err != nil {
		h.writeServiceError(w, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Delete удаляет запись, 204 без тела.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError переводит ошибки сервиса в коды ответа.
func (h *ItemHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		writeMessage(w, http.StatusBadRequest, msgNameRequired)
	case errors.Is(err, service.ErrItemNotFound):
		writeMessage(w, http.StatusNotFound, msgNotFound)
	default:
		h.Logger.Errorw(op+": storage error", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

// itemID разбирает {id} из пути. Нечисловой или неположительный id записи не соответствует.
func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
