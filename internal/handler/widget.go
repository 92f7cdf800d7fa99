package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/service"
)

// WidgetHandler exposes the shared widget state over HTTP.
type WidgetHandler struct {
	widget *service.Widget
}

// NewWidgetHandler creates a new WidgetHandler.
func NewWidgetHandler(w *service.Widget) *WidgetHandler {
	return &WidgetHandler{widget: w}
}

// HandleState handles GET /api/v1/widget requests.
func (h *WidgetHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.widget.State())
}

// HandleOptions handles PATCH /api/v1/widget/options requests.
func (h *WidgetHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	var patch model.OptionsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	state, err := h.widget.SetOptions(patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// HandleGenerate handles POST /api/v1/widget/generate requests.
func (h *WidgetHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Regenerate()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// HandleCopy handles POST /api/v1/widget/copy requests.
func (h *WidgetHandler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Copy()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *WidgetHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrLengthOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, clipboard.ErrNothingToCopy):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, clipboard.ErrCopyFailed):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		slog.Error("widget request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
