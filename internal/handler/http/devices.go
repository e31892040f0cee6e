package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	devices, err := h.engine.ListDevices(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDevices").Msg("error listing sync devices")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, devices, http.StatusOK)
}

func (h *Handler) unregisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		http.Error(w, "device ID is required", http.StatusBadRequest)
		return
	}

	if err := h.engine.UnregisterDevice(ctx, userID, deviceID); err != nil {
		log.Err(err).Str("func", "*Handler.unregisterDevice").Msg("error unregistering device")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
