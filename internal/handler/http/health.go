package http

import (
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/utils"
	"github.com/MKhiriev/monnify-relay/models"
)

// healthCheck godoc
// @Summary      API Health check
// @Description  Reports that the relay is up.
// @Tags         Default
// @Produce      json
// @Success      200  {object}  models.MessageResponse
// @Router       / [get]
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgAPILive}, http.StatusOK)
}

// routeNotFound answers unknown routes and unsupported methods.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FailureResponse{Success: false, Message: msgRouteDoesNotExist}, http.StatusNotFound)
}
