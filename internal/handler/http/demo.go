package http

import (
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/utils"
	"github.com/MKhiriev/monnify-relay/models"
)

// callDemoAPI godoc
// @Summary      Call a demo external API (httpbin.org)
// @Description  Requests the demo upstream root and reports the status it answered with.
// @Tags         Default
// @Produce      json
// @Success      200  {object}  models.DemoResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api [get]
func (h *Handler) callDemoAPI(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.DemoService.Ping(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Int("upstream_status", status).Msg("error calling external API")
		utils.WriteJSON(w, errorBody(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DemoResponse{Message: msgDemoCalled, Data: status}, http.StatusOK)
}
