package http

import (
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/utils"
)

// getVersion godoc
// @Summary      Build information
// @Description  Returns the version, build date and commit of the running relay.
// @Tags         Default
// @Produce      json
// @Success      200  {object}  models.VersionResponse
// @Router       /version [get]
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, info.Response(), http.StatusOK)
}
