package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/utils"
	"github.com/MKhiriev/monnify-relay/models"
)

// ninDetails godoc
// @Summary      Authenticate and retrieve NIN with Monnify API
// @Description  Generates an authentication token, then retrieves NIN details from the Monnify API using the API key and client secret.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      models.NINDetailsRequest  false  "Optional request body"
// @Success      200      {object}  models.NINDetailsResponse
// @Failure      401      {object}  models.MessageResponse
// @Failure      500      {object}  models.FailureResponse
// @Router       /nin-details [post]
func (h *Handler) ninDetails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	nin := readNIN(r, log)

	details, err := h.services.IdentityService.NINDetails(r.Context(), nin)
	if err != nil {
		log.Err(err).Msg("nin details failed")
		utils.WriteJSON(w, errorBody(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NINDetailsResponse{
		AccessToken: details.AccessToken,
		ExpiresIn:   details.ExpiresIn,
		NINDetails:  details.NINDetails,
	}, http.StatusOK)
}

// readNIN takes the NIN from a JSON or url-encoded form body. A missing or
// malformed body means no NIN.
func readNIN(r *http.Request, log *logger.Logger) string {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed form body")
			return ""
		}
		return r.PostForm.Get("nin")
	}

	var req models.NINDetailsRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		log.Warn().Err(err).Msg("ignoring malformed request body")
		return ""
	}
	return string(req.NIN)
}
