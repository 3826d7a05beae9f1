package articolo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/handler/http/pathutil"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type PublishHandler struct{ Svc *artUC.Service }

// ServeHTTP toggles the publication flag. The pubblicato field is mandatory
// in the payload so a typo cannot silently unpublish an article.
// @Summary      Pubblicazione articolo
// @Tags         articoli
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "ID articolo"
// @Param        body body object true "{\"pubblicato\": bool}"
// @Success      200 {object} articolo.DTO
// @Failure      400 {string} string "Campo pubblicato mancante"
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Failure      404 {string} string "Articolo non trovato"
// @Router       /articoli/{id} [patch]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articoli/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Pubblicato *bool `json:"pubblicato"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("corpo JSON non valido"))
		return
	}
	if req.Pubblicato == nil {
		respond.Error(w, http.StatusBadRequest, artUC.ErrPubblicatoRequired)
		return
	}

	articolo, err := h.Svc.SetPubblicato(r.Context(), id, *req.Pubblicato)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, FromEntity(articolo))
}
