package articolo

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vincibusa/allfoodgest/internal/handler/http/pathutil"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP partially updates an article. Absent fields keep their stored
// values; updated_at is refreshed server-side regardless of the payload.
// @Summary      Aggiornamento articolo
// @Tags         articoli
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "ID articolo"
// @Param        articolo body articolo.DTO true "Campi da aggiornare"
// @Success      200 {object} articolo.DTO
// @Failure      400 {string} string "Input non valido"
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Failure      404 {string} string "Articolo non trovato"
// @Router       /articoli/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articoli/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Titolo            *string `json:"titolo"`
		Contenuto         *string `json:"contenuto"`
		Autore            *string `json:"autore"`
		Categoria         *string `json:"categoria"`
		DataPubblicazione *string `json:"data_pubblicazione"`
		ImmagineURL       *string `json:"immagine_url"`
		Pubblicato        *bool   `json:"pubblicato"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("corpo JSON non valido"))
		return
	}

	in := artUC.UpdateInput{
		Titolo:      req.Titolo,
		Contenuto:   req.Contenuto,
		Autore:      req.Autore,
		Categoria:   req.Categoria,
		ImmagineURL: req.ImmagineURL,
		Pubblicato:  req.Pubblicato,
	}
	if req.DataPubblicazione != nil {
		if *req.DataPubblicazione == "" {
			in.DataPubblicazione = &time.Time{}
		} else {
			t, err := time.Parse(time.RFC3339, *req.DataPubblicazione)
			if err != nil {
				respond.Error(w, http.StatusBadRequest,
					errors.New("data_pubblicazione deve essere in formato RFC3339"))
				return
			}
			in.DataPubblicazione = &t
		}
	}

	articolo, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, FromEntity(articolo))
}
