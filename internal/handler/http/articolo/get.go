package articolo

import (
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/handler/http/pathutil"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a single article by id.
// @Summary      Dettaglio articolo
// @Tags         articoli
// @Produce      json
// @Param        id path int true "ID articolo"
// @Success      200 {object} articolo.DTO
// @Failure      400 {string} string "ID non valido"
// @Failure      404 {string} string "Articolo non trovato"
// @Router       /articoli/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articoli/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	articolo, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, FromEntity(articolo))
}
