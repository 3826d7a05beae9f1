package articolo

import (
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/handler/http/pathutil"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article. Deleting an id that does not exist, or the
// same id twice, yields 404.
// @Summary      Eliminazione articolo
// @Tags         articoli
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ID articolo"
// @Success      200 {object} map[string]bool
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Failure      404 {string} string "Articolo non trovato"
// @Router       /articoli/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articoli/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
