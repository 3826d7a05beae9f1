package articolo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	"github.com/vincibusa/allfoodgest/internal/repository"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles, newest first.
// @Summary      Elenco articoli
// @Description  Restituisce gli articoli, dal più recente, con filtri opzionali
// @Tags         articoli
// @Produce      json
// @Param        id query int false "Filtra per id"
// @Param        categoria query string false "Filtra per categoria (case-sensitive)"
// @Param        pubblicato query bool false "Filtra per stato di pubblicazione"
// @Success      200 {array} articolo.DTO
// @Failure      400 {string} string "Errore dal servizio dati"
// @Router       /articoli [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filters repository.ArticoloFilters

	q := r.URL.Query()
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respond.Error(w, http.StatusBadRequest, errors.New("id non valido"))
			return
		}
		filters.ID = &id
	}
	if categoria := q.Get("categoria"); categoria != "" {
		filters.Categoria = &categoria
	}
	if raw := q.Get("pubblicato"); raw != "" {
		pubblicato, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, errors.New("pubblicato deve essere true o false"))
			return
		}
		filters.Pubblicato = &pubblicato
	}

	articoli, err := h.Svc.List(r.Context(), filters)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, FromEntities(articoli))
}
