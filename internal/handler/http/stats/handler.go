// Package stats exposes the dashboard aggregation endpoint.
package stats

import (
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/handler/http/articolo"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	statsUC "github.com/vincibusa/allfoodgest/internal/usecase/stats"
)

// riepilogoDTO is the JSON shape of the dashboard summary. Article entries
// reuse the article DTO so both endpoints serve identical records.
type riepilogoDTO struct {
	TotaleArticoli     int            `json:"totaleArticoli"`
	ArticoliPubblicati int            `json:"articoliPubblicati"`
	ArticoliInBozza    int            `json:"articoliInBozza"`
	PerCategoria       map[string]int `json:"perCategoria"`
	UltimiArticoli     []articolo.DTO `json:"ultimiArticoli"`
	DaAggiornare       []articolo.DTO `json:"daAggiornare"`
}

type Handler struct{ Svc *statsUC.Service }

// ServeHTTP computes the dashboard summary on demand.
// @Summary      Statistiche dashboard
// @Description  Conteggi totali, per categoria, ultimi articoli e articoli da aggiornare
// @Tags         stats
// @Produce      json
// @Success      200 {object} stats.riepilogoDTO
// @Failure      400 {string} string "Errore dal servizio dati"
// @Router       /stats [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	riepilogo, err := h.Svc.Compute(r.Context())
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, riepilogoDTO{
		TotaleArticoli:     riepilogo.TotaleArticoli,
		ArticoliPubblicati: riepilogo.ArticoliPubblicati,
		ArticoliInBozza:    riepilogo.ArticoliInBozza,
		PerCategoria:       riepilogo.PerCategoria,
		UltimiArticoli:     articolo.FromEntities(riepilogo.UltimiArticoli),
		DaAggiornare:       articolo.FromEntities(riepilogo.DaAggiornare),
	})
}
