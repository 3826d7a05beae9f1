package articolo

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article.
// @Summary      Creazione articolo
// @Description  Crea un nuovo articolo; titolo e contenuto sono obbligatori
// @Tags         articoli
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        articolo body articolo.DTO true "Dati articolo"
// @Success      201 {object} articolo.DTO
// @Failure      400 {string} string "Input non valido"
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Router       /articoli [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Titolo            string     `json:"titolo"`
		Contenuto         string     `json:"contenuto"`
		Autore            string     `json:"autore"`
		Categoria         string     `json:"categoria"`
		DataPubblicazione *string    `json:"data_pubblicazione"`
		ImmagineURL       *string    `json:"immagine_url"`
		Pubblicato        bool       `json:"pubblicato"`
		CreatedAt         *time.Time `json:"created_at"`
		UpdatedAt         *time.Time `json:"updated_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("corpo JSON non valido"))
		return
	}

	in := artUC.CreateInput{
		Titolo:     req.Titolo,
		Contenuto:  req.Contenuto,
		Autore:     req.Autore,
		Categoria:  req.Categoria,
		Pubblicato: req.Pubblicato,
	}
	if req.DataPubblicazione != nil && *req.DataPubblicazione != "" {
		t, err := time.Parse(time.RFC3339, *req.DataPubblicazione)
		if err != nil {
			respond.Error(w, http.StatusBadRequest,
				errors.New("data_pubblicazione deve essere in formato RFC3339"))
			return
		}
		in.DataPubblicazione = t
	}
	if req.ImmagineURL != nil {
		in.ImmagineURL = *req.ImmagineURL
	}
	// Timestamps from the body win; the service only defaults them to now
	// when the caller leaves them out.
	if req.CreatedAt != nil {
		in.CreatedAt = *req.CreatedAt
	}
	if req.UpdatedAt != nil {
		in.UpdatedAt = *req.UpdatedAt
	}

	articolo, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, FromEntity(articolo))
}
