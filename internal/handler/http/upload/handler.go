// Package upload exposes the cover-image upload endpoints.
package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	httpH "github.com/vincibusa/allfoodgest/internal/handler/http"
	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	uploadUC "github.com/vincibusa/allfoodgest/internal/usecase/upload"
)

// maxUploadBytes bounds the multipart form held in memory per upload.
const maxUploadBytes = 8 << 20

type UploadHandler struct{ Svc *uploadUC.Service }

// ServeHTTP stores the image sent in the multipart field "file" and returns
// its public URL.
// @Summary      Caricamento immagine
// @Tags         upload
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Immagine di copertina"
// @Success      201 {object} map[string]string
// @Failure      400 {string} string "File mancante o estensione non ammessa"
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Router       /upload [post]
func (h UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpH.RecordUpload(false)
		respond.Error(w, http.StatusBadRequest, errors.New("richiesta multipart non valida"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpH.RecordUpload(false)
		respond.Error(w, http.StatusBadRequest, errors.New("campo 'file' mancante"))
		return
	}
	defer file.Close()

	url, err := h.Svc.Upload(r.Context(), header.Filename, file)
	if err != nil {
		httpH.RecordUpload(false)
		respond.FromError(w, err)
		return
	}

	httpH.RecordUpload(true)
	respond.JSON(w, http.StatusCreated, map[string]string{"url": url})
}

type DeleteHandler struct{ Svc *uploadUC.Service }

// ServeHTTP removes a previously uploaded image given its public URL.
// @Summary      Eliminazione immagine
// @Tags         upload
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "{\"url\": string}"
// @Success      200 {object} map[string]bool
// @Failure      400 {string} string "URL non valido"
// @Failure      401 {string} string "Sessione mancante o scaduta"
// @Router       /upload [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("campo 'url' mancante"))
		return
	}

	if err := h.Svc.Delete(r.Context(), req.URL); err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
