package articolo

import (
	"net/http"

	authH "github.com/vincibusa/allfoodgest/internal/handler/http/auth"
	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
)

// Register registers the article routes on the mux. Reads are public;
// mutations go through the session middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, authz authH.Middleware) {
	mux.Handle("GET    /articoli", ListHandler{svc})
	mux.Handle("GET    /articoli/", GetHandler{svc})

	mux.Handle("POST   /articoli", authz(CreateHandler{svc}))
	mux.Handle("PUT    /articoli/", authz(UpdateHandler{svc}))
	mux.Handle("PATCH  /articoli/", authz(PublishHandler{svc}))
	mux.Handle("DELETE /articoli/", authz(DeleteHandler{svc}))
}
