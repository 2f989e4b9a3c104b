package contact

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.FoundPattern, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.FoundPattern, h.handleSubmit)
	mux.HandleFunc(routepath.FoundPrefix, h.handleNotFound)
}
