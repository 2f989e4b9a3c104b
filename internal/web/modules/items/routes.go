package items

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ItemsNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.ItemsPrefix+"{$}", h.handleCreate)
	mux.HandleFunc(routepath.ItemsPrefix, h.handleNotFound)
}
