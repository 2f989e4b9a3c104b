package publicitem

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ItemPattern, h.handleItem)
	mux.HandleFunc(routepath.ItemPrefix, h.handleNotFound)
}
