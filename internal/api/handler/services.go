package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func ListServices(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.List(r.URL.Query().Get("category")))
	}
}

func GetService(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.Get(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Serviço não encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	}
}
