package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// GetMe devolve o usuário da sessão
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, domain.Me{
			UserID: claims.SessionUserID(),
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		})
	}
}
