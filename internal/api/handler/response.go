package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/meeting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padrão
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		profErr    *profiling.ProfilingError
		enrichErr  *enriching.EnrichmentError
		meetingErr *meeting.MeetingError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &profErr):
		apiErrors.WriteError(w, profErr.Code, profErr.Err.Error(), nil)
	case errors.As(err, &enrichErr):
		apiErrors.WriteError(w, enrichErr.Code, enrichErr.Err.Error(), enrichErr.Details)
	case errors.As(err, &meetingErr):
		apiErrors.WriteError(w, meetingErr.Code, meetingErr.Err.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// sessionClaims devolve as claims colocadas pelo AuthMiddleware
func sessionClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := authenticating.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}
