package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type labelRequest struct {
	Label string `json:"label"`
}

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type questionRequest struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// settingsAction executa uma operação sobre o rascunho do usuário da sessão
func settingsAction(run func(ctx context.Context, userID string, r *http.Request) (*domain.SettingsView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		view, err := run(r.Context(), claims.SessionUserID(), r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// GetSettings abre o painel: cria o rascunho e carrega o ICP salvo na primeira vez
func GetSettings(service profiling.SettingsService) http.HandlerFunc {
	return settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
		return service.Mount(ctx, userID)
	})
}

// DiscardSettings descarta o rascunho sem salvar
func DiscardSettings(service profiling.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		if err := service.Discard(r.Context(), claims.SessionUserID()); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToggleChannel(service profiling.SettingsService) http.HandlerFunc {
	return settingsAction(func(ctx context.Context, userID string, r *http.Request) (*domain.SettingsView, error) {
		channel := httprouter.ParamsFromContext(ctx).ByName("channel")
		return service.ToggleChannel(ctx, userID, strings.ToLower(channel))
	})
}

func ToggleQuestion(service profiling.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req questionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
			return service.ToggleQuestion(ctx, userID, req.Category, req.Question)
		})(w, r)
	}
}

// LoadICP busca de novo os critérios salvos no backend
func LoadICP(service profiling.SettingsService) http.HandlerFunc {
	return settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
		return service.Load(ctx, userID)
	})
}

func SetICPEnabled(service profiling.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enabledRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Enabled == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo enabled é obrigatório", nil)
			return
		}

		settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
			return service.SetEnabled(ctx, userID, *req.Enabled)
		})(w, r)
	}
}

func ToggleICPDetail(service profiling.SettingsService) http.HandlerFunc {
	return settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
		return service.ToggleDetail(ctx, userID)
	})
}

func ToggleEmployeeSize(service profiling.SettingsService) http.HandlerFunc {
	return toggleLabel(func(ctx context.Context, userID, label string) (*domain.SettingsView, error) {
		return service.ToggleEmployeeSize(ctx, userID, label)
	})
}

func ToggleFoundedYear(service profiling.SettingsService) http.HandlerFunc {
	return toggleLabel(func(ctx context.Context, userID, label string) (*domain.SettingsView, error) {
		return service.ToggleFoundedYear(ctx, userID, label)
	})
}

func toggleLabel(toggle func(ctx context.Context, userID, label string) (*domain.SettingsView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req labelRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Label == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo label é obrigatório", nil)
			return
		}

		settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
			return toggle(ctx, userID, req.Label)
		})(w, r)
	}
}

// SaveICP grava os critérios. Falhas de salvamento voltam como mensagem no próprio painel.
func SaveICP(service profiling.SettingsService) http.HandlerFunc {
	return settingsAction(func(ctx context.Context, userID string, _ *http.Request) (*domain.SettingsView, error) {
		return service.Save(ctx, userID)
	})
}
