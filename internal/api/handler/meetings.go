package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/meeting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ListMeetings aceita ?status=&from=YYYY-MM-DD&to=YYYY-MM-DD
func ListMeetings(service meeting.MeetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.MeetingFilter{UserID: claims.SessionUserID()}

		if status := strings.TrimSpace(query.Get("status")); status != "" {
			meetingStatus := domain.MeetingStatus(strings.ToLower(status))
			filter.Status = &meetingStatus
		}

		from, err := utils.ParseDate(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		to, err := utils.ParseDate(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		filter.From = from
		if to != nil {
			// to inclui o dia inteiro
			end := to.AddDate(0, 0, 1)
			filter.To = &end
		}

		meetings, err := service.ListMeetings(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, meetings)
	}
}

func GetMeeting(service meeting.MeetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da reunião não fornecido", nil)
			return
		}

		found, err := service.GetMeeting(r.Context(), claims.SessionUserID(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	}
}

func GetDashboardStats(service meeting.MeetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		stats, err := service.GetStats(r.Context(), claims.SessionUserID())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}
