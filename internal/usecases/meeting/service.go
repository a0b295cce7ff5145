package meeting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ICPStatusReader informa se o filtro de ICP está ligado para o usuário
type ICPStatusReader interface {
	ICPEnabled(ctx context.Context, userID string) (bool, error)
}

// ServiceCounter informa o tamanho do catálogo de serviços
type ServiceCounter interface {
	Count() int
}

type MeetingService interface {
	ListMeetings(ctx context.Context, filter domain.MeetingFilter) ([]*domain.Meeting, error)
	GetMeeting(ctx context.Context, userID, meetingID string) (*domain.Meeting, error)
	GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}

type Service struct {
	meetingRepository repository.MeetingRepository
	icpStatus         ICPStatusReader
	catalog           ServiceCounter
	now               func() time.Time
}

func NewService(
	meetingRepository repository.MeetingRepository,
	icpStatus ICPStatusReader,
	catalog ServiceCounter,
) *Service {
	return &Service{
		meetingRepository: meetingRepository,
		icpStatus:         icpStatus,
		catalog:           catalog,
		now:               time.Now,
	}
}

func (s *Service) ListMeetings(ctx context.Context, filter domain.MeetingFilter) ([]*domain.Meeting, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, NewMeetingError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, string(*filter.Status))
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, NewMeetingError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "from deve ser anterior a to")
	}

	meetings, err := s.meetingRepository.ListMeetings(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", filter.UserID).Error("Erro ao listar reuniões")
		return nil, NewMeetingError(ErrFetchMeetings, apiErrors.ErrDatabaseOperation, "")
	}

	return meetings, nil
}

func (s *Service) GetMeeting(ctx context.Context, userID, meetingID string) (*domain.Meeting, error) {
	meeting, err := s.meetingRepository.GetMeeting(ctx, userID, meetingID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao buscar reunião")
		return nil, NewMeetingError(ErrFetchMeetings, apiErrors.ErrDatabaseOperation, "")
	}

	if meeting == nil {
		return nil, NewMeetingError(ErrMeetingNotFound, apiErrors.ErrNotFound, meetingID)
	}

	return meeting, nil
}

// GetStats calcula os cards do dashboard
func (s *Service) GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	meetings, err := s.ListMeetings(ctx, domain.MeetingFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &domain.DashboardStats{
		TotalMeetings:     len(meetings),
		AvailableServices: s.catalog.Count(),
	}

	for _, meeting := range meetings {
		switch meeting.Status {
		case domain.MeetingStatusScheduled:
			if !meeting.ScheduledAt.Before(now) {
				stats.UpcomingMeetings++
			}
		case domain.MeetingStatusCompleted:
			if sameMonth(meeting.ScheduledAt, now) {
				stats.CompletedThisMonth++
			}
		case domain.MeetingStatusCancelled:
			stats.CancelledMeetings++
		}
	}

	enabled, err := s.icpStatus.ICPEnabled(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Warn("Não foi possível ler o status do ICP")
	}
	stats.ICPEnabled = enabled

	return stats, nil
}

func sameMonth(t, ref time.Time) bool {
	t = t.In(ref.Location())
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
