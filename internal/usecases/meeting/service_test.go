package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type stubICPStatus struct {
	enabled bool
	err     error
}

func (s stubICPStatus) ICPEnabled(context.Context, string) (bool, error) {
	return s.enabled, s.err
}

type stubCounter int

func (c stubCounter) Count() int { return int(c) }

func TestService_ListMeetings(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	invalid := domain.MeetingStatus("postponed")
	scheduled := domain.MeetingStatusScheduled

	tests := []struct {
		name     string
		filter   domain.MeetingFilter
		setup    func(repo *mocks.MockMeetingRepository)
		wantErr  error
		wantCode string
		wantLen  int
	}{
		{
			name:   "Lista reuniões do usuário",
			filter: domain.MeetingFilter{UserID: "user-1", Status: &scheduled, From: &from, To: &to},
			setup: func(repo *mocks.MockMeetingRepository) {
				repo.EXPECT().ListMeetings(gomock.Any(), domain.MeetingFilter{UserID: "user-1", Status: &scheduled, From: &from, To: &to}).
					Return([]*domain.Meeting{{ID: "a"}, {ID: "b"}}, nil)
			},
			wantLen: 2,
		},
		{
			name:     "Status inválido",
			filter:   domain.MeetingFilter{UserID: "user-1", Status: &invalid},
			setup:    func(repo *mocks.MockMeetingRepository) {},
			wantErr:  ErrInvalidStatus,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Período invertido",
			filter:   domain.MeetingFilter{UserID: "user-1", From: &to, To: &from},
			setup:    func(repo *mocks.MockMeetingRepository) {},
			wantErr:  ErrInvalidPeriod,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Erro no banco",
			filter: domain.MeetingFilter{UserID: "user-1"},
			setup: func(repo *mocks.MockMeetingRepository) {
				repo.EXPECT().ListMeetings(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn refused"))
			},
			wantErr:  ErrFetchMeetings,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMeetingRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, stubICPStatus{}, stubCounter(0))
			meetings, err := service.ListMeetings(context.Background(), tt.filter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var meetingErr *MeetingError
				require.True(t, errors.As(err, &meetingErr))
				assert.Equal(t, tt.wantCode, meetingErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Len(t, meetings, tt.wantLen)
		})
	}
}

func TestService_GetMeeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMeetingRepository(ctrl)
	service := NewService(repo, stubICPStatus{}, stubCounter(0))

	repo.EXPECT().GetMeeting(gomock.Any(), "user-1", "abc").Return(&domain.Meeting{ID: "abc"}, nil)
	repo.EXPECT().GetMeeting(gomock.Any(), "user-1", "xyz").Return(nil, nil)

	meeting, err := service.GetMeeting(context.Background(), "user-1", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", meeting.ID)

	_, err = service.GetMeeting(context.Background(), "user-1", "xyz")
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestService_GetStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	meetings := []*domain.Meeting{
		{ID: "1", Status: domain.MeetingStatusScheduled, ScheduledAt: now.Add(24 * time.Hour)},
		{ID: "2", Status: domain.MeetingStatusScheduled, ScheduledAt: now},
		{ID: "3", Status: domain.MeetingStatusScheduled, ScheduledAt: now.Add(-time.Hour)},
		{ID: "4", Status: domain.MeetingStatusCompleted, ScheduledAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "5", Status: domain.MeetingStatusCompleted, ScheduledAt: time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC)},
		{ID: "6", Status: domain.MeetingStatusCancelled, ScheduledAt: now},
	}

	tests := []struct {
		name      string
		icpStatus stubICPStatus
		want      domain.DashboardStats
	}{
		{
			name:      "Conta os cards",
			icpStatus: stubICPStatus{enabled: true},
			want: domain.DashboardStats{
				TotalMeetings:      6,
				UpcomingMeetings:   2,
				CompletedThisMonth: 1,
				CancelledMeetings:  1,
				ICPEnabled:         true,
				AvailableServices:  4,
			},
		},
		{
			name:      "Falha ao ler ICP não derruba os cards",
			icpStatus: stubICPStatus{err: errors.New("redis down")},
			want: domain.DashboardStats{
				TotalMeetings:      6,
				UpcomingMeetings:   2,
				CompletedThisMonth: 1,
				CancelledMeetings:  1,
				AvailableServices:  4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMeetingRepository(ctrl)
			repo.EXPECT().ListMeetings(gomock.Any(), domain.MeetingFilter{UserID: "user-1"}).Return(meetings, nil)

			service := NewService(repo, tt.icpStatus, stubCounter(4))
			service.now = func() time.Time { return now }

			stats, err := service.GetStats(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, *stats)
		})
	}
}
