package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=meeting.go -destination=mocks/mock_meeting.go -package=mocks

const meetingsTable = "meetings m"

const meetingColumns = "m.id, m.user_id, m.title, m.company_name, m.contact_name, m.contact_email, " +
	"m.scheduled_at, m.duration_minutes, m.status, m.meeting_url, m.notes, m.created_at"

type MeetingRepository interface {
	ListMeetings(ctx context.Context, filter domain.MeetingFilter) ([]*domain.Meeting, error)
	GetMeeting(ctx context.Context, userID, meetingID string) (*domain.Meeting, error)
}

type meetingRepository struct {
	conn postgres.Queryer
}

func NewMeetingRepository(conn postgres.Queryer) MeetingRepository {
	return &meetingRepository{
		conn: conn,
	}
}

// buildListMeetingsQuery monta a consulta filtrada, em ordem de agenda
func buildListMeetingsQuery(filter domain.MeetingFilter) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(meetingColumns).
		From(meetingsTable).
		Where(squirrel.Eq{"m.user_id": filter.UserID}).
		OrderBy("m.scheduled_at ASC", "m.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"m.status": string(*filter.Status)})
	}

	if filter.From != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"m.scheduled_at": *filter.From})
	}

	if filter.To != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"m.scheduled_at": *filter.To})
	}

	return queryBuilder.ToSql()
}

func (r *meetingRepository) ListMeetings(ctx context.Context, filter domain.MeetingFilter) ([]*domain.Meeting, error) {
	query, args, err := buildListMeetingsQuery(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar consulta de reuniões")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar reuniões")
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer reuniões")
	}

	return meetings, nil
}

func (r *meetingRepository) GetMeeting(ctx context.Context, userID, meetingID string) (*domain.Meeting, error) {
	query, args, err := squirrel.
		Select(meetingColumns).
		From(meetingsTable).
		Where(squirrel.Eq{"m.user_id": userID, "m.id": meetingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar consulta de reunião")
	}

	meeting, err := scanMeeting(r.conn.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMeeting(row scanner) (*domain.Meeting, error) {
	meeting := &domain.Meeting{}
	var status string

	if err := row.Scan(
		&meeting.ID,
		&meeting.UserID,
		&meeting.Title,
		&meeting.CompanyName,
		&meeting.ContactName,
		&meeting.ContactEmail,
		&meeting.ScheduledAt,
		&meeting.DurationMinutes,
		&status,
		&meeting.MeetingURL,
		&meeting.Notes,
		&meeting.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "erro ao ler reunião")
	}

	meeting.Status = domain.MeetingStatus(status)
	return meeting, nil
}
