package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/course-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, telegramID int64, username string) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	ListNotifiable(ctx context.Context) ([]model.UserEntity, error)
	CompleteRegistration(ctx context.Context, item *model.CompleteRegistrationItem) error
	UpdateUsername(ctx context.Context, telegramID int64, username string) error
	SetNotifications(ctx context.Context, telegramID int64, enabled bool) error
	IssueQRToken(ctx context.Context, telegramID int64, token string) error
	LogQRScan(ctx context.Context, userID uint64) error
	Count(ctx context.Context) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	getUserBase = `SELECT id, telegram_id, full_name, username, phone, student_type, notifications_enabled, qr_token, qr_generated, created_at FROM users WHERE true`
)

// Create inserts a minimal row for a first-contact telegram identity. The
// INSERT IGNORE keeps a repeated /start from violating the unique key.
func (s *SQL) Create(ctx context.Context, telegramID int64, username string) (*model.UserEntity, error) {
	var uname *string
	if username != "" {
		uname = &username
	}
	_, err := s.conn.ExecContext(ctx,
		"INSERT IGNORE INTO users (telegram_id, username, created_at) VALUES (?, ?, NOW())",
		telegramID, uname)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, &model.UserFilter{TelegramID: telegramID})
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.TelegramID != 0 {
		query += " AND telegram_id = ?"
		args = append(args, filter.TelegramID)
	}
	if filter.QRToken != "" {
		query += " AND qr_token = ?"
		args = append(args, filter.QRToken)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	var users []model.UserEntity
	err := s.conn.SelectContext(ctx, &users, getUserBase+" ORDER BY created_at DESC")
	return users, err
}

func (s *SQL) ListNotifiable(ctx context.Context) ([]model.UserEntity, error) {
	var users []model.UserEntity
	err := s.conn.SelectContext(ctx, &users, getUserBase+" AND notifications_enabled = 1")
	return users, err
}

// CompleteRegistration is the terminal commit of the onboarding flow: name,
// phone and classification land in a single UPDATE of the existing row.
func (s *SQL) CompleteRegistration(ctx context.Context, item *model.CompleteRegistrationItem) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE users SET full_name = ?, phone = ?, student_type = ? WHERE telegram_id = ?",
		item.FullName, item.Phone, item.StudentType, item.TelegramID)
	return err
}

func (s *SQL) UpdateUsername(ctx context.Context, telegramID int64, username string) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE users SET username = ? WHERE telegram_id = ?", username, telegramID)
	return err
}

func (s *SQL) SetNotifications(ctx context.Context, telegramID int64, enabled bool) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE users SET notifications_enabled = ? WHERE telegram_id = ?", enabled, telegramID)
	return err
}

// IssueQRToken sets the one-time QR token. The qr_generated guard makes the
// issue operation idempotent: a second call affects zero rows.
func (s *SQL) IssueQRToken(ctx context.Context, telegramID int64, token string) error {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE users SET qr_token = ?, qr_generated = 1 WHERE telegram_id = ? AND qr_generated = 0",
		token, telegramID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) LogQRScan(ctx context.Context, userID uint64) error {
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO qr_scans (user_id, scanned_at) VALUES (?, NOW())", userID)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM users")
	return count, err
}
