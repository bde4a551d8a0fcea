package completion

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CompletionRepository interface {
	Insert(ctx context.Context, userID, courseID uint64) (uint64, error)
	GetDetail(ctx context.Context, id uint64) (*model.CompletionDetail, error)
	ListDetails(ctx context.Context) ([]model.CompletionDetail, error)
	HasPending(ctx context.Context, userID, courseID uint64) (bool, error)
	Review(ctx context.Context, id uint64, status constant.CompletionStatus, comment string, reviewerID uint64) (bool, error)
}

func NewCompletionRepository(conn *sqlx.DB) CompletionRepository {
	return &SQL{conn: conn}
}

const getDetailBase = `SELECT cr.id, cr.user_id, cr.course_id, cr.status, cr.comment, cr.reviewed_at, cr.reviewed_by, cr.created_at,
	c.title AS course_title, u.telegram_id, u.full_name
	FROM completion_requests cr
	JOIN courses c ON cr.course_id = c.id
	JOIN users u ON cr.user_id = u.id`

func (s *SQL) Insert(ctx context.Context, userID, courseID uint64) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO completion_requests (user_id, course_id, status, created_at) VALUES (?, ?, 'pending', NOW())",
		userID, courseID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetDetail(ctx context.Context, id uint64) (*model.CompletionDetail, error) {
	var detail model.CompletionDetail
	if err := s.conn.QueryRowxContext(ctx, getDetailBase+" WHERE cr.id = ?", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) ListDetails(ctx context.Context) ([]model.CompletionDetail, error) {
	var details []model.CompletionDetail
	err := s.conn.SelectContext(ctx, &details, getDetailBase+" ORDER BY cr.created_at DESC")
	return details, err
}

// HasPending enforces the at-most-one-pending rule per (user, course); the
// table carries no unique constraint for it.
func (s *SQL) HasPending(ctx context.Context, userID, courseID uint64) (bool, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM completion_requests WHERE user_id = ? AND course_id = ? AND status = 'pending'",
		userID, courseID)
	return count > 0, err
}

// Review moves a pending request to approved/rejected; returns false when the
// request was already reviewed.
func (s *SQL) Review(ctx context.Context, id uint64, status constant.CompletionStatus, comment string, reviewerID uint64) (bool, error) {
	var c *string
	if comment != "" {
		c = &comment
	}
	res, err := s.conn.ExecContext(ctx,
		"UPDATE completion_requests SET status = ?, comment = ?, reviewed_at = NOW(), reviewed_by = ? WHERE id = ? AND status = 'pending'",
		status, c, reviewerID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
