package purchase

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

type PurchaseRepository interface {
	Insert(ctx context.Context, item *model.InsertPurchaseItem) (uint64, error)
	Get(ctx context.Context, id uint64) (*model.PurchaseEntity, error)
	GetDetail(ctx context.Context, id uint64) (*model.PurchaseDetail, error)
	ListDetails(ctx context.Context) ([]model.PurchaseDetail, error)
	HasActivePaid(ctx context.Context, userID, courseID uint64) (bool, error)
	ListActiveByTelegramID(ctx context.Context, telegramID int64) ([]model.ActivePurchase, error)
	UpdateStatus(ctx context.Context, id uint64, from, to constant.PurchaseStatus) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.PurchaseStatus) (bool, error)
	AttachProof(ctx context.Context, item *model.AttachProofItem) error
	CountByStatus(ctx context.Context, status constant.PurchaseStatus) (int64, error)
	SumPaidAmount(ctx context.Context) (float64, error)
}

func NewPurchaseRepository(conn *sqlx.DB) PurchaseRepository {
	return &SQL{conn: conn}
}

const (
	purchaseColumns = `p.id, p.user_id, p.course_id, p.payment_type, p.amount, p.status, p.proof_ref, p.proof_kind, p.expires_at, p.created_at, p.updated_at`

	getDetailBase = `SELECT ` + purchaseColumns + `, c.title AS course_title, c.type AS course_type, u.telegram_id, u.full_name
		 FROM purchases p
		 JOIN courses c ON p.course_id = c.id
		 JOIN users u ON p.user_id = u.id`

	// A purchase still counts as active while unexpired; expiry is a
	// query-time predicate, the row itself is never mutated.
	activePredicate = `p.status = 'paid' AND (p.expires_at IS NULL OR p.expires_at > NOW())`
)

func (s *SQL) Insert(ctx context.Context, item *model.InsertPurchaseItem) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		`INSERT INTO purchases (user_id, course_id, payment_type, amount, status, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		item.UserID, item.CourseID, item.PaymentType, item.Amount, item.Status, item.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.PurchaseEntity, error) {
	var entity model.PurchaseEntity
	query := `SELECT id, user_id, course_id, payment_type, amount, status, proof_ref, proof_kind, expires_at, created_at, updated_at FROM purchases WHERE id = ?`
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetDetail(ctx context.Context, id uint64) (*model.PurchaseDetail, error) {
	var detail model.PurchaseDetail
	if err := s.conn.QueryRowxContext(ctx, getDetailBase+" WHERE p.id = ?", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) ListDetails(ctx context.Context) ([]model.PurchaseDetail, error) {
	var details []model.PurchaseDetail
	err := s.conn.SelectContext(ctx, &details, getDetailBase+" ORDER BY p.created_at DESC")
	return details, err
}

// HasActivePaid implements the duplicate-purchase guard predicate.
func (s *SQL) HasActivePaid(ctx context.Context, userID, courseID uint64) (bool, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM purchases p WHERE p.user_id = ? AND p.course_id = ? AND `+activePredicate,
		userID, courseID)
	return count > 0, err
}

func (s *SQL) ListActiveByTelegramID(ctx context.Context, telegramID int64) ([]model.ActivePurchase, error) {
	var purchases []model.ActivePurchase
	err := s.conn.SelectContext(ctx, &purchases,
		`SELECT `+purchaseColumns+`, c.title AS course_title, c.type AS course_type
		 FROM purchases p
		 JOIN courses c ON p.course_id = c.id
		 JOIN users u ON p.user_id = u.id
		 WHERE u.telegram_id = ? AND `+activePredicate+`
		 ORDER BY p.created_at DESC`, telegramID)
	return purchases, err
}

// UpdateStatus is a compare-and-swap: the row only moves when it is still in
// the expected state, so a concurrent confirm and reject produce a
// detectable conflict instead of last-write-wins.
func (s *SQL) UpdateStatus(ctx context.Context, id uint64, from, to constant.PurchaseStatus) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE purchases SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?",
		to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.PurchaseStatus) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE purchases SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?",
		to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AttachProof stores the proof reference, its kind and the status move to
// awaiting_confirmation in one statement.
func (s *SQL) AttachProof(ctx context.Context, item *model.AttachProofItem) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE purchases SET proof_ref = ?, proof_kind = ?, status = ?, updated_at = NOW() WHERE id = ?",
		item.ProofRef, item.ProofKind, constant.PurchaseStatusAwaitingConfirmation, item.PurchaseID)
	return err
}

func (s *SQL) CountByStatus(ctx context.Context, status constant.PurchaseStatus) (int64, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM purchases WHERE status = ?", status)
	return count, err
}

func (s *SQL) SumPaidAmount(ctx context.Context) (float64, error) {
	var total float64
	err := s.conn.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(amount), 0) FROM purchases WHERE status = 'paid'")
	return total, err
}
