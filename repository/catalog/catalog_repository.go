package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/course-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	List(ctx context.Context, filter *model.CourseFilter) ([]model.CourseEntity, error)
	Get(ctx context.Context, id uint64) (*model.CourseEntity, error)
	Insert(ctx context.Context, entity *model.CourseEntity) (uint64, error)
	Update(ctx context.Context, entity *model.CourseEntity) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)

	ListLessons(ctx context.Context, courseID uint64) ([]model.LessonEntity, error)
	ListLessonIDsTx(ctx context.Context, tx *sqlx.Tx, courseID uint64) ([]uint64, error)
	DeleteLessonTx(ctx context.Context, tx *sqlx.Tx, lessonID uint64) error
	UpdateLessonTx(ctx context.Context, tx *sqlx.Tx, lesson *model.LessonEntity) error
	InsertLessonTx(ctx context.Context, tx *sqlx.Tx, lesson *model.LessonEntity) (uint64, error)
	SetLessonsCountTx(ctx context.Context, tx *sqlx.Tx, courseID uint64, count int) error
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	getCourseBase = `SELECT id, title, description, type, lessons_count, duration, price_full, price_monthly, price_single, file_url, created_at, updated_at FROM courses`
	getLessonBase = `SELECT id, course_id, title, video_url, order_num FROM lessons`
)

func (s *SQL) List(ctx context.Context, filter *model.CourseFilter) ([]model.CourseEntity, error) {
	query := getCourseBase
	args := make([]any, 0, 1)

	if filter != nil && filter.Type != "" {
		query += " WHERE type = ?"
		args = append(args, filter.Type)
	}
	query += " ORDER BY created_at DESC"

	var entries []model.CourseEntity
	err := s.conn.SelectContext(ctx, &entries, query, args...)
	return entries, err
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.CourseEntity, error) {
	var entity model.CourseEntity
	if err := s.conn.QueryRowxContext(ctx, getCourseBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Insert(ctx context.Context, entity *model.CourseEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		`INSERT INTO courses (title, description, type, lessons_count, duration, price_full, price_monthly, price_single, file_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		entity.Title, entity.Description, entity.Type, entity.LessonsCount, entity.Duration,
		entity.PriceFull, entity.PriceMonthly, entity.PriceSingle, entity.FileURL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, entity *model.CourseEntity) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE courses SET title = ?, description = ?, type = ?, lessons_count = ?, duration = ?,
		 price_full = ?, price_monthly = ?, price_single = ?, file_url = ? WHERE id = ?`,
		entity.Title, entity.Description, entity.Type, entity.LessonsCount, entity.Duration,
		entity.PriceFull, entity.PriceMonthly, entity.PriceSingle, entity.FileURL, entity.ID)
	return err
}

// Delete removes the entry; lessons cascade via the foreign key.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM courses")
	return count, err
}

func (s *SQL) ListLessons(ctx context.Context, courseID uint64) ([]model.LessonEntity, error) {
	var lessons []model.LessonEntity
	err := s.conn.SelectContext(ctx, &lessons,
		getLessonBase+" WHERE course_id = ? ORDER BY order_num", courseID)
	return lessons, err
}

func (s *SQL) ListLessonIDsTx(ctx context.Context, tx *sqlx.Tx, courseID uint64) ([]uint64, error) {
	var ids []uint64
	err := tx.SelectContext(ctx, &ids, "SELECT id FROM lessons WHERE course_id = ?", courseID)
	return ids, err
}

func (s *SQL) DeleteLessonTx(ctx context.Context, tx *sqlx.Tx, lessonID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM lessons WHERE id = ?", lessonID)
	return err
}

func (s *SQL) UpdateLessonTx(ctx context.Context, tx *sqlx.Tx, lesson *model.LessonEntity) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE lessons SET title = ?, video_url = ?, order_num = ? WHERE id = ? AND course_id = ?",
		lesson.Title, lesson.VideoURL, lesson.OrderNum, lesson.ID, lesson.CourseID)
	return err
}

func (s *SQL) InsertLessonTx(ctx context.Context, tx *sqlx.Tx, lesson *model.LessonEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO lessons (course_id, title, video_url, order_num) VALUES (?, ?, ?, ?)",
		lesson.CourseID, lesson.Title, lesson.VideoURL, lesson.OrderNum)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) SetLessonsCountTx(ctx context.Context, tx *sqlx.Tx, courseID uint64, count int) error {
	_, err := tx.ExecContext(ctx, "UPDATE courses SET lessons_count = ? WHERE id = ?", count, courseID)
	return err
}
