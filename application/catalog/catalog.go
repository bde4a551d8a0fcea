package catalog

import (
	"context"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	catalogrepo "github.com/muhammadheryan/course-platform/repository/catalog"
	txrepo "github.com/muhammadheryan/course-platform/repository/tx"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	List(ctx context.Context, kind constant.CourseType) ([]model.CourseEntity, error)
	Get(ctx context.Context, id uint64) (*model.CourseEntity, error)
	Create(ctx context.Context, req *model.CourseRequest) (*model.CourseEntity, error)
	Update(ctx context.Context, id uint64, req *model.CourseRequest) (*model.CourseEntity, error)
	Delete(ctx context.Context, id uint64) error
	Lessons(ctx context.Context, courseID uint64) ([]model.LessonEntity, error)
	ReplaceLessons(ctx context.Context, courseID uint64, incoming []model.LessonInput) ([]model.LessonEntity, error)
}

type catalogAppImpl struct {
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{txRepo: txRepo, catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) List(ctx context.Context, kind constant.CourseType) ([]model.CourseEntity, error) {
	entries, err := s.catalogRepo.List(ctx, &model.CourseFilter{Type: kind})
	if err != nil {
		logger.Error("[List] err catalogRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entries, nil
}

func (s *catalogAppImpl) Get(ctx context.Context, id uint64) (*model.CourseEntity, error) {
	entry, err := s.catalogRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Get] err catalogRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entry == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entry, nil
}

func (s *catalogAppImpl) Create(ctx context.Context, req *model.CourseRequest) (*model.CourseEntity, error) {
	entity := entityFromRequest(req)

	id, err := s.catalogRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[Create] err catalogRepo.Insert", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *catalogAppImpl) Update(ctx context.Context, id uint64, req *model.CourseRequest) (*model.CourseEntity, error) {
	existing, err := s.catalogRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Update] err catalogRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := entityFromRequest(req)
	entity.ID = id
	// For courses the count is derived from the lesson list, not the form.
	if entity.Type == constant.CourseTypeCourse {
		entity.LessonsCount = existing.LessonsCount
	}

	if err := s.catalogRepo.Update(ctx, entity); err != nil {
		logger.Error("[Update] err catalogRepo.Update", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *catalogAppImpl) Delete(ctx context.Context, id uint64) error {
	existing, err := s.catalogRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Delete] err catalogRepo.Get", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	// Lessons cascade via the foreign key declaration.
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err catalogRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) Lessons(ctx context.Context, courseID uint64) ([]model.LessonEntity, error) {
	lessons, err := s.catalogRepo.ListLessons(ctx, courseID)
	if err != nil {
		logger.Error("[Lessons] err catalogRepo.ListLessons", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lessons, nil
}

// ReplaceLessons is the admin panel's "save lessons" diff-and-apply: rows
// absent from the incoming list are deleted, rows with an id are updated,
// rows without one are inserted, and the parent's lessons_count is
// overwritten with the surviving size. The whole sequence runs in one
// transaction so a partial failure cannot leave the count out of sync.
func (s *catalogAppImpl) ReplaceLessons(ctx context.Context, courseID uint64, incoming []model.LessonInput) ([]model.LessonEntity, error) {
	course, err := s.catalogRepo.Get(ctx, courseID)
	if err != nil {
		logger.Error("[ReplaceLessons] err catalogRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if course == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReplaceLessons] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existingIDs, err := s.catalogRepo.ListLessonIDsTx(ctx, tx, courseID)
	if err != nil {
		logger.Error("[ReplaceLessons] list lesson ids", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	keep := make(map[uint64]bool, len(incoming))
	for _, l := range incoming {
		if l.ID != 0 {
			keep[l.ID] = true
		}
	}

	for _, id := range existingIDs {
		if keep[id] {
			continue
		}
		if err := s.catalogRepo.DeleteLessonTx(ctx, tx, id); err != nil {
			logger.Error("[ReplaceLessons] delete lesson", zap.Uint64("lesson_id", id), zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	result := make([]model.LessonEntity, 0, len(incoming))
	for i, l := range incoming {
		orderNum := l.OrderNum
		if orderNum == 0 {
			orderNum = i + 1
		}
		lesson := model.LessonEntity{
			ID:       l.ID,
			CourseID: courseID,
			Title:    l.Title,
			VideoURL: l.VideoURL,
			OrderNum: orderNum,
		}

		if lesson.ID != 0 {
			if err := s.catalogRepo.UpdateLessonTx(ctx, tx, &lesson); err != nil {
				logger.Error("[ReplaceLessons] update lesson", zap.Uint64("lesson_id", lesson.ID), zap.Error(err))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		} else {
			id, err := s.catalogRepo.InsertLessonTx(ctx, tx, &lesson)
			if err != nil {
				logger.Error("[ReplaceLessons] insert lesson", zap.Error(err))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			lesson.ID = id
		}
		result = append(result, lesson)
	}

	if err := s.catalogRepo.SetLessonsCountTx(ctx, tx, courseID, len(result)); err != nil {
		logger.Error("[ReplaceLessons] set lessons count", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReplaceLessons] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return result, nil
}

// entityFromRequest applies the kind rules at the API boundary: a course
// ignores the single-item price, books and videos ignore lesson count and
// the monthly plan. Storage itself stays permissive.
func entityFromRequest(req *model.CourseRequest) *model.CourseEntity {
	entity := &model.CourseEntity{
		Title:        req.Title,
		Description:  req.Description,
		Type:         constant.CourseType(req.Type),
		LessonsCount: req.LessonsCount,
		Duration:     req.Duration,
		PriceFull:    req.PriceFull,
		PriceMonthly: req.PriceMonthly,
		PriceSingle:  req.PriceSingle,
		FileURL:      req.FileURL,
	}

	switch entity.Type {
	case constant.CourseTypeCourse:
		entity.PriceSingle = 0
	case constant.CourseTypeBook, constant.CourseTypeVideo:
		entity.LessonsCount = 0
		entity.PriceMonthly = 0
	}
	return entity
}
