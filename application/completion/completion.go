package completion

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	completionrepo "github.com/muhammadheryan/course-platform/repository/completion"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

type CompletionApp interface {
	Request(ctx context.Context, telegramID int64, courseID uint64) (uint64, error)
	List(ctx context.Context) ([]model.CompletionDetail, error)
	Approve(ctx context.Context, reviewerID, requestID uint64, comment string) (*model.ModerationResult, error)
	Reject(ctx context.Context, reviewerID, requestID uint64, comment string) (*model.ModerationResult, error)
}

type completionAppImpl struct {
	completionRepo completionrepo.CompletionRepository
	userRepo       userrepo.UserRepository
	notifier       telegram.Notifier
}

func NewCompletionApp(completionRepo completionrepo.CompletionRepository, userRepo userrepo.UserRepository, notifier telegram.Notifier) CompletionApp {
	return &completionAppImpl{
		completionRepo: completionRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// Request files the user's claim of having finished a course. Only one
// pending request per (user, course) may exist.
func (s *completionAppImpl) Request(ctx context.Context, telegramID int64, courseID uint64) (uint64, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{TelegramID: telegramID})
	if err != nil {
		logger.Error("[Request] err userRepo.Get", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	pending, err := s.completionRepo.HasPending(ctx, user.ID, courseID)
	if err != nil {
		logger.Error("[Request] err HasPending", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if pending {
		return 0, errors.SetCustomError(constant.ErrCompletionPending)
	}

	id, err := s.completionRepo.Insert(ctx, user.ID, courseID)
	if err != nil {
		logger.Error("[Request] err completionRepo.Insert", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *completionAppImpl) List(ctx context.Context) ([]model.CompletionDetail, error) {
	details, err := s.completionRepo.ListDetails(ctx)
	if err != nil {
		logger.Error("[List] err completionRepo.ListDetails", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return details, nil
}

func (s *completionAppImpl) Approve(ctx context.Context, reviewerID, requestID uint64, comment string) (*model.ModerationResult, error) {
	return s.review(ctx, reviewerID, requestID, constant.CompletionStatusApproved, comment)
}

func (s *completionAppImpl) Reject(ctx context.Context, reviewerID, requestID uint64, comment string) (*model.ModerationResult, error) {
	return s.review(ctx, reviewerID, requestID, constant.CompletionStatusRejected, comment)
}

func (s *completionAppImpl) review(ctx context.Context, reviewerID, requestID uint64, status constant.CompletionStatus, comment string) (*model.ModerationResult, error) {
	detail, err := s.completionRepo.GetDetail(ctx, requestID)
	if err != nil {
		logger.Error("[review] err GetDetail", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	reviewed, err := s.completionRepo.Review(ctx, requestID, status, comment, reviewerID)
	if err != nil {
		logger.Error("[review] err Review", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !reviewed {
		return nil, errors.SetCustomError(constant.ErrPurchaseStateConflict)
	}

	result := &model.ModerationResult{
		PurchaseID: requestID,
		Status:     string(status),
		Notified:   true,
	}

	var text string
	if status == constant.CompletionStatusApproved {
		text = fmt.Sprintf("🎓 Tabriklaymiz! \"%s\" kursini tugatganingiz tasdiqlandi!", detail.CourseTitle)
	} else {
		text = fmt.Sprintf("❌ \"%s\" kursi bo'yicha so'rovingiz rad etildi.", detail.CourseTitle)
	}
	if comment != "" {
		text += "\n\n📋 Izoh: " + comment
	}

	if err := s.notifier.SendText(detail.TelegramID, text, ""); err != nil {
		logger.Warn("[review] notification failed", zap.Uint64("request_id", requestID), zap.Error(err))
		result.Notified = false
		result.Warning = "review saved, but the user notification failed: " + err.Error()
	}
	return result, nil
}
