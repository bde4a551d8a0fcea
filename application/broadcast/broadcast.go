package broadcast

import (
	"context"
	"time"

	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	redisrepo "github.com/muhammadheryan/course-platform/repository/redis"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

type BroadcastApp interface {
	Stats(ctx context.Context) (*model.BroadcastStats, error)
	Test(ctx context.Context, chatID int64, req *model.BroadcastRequest) error
	Send(ctx context.Context, req *model.BroadcastRequest) (*model.BroadcastResponse, error)
}

type broadcastAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	notifier  telegram.Notifier
}

func NewBroadcastApp(cfg *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, notifier telegram.Notifier) BroadcastApp {
	return &broadcastAppImpl{
		config:    cfg,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		notifier:  notifier,
	}
}

func (s *broadcastAppImpl) Stats(ctx context.Context) (*model.BroadcastStats, error) {
	users, err := s.userRepo.ListNotifiable(ctx)
	if err != nil {
		logger.Error("[Stats] err ListNotifiable", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.BroadcastStats{Audience: int64(len(users))}, nil
}

// Test delivers the message to a single chat so the operator can preview it.
func (s *broadcastAppImpl) Test(ctx context.Context, chatID int64, req *model.BroadcastRequest) error {
	if err := s.deliver(chatID, req); err != nil {
		if err == telegram.ErrBotUnavailable {
			return errors.SetCustomError(constant.ErrInternal)
		}
		logger.Error("[Test] err deliver", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Send snapshots the opted-in audience, reports the total immediately and
// keeps sending in the background with a fixed inter-send delay. There is no
// cancel path once started; a redis lock refuses overlapping broadcasts.
func (s *broadcastAppImpl) Send(ctx context.Context, req *model.BroadcastRequest) (*model.BroadcastResponse, error) {
	acquired, err := s.redisRepo.AcquireBroadcastLock(ctx, time.Hour)
	if err != nil {
		logger.Error("[Send] err AcquireBroadcastLock", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !acquired {
		return nil, errors.SetCustomError(constant.ErrBroadcastRunning)
	}

	users, err := s.userRepo.ListNotifiable(ctx)
	if err != nil {
		logger.Error("[Send] err ListNotifiable", zap.Error(err))
		_ = s.redisRepo.ReleaseBroadcastLock(ctx)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	go s.run(users, req)

	return &model.BroadcastResponse{Total: len(users), Started: true}, nil
}

func (s *broadcastAppImpl) run(users []model.UserEntity, req *model.BroadcastRequest) {
	var sent, failed int
	for _, u := range users {
		if err := s.deliver(u.TelegramID, req); err != nil {
			failed++
			logger.Warn("[run] send failed", zap.Int64("telegram_id", u.TelegramID), zap.Error(err))
		} else {
			sent++
		}
		time.Sleep(s.config.Broadcast.SendDelay)
	}

	_ = s.redisRepo.ReleaseBroadcastLock(context.Background())
	logger.Info("[run] broadcast finished", zap.Int("sent", sent), zap.Int("failed", failed))
}

func (s *broadcastAppImpl) deliver(chatID int64, req *model.BroadcastRequest) error {
	if req.Type == "photo" && req.PhotoPath != "" {
		return s.notifier.SendPhoto(chatID, req.PhotoPath, req.Message)
	}
	return s.notifier.SendText(chatID, req.Message, "HTML")
}
