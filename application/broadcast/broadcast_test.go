package broadcast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appbroadcast "github.com/muhammadheryan/course-platform/application/broadcast"
	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	redismocks "github.com/muhammadheryan/course-platform/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/course-platform/mocks/repository/user"
	telegrammocks "github.com/muhammadheryan/course-platform/mocks/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/model"
	cerr "github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

func broadcastConfig() *config.Config {
	return &config.Config{
		Broadcast: config.BroadcastConfig{SendDelay: time.Millisecond},
	}
}

func TestBroadcastApp_Stats(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	userRepo.On("ListNotifiable", mock.Anything).
		Return([]model.UserEntity{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

	app := appbroadcast.NewBroadcastApp(broadcastConfig(), userRepo,
		redismocks.NewRepository(t), telegrammocks.NewNotifier(t))

	got, err := app.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.Audience != 3 {
		t.Fatalf("Audience = %d, want 3", got.Audience)
	}
}

func TestBroadcastApp_Test(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		notifier := telegrammocks.NewNotifier(t)
		notifier.On("SendText", int64(42), "salom", "HTML").Return(nil).Once()

		app := appbroadcast.NewBroadcastApp(broadcastConfig(), usermocks.NewUserRepository(t),
			redismocks.NewRepository(t), notifier)

		err := app.Test(context.Background(), 42, &model.BroadcastRequest{Message: "salom", Type: "text"})
		if err != nil {
			t.Fatalf("Test() error = %v", err)
		}
	})

	t.Run("photo message", func(t *testing.T) {
		notifier := telegrammocks.NewNotifier(t)
		notifier.On("SendPhoto", int64(42), "/tmp/banner.jpg", "salom").Return(nil).Once()

		app := appbroadcast.NewBroadcastApp(broadcastConfig(), usermocks.NewUserRepository(t),
			redismocks.NewRepository(t), notifier)

		err := app.Test(context.Background(), 42, &model.BroadcastRequest{
			Message:   "salom",
			Type:      "photo",
			PhotoPath: "/tmp/banner.jpg",
		})
		if err != nil {
			t.Fatalf("Test() error = %v", err)
		}
	})
}

func TestBroadcastApp_Send(t *testing.T) {
	t.Run("error: another broadcast holds the lock", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		redisRepo.On("AcquireBroadcastLock", mock.Anything, time.Hour).Return(false, nil).Once()

		app := appbroadcast.NewBroadcastApp(broadcastConfig(), usermocks.NewUserRepository(t),
			redisRepo, telegrammocks.NewNotifier(t))

		_, err := app.Send(context.Background(), &model.BroadcastRequest{Message: "salom", Type: "text"})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrBroadcastRunning] {
			t.Fatalf("error = %v, want broadcast running", err)
		}
	})

	t.Run("audience listing failure releases the lock", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		userRepo := usermocks.NewUserRepository(t)
		redisRepo.On("AcquireBroadcastLock", mock.Anything, time.Hour).Return(true, nil).Once()
		userRepo.On("ListNotifiable", mock.Anything).Return(nil, errors.New("db error")).Once()
		redisRepo.On("ReleaseBroadcastLock", mock.Anything).Return(nil).Once()

		app := appbroadcast.NewBroadcastApp(broadcastConfig(), userRepo,
			redisRepo, telegrammocks.NewNotifier(t))

		_, err := app.Send(context.Background(), &model.BroadcastRequest{Message: "salom", Type: "text"})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error = %v, want internal", err)
		}
	})

	t.Run("success reports the snapshot size immediately", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		userRepo := usermocks.NewUserRepository(t)
		redisRepo.On("AcquireBroadcastLock", mock.Anything, time.Hour).Return(true, nil).Once()
		userRepo.On("ListNotifiable", mock.Anything).Return([]model.UserEntity{}, nil).Once()
		// The release happens on the background goroutine; it may or may not
		// land before this subtest's cleanup runs.
		redisRepo.On("ReleaseBroadcastLock", mock.Anything).Return(nil).Maybe()

		app := appbroadcast.NewBroadcastApp(broadcastConfig(), userRepo,
			redisRepo, telegrammocks.NewNotifier(t))

		got, err := app.Send(context.Background(), &model.BroadcastRequest{Message: "salom", Type: "text"})
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if got.Total != 0 || !got.Started {
			t.Fatalf("response = %+v, want started with an empty audience", got)
		}
		// Give the background run a moment so the lock release is observed.
		time.Sleep(20 * time.Millisecond)
	})
}
