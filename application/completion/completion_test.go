package completion_test

import (
	"context"
	"errors"
	"testing"

	appcompletion "github.com/muhammadheryan/course-platform/application/completion"
	"github.com/muhammadheryan/course-platform/constant"
	completionmocks "github.com/muhammadheryan/course-platform/mocks/repository/completion"
	usermocks "github.com/muhammadheryan/course-platform/mocks/repository/user"
	telegrammocks "github.com/muhammadheryan/course-platform/mocks/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/model"
	cerr "github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCompletionApp_Request(t *testing.T) {
	type fields struct {
		completionRepo *completionmocks.CompletionRepository
		userRepo       *usermocks.UserRepository
		notifier       *telegrammocks.Notifier
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantID   uint64
	}{
		{
			name: "success",
			fields: fields{
				completionRepo: completionmocks.NewCompletionRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
				notifier:       telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{TelegramID: int64(42)}).
					Return(&model.UserEntity{ID: 5, TelegramID: 42}, nil).Once()
				f.completionRepo.On("HasPending", mock.Anything, uint64(5), uint64(10)).
					Return(false, nil).Once()
				f.completionRepo.On("Insert", mock.Anything, uint64(5), uint64(10)).
					Return(uint64(31), nil).Once()
			},
			wantID: 31,
		},
		{
			name: "error: request already pending",
			fields: fields{
				completionRepo: completionmocks.NewCompletionRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
				notifier:       telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.UserEntity{ID: 5, TelegramID: 42}, nil).Once()
				f.completionRepo.On("HasPending", mock.Anything, uint64(5), uint64(10)).
					Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCompletionPending,
		},
		{
			name: "error: unknown user",
			fields: fields{
				completionRepo: completionmocks.NewCompletionRepository(t),
				userRepo:       usermocks.NewUserRepository(t),
				notifier:       telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcompletion.NewCompletionApp(tt.fields.completionRepo, tt.fields.userRepo, tt.fields.notifier)

			got, err := app.Request(context.Background(), 42, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Request() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got != tt.wantID {
				t.Fatalf("id = %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestCompletionApp_Approve(t *testing.T) {
	detail := &model.CompletionDetail{
		CompletionRequestEntity: model.CompletionRequestEntity{
			ID:       31,
			UserID:   5,
			CourseID: 10,
			Status:   constant.CompletionStatusPending,
		},
		CourseTitle: "Notiqlik asoslari",
		TelegramID:  42,
	}

	t.Run("success notifies the student", func(t *testing.T) {
		completionRepo := completionmocks.NewCompletionRepository(t)
		notifier := telegrammocks.NewNotifier(t)

		completionRepo.On("GetDetail", mock.Anything, uint64(31)).Return(detail, nil).Once()
		completionRepo.On("Review", mock.Anything, uint64(31),
			constant.CompletionStatusApproved, "barakalla", uint64(2)).Return(true, nil).Once()
		notifier.On("SendText", int64(42), mock.Anything, "").Return(nil).Once()

		app := appcompletion.NewCompletionApp(completionRepo, usermocks.NewUserRepository(t), notifier)

		got, err := app.Approve(context.Background(), 2, 31, "barakalla")
		if err != nil {
			t.Fatalf("Approve() error = %v", err)
		}
		if !got.Notified || got.Status != string(constant.CompletionStatusApproved) {
			t.Fatalf("result = %+v, want approved and notified", got)
		}
	})

	t.Run("notification failure only warns", func(t *testing.T) {
		completionRepo := completionmocks.NewCompletionRepository(t)
		notifier := telegrammocks.NewNotifier(t)

		completionRepo.On("GetDetail", mock.Anything, uint64(31)).Return(detail, nil).Once()
		completionRepo.On("Review", mock.Anything, uint64(31),
			constant.CompletionStatusApproved, "", uint64(2)).Return(true, nil).Once()
		notifier.On("SendText", int64(42), mock.Anything, "").
			Return(errors.New("chat blocked")).Once()

		app := appcompletion.NewCompletionApp(completionRepo, usermocks.NewUserRepository(t), notifier)

		got, err := app.Approve(context.Background(), 2, 31, "")
		if err != nil {
			t.Fatalf("Approve() error = %v", err)
		}
		if got.Notified || got.Warning == "" {
			t.Fatalf("result = %+v, want a warning with Notified false", got)
		}
	})

	t.Run("error: already reviewed", func(t *testing.T) {
		completionRepo := completionmocks.NewCompletionRepository(t)

		completionRepo.On("GetDetail", mock.Anything, uint64(31)).Return(detail, nil).Once()
		completionRepo.On("Review", mock.Anything, uint64(31),
			constant.CompletionStatusApproved, "", uint64(2)).Return(false, nil).Once()

		app := appcompletion.NewCompletionApp(completionRepo, usermocks.NewUserRepository(t), telegrammocks.NewNotifier(t))

		_, err := app.Approve(context.Background(), 2, 31, "")
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrPurchaseStateConflict] {
			t.Fatalf("error = %v, want state conflict", err)
		}
	})

	t.Run("error: unknown request", func(t *testing.T) {
		completionRepo := completionmocks.NewCompletionRepository(t)
		completionRepo.On("GetDetail", mock.Anything, uint64(31)).Return(nil, nil).Once()

		app := appcompletion.NewCompletionApp(completionRepo, usermocks.NewUserRepository(t), telegrammocks.NewNotifier(t))

		_, err := app.Approve(context.Background(), 2, 31, "")
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error = %v, want not found", err)
		}
	})
}

func TestCompletionApp_Reject(t *testing.T) {
	completionRepo := completionmocks.NewCompletionRepository(t)
	notifier := telegrammocks.NewNotifier(t)

	completionRepo.On("GetDetail", mock.Anything, uint64(31)).Return(&model.CompletionDetail{
		CompletionRequestEntity: model.CompletionRequestEntity{
			ID:     31,
			Status: constant.CompletionStatusPending,
		},
		CourseTitle: "Notiqlik asoslari",
		TelegramID:  42,
	}, nil).Once()
	completionRepo.On("Review", mock.Anything, uint64(31),
		constant.CompletionStatusRejected, "darslar tugallanmagan", uint64(2)).Return(true, nil).Once()
	notifier.On("SendText", int64(42), mock.Anything, "").Return(nil).Once()

	app := appcompletion.NewCompletionApp(completionRepo, usermocks.NewUserRepository(t), notifier)

	got, err := app.Reject(context.Background(), 2, 31, "darslar tugallanmagan")
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if got.Status != string(constant.CompletionStatusRejected) {
		t.Fatalf("status = %s, want rejected", got.Status)
	}
}
