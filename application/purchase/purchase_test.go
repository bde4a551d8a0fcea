package purchase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apppurchase "github.com/muhammadheryan/course-platform/application/purchase"
	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	purchasemocks "github.com/muhammadheryan/course-platform/mocks/repository/purchase"
	usermocks "github.com/muhammadheryan/course-platform/mocks/repository/user"
	telegrammocks "github.com/muhammadheryan/course-platform/mocks/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/model"
	cerr "github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig(receiptDir string) *config.Config {
	return &config.Config{
		Purchase: config.PurchaseConfig{MonthlyDuration: 30 * 24 * time.Hour},
		Upload:   config.UploadConfig{ReceiptDir: receiptDir},
	}
}

func testUser(telegramID int64) *model.UserEntity {
	return &model.UserEntity{ID: 5, TelegramID: telegramID}
}

func catalogGetFor(course *model.CourseEntity) func(ctx context.Context, id uint64) (*model.CourseEntity, error) {
	return func(ctx context.Context, id uint64) (*model.CourseEntity, error) {
		if course == nil {
			return nil, cerr.SetCustomError(constant.ErrNotFound)
		}
		return course, nil
	}
}

func TestPurchaseApp_Create(t *testing.T) {
	course := &model.CourseEntity{
		ID:           10,
		Title:        "Notiqlik asoslari",
		Type:         constant.CourseTypeCourse,
		PriceFull:    500000,
		PriceMonthly: 100000,
	}

	type fields struct {
		purchaseRepo *purchasemocks.PurchaseRepository
		userRepo     *usermocks.UserRepository
	}
	type args struct {
		ctx        context.Context
		telegramID int64
		courseID   uint64
		plan       constant.PaymentType
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		wantExpiry bool
	}{
		{
			name: "success: full payment has no expiry",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{ctx: context.Background(), telegramID: 42, courseID: 10, plan: constant.PaymentTypeFull},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{TelegramID: int64(42)}).
					Return(testUser(42), nil).Once()
				f.purchaseRepo.On("HasActivePaid", mock.Anything, uint64(5), uint64(10)).
					Return(false, nil).Once()
				f.purchaseRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *model.InsertPurchaseItem) bool {
					return item.UserID == 5 && item.CourseID == 10 &&
						item.Amount == 500000 && item.Status == constant.PurchaseStatusPending &&
						item.ExpiresAt == nil
				})).Return(uint64(77), nil).Once()
			},
		},
		{
			name: "success: monthly plan sets expiry",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{ctx: context.Background(), telegramID: 42, courseID: 10, plan: constant.PaymentTypeMonthly},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(testUser(42), nil).Once()
				f.purchaseRepo.On("HasActivePaid", mock.Anything, uint64(5), uint64(10)).
					Return(false, nil).Once()
				f.purchaseRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *model.InsertPurchaseItem) bool {
					return item.Amount == 100000 && item.ExpiresAt != nil &&
						item.ExpiresAt.After(time.Now().Add(29*24*time.Hour))
				})).Return(uint64(78), nil).Once()
			},
			wantExpiry: true,
		},
		{
			name: "error: unknown user",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{ctx: context.Background(), telegramID: 42, courseID: 10, plan: constant.PaymentTypeFull},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: single plan is not offered for a course",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{ctx: context.Background(), telegramID: 42, courseID: 10, plan: constant.PaymentTypeSingle},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(testUser(42), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPriceNotOffered,
		},
		{
			name: "error: course already purchased and active",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{ctx: context.Background(), telegramID: 42, courseID: 10, plan: constant.PaymentTypeFull},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(testUser(42), nil).Once()
				f.purchaseRepo.On("HasActivePaid", mock.Anything, uint64(5), uint64(10)).
					Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicatePurchase,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), tt.fields.purchaseRepo,
				tt.fields.userRepo, catalogGetFor(course), telegrammocks.NewNotifier(t), nil)

			entity, got, err := app.Create(tt.args.ctx, tt.args.telegramID, tt.args.courseID, tt.args.plan)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.ID != course.ID {
				t.Fatalf("course ID = %d, want %d", got.ID, course.ID)
			}
			if entity.Status != constant.PurchaseStatusPending {
				t.Fatalf("status = %s, want pending", entity.Status)
			}
			if (entity.ExpiresAt != nil) != tt.wantExpiry {
				t.Fatalf("ExpiresAt set = %v, want %v", entity.ExpiresAt != nil, tt.wantExpiry)
			}
		})
	}
}

func TestPurchaseApp_BeginProofSession(t *testing.T) {
	t.Run("state conflict when the purchase already left pending", func(t *testing.T) {
		purchaseRepo := purchasemocks.NewPurchaseRepository(t)
		purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
			constant.PurchaseStatusPending, constant.PurchaseStatusAwaitingProof).
			Return(false, nil).Once()

		app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), purchaseRepo,
			usermocks.NewUserRepository(t), catalogGetFor(nil), telegrammocks.NewNotifier(t), nil)

		err := app.BeginProofSession(context.Background(), 42, 77)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrPurchaseStateConflict] {
			t.Fatalf("error = %v, want purchase state conflict", err)
		}
		if _, open := app.AwaitingProof(42); open {
			t.Fatal("failed transition must not open a proof session")
		}
	})

	t.Run("success opens the session", func(t *testing.T) {
		purchaseRepo := purchasemocks.NewPurchaseRepository(t)
		purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
			constant.PurchaseStatusPending, constant.PurchaseStatusAwaitingProof).
			Return(true, nil).Once()

		app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), purchaseRepo,
			usermocks.NewUserRepository(t), catalogGetFor(nil), telegrammocks.NewNotifier(t), nil)

		if err := app.BeginProofSession(context.Background(), 42, 77); err != nil {
			t.Fatalf("BeginProofSession() error = %v", err)
		}
		id, open := app.AwaitingProof(42)
		if !open || id != 77 {
			t.Fatalf("AwaitingProof = (%d, %v), want (77, true)", id, open)
		}
	})
}

func TestPurchaseApp_SubmitProof(t *testing.T) {
	newAppWithSession := func(t *testing.T, purchaseRepo *purchasemocks.PurchaseRepository) apppurchase.PurchaseApp {
		purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
			constant.PurchaseStatusPending, constant.PurchaseStatusAwaitingProof).
			Return(true, nil).Once()
		app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), purchaseRepo,
			usermocks.NewUserRepository(t), catalogGetFor(nil), telegrammocks.NewNotifier(t), nil)
		if err := app.BeginProofSession(context.Background(), 42, 77); err != nil {
			t.Fatalf("BeginProofSession() error = %v", err)
		}
		return app
	}

	t.Run("no open session is ignored", func(t *testing.T) {
		app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), purchasemocks.NewPurchaseRepository(t),
			usermocks.NewUserRepository(t), catalogGetFor(nil), telegrammocks.NewNotifier(t), nil)

		res, err := app.SubmitProof(context.Background(), 42, &apppurchase.ProofMessage{Text: "https://pay.example/x"})
		if err != nil || res != nil {
			t.Fatalf("SubmitProof() = (%+v, %v), want (nil, nil)", res, err)
		}
	})

	t.Run("bare URL is accepted and closes the session", func(t *testing.T) {
		purchaseRepo := purchasemocks.NewPurchaseRepository(t)
		app := newAppWithSession(t, purchaseRepo)

		purchaseRepo.On("AttachProof", mock.Anything, &model.AttachProofItem{
			PurchaseID: 77,
			ProofRef:   "https://pay.example/receipt/1",
			ProofKind:  constant.ProofKindLink,
		}).Return(nil).Once()

		res, err := app.SubmitProof(context.Background(), 42, &apppurchase.ProofMessage{
			Text: "  https://pay.example/receipt/1  ",
		})
		if err != nil {
			t.Fatalf("SubmitProof() error = %v", err)
		}
		if !res.Accepted || res.PurchaseID != 77 {
			t.Fatalf("result = %+v, want accepted for purchase 77", res)
		}
		if _, open := app.AwaitingProof(42); open {
			t.Fatal("accepted proof must close the session")
		}
	})

	t.Run("photo attachment is stored on disk", func(t *testing.T) {
		purchaseRepo := purchasemocks.NewPurchaseRepository(t)
		app := newAppWithSession(t, purchaseRepo)

		purchaseRepo.On("AttachProof", mock.Anything, mock.MatchedBy(func(item *model.AttachProofItem) bool {
			return item.PurchaseID == 77 && item.ProofKind == constant.ProofKindPhoto && item.ProofRef != ""
		})).Return(nil).Once()

		res, err := app.SubmitProof(context.Background(), 42, &apppurchase.ProofMessage{
			PhotoData: []byte("fake-jpeg-bytes"),
			PhotoName: "receipt.jpg",
		})
		if err != nil {
			t.Fatalf("SubmitProof() error = %v", err)
		}
		if !res.Accepted {
			t.Fatalf("result = %+v, want accepted", res)
		}
	})

	t.Run("plain text re-prompts and keeps the session", func(t *testing.T) {
		purchaseRepo := purchasemocks.NewPurchaseRepository(t)
		app := newAppWithSession(t, purchaseRepo)

		res, err := app.SubmitProof(context.Background(), 42, &apppurchase.ProofMessage{Text: "to'lab qo'ydim"})
		if err != nil {
			t.Fatalf("SubmitProof() error = %v", err)
		}
		if !res.PromptAgain || res.Accepted {
			t.Fatalf("result = %+v, want re-prompt", res)
		}
		if _, open := app.AwaitingProof(42); !open {
			t.Fatal("re-prompt must keep the session open")
		}
	})
}

func TestPurchaseApp_Confirm(t *testing.T) {
	detail := func() *model.PurchaseDetail {
		return &model.PurchaseDetail{
			PurchaseEntity: model.PurchaseEntity{
				ID:          77,
				UserID:      5,
				CourseID:    10,
				PaymentType: constant.PaymentTypeFull,
				Amount:      500000,
				Status:      constant.PurchaseStatusAwaitingConfirmation,
			},
			CourseTitle: "Notiqlik asoslari",
			CourseType:  constant.CourseTypeCourse,
			TelegramID:  42,
		}
	}

	type fields struct {
		purchaseRepo *purchasemocks.PurchaseRepository
		notifier     *telegrammocks.Notifier
	}
	tests := []struct {
		name         string
		fields       fields
		mockCall     func(f fields)
		wantErr      bool
		errCode      constant.ErrorType
		wantNotified bool
	}{
		{
			name: "success: confirmed and user notified",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				notifier:     telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(detail(), nil).Once()
				f.purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
					constant.PurchaseStatusAwaitingConfirmation, constant.PurchaseStatusPaid).
					Return(true, nil).Once()
				f.notifier.On("SendText", int64(42), mock.Anything, "HTML").Return(nil).Once()
			},
			wantNotified: true,
		},
		{
			name: "success with warning: notification failed",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				notifier:     telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(detail(), nil).Once()
				f.purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
					constant.PurchaseStatusAwaitingConfirmation, constant.PurchaseStatusPaid).
					Return(true, nil).Once()
				f.notifier.On("SendText", int64(42), mock.Anything, "HTML").
					Return(errors.New("chat blocked")).Once()
			},
			wantNotified: false,
		},
		{
			name: "error: purchase not found",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				notifier:     telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: already paid",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				notifier:     telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				d := detail()
				d.Status = constant.PurchaseStatusPaid
				f.purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(d, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPurchaseStateConflict,
		},
		{
			name: "error: concurrent moderation loses the swap",
			fields: fields{
				purchaseRepo: purchasemocks.NewPurchaseRepository(t),
				notifier:     telegrammocks.NewNotifier(t),
			},
			mockCall: func(f fields) {
				f.purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(detail(), nil).Once()
				f.purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
					constant.PurchaseStatusAwaitingConfirmation, constant.PurchaseStatusPaid).
					Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPurchaseStateConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), tt.fields.purchaseRepo,
				usermocks.NewUserRepository(t), catalogGetFor(nil), tt.fields.notifier, nil)

			got, err := app.Confirm(context.Background(), 77)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Confirm() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Status != string(constant.PurchaseStatusPaid) {
				t.Fatalf("status = %s, want paid", got.Status)
			}
			if got.Notified != tt.wantNotified {
				t.Fatalf("Notified = %v, want %v", got.Notified, tt.wantNotified)
			}
			if !tt.wantNotified && got.Warning == "" {
				t.Fatal("a failed notification must surface a warning")
			}
		})
	}
}

func TestPurchaseApp_Reject(t *testing.T) {
	purchaseRepo := purchasemocks.NewPurchaseRepository(t)
	notifier := telegrammocks.NewNotifier(t)

	purchaseRepo.On("GetDetail", mock.Anything, uint64(77)).Return(&model.PurchaseDetail{
		PurchaseEntity: model.PurchaseEntity{
			ID:     77,
			Status: constant.PurchaseStatusAwaitingConfirmation,
		},
		CourseTitle: "Notiqlik asoslari",
		TelegramID:  42,
	}, nil).Once()
	purchaseRepo.On("UpdateStatus", mock.Anything, uint64(77),
		constant.PurchaseStatusAwaitingConfirmation, constant.PurchaseStatusRejected).
		Return(true, nil).Once()
	notifier.On("SendText", int64(42), mock.MatchedBy(func(text string) bool {
		return len(text) > 0
	}), "HTML").Return(nil).Once()

	app := apppurchase.NewPurchaseApp(testConfig(t.TempDir()), purchaseRepo,
		usermocks.NewUserRepository(t), catalogGetFor(nil), notifier, nil)

	got, err := app.Reject(context.Background(), 77, "summa mos kelmadi")
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if got.Status != string(constant.PurchaseStatusRejected) || !got.Notified {
		t.Fatalf("result = %+v, want rejected and notified", got)
	}
}
