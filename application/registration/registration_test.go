package registration_test

import (
	"context"
	"errors"
	"testing"

	appregistration "github.com/muhammadheryan/course-platform/application/registration"
	"github.com/muhammadheryan/course-platform/constant"
	usermocks "github.com/muhammadheryan/course-platform/mocks/repository/user"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func registeredUser(telegramID int64) *model.UserEntity {
	st := constant.StudentTypeNew
	return &model.UserEntity{
		ID:          7,
		TelegramID:  telegramID,
		FullName:    strPtr("Aziz Karimov"),
		Phone:       strPtr("+998901234567"),
		StudentType: &st,
	}
}

func TestRegistrationApp_Start(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx        context.Context
		telegramID int64
		username   string
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		mockCall     func(f fields)
		wantErr      bool
		wantMainMenu bool
		wantInFlow   bool
	}{
		{
			name:   "new user: row created and name prompt issued",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args:   args{ctx: context.Background(), telegramID: 100, username: "aziz"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{TelegramID: int64(100)}).
					Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, int64(100), "aziz").
					Return(&model.UserEntity{ID: 1, TelegramID: 100, Username: strPtr("aziz")}, nil).Once()
			},
			wantInFlow: true,
		},
		{
			name:   "registered user short-circuits with greeting",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args:   args{ctx: context.Background(), telegramID: 100, username: ""},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{TelegramID: int64(100)}).
					Return(registeredUser(100), nil).Once()
			},
			wantMainMenu: true,
		},
		{
			name:   "repo error bubbles up",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args:   args{ctx: context.Background(), telegramID: 100, username: "aziz"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appregistration.NewRegistrationApp(tt.fields.userRepo)

			reply, err := app.Start(tt.args.ctx, tt.args.telegramID, tt.args.username)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if reply.ShowMainMenu != tt.wantMainMenu {
				t.Fatalf("ShowMainMenu = %v, want %v", reply.ShowMainMenu, tt.wantMainMenu)
			}
			if app.InProgress(tt.args.telegramID) != tt.wantInFlow {
				t.Fatalf("InProgress = %v, want %v", app.InProgress(tt.args.telegramID), tt.wantInFlow)
			}
		})
	}
}

// Walks the whole machine: name, invalid phone, contact card, wrong choice,
// then the experience button. Nothing but the minimal row must be written
// before the terminal commit.
func TestRegistrationApp_FullFlow(t *testing.T) {
	ctx := context.Background()
	userRepo := usermocks.NewUserRepository(t)
	app := appregistration.NewRegistrationApp(userRepo)

	userRepo.On("Get", mock.Anything, &model.UserFilter{TelegramID: int64(200)}).
		Return(nil, nil).Once()
	userRepo.On("Create", mock.Anything, int64(200), "gulnora").
		Return(&model.UserEntity{ID: 2, TelegramID: 200}, nil).Once()

	if _, err := app.Start(ctx, 200, "gulnora"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Too short, must re-prompt without advancing.
	reply, err := app.HandleText(ctx, 200, "Al")
	if err != nil {
		t.Fatalf("HandleText(name) error = %v", err)
	}
	if reply.AskContact {
		t.Fatal("short name must not advance to the phone step")
	}

	reply, err = app.HandleText(ctx, 200, "Gulnora Tosheva")
	if err != nil {
		t.Fatalf("HandleText(name) error = %v", err)
	}
	if !reply.AskContact {
		t.Fatal("accepted name must ask for the phone number")
	}

	// Bad phone keeps the contact keyboard up.
	reply, err = app.HandleText(ctx, 200, "not-a-phone")
	if err != nil {
		t.Fatalf("HandleText(phone) error = %v", err)
	}
	if !reply.AskContact || reply.AskExperience {
		t.Fatal("invalid phone must re-prompt for the phone")
	}

	reply, err = app.HandleContact(ctx, 200, "90 123 45 67")
	if err != nil {
		t.Fatalf("HandleContact() error = %v", err)
	}
	if !reply.AskExperience {
		t.Fatal("accepted phone must ask the experience question")
	}

	// Free text instead of one of the two buttons.
	reply, err = app.HandleText(ctx, 200, "ha")
	if err != nil {
		t.Fatalf("HandleText(experience) error = %v", err)
	}
	if !reply.AskExperience {
		t.Fatal("unknown choice must re-prompt the experience question")
	}

	userRepo.On("CompleteRegistration", mock.Anything, &model.CompleteRegistrationItem{
		TelegramID:  200,
		FullName:    "Gulnora Tosheva",
		Phone:       "+998901234567",
		StudentType: constant.StudentTypeNew,
	}).Return(nil).Once()

	reply, err = app.HandleText(ctx, 200, appregistration.ChoiceNewStudent)
	if err != nil {
		t.Fatalf("HandleText(experience) error = %v", err)
	}
	if !reply.RegisteredNow || !reply.ShowMainMenu {
		t.Fatalf("terminal reply = %+v, want RegisteredNow with main menu", reply)
	}
	if app.InProgress(200) {
		t.Fatal("session must be cleared after the commit")
	}
}

func TestRegistrationApp_CommitFailureDiscardsSession(t *testing.T) {
	ctx := context.Background()
	userRepo := usermocks.NewUserRepository(t)
	app := appregistration.NewRegistrationApp(userRepo)

	userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
	userRepo.On("Create", mock.Anything, int64(300), "").
		Return(&model.UserEntity{ID: 3, TelegramID: 300}, nil).Once()

	if _, err := app.Start(ctx, 300, ""); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := app.HandleText(ctx, 300, "Bobur Aliyev"); err != nil {
		t.Fatalf("HandleText(name) error = %v", err)
	}
	if _, err := app.HandleText(ctx, 300, "+998907654321"); err != nil {
		t.Fatalf("HandleText(phone) error = %v", err)
	}

	userRepo.On("CompleteRegistration", mock.Anything, mock.Anything).
		Return(errors.New("db error")).Once()

	reply, err := app.HandleText(ctx, 300, appregistration.ChoiceCompletedBefore)
	if err != nil {
		t.Fatalf("HandleText(experience) error = %v", err)
	}
	if reply.RegisteredNow || reply.ShowMainMenu {
		t.Fatalf("failed commit must not report success, got %+v", reply)
	}
	if app.InProgress(300) {
		t.Fatal("failed commit must discard the session")
	}
}

func TestRegistrationApp_HandleTextWithoutSession(t *testing.T) {
	app := appregistration.NewRegistrationApp(usermocks.NewUserRepository(t))

	reply, err := app.HandleText(context.Background(), 400, "hello")
	if err != nil {
		t.Fatalf("HandleText() error = %v", err)
	}
	if reply != nil {
		t.Fatalf("reply = %+v, want nil for an identity with no session", reply)
	}
}
