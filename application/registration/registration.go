package registration

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"github.com/muhammadheryan/course-platform/utils/phone"
	"go.uber.org/zap"
)

// Onboarding session states. Nothing is persisted before the terminal
// commit; interim answers live only in the per-identity session map.
type State string

const (
	StateAwaitingFullName   State = "awaiting_full_name"
	StateAwaitingPhone      State = "awaiting_phone"
	StateAwaitingExperience State = "awaiting_experience"
)

// The two fixed reply choices gating the prior-experience step.
const (
	ChoiceCompletedBefore = "✅ Oldin o'qib bitirganman"
	ChoiceNewStudent      = "🆕 Yangi o'quvchiman"
)

// Reply tells the delivery layer what to send and which keyboard to show.
type Reply struct {
	Text              string
	AskContact        bool
	AskExperience     bool
	ShowMainMenu      bool
	RegisteredNow     bool
	AlreadyRegistered bool
}

type RegistrationApp interface {
	Start(ctx context.Context, telegramID int64, username string) (*Reply, error)
	InProgress(telegramID int64) bool
	HandleText(ctx context.Context, telegramID int64, text string) (*Reply, error)
	HandleContact(ctx context.Context, telegramID int64, phoneNumber string) (*Reply, error)
}

type session struct {
	state    State
	fullName string
	phone    string
}

type registrationAppImpl struct {
	userRepo userrepo.UserRepository

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewRegistrationApp(userRepo userrepo.UserRepository) RegistrationApp {
	return &registrationAppImpl{
		userRepo: userRepo,
		sessions: make(map[int64]*session),
	}
}

// Start handles first contact (or any /start). A known, fully registered
// user short-circuits with a greeting; otherwise a minimal row is created
// and the machine enters awaiting_full_name.
func (s *registrationAppImpl) Start(ctx context.Context, telegramID int64, username string) (*Reply, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{TelegramID: telegramID})
	if err != nil {
		logger.Error("[Start] err userRepo.Get", zap.Error(err))
		return nil, err
	}

	if user == nil {
		user, err = s.userRepo.Create(ctx, telegramID, username)
		if err != nil {
			logger.Error("[Start] err userRepo.Create", zap.Error(err))
			return nil, err
		}
	} else if username != "" && (user.Username == nil || *user.Username == "") {
		// Opportunistic handle backfill on re-contact.
		if err := s.userRepo.UpdateUsername(ctx, telegramID, username); err != nil {
			logger.Warn("[Start] err userRepo.UpdateUsername", zap.Error(err))
		}
	}

	if user.Registered() {
		s.clear(telegramID)
		return &Reply{
			Text:              fmt.Sprintf("Xush kelibsiz, %s! 👋", user.DisplayName()),
			ShowMainMenu:      true,
			AlreadyRegistered: true,
		}, nil
	}

	s.mu.Lock()
	s.sessions[telegramID] = &session{state: StateAwaitingFullName}
	s.mu.Unlock()

	return &Reply{
		Text: "Assalomu alaykum! Najot Nurning\n\"Nutq orqali insonlarga ta'sir o'tkazish\" loyihasiga xush kelibsiz! 🎓\n\nIltimos, ismingizni yozing:",
	}, nil
}

func (s *registrationAppImpl) InProgress(telegramID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[telegramID]
	return ok
}

func (s *registrationAppImpl) HandleText(ctx context.Context, telegramID int64, text string) (*Reply, error) {
	s.mu.Lock()
	sess, ok := s.sessions[telegramID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	switch sess.state {
	case StateAwaitingFullName:
		return s.handleName(telegramID, sess, text)
	case StateAwaitingPhone:
		return s.handlePhone(telegramID, sess, text)
	case StateAwaitingExperience:
		return s.handleExperience(ctx, telegramID, sess, text)
	}
	return nil, nil
}

// HandleContact accepts a shared contact card while awaiting the phone.
func (s *registrationAppImpl) HandleContact(ctx context.Context, telegramID int64, phoneNumber string) (*Reply, error) {
	s.mu.Lock()
	sess, ok := s.sessions[telegramID]
	s.mu.Unlock()
	if !ok || sess.state != StateAwaitingPhone {
		return nil, nil
	}
	return s.handlePhone(telegramID, sess, phoneNumber)
}

func (s *registrationAppImpl) handleName(telegramID int64, sess *session, text string) (*Reply, error) {
	if utf8.RuneCountInString(text) < 3 {
		return &Reply{Text: "Iltimos, to'liq ismingizni yozing (kamida 3 ta harf):"}, nil
	}

	sess.fullName = text
	sess.state = StateAwaitingPhone

	return &Reply{
		Text:       fmt.Sprintf("Rahmat, %s! 😊\n\nEndi telefon raqamingizni yuboring:\n(masalan: +998901234567)", text),
		AskContact: true,
	}, nil
}

func (s *registrationAppImpl) handlePhone(telegramID int64, sess *session, input string) (*Reply, error) {
	normalized, ok := phone.Normalize(input)
	if !ok {
		return &Reply{
			Text:       "❌ Telefon raqami noto'g'ri formatda.\n\nIltimos, qaytadan yuboring (masalan: +998901234567):",
			AskContact: true,
		}, nil
	}

	sess.phone = normalized
	sess.state = StateAwaitingExperience

	return &Reply{
		Text:          "Ajoyib! Oxirgi savol:\n\nIlgari bizning kurslarimizda o'qiganmisiz?",
		AskExperience: true,
	}, nil
}

func (s *registrationAppImpl) handleExperience(ctx context.Context, telegramID int64, sess *session, text string) (*Reply, error) {
	var studentType constant.StudentType
	switch text {
	case ChoiceCompletedBefore:
		studentType = constant.StudentTypeCompletedBefore
	case ChoiceNewStudent:
		studentType = constant.StudentTypeNew
	default:
		return &Reply{
			Text:          "Iltimos, quyidagi tugmalardan birini tanlang:",
			AskExperience: true,
		}, nil
	}

	// Terminal commit: name, phone and classification in one UPDATE. On
	// failure the session is discarded and the user restarts from /start.
	err := s.userRepo.CompleteRegistration(ctx, &model.CompleteRegistrationItem{
		TelegramID:  telegramID,
		FullName:    sess.fullName,
		Phone:       sess.phone,
		StudentType: studentType,
	})
	if err != nil {
		logger.Error("[handleExperience] err CompleteRegistration", zap.Error(err))
		s.clear(telegramID)
		return &Reply{
			Text: "❌ Xatolik yuz berdi. Iltimos, /start buyrug'i bilan qaytadan boshlang.",
		}, nil
	}

	s.clear(telegramID)

	return &Reply{
		Text:          fmt.Sprintf("✅ Ro'yxatdan o'tdingiz, %s!\n\nEndi siz quyidagi bo'limlardan foydalanishingiz mumkin:", sess.fullName),
		ShowMainMenu:  true,
		RegisteredNow: true,
	}, nil
}

func (s *registrationAppImpl) clear(telegramID int64) {
	s.mu.Lock()
	delete(s.sessions, telegramID)
	s.mu.Unlock()
}
