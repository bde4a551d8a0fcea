package purchase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	purchaserepo "github.com/muhammadheryan/course-platform/repository/purchase"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/rabbitmq"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"github.com/muhammadheryan/course-platform/utils/upload"
	"go.uber.org/zap"
)

// ProofMessage is the shape of an inbound chat message while a proof session
// is open. At most one of the attachment fields is set by the delivery layer.
type ProofMessage struct {
	PhotoData    []byte
	PhotoName    string
	DocumentData []byte
	DocumentName string
	Text         string
}

// ProofResult reports how a proof submission went. PromptAgain means the
// message had no usable shape and the session stays open.
type ProofResult struct {
	Accepted    bool
	PromptAgain bool
	PurchaseID  uint64
}

type PurchaseApp interface {
	Create(ctx context.Context, telegramID int64, courseID uint64, plan constant.PaymentType) (*model.PurchaseEntity, *model.CourseEntity, error)
	BeginProofSession(ctx context.Context, telegramID int64, purchaseID uint64) error
	AwaitingProof(telegramID int64) (uint64, bool)
	SubmitProof(ctx context.Context, telegramID int64, msg *ProofMessage) (*ProofResult, error)
	ListActive(ctx context.Context, telegramID int64) ([]model.ActivePurchase, error)
	ListDetails(ctx context.Context) ([]model.PurchaseDetail, error)
	Confirm(ctx context.Context, purchaseID uint64) (*model.ModerationResult, error)
	Reject(ctx context.Context, purchaseID uint64, reason string) (*model.ModerationResult, error)
}

type purchaseAppImpl struct {
	config       *config.Config
	purchaseRepo purchaserepo.PurchaseRepository
	userRepo     userrepo.UserRepository
	catalogGet   func(ctx context.Context, id uint64) (*model.CourseEntity, error)
	notifier     telegram.Notifier
	publisher    *rabbitmq.Publisher

	mu            sync.Mutex
	proofSessions map[int64]uint64
}

func NewPurchaseApp(
	cfg *config.Config,
	purchaseRepo purchaserepo.PurchaseRepository,
	userRepo userrepo.UserRepository,
	catalogGet func(ctx context.Context, id uint64) (*model.CourseEntity, error),
	notifier telegram.Notifier,
	publisher *rabbitmq.Publisher,
) PurchaseApp {
	return &purchaseAppImpl{
		config:        cfg,
		purchaseRepo:  purchaseRepo,
		userRepo:      userRepo,
		catalogGet:    catalogGet,
		notifier:      notifier,
		publisher:     publisher,
		proofSessions: make(map[int64]uint64),
	}
}

// Create runs the selection transition: duplicate guard first, then the row
// is inserted in state pending with the amount resolved from the chosen
// plan's price field. Monthly plans get expires_at = now + 30 days.
func (s *purchaseAppImpl) Create(ctx context.Context, telegramID int64, courseID uint64, plan constant.PaymentType) (*model.PurchaseEntity, *model.CourseEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{TelegramID: telegramID})
	if err != nil {
		logger.Error("[Create] err userRepo.Get", zap.Error(err))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, nil, errors.SetCustomError(constant.ErrNotFound)
	}

	course, err := s.catalogGet(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}

	amount := course.PriceFor(plan)
	if amount <= 0 {
		return nil, nil, errors.SetCustomError(constant.ErrPriceNotOffered)
	}

	active, err := s.purchaseRepo.HasActivePaid(ctx, user.ID, courseID)
	if err != nil {
		logger.Error("[Create] err HasActivePaid", zap.Error(err))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	if active {
		return nil, nil, errors.SetCustomError(constant.ErrDuplicatePurchase)
	}

	item := &model.InsertPurchaseItem{
		UserID:      user.ID,
		CourseID:    courseID,
		PaymentType: plan,
		Amount:      amount,
		Status:      constant.PurchaseStatusPending,
	}
	if plan == constant.PaymentTypeMonthly {
		expiresAt := time.Now().Add(s.config.Purchase.MonthlyDuration)
		item.ExpiresAt = &expiresAt
	}

	id, err := s.purchaseRepo.Insert(ctx, item)
	if err != nil {
		logger.Error("[Create] err purchaseRepo.Insert", zap.Error(err))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.PurchaseEntity{
		ID:          id,
		UserID:      user.ID,
		CourseID:    courseID,
		PaymentType: plan,
		Amount:      amount,
		Status:      constant.PurchaseStatusPending,
		ExpiresAt:   item.ExpiresAt,
	}
	return entity, course, nil
}

// BeginProofSession ties the chat identity to the purchase awaiting proof.
// The session map is mutated before any asynchronous work, which keeps
// per-identity message ordering deterministic.
func (s *purchaseAppImpl) BeginProofSession(ctx context.Context, telegramID int64, purchaseID uint64) error {
	moved, err := s.purchaseRepo.UpdateStatus(ctx, purchaseID,
		constant.PurchaseStatusPending, constant.PurchaseStatusAwaitingProof)
	if err != nil {
		logger.Error("[BeginProofSession] err UpdateStatus", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return errors.SetCustomError(constant.ErrPurchaseStateConflict)
	}

	s.mu.Lock()
	s.proofSessions[telegramID] = purchaseID
	s.mu.Unlock()
	return nil
}

func (s *purchaseAppImpl) AwaitingProof(telegramID int64) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.proofSessions[telegramID]
	return id, ok
}

// SubmitProof classifies the inbound message in priority order: image
// attachment, then file attachment, then bare URL. The first matching shape
// wins. Binary attachments are persisted under a generated filename; a URL
// is stored as-is. Anything else re-prompts and keeps the session open.
func (s *purchaseAppImpl) SubmitProof(ctx context.Context, telegramID int64, msg *ProofMessage) (*ProofResult, error) {
	s.mu.Lock()
	purchaseID, ok := s.proofSessions[telegramID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var (
		proofRef  string
		proofKind constant.ProofKind
	)

	switch {
	case len(msg.PhotoData) > 0:
		path, err := upload.Save(s.config.Upload.ReceiptDir, msg.PhotoName, msg.PhotoData)
		if err != nil {
			logger.Error("[SubmitProof] err save photo", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		proofRef, proofKind = path, constant.ProofKindPhoto
	case len(msg.DocumentData) > 0:
		path, err := upload.Save(s.config.Upload.ReceiptDir, msg.DocumentName, msg.DocumentData)
		if err != nil {
			logger.Error("[SubmitProof] err save document", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		proofRef, proofKind = path, constant.ProofKindDocument
	case isBareURL(msg.Text):
		proofRef, proofKind = strings.TrimSpace(msg.Text), constant.ProofKindLink
	default:
		return &ProofResult{PromptAgain: true, PurchaseID: purchaseID}, nil
	}

	err := s.purchaseRepo.AttachProof(ctx, &model.AttachProofItem{
		PurchaseID: purchaseID,
		ProofRef:   proofRef,
		ProofKind:  proofKind,
	})
	if err != nil {
		logger.Error("[SubmitProof] err AttachProof", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.mu.Lock()
	delete(s.proofSessions, telegramID)
	s.mu.Unlock()

	return &ProofResult{Accepted: true, PurchaseID: purchaseID}, nil
}

func (s *purchaseAppImpl) ListActive(ctx context.Context, telegramID int64) ([]model.ActivePurchase, error) {
	purchases, err := s.purchaseRepo.ListActiveByTelegramID(ctx, telegramID)
	if err != nil {
		logger.Error("[ListActive] err ListActiveByTelegramID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return purchases, nil
}

func (s *purchaseAppImpl) ListDetails(ctx context.Context) ([]model.PurchaseDetail, error) {
	details, err := s.purchaseRepo.ListDetails(ctx)
	if err != nil {
		logger.Error("[ListDetails] err purchaseRepo.ListDetails", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return details, nil
}

// Confirm moves the purchase to paid and notifies the user. A bridge failure
// does not roll anything back: the result carries a warning instead. The
// status move is a compare-and-swap on the loaded state, so a concurrent
// confirm/reject surfaces as a conflict.
func (s *purchaseAppImpl) Confirm(ctx context.Context, purchaseID uint64) (*model.ModerationResult, error) {
	detail, err := s.loadForModeration(ctx, purchaseID, constant.PurchaseStatusPaid)
	if err != nil {
		return nil, err
	}

	moved, err := s.purchaseRepo.UpdateStatus(ctx, purchaseID, detail.Status, constant.PurchaseStatusPaid)
	if err != nil {
		logger.Error("[Confirm] err UpdateStatus", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrPurchaseStateConflict)
	}

	if s.publisher != nil && detail.PaymentType == constant.PaymentTypeMonthly && detail.ExpiresAt != nil {
		err := s.publisher.PublishSubscriptionExpiry(rabbitmq.SubscriptionExpiryMessage{
			PurchaseID: purchaseID,
			UserID:     detail.UserID,
			TelegramID: detail.TelegramID,
			ExpiresAt:  *detail.ExpiresAt,
		})
		if err != nil {
			logger.Error("[Confirm] publish subscription expiry", zap.Error(err))
		}
	}

	result := &model.ModerationResult{
		PurchaseID: purchaseID,
		Status:     string(constant.PurchaseStatusPaid),
		Notified:   true,
	}

	text := fmt.Sprintf("🎉 Tabriklaymiz!\n\n✅ Sizning to'lovingiz tasdiqlandi!\n\n%s Kurs: <b>%s</b>\n💰 Summa: %.0f so'm\n\nKursni ko'rish uchun \"🎓 Mening kurslarim\" bo'limiga o'ting.\n\nOmad tilaymiz! 🚀",
		courseIcon(detail.CourseType), detail.CourseTitle, detail.Amount)
	if err := s.notifier.SendText(detail.TelegramID, text, "HTML"); err != nil {
		logger.Warn("[Confirm] notification failed", zap.Uint64("purchase_id", purchaseID), zap.Error(err))
		result.Notified = false
		result.Warning = "payment confirmed, but the user notification failed: " + err.Error()
	}
	return result, nil
}

// Reject is symmetric to Confirm, optionally carrying the operator's reason.
func (s *purchaseAppImpl) Reject(ctx context.Context, purchaseID uint64, reason string) (*model.ModerationResult, error) {
	detail, err := s.loadForModeration(ctx, purchaseID, constant.PurchaseStatusRejected)
	if err != nil {
		return nil, err
	}

	moved, err := s.purchaseRepo.UpdateStatus(ctx, purchaseID, detail.Status, constant.PurchaseStatusRejected)
	if err != nil {
		logger.Error("[Reject] err UpdateStatus", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrPurchaseStateConflict)
	}

	result := &model.ModerationResult{
		PurchaseID: purchaseID,
		Status:     string(constant.PurchaseStatusRejected),
		Notified:   true,
	}

	text := fmt.Sprintf("❌ To'lov rad etildi\n\n📝 Buyurtma raqami: #%d\n📚 Kurs: %s", purchaseID, detail.CourseTitle)
	if reason != "" {
		text += "\n\n📋 Sabab: " + reason
	}
	text += "\n\nIltimos, to'lovni qaytadan amalga oshiring yoki qo'llab-quvvatlash xizmatiga murojaat qiling."

	if err := s.notifier.SendText(detail.TelegramID, text, "HTML"); err != nil {
		logger.Warn("[Reject] notification failed", zap.Uint64("purchase_id", purchaseID), zap.Error(err))
		result.Notified = false
		result.Warning = "payment rejected, but the user notification failed: " + err.Error()
	}
	return result, nil
}

func (s *purchaseAppImpl) loadForModeration(ctx context.Context, purchaseID uint64, target constant.PurchaseStatus) (*model.PurchaseDetail, error) {
	detail, err := s.purchaseRepo.GetDetail(ctx, purchaseID)
	if err != nil {
		logger.Error("[loadForModeration] err GetDetail", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if detail.Status == target {
		return nil, errors.SetCustomError(constant.ErrPurchaseStateConflict)
	}
	return detail, nil
}

// isBareURL accepts only a single http(s) link with nothing around it.
func isBareURL(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || strings.ContainsAny(t, " \n\t") {
		return false
	}
	return strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://")
}

func courseIcon(kind constant.CourseType) string {
	switch kind {
	case constant.CourseTypeBook:
		return "📖"
	case constant.CourseTypeVideo:
		return "🎥"
	}
	return "📚"
}
