package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	apperrors "github.com/muhammadheryan/course-platform/utils/errors"
)

func (h *Handler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	data := query.Data
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	switch {
	case strings.HasPrefix(data, "course_"):
		h.showCourseDetail(ctx, query, parseIDSuffix(data, "course_"))
	case strings.HasPrefix(data, "buy_"):
		h.showPaymentTypes(ctx, query, parseIDSuffix(data, "buy_"))
	case strings.HasPrefix(data, "pay_"):
		h.startPurchase(ctx, query)
	case strings.HasPrefix(data, "confirm_"):
		h.startProofSession(ctx, query, parseIDSuffix(data, "confirm_"))
	case strings.HasPrefix(data, "mycourse_"):
		h.showOwnedCourse(ctx, query, parseIDSuffix(data, "mycourse_"))
	case strings.HasPrefix(data, "complete_"):
		h.requestCompletion(ctx, query, parseIDSuffix(data, "complete_"))
	case data == "toggle_notifications":
		h.toggleNotifications(ctx, query)
	case data == "back_main":
		_, _ = h.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
		out := tgbotapi.NewMessage(chatID, "Asosiy menyu:")
		out.ReplyMarkup = mainMenuKeyboard()
		h.send(out)
		h.answerCallback(query.ID, "", false)
	case data == "back_courses":
		entries, err := h.catalogApp.List(ctx, "")
		if err != nil {
			h.answerCallback(query.ID, genericErrorText, false)
			return
		}
		h.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, "📚 Mavjud kurslar:", coursesKeyboard(entries)))
		h.answerCallback(query.ID, "", false)
	default:
		h.answerCallback(query.ID, "", false)
	}
}

func parseIDSuffix(data, prefix string) uint64 {
	id, _ := strconv.ParseUint(strings.TrimPrefix(data, prefix), 10, 64)
	return id
}

func errType(err error) (constant.ErrorType, bool) {
	cerr, ok := err.(apperrors.CustomError)
	if !ok {
		return 0, false
	}
	return cerr.Type(), true
}

func (h *Handler) showCourseDetail(ctx context.Context, query *tgbotapi.CallbackQuery, courseID uint64) {
	course, err := h.catalogApp.Get(ctx, courseID)
	if err != nil {
		if t, ok := errType(err); ok && t == constant.ErrNotFound {
			h.answerCallback(query.ID, "Kurs topilmadi", false)
			return
		}
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}

	h.send(tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		courseDetailsText(course), courseDetailKeyboard(courseID),
	))
	h.answerCallback(query.ID, "", false)
}

func (h *Handler) showPaymentTypes(ctx context.Context, query *tgbotapi.CallbackQuery, courseID uint64) {
	course, err := h.catalogApp.Get(ctx, courseID)
	if err != nil {
		h.answerCallback(query.ID, "Kurs topilmadi", false)
		return
	}

	h.send(tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		"💳 To'lov turini tanlang:\n\n"+course.Title, paymentTypesKeyboard(course),
	))
	h.answerCallback(query.ID, "", false)
}

// startPurchase handles pay_<plan>_<id>: the purchase row is created pending
// and the card details go out with a confirmation button.
func (h *Handler) startPurchase(ctx context.Context, query *tgbotapi.CallbackQuery) {
	parts := strings.SplitN(query.Data, "_", 3)
	if len(parts) != 3 {
		h.answerCallback(query.ID, "", false)
		return
	}
	plan := constant.PaymentType(parts[1])
	courseID, _ := strconv.ParseUint(parts[2], 10, 64)

	entity, course, err := h.purchaseApp.Create(ctx, query.From.ID, courseID, plan)
	if err != nil {
		if t, ok := errType(err); ok {
			switch t {
			case constant.ErrDuplicatePurchase:
				h.answerCallback(query.ID, "Siz bu kursni allaqachon sotib olgansiz!", true)
				return
			case constant.ErrPriceNotOffered:
				h.answerCallback(query.ID, "Bu to'lov turi mavjud emas", true)
				return
			}
		}
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		paymentInfoText(course, entity, h.cfg.Telegram.CardNumber, h.cfg.Telegram.CardHolder),
		confirmPaymentKeyboard(entity.ID),
	)
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(edit)
	h.answerCallback(query.ID, "", false)
}

func (h *Handler) startProofSession(ctx context.Context, query *tgbotapi.CallbackQuery, purchaseID uint64) {
	if err := h.purchaseApp.BeginProofSession(ctx, query.From.ID, purchaseID); err != nil {
		if t, ok := errType(err); ok && t == constant.ErrPurchaseStateConflict {
			h.answerCallback(query.ID, "Bu buyurtma allaqachon yuborilgan", true)
			return
		}
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}

	h.send(tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, proofPromptText))
	h.answerCallback(query.ID, "", false)
}

// showOwnedCourse delivers the content of an actively owned entry: the file
// link for books and videos, the lesson list for courses.
func (h *Handler) showOwnedCourse(ctx context.Context, query *tgbotapi.CallbackQuery, courseID uint64) {
	chatID := query.Message.Chat.ID

	owned, err := h.purchaseApp.ListActive(ctx, query.From.ID)
	if err != nil {
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}
	var active bool
	for i := range owned {
		if owned[i].CourseID == courseID {
			active = true
			break
		}
	}
	if !active {
		h.answerCallback(query.ID, "Kurs topilmadi", true)
		return
	}

	course, err := h.catalogApp.Get(ctx, courseID)
	if err != nil {
		h.answerCallback(query.ID, "Kurs topilmadi", false)
		return
	}

	icon := courseIcon(course.Type)

	switch course.Type {
	case constant.CourseTypeBook:
		if course.FileURL == nil || *course.FileURL == "" {
			h.answerCallback(query.ID, "Kitob fayli topilmadi", true)
			return
		}
		out := tgbotapi.NewMessage(chatID, icon+" <b>"+course.Title+"</b>\n\n📖 Kitobni yuklab olish:\n"+*course.FileURL)
		out.ParseMode = tgbotapi.ModeHTML
		h.send(out)

	case constant.CourseTypeVideo:
		if course.FileURL == nil || *course.FileURL == "" {
			h.answerCallback(query.ID, "Video topilmadi", true)
			return
		}
		out := tgbotapi.NewMessage(chatID, icon+" <b>"+course.Title+"</b>\n\n🎥 Video:\n"+*course.FileURL+"\n\n⏱ Davomiyligi: "+course.Duration)
		out.ParseMode = tgbotapi.ModeHTML
		h.send(out)

	default:
		lessons, err := h.catalogApp.Lessons(ctx, courseID)
		if err != nil {
			h.answerCallback(query.ID, genericErrorText, false)
			return
		}
		if len(lessons) == 0 {
			h.answerCallback(query.ID, "Darslar hali yuklanmagan", true)
			return
		}

		out := tgbotapi.NewMessage(chatID, lessonsText(course, lessons))
		out.ParseMode = tgbotapi.ModeHTML
		out.DisableWebPagePreview = true
		out.ReplyMarkup = lessonsKeyboard(courseID)
		h.send(out)
	}

	h.answerCallback(query.ID, "", false)
}

func (h *Handler) requestCompletion(ctx context.Context, query *tgbotapi.CallbackQuery, courseID uint64) {
	if _, err := h.completionApp.Request(ctx, query.From.ID, courseID); err != nil {
		if t, ok := errType(err); ok && t == constant.ErrCompletionPending {
			h.answerCallback(query.ID, "⏳ So'rovingiz allaqachon yuborilgan. Admin ko'rib chiqmoqda.", true)
			return
		}
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}
	h.answerCallback(query.ID, "✅ So'rovingiz yuborildi! Admin tekshirgandan so'ng xabar beramiz.", true)
}

func (h *Handler) toggleNotifications(ctx context.Context, query *tgbotapi.CallbackQuery) {
	user, err := h.userRepo.Get(ctx, &model.UserFilter{TelegramID: query.From.ID})
	if err != nil || user == nil {
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}

	enabled := !user.NotificationsEnabled
	if err := h.userRepo.SetNotifications(ctx, query.From.ID, enabled); err != nil {
		h.answerCallback(query.ID, genericErrorText, false)
		return
	}

	if enabled {
		h.answerCallback(query.ID, "🔔 Bildirishnomalar yoqildi", true)
	} else {
		h.answerCallback(query.ID, "🔕 Bildirishnomalar o'chirildi", true)
	}
}
