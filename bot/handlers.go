package bot

import (
	"context"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/muhammadheryan/course-platform/application/purchase"
	"github.com/muhammadheryan/course-platform/application/registration"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

// isReservedInput reports whether the text is a command or a fixed menu
// label. Reserved inputs always route to their handler, even mid-session.
func isReservedInput(text string) bool {
	switch text {
	case "/start", MenuCourses, MenuBooks, MenuVideos, MenuMyCourses, MenuMyQR, MenuSettings:
		return true
	}
	return false
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	telegramID := msg.From.ID

	if msg.Text == "/start" {
		h.handleStart(ctx, msg)
		return
	}

	if msg.Text != "" && isReservedInput(msg.Text) {
		h.handleMenu(ctx, chatID, telegramID, msg.Text)
		return
	}

	// Shared contact card feeds the registration phone step.
	if msg.Contact != nil && h.registrationApp.InProgress(telegramID) {
		reply, err := h.registrationApp.HandleContact(ctx, telegramID, msg.Contact.PhoneNumber)
		if err != nil {
			h.sendText(chatID, genericErrorText)
			return
		}
		h.sendRegistrationReply(chatID, reply)
		return
	}

	if _, awaiting := h.purchaseApp.AwaitingProof(telegramID); awaiting {
		h.handleProofMessage(ctx, msg)
		return
	}

	if h.registrationApp.InProgress(telegramID) {
		if msg.Text == "" {
			return
		}
		reply, err := h.registrationApp.HandleText(ctx, telegramID, msg.Text)
		if err != nil {
			h.sendText(chatID, genericErrorText)
			return
		}
		h.sendRegistrationReply(chatID, reply)
		return
	}
}

func (h *Handler) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	reply, err := h.registrationApp.Start(ctx, msg.From.ID, msg.From.UserName)
	if err != nil {
		h.sendText(chatID, genericErrorText)
		return
	}
	h.sendRegistrationReply(chatID, reply)
}

func (h *Handler) sendRegistrationReply(chatID int64, reply *registration.Reply) {
	if reply == nil {
		return
	}

	out := tgbotapi.NewMessage(chatID, reply.Text)
	switch {
	case reply.AskContact:
		out.ReplyMarkup = contactKeyboard()
	case reply.AskExperience:
		out.ReplyMarkup = experienceKeyboard()
	case reply.ShowMainMenu:
		out.ReplyMarkup = mainMenuKeyboard()
	}
	h.send(out)
}

func (h *Handler) handleMenu(ctx context.Context, chatID, telegramID int64, label string) {
	switch label {
	case MenuCourses:
		h.sendCatalog(ctx, chatID, constant.CourseTypeCourse, "📚 Mavjud kurslar:", "Hozircha kurslar mavjud emas.")
	case MenuBooks:
		h.sendCatalog(ctx, chatID, constant.CourseTypeBook, "📖 Mavjud kitoblar:", "Hozircha kitoblar mavjud emas.")
	case MenuVideos:
		h.sendCatalog(ctx, chatID, constant.CourseTypeVideo, "🎥 Mavjud video kurslar:", "Hozircha video kurslar mavjud emas.")
	case MenuMyCourses:
		h.sendMyCourses(ctx, chatID, telegramID)
	case MenuMyQR:
		h.sendQR(ctx, chatID, telegramID)
	case MenuSettings:
		out := tgbotapi.NewMessage(chatID, "⚙️ Sozlamalar:")
		out.ReplyMarkup = settingsKeyboard()
		h.send(out)
	}
}

func (h *Handler) sendCatalog(ctx context.Context, chatID int64, kind constant.CourseType, title, emptyText string) {
	entries, err := h.catalogApp.List(ctx, kind)
	if err != nil {
		h.sendText(chatID, genericErrorText)
		return
	}
	if len(entries) == 0 {
		h.sendText(chatID, emptyText)
		return
	}

	out := tgbotapi.NewMessage(chatID, title)
	out.ReplyMarkup = coursesKeyboard(entries)
	h.send(out)
}

func (h *Handler) sendMyCourses(ctx context.Context, chatID, telegramID int64) {
	purchases, err := h.purchaseApp.ListActive(ctx, telegramID)
	if err != nil {
		h.sendText(chatID, genericErrorText)
		return
	}
	if len(purchases) == 0 {
		h.sendText(chatID, "❌ Sizda hali sotib olingan kurslar yo'q.\n\nKurslarni ko'rish uchun asosiy menyudan tanlang.")
		return
	}

	out := tgbotapi.NewMessage(chatID, "🎓 Sizning kurslaringiz:")
	out.ReplyMarkup = myCoursesKeyboard(purchases)
	h.send(out)
}

// handleProofMessage shapes the inbound message for the proof classifier.
// Photos take the largest rendition; both photos and documents are fetched
// from Telegram's file API before persisting.
func (h *Handler) handleProofMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	proof := &purchase.ProofMessage{Text: msg.Text}

	if len(msg.Photo) > 0 {
		best := msg.Photo[len(msg.Photo)-1]
		data, err := h.downloadFile(best.FileID)
		if err != nil {
			logger.Warn("[handleProofMessage] photo download failed", zap.Error(err))
			h.sendText(chatID, genericErrorText)
			return
		}
		proof.PhotoData = data
		proof.PhotoName = best.FileID + ".jpg"
	} else if msg.Document != nil {
		data, err := h.downloadFile(msg.Document.FileID)
		if err != nil {
			logger.Warn("[handleProofMessage] document download failed", zap.Error(err))
			h.sendText(chatID, genericErrorText)
			return
		}
		proof.DocumentData = data
		proof.DocumentName = msg.Document.FileName
	}

	result, err := h.purchaseApp.SubmitProof(ctx, msg.From.ID, proof)
	if err != nil {
		h.sendText(chatID, genericErrorText)
		return
	}
	if result == nil {
		return
	}

	if result.PromptAgain {
		h.sendText(chatID, proofRepromptText)
		return
	}
	h.sendText(chatID, proofAcceptedText(result.PurchaseID))
}

func (h *Handler) downloadFile(fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(file.Link(h.bot.Token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
