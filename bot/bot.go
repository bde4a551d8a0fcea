package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	catalogapp "github.com/muhammadheryan/course-platform/application/catalog"
	completionapp "github.com/muhammadheryan/course-platform/application/completion"
	purchaseapp "github.com/muhammadheryan/course-platform/application/purchase"
	registrationapp "github.com/muhammadheryan/course-platform/application/registration"
	"github.com/muhammadheryan/course-platform/cmd/config"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

// Handler owns the long-polling loop and routes chat updates to the
// application layer. One update is processed at a time, which keeps message
// ordering per identity deterministic.
type Handler struct {
	cfg             *config.Config
	bot             *tgbotapi.BotAPI
	notifier        *telegram.BotNotifier
	registrationApp registrationapp.RegistrationApp
	catalogApp      catalogapp.CatalogApp
	purchaseApp     purchaseapp.PurchaseApp
	completionApp   completionapp.CompletionApp
	userRepo        userrepo.UserRepository
}

func NewHandler(
	cfg *config.Config,
	notifier *telegram.BotNotifier,
	registrationApp registrationapp.RegistrationApp,
	catalogApp catalogapp.CatalogApp,
	purchaseApp purchaseapp.PurchaseApp,
	completionApp completionapp.CompletionApp,
	userRepo userrepo.UserRepository,
) *Handler {
	return &Handler{
		cfg:             cfg,
		notifier:        notifier,
		registrationApp: registrationApp,
		catalogApp:      catalogApp,
		purchaseApp:     purchaseApp,
		completionApp:   completionApp,
		userRepo:        userRepo,
	}
}

// Run connects, publishes the handle to the notifier and polls until ctx is
// cancelled.
func (h *Handler) Run(ctx context.Context) error {
	bot, err := tgbotapi.NewBotAPI(h.cfg.Telegram.BotToken)
	if err != nil {
		return err
	}
	h.bot = bot
	h.notifier.Attach(bot)

	logger.Info("telegram bot connected", zap.String("username", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		logger.Warn("[send] telegram send failed", zap.Error(err))
	}
}

func (h *Handler) sendText(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) answerCallback(id, text string, alert bool) {
	cb := tgbotapi.NewCallback(id, text)
	cb.ShowAlert = alert
	if _, err := h.bot.Request(cb); err != nil {
		logger.Warn("[answerCallback] failed", zap.Error(err))
	}
}
