package bot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/muhammadheryan/course-platform/utils/logger"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrImageSize = 500

// sendQR issues the user's attendance QR code. The token is generated once
// per user; afterwards the same image is re-sent. The code encodes the
// public student URL that resolves the token and logs the scan.
func (h *Handler) sendQR(ctx context.Context, chatID, telegramID int64) {
	user, err := h.userRepo.Get(ctx, &model.UserFilter{TelegramID: telegramID})
	if err != nil {
		h.sendText(chatID, genericErrorText)
		return
	}
	if user == nil || !user.Registered() {
		h.sendText(chatID, "Iltimos, avval /start buyrug'i bilan ro'yxatdan o'ting.")
		return
	}

	token := ""
	if user.QRGenerated && user.QRToken != nil {
		token = *user.QRToken
	} else {
		token = uuid.NewString()
		err := h.userRepo.IssueQRToken(ctx, telegramID, token)
		if err == sql.ErrNoRows {
			// Lost the issue race; the stored token wins.
			user, err = h.userRepo.Get(ctx, &model.UserFilter{TelegramID: telegramID})
			if err != nil || user == nil || user.QRToken == nil {
				h.sendText(chatID, genericErrorText)
				return
			}
			token = *user.QRToken
		} else if err != nil {
			logger.Error("[sendQR] err IssueQRToken", zap.Error(err))
			h.sendText(chatID, genericErrorText)
			return
		}
	}

	path := filepath.Join(h.cfg.Upload.QRDir, fmt.Sprintf("qr-%d.png", telegramID))
	if _, err := os.Stat(path); err != nil {
		if err := os.MkdirAll(h.cfg.Upload.QRDir, 0o755); err != nil {
			logger.Error("[sendQR] err MkdirAll", zap.Error(err))
			h.sendText(chatID, genericErrorText)
			return
		}
		url := h.cfg.Upload.BaseURL + "/student/" + token
		if err := qrcode.WriteFile(url, qrcode.High, qrImageSize, path); err != nil {
			logger.Error("[sendQR] err qrcode.WriteFile", zap.Error(err))
			h.sendText(chatID, genericErrorText)
			return
		}
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = "🆔 Sizning QR kodingiz.\n\nDarsga kelganda shu kodni ko'rsating."
	h.send(photo)
}
