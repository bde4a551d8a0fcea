package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
)

// StudentScan resolves a QR token to the student's profile and active courses
// and logs the scan as attendance. The URL is what the QR code encodes.
func (s *RestHandler) StudentScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := mux.Vars(r)["token"]
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserRepo.Get(ctx, &model.UserFilter{QRToken: token})
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	if user == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	if err := s.UserRepo.LogQRScan(ctx, user.ID); err != nil {
		logger.Warn("[StudentScan] scan not logged", zap.Uint64("user_id", user.ID), zap.Error(err))
	}

	courses, err := s.PurchaseApp.ListActive(ctx, user.TelegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Name    string                 `json:"name"`
		Phone   *string                `json:"phone,omitempty"`
		Courses []model.ActivePurchase `json:"courses"`
	}{
		Name:    user.DisplayName(),
		Phone:   user.Phone,
		Courses: courses,
	})
}
