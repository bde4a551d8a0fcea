package transport

import (
	"io"
	"net/http"
	"strconv"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/upload"
	validatorx "github.com/muhammadheryan/course-platform/utils/validator"
)

const maxBroadcastUpload = 10 << 20

func (s *RestHandler) BroadcastStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.BroadcastApp.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// BroadcastTest delivers the message to one chat so the operator can preview
// it before sending to everyone. The target chat id comes from the form.
func (s *RestHandler) BroadcastTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, chatID, err := s.parseBroadcastForm(r, true)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.BroadcastApp.Test(ctx, chatID, req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Sent bool `json:"sent"`
	}{Sent: true})
}

// BroadcastSend handler
// @Summary Start a broadcast
// @Description Snapshots the opted-in audience and sends in the background. Returns the audience size immediately
// @Tags Broadcast
// @Accept mpfd
// @Produce json
// @Param message formData string true "Message text or caption"
// @Param type formData string true "text | photo"
// @Param photo formData file false "Photo for type=photo"
// @Success 200 {object} model.BroadcastResponse
// @Failure 409 {object} errors.CustomError
// @Router /api/broadcast/send [post]
func (s *RestHandler) BroadcastSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, _, err := s.parseBroadcastForm(r, false)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BroadcastApp.Send(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) parseBroadcastForm(r *http.Request, wantChatID bool) (*model.BroadcastRequest, int64, error) {
	if err := r.ParseMultipartForm(maxBroadcastUpload); err != nil {
		return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	req := &model.BroadcastRequest{
		Message: r.FormValue("message"),
		Type:    r.FormValue("type"),
	}

	var chatID int64
	if wantChatID {
		id, err := strconv.ParseInt(r.FormValue("chat_id"), 10, 64)
		if err != nil || id == 0 {
			return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		chatID = id
	}

	if req.Type == "photo" {
		file, header, err := r.FormFile("photo")
		if err != nil {
			return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}

		path, err := upload.Save(s.Config.Upload.BroadcastDir, header.Filename, data)
		if err != nil {
			return nil, 0, errors.SetCustomError(constant.ErrInternal)
		}
		req.PhotoPath = path
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	return req, chatID, nil
}
