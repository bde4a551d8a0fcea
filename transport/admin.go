package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	utilsContext "github.com/muhammadheryan/course-platform/utils/context"
	"github.com/muhammadheryan/course-platform/utils/errors"
	validatorx "github.com/muhammadheryan/course-platform/utils/validator"
)

func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.UserRepo.List(ctx)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AdminApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.Create(ctx, adminID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAdmin handler
// @Summary Delete an operator account
// @Description Refuses to delete the primary account and self-deletion
// @Tags Admins
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} object
// @Failure 400 {object} errors.CustomError
// @Router /api/admins/{id} [delete]
func (s *RestHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.Delete(ctx, adminID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Deleted bool `json:"deleted"`
	}{Deleted: true})
}

func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateProfile(ctx, adminID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Updated bool `json:"updated"`
	}{Updated: true})
}

func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.ChangePassword(ctx, adminID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Updated bool `json:"updated"`
	}{Updated: true})
}

func (s *RestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AdminApp.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// BotStatus reports whether the bot side of the process is polling.
func (s *RestHandler) BotStatus(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, struct {
		Running bool `json:"running"`
	}{Running: s.Notifier != nil && s.Notifier.Available()})
}
