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

// Login handler
// @Summary Operator login
// @Description Login with username and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AdminApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Verify confirms the bearer token is still a live session.
func (s *RestHandler) Verify(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utilsContext.GetAdminID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, struct {
		Valid   bool   `json:"valid"`
		AdminID uint64 `json:"admin_id"`
	}{Valid: true, AdminID: adminID})
}

func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AdminApp.Me(ctx, adminID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
