package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	utilsContext "github.com/muhammadheryan/course-platform/utils/context"
	"github.com/muhammadheryan/course-platform/utils/errors"
)

func (s *RestHandler) ListCompletions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.CompletionApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ApproveCompletion(w http.ResponseWriter, r *http.Request) {
	s.reviewCompletion(w, r, constant.CompletionStatusApproved)
}

func (s *RestHandler) RejectCompletion(w http.ResponseWriter, r *http.Request) {
	s.reviewCompletion(w, r, constant.CompletionStatusRejected)
}

func (s *RestHandler) reviewCompletion(w http.ResponseWriter, r *http.Request, status constant.CompletionStatus) {
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

	var req model.ReviewCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var res *model.ModerationResult
	if status == constant.CompletionStatusApproved {
		res, err = s.CompletionApp.Approve(ctx, adminID, id, req.Comment)
	} else {
		res, err = s.CompletionApp.Reject(ctx, adminID, id, req.Comment)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
