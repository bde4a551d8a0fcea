package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/muhammadheryan/course-platform/utils/errors"
)

func (s *RestHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.PurchaseApp.ListDetails(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmPurchase handler
// @Summary Confirm a payment
// @Description Moves the purchase to paid and notifies the buyer. A failed notification is reported in the body, not as an error
// @Tags Purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} model.ModerationResult
// @Failure 409 {object} errors.CustomError
// @Router /api/purchases/{id}/confirm [post]
func (s *RestHandler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseApp.Confirm(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) RejectPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Body is optional; an empty reason is allowed.
	var req model.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseApp.Reject(ctx, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
