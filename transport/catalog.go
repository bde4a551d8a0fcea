package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	"github.com/muhammadheryan/course-platform/utils/errors"
	validatorx "github.com/muhammadheryan/course-platform/utils/validator"
)

// ListCourses handler
// @Summary List catalog entries
// @Description List courses, books and videos, optionally filtered by type
// @Tags Catalog
// @Produce json
// @Param type query string false "course | book | video"
// @Success 200 {array} model.CourseEntity
// @Router /api/courses [get]
func (s *RestHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := constant.CourseType(r.URL.Query().Get("type"))
	switch kind {
	case "", constant.CourseTypeCourse, constant.CourseTypeBook, constant.CourseTypeVideo:
	default:
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CatalogApp.List(ctx, kind)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CatalogApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CatalogApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Deleted bool `json:"deleted"`
	}{Deleted: true})
}

func (s *RestHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.Lessons(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReplaceLessons handler
// @Summary Replace a course's lesson list
// @Description Diffs the submitted list against stored lessons: known ids are updated, new entries inserted, missing rows deleted
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body model.ReplaceLessonsRequest true "Lessons"
// @Success 200 {array} model.LessonEntity
// @Router /api/courses/{id}/lessons [put]
func (s *RestHandler) ReplaceLessons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReplaceLessonsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CatalogApp.ReplaceLessons(ctx, id, req.Lessons)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
