package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appcatalog "github.com/muhammadheryan/course-platform/application/catalog"
	"github.com/muhammadheryan/course-platform/constant"
	catalogmocks "github.com/muhammadheryan/course-platform/mocks/repository/catalog"
	txmocks "github.com/muhammadheryan/course-platform/mocks/repository/tx"
	"github.com/muhammadheryan/course-platform/model"
	cerr "github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_Get(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		catalogRepo *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("Get", mock.Anything, uint64(10)).
					Return(&model.CourseEntity{ID: 10, Title: "Notiqlik asoslari"}, nil).Once()
			},
		},
		{
			name: "error: missing entry",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("Get", mock.Anything, uint64(10)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repo failure",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("Get", mock.Anything, uint64(10)).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(tt.fields.txRepo, tt.fields.catalogRepo)

			got, err := app.Get(context.Background(), 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.ID != 10 {
				t.Fatalf("ID = %d, want 10", got.ID)
			}
		})
	}
}

// The kind rules live at the API boundary: a course never carries a
// single-item price, books and videos never carry lesson counts or a
// monthly plan.
func TestCatalogApp_Create_KindRules(t *testing.T) {
	tests := []struct {
		name             string
		req              *model.CourseRequest
		wantPriceSingle  float64
		wantPriceMonthly float64
		wantLessonsCount int
	}{
		{
			name: "course drops the single price",
			req: &model.CourseRequest{
				Title:        "Notiqlik asoslari",
				Type:         "course",
				LessonsCount: 12,
				PriceFull:    500000,
				PriceMonthly: 100000,
				PriceSingle:  50000,
			},
			wantPriceMonthly: 100000,
			wantLessonsCount: 12,
		},
		{
			name: "book drops lesson count and monthly plan",
			req: &model.CourseRequest{
				Title:        "Nutq san'ati",
				Type:         "book",
				LessonsCount: 5,
				PriceFull:    80000,
				PriceMonthly: 20000,
				PriceSingle:  80000,
			},
			wantPriceSingle: 80000,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			catalogRepo := catalogmocks.NewCatalogRepository(t)
			catalogRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *model.CourseEntity) bool {
				return e.PriceSingle == tt.wantPriceSingle &&
					e.PriceMonthly == tt.wantPriceMonthly &&
					e.LessonsCount == tt.wantLessonsCount
			})).Return(uint64(11), nil).Once()

			app := appcatalog.NewCatalogApp(txmocks.NewTxRepository(t), catalogRepo)

			got, err := app.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if got.ID != 11 {
				t.Fatalf("ID = %d, want 11", got.ID)
			}
		})
	}
}

func TestCatalogApp_Update_CoursePreservesLessonCount(t *testing.T) {
	catalogRepo := catalogmocks.NewCatalogRepository(t)
	catalogRepo.On("Get", mock.Anything, uint64(10)).
		Return(&model.CourseEntity{ID: 10, Type: constant.CourseTypeCourse, LessonsCount: 8}, nil).Once()
	catalogRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *model.CourseEntity) bool {
		// The form cannot override the derived count.
		return e.ID == 10 && e.LessonsCount == 8
	})).Return(nil).Once()

	app := appcatalog.NewCatalogApp(txmocks.NewTxRepository(t), catalogRepo)

	_, err := app.Update(context.Background(), 10, &model.CourseRequest{
		Title:        "Notiqlik asoslari 2.0",
		Type:         "course",
		LessonsCount: 99,
		PriceFull:    600000,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestCatalogApp_ReplaceLessons(t *testing.T) {
	course := &model.CourseEntity{ID: 10, Type: constant.CourseTypeCourse}

	t.Run("diff is applied in one transaction", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		tx := &sqlx.Tx{}

		catalogRepo.On("Get", mock.Anything, uint64(10)).Return(course, nil).Once()
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		// Rows 1 and 3 vanish from the payload, row 2 survives.
		catalogRepo.On("ListLessonIDsTx", mock.Anything, tx, uint64(10)).
			Return([]uint64{1, 2, 3}, nil).Once()
		catalogRepo.On("DeleteLessonTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
		catalogRepo.On("DeleteLessonTx", mock.Anything, tx, uint64(3)).Return(nil).Once()

		catalogRepo.On("UpdateLessonTx", mock.Anything, tx, mock.MatchedBy(func(l *model.LessonEntity) bool {
			return l.ID == 2 && l.Title == "Kirish" && l.OrderNum == 1
		})).Return(nil).Once()
		catalogRepo.On("InsertLessonTx", mock.Anything, tx, mock.MatchedBy(func(l *model.LessonEntity) bool {
			return l.ID == 0 && l.Title == "Amaliyot" && l.OrderNum == 2
		})).Return(uint64(4), nil).Once()

		catalogRepo.On("SetLessonsCountTx", mock.Anything, tx, uint64(10), 2).Return(nil).Once()

		app := appcatalog.NewCatalogApp(txRepo, catalogRepo)

		got, err := app.ReplaceLessons(context.Background(), 10, []model.LessonInput{
			{ID: 2, Title: "Kirish"},
			{Title: "Amaliyot"},
		})
		if err != nil {
			t.Fatalf("ReplaceLessons() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[1].ID != 4 {
			t.Fatalf("inserted lesson ID = %d, want 4", got[1].ID)
		}
	})

	t.Run("error: BeginTx failure", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		catalogRepo := catalogmocks.NewCatalogRepository(t)

		catalogRepo.On("Get", mock.Anything, uint64(10)).Return(course, nil).Once()
		txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()

		app := appcatalog.NewCatalogApp(txRepo, catalogRepo)

		_, err := app.ReplaceLessons(context.Background(), 10, nil)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error = %v, want internal", err)
		}
	})

	t.Run("error: mid-transaction failure rolls back", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		tx := &sqlx.Tx{}

		catalogRepo.On("Get", mock.Anything, uint64(10)).Return(course, nil).Once()
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		catalogRepo.On("ListLessonIDsTx", mock.Anything, tx, uint64(10)).
			Return(nil, errors.New("db error")).Once()

		app := appcatalog.NewCatalogApp(txRepo, catalogRepo)

		_, err := app.ReplaceLessons(context.Background(), 10, nil)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error = %v, want internal", err)
		}
	})

	t.Run("error: unknown course", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		catalogRepo := catalogmocks.NewCatalogRepository(t)

		catalogRepo.On("Get", mock.Anything, uint64(10)).Return(nil, nil).Once()

		app := appcatalog.NewCatalogApp(txRepo, catalogRepo)

		_, err := app.ReplaceLessons(context.Background(), 10, nil)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error = %v, want not found", err)
		}
	})
}

func TestCatalogApp_Delete(t *testing.T) {
	catalogRepo := catalogmocks.NewCatalogRepository(t)
	catalogRepo.On("Get", mock.Anything, uint64(10)).
		Return(&model.CourseEntity{ID: 10}, nil).Once()
	catalogRepo.On("Delete", mock.Anything, uint64(10)).Return(nil).Once()

	app := appcatalog.NewCatalogApp(txmocks.NewTxRepository(t), catalogRepo)

	if err := app.Delete(context.Background(), 10); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
