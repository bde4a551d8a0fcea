package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/course-platform/application/admin"
	broadcastapp "github.com/muhammadheryan/course-platform/application/broadcast"
	catalogapp "github.com/muhammadheryan/course-platform/application/catalog"
	completionapp "github.com/muhammadheryan/course-platform/application/completion"
	purchaseapp "github.com/muhammadheryan/course-platform/application/purchase"
	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/thirdparty/telegram"
	"github.com/muhammadheryan/course-platform/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config        *config.Config
	AdminApp      adminapp.AdminApp
	CatalogApp    catalogapp.CatalogApp
	PurchaseApp   purchaseapp.PurchaseApp
	CompletionApp completionapp.CompletionApp
	BroadcastApp  broadcastapp.BroadcastApp
	UserRepo      userrepo.UserRepository
	Notifier      telegram.Notifier
}

func NewTransport(
	cfg *config.Config,
	AdminApp adminapp.AdminApp,
	CatalogApp catalogapp.CatalogApp,
	PurchaseApp purchaseapp.PurchaseApp,
	CompletionApp completionapp.CompletionApp,
	BroadcastApp broadcastapp.BroadcastApp,
	UserRepo userrepo.UserRepository,
	Notifier telegram.Notifier,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:        cfg,
		AdminApp:      AdminApp,
		CatalogApp:    CatalogApp,
		PurchaseApp:   PurchaseApp,
		CompletionApp: CompletionApp,
		BroadcastApp:  BroadcastApp,
		UserRepo:      UserRepo,
		Notifier:      Notifier,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth
	mux.HandleFunc("/api/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/verify", rh.Verify).Methods(http.MethodGet)
	mux.HandleFunc("/api/auth/me", rh.Me).Methods(http.MethodGet)

	// Catalog
	mux.HandleFunc("/api/courses", rh.ListCourses).Methods(http.MethodGet)
	mux.HandleFunc("/api/courses", rh.CreateCourse).Methods(http.MethodPost)
	mux.HandleFunc("/api/courses/{id:[0-9]+}", rh.GetCourse).Methods(http.MethodGet)
	mux.HandleFunc("/api/courses/{id:[0-9]+}", rh.UpdateCourse).Methods(http.MethodPut)
	mux.HandleFunc("/api/courses/{id:[0-9]+}", rh.DeleteCourse).Methods(http.MethodDelete)
	mux.HandleFunc("/api/courses/{id:[0-9]+}/lessons", rh.GetLessons).Methods(http.MethodGet)
	mux.HandleFunc("/api/courses/{id:[0-9]+}/lessons", rh.ReplaceLessons).Methods(http.MethodPut)

	// Purchases
	mux.HandleFunc("/api/purchases", rh.ListPurchases).Methods(http.MethodGet)
	mux.HandleFunc("/api/purchases/{id:[0-9]+}/confirm", rh.ConfirmPurchase).Methods(http.MethodPost)
	mux.HandleFunc("/api/purchases/{id:[0-9]+}/reject", rh.RejectPurchase).Methods(http.MethodPost)

	// Completion requests
	mux.HandleFunc("/api/completions", rh.ListCompletions).Methods(http.MethodGet)
	mux.HandleFunc("/api/completions/{id:[0-9]+}/approve", rh.ApproveCompletion).Methods(http.MethodPost)
	mux.HandleFunc("/api/completions/{id:[0-9]+}/reject", rh.RejectCompletion).Methods(http.MethodPost)

	// Users and admins
	mux.HandleFunc("/api/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/api/admins", rh.ListAdmins).Methods(http.MethodGet)
	mux.HandleFunc("/api/admins", rh.CreateAdmin).Methods(http.MethodPost)
	mux.HandleFunc("/api/admins/{id:[0-9]+}", rh.DeleteAdmin).Methods(http.MethodDelete)
	mux.HandleFunc("/api/admins/update-profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/api/admins/change-password-secure", rh.ChangePassword).Methods(http.MethodPost)

	// Dashboard
	mux.HandleFunc("/api/stats", rh.Stats).Methods(http.MethodGet)
	mux.HandleFunc("/api/bot-status", rh.BotStatus).Methods(http.MethodGet)

	// Broadcast
	mux.HandleFunc("/api/broadcast/stats", rh.BroadcastStats).Methods(http.MethodGet)
	mux.HandleFunc("/api/broadcast/test", rh.BroadcastTest).Methods(http.MethodPost)
	mux.HandleFunc("/api/broadcast/send", rh.BroadcastSend).Methods(http.MethodPost)

	// QR attendance scan
	mux.HandleFunc("/student/{token}", rh.StudentScan).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AdminApp))

	return mux
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
