package http

import (
	"net/http"

	"ovacare/internal/delivery/http/handler"
	"ovacare/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	reminderHandler    *handler.ReminderHandler
	slotHandler        *handler.SlotHandler
	reportHandler      *handler.ReportHandler
	analyticsHandler   *handler.AnalyticsHandler
	predictionHandler  *handler.PredictionHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	reminderHandler *handler.ReminderHandler,
	slotHandler *handler.SlotHandler,
	reportHandler *handler.ReportHandler,
	analyticsHandler *handler.AnalyticsHandler,
	predictionHandler *handler.PredictionHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		reminderHandler:    reminderHandler,
		slotHandler:        slotHandler,
		reportHandler:      reportHandler,
		analyticsHandler:   analyticsHandler,
		predictionHandler:  predictionHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPatch)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/reminders", r.reminderHandler.GetMyReminders).Methods(http.MethodGet)
	patient.HandleFunc("/reports", r.reportHandler.GetMyReports).Methods(http.MethodGet)
	patient.HandleFunc("/slots", r.slotHandler.GetAvailable).Methods(http.MethodGet)
	patient.HandleFunc("/facilities", r.slotHandler.Facilities).Methods(http.MethodGet)
	patient.HandleFunc("/doctors", r.slotHandler.Doctors).Methods(http.MethodGet)

	// Clinician routes
	clinician := api.PathPrefix("/clinician").Subrouter()
	clinician.Use(r.authMiddleware.Authenticate)
	clinician.Use(middleware.RequireClinician)
	clinician.HandleFunc("/slots", r.slotHandler.Create).Methods(http.MethodPost)
	clinician.HandleFunc("/slots", r.slotHandler.GetMySlots).Methods(http.MethodGet)
	clinician.HandleFunc("/slots/{id}", r.slotHandler.Delete).Methods(http.MethodDelete)
	clinician.HandleFunc("/reports", r.reportHandler.Create).Methods(http.MethodPost)
	clinician.HandleFunc("/reports", r.reportHandler.GetByClinician).Methods(http.MethodGet)
	clinician.HandleFunc("/prints", r.reportHandler.RecordPrint).Methods(http.MethodPost)
	clinician.HandleFunc("/printable-patients", r.reportHandler.PrintablePatients).Methods(http.MethodGet)

	// Staff routes (admin or clinician): analytics dashboards + inference
	staff := api.PathPrefix("/").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrClinician)
	staff.HandleFunc("/analytics/patients", r.analyticsHandler.Patients).Methods(http.MethodGet)
	staff.HandleFunc("/analytics/inventory", r.analyticsHandler.Inventory).Methods(http.MethodGet)
	staff.HandleFunc("/analytics/treatments", r.analyticsHandler.Treatments).Methods(http.MethodGet)
	staff.HandleFunc("/predictions", r.predictionHandler.Predict).Methods(http.MethodPost)
	staff.HandleFunc("/chat", r.predictionHandler.Chat).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/clinicians", r.authHandler.RegisterClinician).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/stats", r.appointmentHandler.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/approve", r.appointmentHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/reminders", r.reminderHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/reminders/{id}", r.reminderHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/reminders/{id}", r.reminderHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/reminders/{id}/send", r.reminderHandler.Send).Methods(http.MethodPost)
	admin.HandleFunc("/slots", r.slotHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{id}", r.slotHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/reports", r.reportHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}", r.reportHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
