package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/config"
	_ "github.com/KAsare1/donation-server/docs"
	"github.com/KAsare1/donation-server/service/beneficiary"
	"github.com/KAsare1/donation-server/service/campaign"
	"github.com/KAsare1/donation-server/service/donation"
	"github.com/KAsare1/donation-server/service/mail"
	"github.com/KAsare1/donation-server/service/milestone"
	"github.com/KAsare1/donation-server/service/report"
	"github.com/KAsare1/donation-server/service/user"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
	"gorm.io/gorm"
)

type APIServer struct {
	cfg    config.ServerConfig
	db     *gorm.DB
	log    zerolog.Logger
	mailer mail.Mailer
	users  *user.Handler
}

func NewApiServer(cfg config.ServerConfig, db *gorm.DB, log zerolog.Logger, mailer mail.Mailer) *APIServer {
	return &APIServer{
		cfg:    cfg,
		db:     db,
		log:    log,
		mailer: mailer,
	}
}

// Handler builds the full middleware chain around the router.
func (s *APIServer) Handler() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithDetail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithDetail(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/swagger/doc.json", s.handleDocs).Methods("GET")

	campaign.NewCampaignHandler(s.db, s.log).RegisterRoutes(router)
	beneficiary.NewBeneficiaryHandler(s.db, s.log).RegisterRoutes(router)
	donation.NewDonationHandler(s.db, s.log).RegisterRoutes(router)
	s.users = user.NewHandler(s.db, s.log, s.mailer)
	s.users.RegisterRoutes(router)
	report.NewReportHandler(s.db, s.log).RegisterRoutes(router)
	milestone.NewMilestoneHandler(s.db, s.log).RegisterRoutes(router)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{s.cfg.CORSOrigin}),
		handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Accept", "Accept-Language", "Authorization", "Content-Type", "Origin", "X-Requested-With", utils.RequestIDHeader}),
		handlers.ExposedHeaders([]string{utils.RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.log}),
		handlers.PrintRecoveryStack(true),
	)

	return recovery(utils.RequestIDMiddleware(utils.LoggingMiddleware(s.log)(cors(router))))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *APIServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", server.Addr).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.drainMail(shutdownCtx)
	return nil
}

// drainMail waits for welcome mails queued by requests that completed
// before shutdown, up to the shutdown deadline.
func (s *APIServer) drainMail(ctx context.Context) {
	if s.users == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		s.users.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn().Msg("shutdown deadline reached with welcome mails still sending")
	}
}

// handleDocs serves the generated OpenAPI document.
func (s *APIServer) handleDocs(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		s.log.Error().Err(err).Msg("reading api docs")
		utils.RespondWithInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// @Summary Check database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		s.log.Error().Err(err).Msg("health check failed")
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type recoveryLogger struct {
	log zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error().Msg(fmt.Sprint(v...))
}
