package report

import (
	"net/http"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/cmd/schema"
	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/db"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ReportHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewReportHandler(db *gorm.DB, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{db: db, log: log}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	reportRouter := router.PathPrefix("/reports").Subrouter()

	reportRouter.HandleFunc("/", h.CreateReport).Methods("POST")
	reportRouter.HandleFunc("", h.CreateReport).Methods("POST")
	reportRouter.HandleFunc("/{id}/", h.GetReport).Methods("GET")
	reportRouter.HandleFunc("/{id}", h.GetReport).Methods("GET")
	reportRouter.HandleFunc("/{id}", h.UpdateReport).Methods("PUT")
	reportRouter.HandleFunc("/{id}", h.DeleteReport).Methods("DELETE")
}

// CreateReport stores a report. campaign_id is taken as given.
//
// @Summary Create a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body models.Report true "Report"
// @Success 200 {object} models.Report
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /reports/ [post]
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var report models.Report
	if err := schema.Decode(r, &report); err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}
	report.Reset()

	if err := db.Insert(h.db.WithContext(r.Context()), &report); err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}

// @Summary Get a report by id
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report
// @Failure 404 {object} utils.HTTPError "Report not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid report ID")
		return
	}

	report, err := db.GetByID[models.Report](h.db.WithContext(r.Context()), reportID)
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}

// @Summary Update a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param report body models.Report true "Fields to change"
// @Success 200 {object} models.Report
// @Failure 404 {object} utils.HTTPError "Report not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /reports/{id} [put]
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid report ID")
		return
	}

	var update schema.ReportUpdate
	if err := schema.Decode(r, &update); err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}

	report, err := db.Update[models.Report](h.db.WithContext(r.Context()), reportID, update.Changes())
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}

// @Summary Delete a report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "Report not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid report ID")
		return
	}

	if err := db.Delete[models.Report](h.db.WithContext(r.Context()), reportID); err != nil {
		utils.RespondWithError(w, r, h.log, "Report", err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "Report deleted successfully")
}
