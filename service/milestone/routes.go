package milestone

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

type MilestoneHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewMilestoneHandler(db *gorm.DB, log zerolog.Logger) *MilestoneHandler {
	return &MilestoneHandler{db: db, log: log}
}

func (h *MilestoneHandler) RegisterRoutes(router *mux.Router) {
	milestoneRouter := router.PathPrefix("/milestones").Subrouter()

	milestoneRouter.HandleFunc("/", h.CreateMilestone).Methods("POST")
	milestoneRouter.HandleFunc("", h.CreateMilestone).Methods("POST")
	milestoneRouter.HandleFunc("/{id}/", h.GetMilestone).Methods("GET")
	milestoneRouter.HandleFunc("/{id}", h.GetMilestone).Methods("GET")
	milestoneRouter.HandleFunc("/{id}", h.UpdateMilestone).Methods("PUT")
	milestoneRouter.HandleFunc("/{id}", h.DeleteMilestone).Methods("DELETE")
}

// @Summary Create a milestone
// @Tags Milestone
// @Accept json
// @Produce json
// @Param milestone body models.Milestone true "Milestone"
// @Success 200 {object} models.Milestone
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /milestones/ [post]
func (h *MilestoneHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var milestone models.Milestone
	if err := schema.Decode(r, &milestone); err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}
	milestone.Reset()

	if err := db.Insert(h.db.WithContext(r.Context()), &milestone); err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, milestone)
}

// @Summary Get a milestone by id
// @Tags Milestone
// @Produce json
// @Param id path int true "Milestone ID"
// @Success 200 {object} models.Milestone
// @Failure 404 {object} utils.HTTPError "Milestone not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /milestones/{id} [get]
func (h *MilestoneHandler) GetMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid milestone ID")
		return
	}

	milestone, err := db.GetByID[models.Milestone](h.db.WithContext(r.Context()), milestoneID)
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, milestone)
}

// @Summary Update a milestone
// @Tags Milestone
// @Accept json
// @Produce json
// @Param id path int true "Milestone ID"
// @Param milestone body models.Milestone true "Fields to change"
// @Success 200 {object} models.Milestone
// @Failure 404 {object} utils.HTTPError "Milestone not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /milestones/{id} [put]
func (h *MilestoneHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid milestone ID")
		return
	}

	var update schema.MilestoneUpdate
	if err := schema.Decode(r, &update); err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}

	milestone, err := db.Update[models.Milestone](h.db.WithContext(r.Context()), milestoneID, update.Changes())
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, milestone)
}

// @Summary Delete a milestone
// @Tags Milestone
// @Produce json
// @Param id path int true "Milestone ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "Milestone not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /milestones/{id} [delete]
func (h *MilestoneHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid milestone ID")
		return
	}

	if err := db.Delete[models.Milestone](h.db.WithContext(r.Context()), milestoneID); err != nil {
		utils.RespondWithError(w, r, h.log, "Milestone", err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "Milestone deleted successfully")
}
