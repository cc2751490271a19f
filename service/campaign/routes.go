package campaign

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

type CampaignHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewCampaignHandler(db *gorm.DB, log zerolog.Logger) *CampaignHandler {
	return &CampaignHandler{db: db, log: log}
}

func (h *CampaignHandler) RegisterRoutes(router *mux.Router) {
	campaignRouter := router.PathPrefix("/campaigns").Subrouter()

	campaignRouter.HandleFunc("/", h.CreateCampaign).Methods("POST")
	campaignRouter.HandleFunc("", h.CreateCampaign).Methods("POST")
	campaignRouter.HandleFunc("/", h.GetCampaigns).Methods("GET")
	campaignRouter.HandleFunc("", h.GetCampaigns).Methods("GET")
	campaignRouter.HandleFunc("/{id}", h.GetCampaign).Methods("GET")
	campaignRouter.HandleFunc("/{id}/", h.GetCampaign).Methods("GET")
	campaignRouter.HandleFunc("/{id}", h.UpdateCampaign).Methods("PUT")
	campaignRouter.HandleFunc("/{id}", h.DeleteCampaign).Methods("DELETE")
}

// CreateCampaign stores a new campaign. creator_id is not checked against
// existing users.
//
// @Summary Create a campaign
// @Tags Campaign
// @Accept json
// @Produce json
// @Param campaign body models.Campaign true "Campaign"
// @Success 200 {object} models.Campaign
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /campaigns/ [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var campaign models.Campaign
	if err := schema.Decode(r, &campaign); err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}
	campaign.Reset()

	if err := db.Insert(h.db.WithContext(r.Context()), &campaign); err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, campaign)
}

// @Summary List campaigns
// @Tags Campaign
// @Produce json
// @Success 200 {array} models.Campaign
// @Failure 500 {object} utils.HTTPError
// @Router /campaigns/ [get]
func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := db.All[models.Campaign](h.db.WithContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, campaigns)
}

// @Summary Get a campaign by id
// @Tags Campaign
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} utils.HTTPError "Campaign not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid campaign ID")
		return
	}

	campaign, err := db.GetByID[models.Campaign](h.db.WithContext(r.Context()), campaignID)
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, campaign)
}

// @Summary Update a campaign
// @Tags Campaign
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param campaign body models.Campaign true "Fields to change"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} utils.HTTPError "Campaign not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid campaign ID")
		return
	}

	var update schema.CampaignUpdate
	if err := schema.Decode(r, &update); err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	campaign, err := db.Update[models.Campaign](h.db.WithContext(r.Context()), campaignID, update.Changes())
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign removes the campaign only; its donations, reports and
// milestones keep pointing at the deleted id.
//
// @Summary Delete a campaign
// @Tags Campaign
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "Campaign not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid campaign ID")
		return
	}

	if err := db.Delete[models.Campaign](h.db.WithContext(r.Context()), campaignID); err != nil {
		utils.RespondWithError(w, r, h.log, "Campaign", err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "Campaign deleted successfully")
}
