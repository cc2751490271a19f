package donation

import (
	"errors"
	"net/http"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/cmd/schema"
	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/db"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var errUserNotFound = errors.New("donating user does not exist")

type DonationHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewDonationHandler(db *gorm.DB, log zerolog.Logger) *DonationHandler {
	return &DonationHandler{db: db, log: log}
}

func (h *DonationHandler) RegisterRoutes(router *mux.Router) {
	donationRouter := router.PathPrefix("/donations").Subrouter()

	donationRouter.HandleFunc("/", h.CreateDonation).Methods("POST")
	donationRouter.HandleFunc("", h.CreateDonation).Methods("POST")
	donationRouter.HandleFunc("/{id}/", h.GetDonation).Methods("GET")
	donationRouter.HandleFunc("/{id}", h.GetDonation).Methods("GET")
	donationRouter.HandleFunc("/{id}", h.UpdateDonation).Methods("PUT")
	donationRouter.HandleFunc("/{id}", h.DeleteDonation).Methods("DELETE")
}

// CreateDonation records a donation after checking that the donating user
// exists. The campaign reference is not checked and the campaign's raised
// amount is left alone.
//
// @Summary Create a donation
// @Tags Donations
// @Accept json
// @Produce json
// @Param donation body models.Donation true "Donation"
// @Success 200 {object} models.Donation
// @Failure 404 {object} utils.HTTPError "User not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /donations/ [post]
func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var donation models.Donation
	if err := schema.Decode(r, &donation); err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}
	donation.Reset()

	err := h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		// Check if user exists
		exists, err := db.Exists[models.User](tx, "id", donation.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return errUserNotFound
		}
		return db.Insert(tx, &donation)
	})
	if errors.Is(err, errUserNotFound) {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, donation)
}

// @Summary Get a donation by id
// @Tags Donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} models.Donation
// @Failure 404 {object} utils.HTTPError "Donation not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /donations/{id} [get]
func (h *DonationHandler) GetDonation(w http.ResponseWriter, r *http.Request) {
	donationID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid donation ID")
		return
	}

	donation, err := db.GetByID[models.Donation](h.db.WithContext(r.Context()), donationID)
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, donation)
}

// UpdateDonation applies a partial update. A new user_id is stored as given.
//
// @Summary Update a donation
// @Tags Donations
// @Accept json
// @Produce json
// @Param id path int true "Donation ID"
// @Param donation body models.Donation true "Fields to change"
// @Success 200 {object} models.Donation
// @Failure 404 {object} utils.HTTPError "Donation not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /donations/{id} [put]
func (h *DonationHandler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	donationID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid donation ID")
		return
	}

	var update schema.DonationUpdate
	if err := schema.Decode(r, &update); err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}

	donation, err := db.Update[models.Donation](h.db.WithContext(r.Context()), donationID, update.Changes())
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, donation)
}

// @Summary Delete a donation
// @Tags Donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "Donation not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	donationID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid donation ID")
		return
	}

	if err := db.Delete[models.Donation](h.db.WithContext(r.Context()), donationID); err != nil {
		utils.RespondWithError(w, r, h.log, "Donation", err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "Donation deleted successfully")
}
