package beneficiary

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

type BeneficiaryHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewBeneficiaryHandler(db *gorm.DB, log zerolog.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{db: db, log: log}
}

func (h *BeneficiaryHandler) RegisterRoutes(router *mux.Router) {
	beneficiaryRouter := router.PathPrefix("/beneficiaries").Subrouter()

	beneficiaryRouter.HandleFunc("/", h.CreateBeneficiary).Methods("POST")
	beneficiaryRouter.HandleFunc("", h.CreateBeneficiary).Methods("POST")
	beneficiaryRouter.HandleFunc("/{id}/", h.GetBeneficiary).Methods("GET")
	beneficiaryRouter.HandleFunc("/{id}", h.GetBeneficiary).Methods("GET")
	beneficiaryRouter.HandleFunc("/{id}", h.UpdateBeneficiary).Methods("PUT")
	beneficiaryRouter.HandleFunc("/{id}", h.DeleteBeneficiary).Methods("DELETE")
}

// @Summary Create a beneficiary
// @Tags Beneficiary
// @Accept json
// @Produce json
// @Param beneficiary body models.Beneficiary true "Beneficiary"
// @Success 200 {object} models.Beneficiary
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /beneficiaries/ [post]
func (h *BeneficiaryHandler) CreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	var beneficiary models.Beneficiary
	if err := schema.Decode(r, &beneficiary); err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}
	beneficiary.Reset()

	if err := db.Insert(h.db.WithContext(r.Context()), &beneficiary); err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, beneficiary)
}

// @Summary Get a beneficiary by id
// @Tags Beneficiary
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} models.Beneficiary
// @Failure 404 {object} utils.HTTPError "Beneficiary not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /beneficiaries/{id} [get]
func (h *BeneficiaryHandler) GetBeneficiary(w http.ResponseWriter, r *http.Request) {
	beneficiaryID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid beneficiary ID")
		return
	}

	beneficiary, err := db.GetByID[models.Beneficiary](h.db.WithContext(r.Context()), beneficiaryID)
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, beneficiary)
}

// @Summary Update a beneficiary
// @Tags Beneficiary
// @Accept json
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Param beneficiary body models.Beneficiary true "Fields to change"
// @Success 200 {object} models.Beneficiary
// @Failure 404 {object} utils.HTTPError "Beneficiary not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /beneficiaries/{id} [put]
func (h *BeneficiaryHandler) UpdateBeneficiary(w http.ResponseWriter, r *http.Request) {
	beneficiaryID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid beneficiary ID")
		return
	}

	var update schema.BeneficiaryUpdate
	if err := schema.Decode(r, &update); err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}

	beneficiary, err := db.Update[models.Beneficiary](h.db.WithContext(r.Context()), beneficiaryID, update.Changes())
	if err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, beneficiary)
}

// @Summary Delete a beneficiary
// @Tags Beneficiary
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "Beneficiary not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /beneficiaries/{id} [delete]
func (h *BeneficiaryHandler) DeleteBeneficiary(w http.ResponseWriter, r *http.Request) {
	beneficiaryID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid beneficiary ID")
		return
	}

	if err := db.Delete[models.Beneficiary](h.db.WithContext(r.Context()), beneficiaryID); err != nil {
		utils.RespondWithError(w, r, h.log, "Beneficiary", err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "Beneficiary deleted successfully")
}
