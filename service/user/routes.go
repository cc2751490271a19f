package user

import (
	"errors"
	"net/http"
	"sync"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/KAsare1/donation-server/cmd/schema"
	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/db"
	"github.com/KAsare1/donation-server/service/mail"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	errDuplicateEmail   = errors.New("email already registered")
	errDuplicateContact = errors.New("contact already registered")
)

type Handler struct {
	db     *gorm.DB
	log    zerolog.Logger
	mailer mail.Mailer
	mails  sync.WaitGroup
}

func NewHandler(db *gorm.DB, log zerolog.Logger, mailer mail.Mailer) *Handler {
	return &Handler{db: db, log: log, mailer: mailer}
}

// RegisterRoutes sets up all user-related routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	userRouter := router.PathPrefix("/users").Subrouter()

	userRouter.HandleFunc("/", h.CreateUser).Methods("POST")
	userRouter.HandleFunc("", h.CreateUser).Methods("POST")
	userRouter.HandleFunc("/{id}/", h.GetUser).Methods("GET")
	userRouter.HandleFunc("/{id}", h.GetUser).Methods("GET")
	userRouter.HandleFunc("/{id}", h.UpdateUser).Methods("PUT")
	userRouter.HandleFunc("/{id}", h.DeleteUser).Methods("DELETE")
}

// CreateUser registers a user. Email and contact must both be unused; the
// password is stored as a bcrypt hash and never returned.
//
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} schema.ShowUser
// @Failure 400 {object} utils.HTTPError "Email or contact already registered"
// @Failure 422 {object} utils.HTTPError "Invalid payload"
// @Failure 500 {object} utils.HTTPError
// @Router /users/ [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := schema.Decode(r, &user); err != nil {
		utils.RespondWithError(w, r, h.log, "User", err)
		return
	}
	user.Reset()

	err := h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		taken, err := db.Exists[models.User](tx, "email", user.Email)
		if err != nil {
			return err
		}
		if taken {
			return errDuplicateEmail
		}

		taken, err = db.Exists[models.User](tx, "contact", user.Contact)
		if err != nil {
			return err
		}
		if taken {
			return errDuplicateContact
		}

		hash, err := utils.HashPassword(user.Password)
		if err != nil {
			return err
		}
		user.Password = hash

		return db.Insert(tx, &user)
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.mails.Add(1)
	go func(email, name string) {
		defer h.mails.Done()
		if err := h.mailer.SendWelcome(email, name); err != nil {
			h.log.Warn().Err(err).Str("email", email).Msg("error sending welcome email")
		}
	}(user.Email, user.Name)

	utils.RespondWithJSON(w, http.StatusOK, schema.NewShowUser(&user))
}

// Wait blocks until every welcome mail started so far has been handed to
// the mailer.
func (h *Handler) Wait() {
	h.mails.Wait()
}

// GetUser retrieves a specific user by ID
//
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} schema.ShowUser
// @Failure 404 {object} utils.HTTPError "User not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	user, err := db.GetByID[models.User](h.db.WithContext(r.Context()), userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, schema.NewShowUser(user))
}

// UpdateUser applies a partial update. A new password is hashed the same
// way as on creation.
//
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.User true "Fields to change"
// @Success 200 {object} schema.ShowUser
// @Failure 400 {object} utils.HTTPError "Email or contact already registered"
// @Failure 404 {object} utils.HTTPError "User not found"
// @Failure 422 {object} utils.HTTPError "Invalid payload or id"
// @Failure 500 {object} utils.HTTPError
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	var update schema.UserUpdate
	if err := schema.Decode(r, &update); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	changes := update.Changes()
	if update.Password.Set {
		hash, err := utils.HashPassword(update.Password.Value)
		if err != nil {
			h.respondWithError(w, r, err)
			return
		}
		changes["password"] = hash
	}

	user, err := db.Update[models.User](h.db.WithContext(r.Context()), userID, changes)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, schema.NewShowUser(user))
}

// DeleteUser removes a user. Campaigns and donations referencing the user
// are kept.
//
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.HTTPError
// @Failure 404 {object} utils.HTTPError "User not found"
// @Failure 422 {object} utils.HTTPError "Invalid id"
// @Failure 500 {object} utils.HTTPError
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	if err := db.Delete[models.User](h.db.WithContext(r.Context()), userID); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.RespondWithDetail(w, http.StatusOK, "User deleted successfully")
}

func (h *Handler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errDuplicateEmail):
		utils.RespondWithDetail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, errDuplicateContact):
		utils.RespondWithDetail(w, http.StatusBadRequest, "Contact already registered")
	case errors.Is(err, db.ErrConstraintViolation):
		// lost a race with a concurrent registration, or an update reused a value
		utils.RespondWithDetail(w, http.StatusBadRequest, "Email or contact already registered")
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		utils.RespondWithDetail(w, http.StatusUnprocessableEntity, "Password must not exceed 72 bytes")
	default:
		utils.RespondWithError(w, r, h.log, "User", err)
	}
}
