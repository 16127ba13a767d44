package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	response.Response
	UserID int64 `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(email, username, passwordHash string) (int64, error)
	GetUserByEmail(email string) (*models.User, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.signup.New"

		log := log.With(slog.String("op", op))

		var req SignupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create user"))
			return
		}

		userID, err := users.CreateUser(req.Email, req.Username, string(hash))
		if err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				log.Info("email already exists", slog.String("email", req.Email))

				// The duplicate answer carries the existing user id so
				// clients can recover without a second lookup.
				existing, lookupErr := users.GetUserByEmail(req.Email)
				if lookupErr == nil {
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, SignupResponse{
						Response: response.Error("email already exists"),
						UserID:   existing.ID,
					})
					return
				}

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email already exists"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create user"))
			return
		}

		log.Info("user created", slog.Int64("user_id", userID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SignupResponse{
			Response: response.OK(),
			UserID:   userID,
		})
	}
}
