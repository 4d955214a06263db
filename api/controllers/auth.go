package controllers

import (
	"net/http"

	"github.com/vuapod/orderstats-backend/api/responses"
	"github.com/vuapod/orderstats-backend/api/validators"
	"github.com/vuapod/orderstats-backend/internal/auth"
	"github.com/vuapod/orderstats-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func Login(service auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token, err := service.Login(ctx, req.Username, req.Password)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, loginResponse{Token: token})
	}
}
