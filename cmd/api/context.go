package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/mediumclone/internal/userservice"
)

type contextKey string

const userContextKey = contextKey("user")

func (app *application) createUserContext(r *http.Request, user *userservice.TokenPayload) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

func (app *application) getUserContext(r *http.Request) *userservice.TokenPayload {
	user, ok := r.Context().Value(userContextKey).(*userservice.TokenPayload)
	if !ok {
		return nil
	}
	return user
}
