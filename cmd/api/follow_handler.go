package main

import (
	"net/http"
)

func (app *application) addFollowerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID         int `json:"userId"`
		ToFollowUserID int `json:"toFollowUserId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.userService.FollowUser(r.Context(), input.UserID, input.ToFollowUserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "User followed successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) unfollowHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID     int `json:"userId"`
		ToRemoveID int `json:"toRemoveFollowingAUser"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.userService.UnfollowUser(r.Context(), input.UserID, input.ToRemoveID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "User unfollowed successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) fetchFollowersHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	follows, err := app.userService.GetFollowers(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{"success": true, "data": follows, "message": "Followers fetched successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
