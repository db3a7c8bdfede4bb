package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/mediumclone/internal/common"
)

func (app *application) likeBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID int `json:"userId"`
		BlogID int `json:"blogId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	like, err := app.blogService.LikeBlog(r.Context(), input.UserID, input.BlogID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{"success": true, "data": like, "message": "Blog liked successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) commentBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID int    `json:"userId"`
		BlogID int    `json:"blogId"`
		Body   string `json:"body"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.blogService.CommentBlog(r.Context(), input.UserID, input.BlogID, input.Body)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := envelope{"success": true, "data": comment, "message": "Comment added successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) saveBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID int `json:"userId"`
		BlogID int `json:"blogId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	saved, err := app.blogService.SaveBlog(r.Context(), input.UserID, input.BlogID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{"success": true, "data": saved, "message": "Blog saved successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteLikeHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		LikeID int `json:"likeId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteLike(r.Context(), input.LikeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Like deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CommentID int `json:"commentId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteComment(r.Context(), input.CommentID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Comment deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteSavedBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SavedBlogID int `json:"savedblogId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteSavedBlog(r.Context(), input.SavedBlogID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Saved blog deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
