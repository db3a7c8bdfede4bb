package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sushihentaime/mediumclone/internal/blogservice"
	"github.com/sushihentaime/mediumclone/internal/common"
)

const maxUploadSize = 10 << 20

// createBlogHandler resolves the media attachment before the text payload is
// validated, matching the public API's historical ordering: a rejected payload
// can therefore leave an orphaned object in the media store.
func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var mediaURL string

	_, header, err := r.FormFile("image")
	switch {
	case err == nil:
		mediaURL, err = app.media.UploadFile(r.Context(), header)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		filePath := r.FormValue("filePath")
		if filePath == "" {
			app.badRequestErrorResponse(w, r, errors.New("either an image file or a filePath value must be provided"))
			return
		}

		mediaURL, err = app.media.UploadURL(r.Context(), filePath)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	default:
		app.badRequestErrorResponse(w, r, err)
		return
	}

	userID, err := strconv.Atoi(r.FormValue("userId"))
	if err != nil || userID < 1 {
		userID = app.getUserContext(r).ID
	}

	req := blogservice.CreateBlogRequest{
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		MediaURL: mediaURL,
		Category: blogservice.Category(r.FormValue("category")),
		UserID:   userID,
	}

	blog, err := app.blogService.CreateBlog(r.Context(), &req)
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

	data := envelope{"success": true, "data": blog, "message": "Blog created successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{"success": true, "data": blogs, "message": "Blogs fetched successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogsPageHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := app.readPageLimitParams(r)

	blogs, err := app.blogService.GetBlogsPage(r.Context(), page, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{"success": true, "data": blogs, "message": "Blogs fetched successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getBlogsByNameHandler returns the title matches and the body matches as two
// separate sets. A post matching on both fields appears in both.
func (app *application) getBlogsByNameHandler(w http.ResponseWriter, r *http.Request) {
	search := app.readStringParam(r, "searchQuery")
	page, limit := app.readPageLimitParams(r)

	byTitle, byBody, err := app.blogService.SearchBlogsByName(r.Context(), search, page, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(byTitle) == 0 && len(byBody) == 0 {
		app.notFoundErrorResponse(w, r)
		return
	}

	data := envelope{"success": true, "data": byTitle, "data2": byBody, "message": "Blogs fetched successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := app.readStringParam(r, "categoryQuery")
	page, limit := app.readPageLimitParams(r)

	blogs, err := app.blogService.GetBlogsByCategory(r.Context(), category, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := envelope{"success": true, "data": blogs, "message": "Blogs fetched successfully"}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
