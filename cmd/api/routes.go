package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/v1/healthcheck", app.healthCheckHandler)

	// users
	router.HandlerFunc(http.MethodPost, "/api/v1/signup", app.signupUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/login", app.loginUserHandler)

	// blogs
	router.HandlerFunc(http.MethodPost, "/api/v1/uploadblog", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/allblogs", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/blogpagination", app.getBlogsPageHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/byname/:searchQuery", app.getBlogsByNameHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/bycategory/:categoryQuery", app.getBlogsByCategoryHandler)

	// likes, comments, saved blogs
	router.HandlerFunc(http.MethodPost, "/api/v1/like", app.requireAuthUser(app.likeBlogHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/comment", app.requireAuthUser(app.commentBlogHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/saveblog", app.requireAuthUser(app.saveBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/deletelike", app.requireAuthUser(app.deleteLikeHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/deletecomment", app.requireAuthUser(app.deleteCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/deletesave", app.requireAuthUser(app.deleteSavedBlogHandler))

	// follows
	router.HandlerFunc(http.MethodPost, "/api/v1/addfollower", app.requireAuthUser(app.addFollowerHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/unfollow", app.requireAuthUser(app.unfollowHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/fetchfollower/:userId", app.fetchFollowersHandler)

	return app.recoverPanic(app.logRequest(app.authenticate(router)))
}
