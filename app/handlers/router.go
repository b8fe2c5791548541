package handlers

import (
	"log"
	"net/http"
	"time"

	"html/template"

	"yttrends/app/youtube"

	"github.com/gorilla/mux"
	"zombiezen.com/go/sqlite/sqlitex"
)

var templateFuncs = template.FuncMap{
	"formatCount":    youtube.FormatCount,
	"formatDuration": youtube.FormatDuration,
	"formatAgo": func(publishedAt string) string {
		return youtube.FormatPublishedDate(publishedAt, time.Now().UTC())
	},
}

type Router struct {
	mux.Router
	db        *sqlitex.Pool
	ytr       *youtube.YouTubeRequester
	templates *template.Template
}

func NewRouter(db *sqlitex.Pool, ytr *youtube.YouTubeRequester) *Router {

	router := &Router{
		Router:    *mux.NewRouter(),
		db:        db,
		ytr:       ytr,
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseGlob("web/*/*.html")),
	}

	// api
	router.PathPrefix("/api/trends").Methods("GET").HandlerFunc(router.GetTrendsJson)
	// pages
	router.PathPrefix("/trends").Methods("GET").HandlerFunc(router.GetTrends)
	// serve static
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	router.PathPrefix("/").Methods("GET").HandlerFunc(router.GetTrends)

	router.Use(loggingMiddleware)

	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println(r.RequestURI)
		next.ServeHTTP(w, r)
	})
}
