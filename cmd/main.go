package main

import (
	"fmt"
	"log"
	"net/http"

	"playverse/internal/config"
	"playverse/internal/handlers"
	"playverse/internal/utility"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.Load()

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS: allowed origins are data in the config, not per-deploy code.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return cfg.AllowOrigin(origin)
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utility.RespondJSON(w, http.StatusOK, map[string]string{"message": "API Working"})
	})

	// User routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.CreateUser)
		r.Get("/{userId}", handlers.GetUser)
	})

	// Math quiz routes
	r.Route("/math", func(r chi.Router) {
		r.Get("/", handlers.GetMathItems)
		r.Post("/", handlers.PostMathItems)
		r.Post("/fromai", handlers.GetQuizFromAI)
	})

	// Story routes
	r.Route("/stories", func(r chi.Router) {
		r.Post("/saveStory", handlers.SaveStory)
		r.Get("/getStories", handlers.GetStories)
	})

	// Creative canvas routes
	r.Route("/drawings", func(r chi.Router) {
		r.Post("/{userId}", handlers.UploadDrawing)
		r.Get("/{userId}", handlers.GetDrawings)
	})

	// Start the server
	fmt.Println("Server is running on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
