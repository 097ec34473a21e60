package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger
var appStore *store.Store
var validate = validator.New()

// Setup wires the HTTP surface. Handlers only decode input, call one store
// operation and encode the result, the store owns all state.
func Setup(isHttps bool, cfg *models.ConfigFile, _sugar *zap.SugaredLogger, _store *store.Store) error {
	sugar = _sugar
	appStore = _store

	r := chi.NewRouter()
	if cfg.PrintHttpRequests {
		r.Use(middleware.Logger)
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/login", Login)
			r.Post("/register", Register)
			r.With(UserVerifier).Post("/logout", Logout)
			r.With(UserVerifier).Get("/isLoggedIn", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
		})

		api.Route("/user", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Get("/fetch", GetUserInfo)
			r.Post("/update", UpdateUserInfo)
			r.Get("/findByTag", FindUserByTag)
		})

		api.Route("/server", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Post("/create", CreateServer)
			r.Get("/fetch", GetServerList)
			r.Post("/update", UpdateServer)
			r.Post("/join", JoinServer)
			r.Post("/emoji", AddEmoji)
		})

		api.Route("/channel", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Post("/create", CreateChannel)
			r.Post("/createCategory", CreateCategory)
		})

		api.Route("/message", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Post("/create", CreateMessage)
			r.Get("/fetch", GetMessageList)
		})

		api.Route("/dm", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Post("/create", CreateDm)
			r.Post("/createGroup", CreateGroupDm)
			r.Get("/fetch", GetDmList)
		})

		api.Route("/game", func(r chi.Router) {
			r.Use(UserVerifier)
			r.Post("/add", AddGame)
			r.Get("/fetch", GetGameList)
		})
	})

	r.Handle("/*", http.FileServer(http.Dir("./public/static")))

	address := fmt.Sprintf("%s:%s", cfg.Address, cfg.Port)

	if isHttps {
		return http.ListenAndServeTLS(address, cfg.TlsCert, cfg.TlsKey, r)
	}
	return http.ListenAndServe(address, r)
}
