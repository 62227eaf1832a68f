package main

import (
	"net/http"

	"github.com/km-arc/go-cleanarch/app"
	"github.com/km-arc/go-cleanarch/framework/di"
	gohttp "github.com/km-arc/go-cleanarch/framework/http"
	"github.com/km-arc/go-cleanarch/framework/routing"
)

func main() {
	application := app.New() // loads .env automatically
	application.Register(&AppServiceProvider{})
	application.Boot()

	users := di.MustResolve[*UserController](application.Container)

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success(map[string]any{
			"name":   application.Config().App.Name,
			"status": "ok",
		})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Post("/users", users.Store)
		api.Get("/users", users.Index)
		api.Get("/users/{id}", users.Show)
		api.Patch("/users/{id}", users.Patch)
		api.Post("/users/{id}/activate", users.Activate)
		api.Post("/users/{id}/deactivate", users.Deactivate)
		api.Delete("/users/{id}", users.Destroy)
	})

	application.Run()
}
