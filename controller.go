package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/domain"
	gohttp "github.com/km-arc/go-cleanarch/framework/http"
	"github.com/km-arc/go-cleanarch/framework/routing"
	"github.com/km-arc/go-cleanarch/usecase"
)

// UserController exposes the user use cases over HTTP. Its fields are
// auto-wired by the container.
type UserController struct {
	Create *usecase.CreateUser
	Users  *usecase.GetUser
	Update *usecase.UpdateUser
	Delete *usecase.DeleteUser
	Logger *zap.Logger
}

// Store handles POST /users.
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	var body usecase.CreateUserRequest
	if err := req.BindValidated(&body); err != nil {
		res.ValidationError(err)
		return
	}

	resp, err := c.Create.Execute(r.Context(), body)
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Created(resp)
}

// Index handles GET /users, with an optional ?email= lookup.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	if req.Has("email") {
		resp, err := c.Users.ByEmail(r.Context(), req.Query("email", ""))
		if err != nil {
			c.respondError(res, err)
			return
		}
		res.Success(resp)
		return
	}

	resp, err := c.Users.List(r.Context())
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Success(resp)
}

// Show handles GET /users/{id}.
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	resp, err := c.Users.ByID(r.Context(), routing.Param(r, "id"))
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Success(resp)
}

// Patch handles PATCH /users/{id}: partial name updates.
func (c *UserController) Patch(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	var body usecase.UpdateUserRequest
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	resp, err := c.Update.Execute(r.Context(), routing.Param(r, "id"), body)
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Success(resp)
}

// Activate handles POST /users/{id}/activate.
func (c *UserController) Activate(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	resp, err := c.Update.Activate(r.Context(), routing.Param(r, "id"))
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Success(resp)
}

// Deactivate handles POST /users/{id}/deactivate.
func (c *UserController) Deactivate(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	resp, err := c.Update.Deactivate(r.Context(), routing.Param(r, "id"))
	if err != nil {
		c.respondError(res, err)
		return
	}
	res.Success(resp)
}

// Destroy handles DELETE /users/{id}.
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	if err := c.Delete.Execute(r.Context(), routing.Param(r, "id")); err != nil {
		c.respondError(res, err)
		return
	}
	res.NoContent()
}

// respondError maps domain errors onto HTTP statuses. Anything
// unexpected is logged and reported as a 500.
func (c *UserController) respondError(res *gohttp.Response, err error) {
	var (
		notFound *domain.UserNotFoundError
		exists   *domain.UserAlreadyExistsError
		invalid  *domain.InvalidUserDataError
		state    *domain.UserStateError
	)
	switch {
	case errors.As(err, &notFound):
		res.Error(http.StatusNotFound, err.Error())
	case errors.As(err, &exists):
		res.Error(http.StatusConflict, err.Error())
	case errors.As(err, &invalid):
		res.Error(http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &state):
		res.Error(http.StatusConflict, err.Error())
	default:
		c.Logger.Error("unhandled error", zap.Error(err))
		res.ServerError()
	}
}
