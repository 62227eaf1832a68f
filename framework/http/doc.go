// Package http provides thin request and response helpers for JSON APIs.
//
// # Request
//
// Request wraps *http.Request with binding helpers.
//
//	req := gohttp.NewRequest(r)
//
//	// Bind JSON body into a struct
//	var payload struct {
//	    Email string `json:"email" validate:"required,email"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	// Bind and validate against `validate` struct tags in one step
//	if err := req.BindValidated(&payload); err != nil {
//	    res.ValidationError(err)
//	    return
//	}
//
//	// Query string
//	page := req.Query("page", "1")
//	ok   := req.Has("active")
//
// # Response
//
// Response wraps http.ResponseWriter with JSON helpers.
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.NoContent()               // 204
//
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.BadRequest()              // 400 {"message": "Bad request."}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.Conflict()                // 409 {"message": "Conflict."}
//	res.ServerError()             // 500 {"message": "Server Error."}
//	res.ValidationError(err)      // 422 {"errors": {"field": ["msg"]}}
package http
