// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by binders,
// and returns a Response that renders itself. Errors from binding or
// rendering are passed to an ErrorHandler.
//
//	type listRequest struct {
//		Limit int `query:"limit"`
//	}
//
//	func list(ctx handler.Context, req listRequest) handler.Response {
//		items, err := load(ctx, req.Limit)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(items)
//	}
//
//	r.Get("/", handler.Wrap(list,
//		handler.WithBinders[listRequest](binder.Query()),
//		handler.WithErrorHandler[listRequest](handler.LoggingErrorHandler(log)),
//	))
//
// JSON bodies use the envelope {"success": bool, "message": string, "data": any}.
// Errors are rendered from HTTPError values; anything else becomes a 500 whose
// message does not leak the underlying error.
package handler
