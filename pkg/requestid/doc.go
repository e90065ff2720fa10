// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header or mints a new id, stores
// it in the request context and echoes it in the response. LogAttr plugs the id
// into pkg/logger so records written while serving the request carry it:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogAttr))
//	router.Use(requestid.Middleware)
package requestid
