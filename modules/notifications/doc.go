// Package notifications mounts the REST surface for a user's own notifications.
//
// Every route acts on behalf of the authenticated user found in the request
// context, so it must sit behind session.Manager.RequireAuth:
//
//	r.With(sessions.RequireAuth).Mount("/api/notifications", notifications.New(svc).Handle())
//
// Routes:
//
//	GET    /            list (query: limit, skip, unreadOnly)
//	PUT    /read-all    mark every notification read
//	PUT    /{id}/read   mark one notification read
//	DELETE /all         delete every notification
//	DELETE /{id}        delete one notification
package notifications
