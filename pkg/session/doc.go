// Package session resolves opaque session tokens to authenticated users.
//
// Sessions are issued by the authentication layer (password or OAuth login,
// both outside this module) through Manager.Issue and stored in a Store.
// Requests carry the token either in the Authorization header or, for
// websocket handshakes where browsers cannot set headers, in a query
// parameter:
//
//	mgr := session.New(
//	    session.WithStore(session.NewRedisStore(redisClient)),
//	    session.WithConfig(cfg),
//	)
//
//	r.With(mgr.RequireAuth).Mount("/api/notifications", routes)
//	r.Handle("/socket", realtime.New(mgr).Handler())
//
// Manager implements realtime.IdentityResolver, so the same sessions gate
// both REST calls and live channels.
package session
