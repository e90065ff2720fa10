// Package realtime keeps track of live client channels and pushes payloads to
// them.
//
// The package is built from three pieces that share one Registry:
//
//   - Registry maps an authenticated user id to the single channel that
//     currently receives that user's pushes. A newer channel for the same
//     user replaces the older one; the close of a replaced channel never
//     evicts its successor.
//   - Authenticator resolves the credentials of an inbound connection to a
//     user id and admits the channel into the registry. The admission is
//     released automatically when the channel closes.
//   - Gateway delivers a payload to one user (Deliver) or to every connected
//     channel (Broadcast). Delivery is best effort: an offline user or a
//     failed send is reported as false and logged, never returned as an error.
//
// Hub wires the three together with a websocket transport and owns their
// lifecycle. Create one per process and close it on shutdown:
//
//	hub := realtime.New(sessionManager, realtime.WithLogger(log))
//	defer hub.Close()
//
//	r.Handle("/socket", hub.Handler())
//	svc := notifications.NewService(storage, hub.Gateway())
//
// Messages on the wire are JSON envelopes:
//
//	{"event": "notification", "data": {...}}
package realtime
