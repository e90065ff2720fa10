// Package binder fills request structs from URL query and path parameters.
//
// Fields opt in with `query:"name"` or `path:"name"` tags; untagged fields
// bind under their lowercased name and `-` skips a field. Supported kinds are
// string, signed and unsigned integers, bool, and pointers to those, where a
// pointer stays nil when the parameter is absent.
//
//	type listRequest struct {
//		Limit      int  `query:"limit"`
//		Skip       int  `query:"skip"`
//		UnreadOnly bool `query:"unreadOnly"`
//	}
//
//	h := handler.Wrap(list, handler.WithBinders[listRequest](binder.Query()))
//
// Malformed values produce errors wrapping ErrFailedToParseQuery or
// ErrFailedToParsePath.
package binder
