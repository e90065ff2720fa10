// Package users provides read-only access to the user records owned by the
// account service. It implements notifications.AdminDirectory.
package users
