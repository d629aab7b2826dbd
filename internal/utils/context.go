// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminLoginCtxKey is the key used to store the authenticated admin login in
// the context. Used together with GetAdminLoginFromContext for type-safe
// retrieval of the login from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminLoginCtxKey, "admin")
var AdminLoginCtxKey = contextKey("adminLogin")

// GetAdminLoginFromContext retrieves the authenticated admin login from the
// context.
//
// Returns the login and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	login, ok := utils.GetAdminLoginFromContext(ctx)
//	if !ok {
//	    // handle missing admin session in context
//	}
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok
}
