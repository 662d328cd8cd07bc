// Package auth manages registration and login for the single local user.
//
// It validates credential formats via the validate package, keeps the
// registered accounts in memory for the life of the process, and tracks the
// session details of the last successful login.
package auth
