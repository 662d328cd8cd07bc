// Package shell is the interactive front end: registration, login and the
// message menu loop. It is a thin adapter over the core services — all
// validation, hashing and classification happens behind the domain
// interfaces, never here.
package shell
