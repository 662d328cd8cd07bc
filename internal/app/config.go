package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string    // data dir, e.g. $HOME/.quickchat
	LogOut io.Writer // destination for log lines; defaults to os.Stderr
}
