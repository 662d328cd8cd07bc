package commands

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"quickchat/internal/app"
)

var (
	home   string
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "quickchat",
		Short: "Single-user chat session and message registry CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env overlay; a missing file is fine.
			_ = godotenv.Load()

			if home == "" {
				home = os.Getenv("QUICKCHAT_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".quickchat")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			appCtx = app.New(app.Config{Home: home})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.quickchat)")

	root.AddCommand(chatCmd(), storedCmd())
	return root.Execute()
}
