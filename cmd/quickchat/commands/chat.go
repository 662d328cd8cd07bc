package commands

import (
	"os"

	"github.com/spf13/cobra"

	"quickchat/internal/shell"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Run an interactive QuickChat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(appCtx.Accounts, appCtx.Registry, os.Stdin, os.Stdout, appCtx.Log)
			return sh.Run(cmd.Context())
		},
	}
}
