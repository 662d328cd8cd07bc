package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stored: print the persisted stored-message file without entering a session.
func storedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stored",
		Short: "Print the messages stored for later sending",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := appCtx.Messages.LoadMessages()
			if err != nil {
				return fmt.Errorf("reading stored messages: %w", err)
			}
			if len(msgs) == 0 {
				fmt.Println("No stored messages.")
				return nil
			}
			for _, m := range msgs {
				fmt.Printf("%s -> %s: %q (hash %s)\n", m.ID, m.Recipient, m.Text, m.Hash)
			}
			return nil
		},
	}
}
