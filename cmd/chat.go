package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask StudyBot a study question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	fmt.Println()
	fmt.Println("  StudyBot says:")
	fmt.Printf("  %s\n\n", chat.Reply(question))
	return nil
}
