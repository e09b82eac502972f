// Command chat is an interactive terminal conversation with the Gemini
// wrapper. It reads one user message per line and prints the assistant
// reply, keeping the whole transcript in memory for the session.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/earthly-ai/backend/gemini"
	"github.com/earthly-ai/backend/internal/config"
)

func main() {
	var modelFlag string

	root := &cobra.Command{
		Use:          "chat",
		Short:        "Interactive Gemini conversation from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, modelFlag)
		},
	}
	root.Flags().StringVar(&modelFlag, "model", "", "Gemini model ID (default from GEMINI_MODEL or gemini-pro)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, modelFlag string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	model := cfg.Gemini.Model
	if modelFlag != "" {
		model = modelFlag
	}

	client, err := gemini.New(ctx, cfg.Gemini.APIKey, gemini.WithModel(model))
	if err != nil {
		return err
	}
	client.ResetConversation()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "chatting with %s, ctrl-d to quit\n> ", client.Model())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, "> ")
			continue
		}
		reply, err := client.SendTurn(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n> ", reply)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
