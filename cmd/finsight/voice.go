package main

import (
	"fmt"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/voice"
	"github.com/spf13/cobra"
)

func voiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voice",
		Short: "Add a transaction by voice",
		Long: `Record one spoken sentence (for example "spent 500 on food"),
let the backend turn it into a draft transaction, review it, and save
or discard it.

Requires a transcriber command configured as voice.command, e.g.:

    voice:
      command: whisper-cli --model small
      language: en`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recognizer := newRecognizer()
			if !recognizer.Available() {
				return fmt.Errorf("voice input is not available: configure voice.command with a transcriber")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if !client.Session().Authenticated() {
				return fmt.Errorf("not logged in - run 'finsight login' first")
			}

			flow := voice.NewFlow(recognizer, client, client)
			ctx := cmd.Context()

			if err := flow.Start(); err != nil {
				return err
			}

			fmt.Println("🎤 Listening… speak your transaction")
			transcript, err := recognizer.Listen(ctx)
			if err != nil {
				return flow.RecognitionFailed(err)
			}
			if err := flow.SetTranscript(transcript); err != nil {
				return err
			}

			fmt.Printf("Heard: %q\n", transcript)
			if err := flow.Interpret(ctx); err != nil {
				return err
			}

			draft := flow.Draft()
			fmt.Printf("\n  Amount:   %s\n  Category: %s\n  Type:     %s\n\n",
				display.Money(draft.Amount), draft.Category, draft.Type)

			save, err := confirmPrompt("Save this transaction?")
			if err != nil {
				return err
			}
			if !save {
				_ = flow.Cancel()
				fmt.Println("Discarded.")
				return nil
			}

			if err := flow.Confirm(ctx); err != nil {
				return err
			}
			fmt.Println("Transaction saved.")
			return nil
		},
	}
}
