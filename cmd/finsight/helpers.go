package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/finsight-cli/finsight/internal/api"
	"github.com/finsight-cli/finsight/internal/voice"
	"github.com/spf13/viper"
)

const defaultBaseURL = "http://localhost:8000"

// newAPIClient builds a client from the configured base URL and the
// persisted session.
func newAPIClient() (*api.Client, error) {
	baseURL := viper.GetString("api.base_url")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	session, err := api.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return api.NewClient(baseURL, session)
}

// newRecognizer builds the voice transcriber from config.
func newRecognizer() *voice.ExecRecognizer {
	return &voice.ExecRecognizer{
		Command:  viper.GetString("voice.command"),
		Language: viper.GetString("voice.language"),
	}
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirmPrompt asks a yes/no question, defaulting to no.
func confirmPrompt(question string) (bool, error) {
	answer, err := promptLine(fmt.Sprintf("%s [y/N]: ", question))
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
