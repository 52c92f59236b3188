package api

import (
	"context"

	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
)

// ProcessVoiceEntry sends a raw transcript to the interpretation
// endpoint and returns the structured draft it extracted. The backend
// reports interpretation failures as an error field on a 200, so that
// case maps to an *Error too.
func (c *Client) ProcessVoiceEntry(ctx context.Context, voiceText string) (model.VoiceDraft, error) {
	body := map[string]string{"voice_text": voiceText}

	var resp struct {
		Amount          decimal.Decimal `json:"amount"`
		Category        string          `json:"category"`
		TransactionType string          `json:"transaction_type"`
		Error           string          `json:"error"`
	}
	if err := c.post(ctx, "/api/transactions/process-voice-entry/", body, &resp); err != nil {
		return model.VoiceDraft{}, err
	}
	if resp.Error != "" {
		return model.VoiceDraft{}, &Error{Status: 200, Message: resp.Error}
	}

	return model.VoiceDraft{
		Amount:   resp.Amount,
		Category: resp.Category,
		Type:     model.CategoryType(resp.TransactionType),
	}, nil
}

// ConfirmVoiceTransaction persists a (possibly edited) voice draft.
// Success is signaled by a message field; anything else is a failure.
func (c *Client) ConfirmVoiceTransaction(ctx context.Context, draft model.VoiceDraft) error {
	body := map[string]any{
		"amount":           draft.Amount,
		"transaction_type": draft.Type,
		"category":         draft.Category,
	}

	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "/api/transactions/confirm-voice-transaction/", body, &resp); err != nil {
		return err
	}
	if resp.Message == "" {
		msg := resp.Error
		if msg == "" {
			msg = "transaction was not saved"
		}
		return &Error{Status: 200, Message: msg}
	}
	return nil
}
