package model

import "github.com/shopspring/decimal"

// VoiceDraft is an unpersisted transaction candidate produced by voice
// transcription. It exists only between transcription and
// confirm/cancel and is editable until confirmed.
type VoiceDraft struct {
	Category string
	Type     CategoryType
	Amount   decimal.Decimal
}
