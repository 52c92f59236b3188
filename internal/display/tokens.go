package display

import "strings"

// Token is the visual identity of a category: an icon, a badge
// background, and the color the amount renders in.
type Token struct {
	Icon       string
	Background Color
	Amount     Color
}

// defaultToken is the fallback for unknown categories: neutral file
// icon on gray, amount treated as an expense.
var defaultToken = Token{Icon: "📄", Background: Gray, Amount: Red}

var categoryTokens = map[string]Token{
	"salary":     {Icon: "🏦", Background: Green, Amount: Green},
	"freelance":  {Icon: "💼", Background: Green, Amount: Green},
	"investment": {Icon: "📈", Background: Green, Amount: Green},
	"bonus":      {Icon: "🎁", Background: Green, Amount: Green},

	"subscription": {Icon: "📱", Background: Purple, Amount: Red},
	"netflix":      {Icon: "🎬", Background: Red, Amount: Red},
	"spotify":      {Icon: "🎵", Background: Green, Amount: Red},
	"amazon prime": {Icon: "📦", Background: Blue, Amount: Red},
	"hulu":         {Icon: "📺", Background: Green, Amount: Red},
	"disney plus":  {Icon: "🏰", Background: Blue, Amount: Red},

	"shopping":  {Icon: "🛍️", Background: Blue, Amount: Red},
	"groceries": {Icon: "🏪", Background: Blue, Amount: Red},

	"restaurant": {Icon: "🍕", Background: Orange, Amount: Red},
	"food":       {Icon: "🍕", Background: Orange, Amount: Red},
	"dining":     {Icon: "🍕", Background: Orange, Amount: Red},

	"transport": {Icon: "🚗", Background: Orange, Amount: Red},
	"fuel":      {Icon: "🚗", Background: Orange, Amount: Red},
	"travel":    {Icon: "🚗", Background: Orange, Amount: Red},

	"education": {Icon: "📚", Background: Indigo, Amount: Red},
	"courses":   {Icon: "📚", Background: Indigo, Amount: Red},
	"books":     {Icon: "📚", Background: Indigo, Amount: Red},

	"entertainment": {Icon: "🎬", Background: Red, Amount: Red},
	"movies":        {Icon: "🎬", Background: Red, Amount: Red},
	"gaming":        {Icon: "🎮", Background: Red, Amount: Red},

	"health":    {Icon: "💊", Background: Red, Amount: Red},
	"medical":   {Icon: "💊", Background: Red, Amount: Red},
	"insurance": {Icon: "🛡️", Background: Red, Amount: Red},

	"utilities":   {Icon: "💡", Background: Yellow, Amount: Red},
	"electricity": {Icon: "💡", Background: Yellow, Amount: Red},
	"water":       {Icon: "💧", Background: Yellow, Amount: Red},
	"internet":    {Icon: "🌐", Background: Yellow, Amount: Red},
	"phone":       {Icon: "📞", Background: Yellow, Amount: Red},

	"rent":      {Icon: "🏠", Background: Teal, Amount: Red},
	"mortgage":  {Icon: "🏠", Background: Teal, Amount: Red},
	"household": {Icon: "🏠", Background: Teal, Amount: Red},

	"charity":  {Icon: "❤️", Background: Pink, Amount: Red},
	"donation": {Icon: "❤️", Background: Pink, Amount: Red},

	"debt":        {Icon: "💳", Background: Gray, Amount: Red},
	"loan":        {Icon: "💳", Background: Gray, Amount: Red},
	"credit card": {Icon: "💳", Background: Gray, Amount: Red},
}

// CategoryToken returns the visual token for a category name. Lookup
// is case-insensitive; anything unmapped (including the empty string)
// gets the neutral default.
func CategoryToken(category string) Token {
	key := strings.ToLower(strings.TrimSpace(category))
	if tok, ok := categoryTokens[key]; ok {
		return tok
	}
	return defaultToken
}
