package discord

const (
	// Display limits
	maxMessageLength     = 2000
	maxMessageTruncation = 1990

	// Embed colors
	colorOrange = 0xF97316 // Scoreboard
	colorGreen  = 0x2ECC71 // Positive action
	colorRed    = 0xE74C3C // Correction
	colorBlue   = 0x3498DB // Info/box score
	colorGold   = 0xFFD700 // Coach report

	// Attachments
	excelFileName  = "feuille-de-match.xlsx"
	exportFileName = "match.md"

	msgNoRights = "Vous n'avez pas les droits."
)
