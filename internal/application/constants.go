package application

import "baskettracker/internal/snapshot"

const (
	// Autosave
	defaultSnapshotKey = snapshot.Key

	// Display
	lastActionLayout = "15:04:05"

	// Excel report configuration
	excelSheetName = "Feuille de match"
	excelInfoSheet = "Match"

	// Google Sheets configuration
	defaultSheetTitle = "BasketTracker - Feuille de match"
	defaultClearRange = "A1:Z1000"
	defaultStartCell  = "A1"
	spreadsheetURLFmt = "https://docs.google.com/spreadsheets/d/%s"

	// User-facing narrative messages
	msgMissingAPIKey  = "Clé API manquante. Impossible de générer le rapport."
	msgNotEnoughStats = "Aucune donnée statistique suffisante pour générer un rapport."
	msgEmptyReport    = "Désolé, je n'ai pas pu générer l'analyse."
	msgCoachOffline   = "Erreur lors de la connexion à l'assistant coach."
)
