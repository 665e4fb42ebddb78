package discord

import "github.com/bwmarrin/discordgo"

func (b *Bot) addCommands(commands ...*discordgo.ApplicationCommand) {
	b.commands = append(b.commands, commands...)
}

func playerOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "player",
		Description: description,
		Required:    true,
	}
}

func (b *Bot) newStartCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Démarrer le match (Admins)",
	}
}

func (b *Bot) newMatchInfoCommand() *discordgo.ApplicationCommand {
	text := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionString, Name: name, Description: description}
	}
	return &discordgo.ApplicationCommand{
		Name:        "match_info",
		Description: "Détails du match avant le coup d'envoi (Admins)",
		Options: []*discordgo.ApplicationCommandOption{
			text("team", "Mon équipe"),
			text("opponent", "Adversaire"),
			text("championship", "Compétition"),
			text("location", "Lieu"),
			text("date", "YYYY-MM-DD"),
			text("time", "HH:MM"),
		},
	}
}

func (b *Bot) newQuickFillCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "quick_fill",
		Description: "Remplir un effectif de démonstration (Admins)",
	}
}

func (b *Bot) newAddPlayerCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "add_player",
		Description: "Ajouter un joueur (Admins)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Nom du joueur", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "number", Description: "Numéro de maillot", Required: false},
		},
	}
}

func (b *Bot) newRemovePlayerCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "remove_player",
		Description: "Retirer un joueur avant le match (Admins)",
		Options:     []*discordgo.ApplicationCommandOption{playerOption("Numéro ou nom du joueur")},
	}
}

func (b *Bot) newStatCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "stat",
		Description: "Enregistrer une action (Admins)",
		Options: []*discordgo.ApplicationCommandOption{
			playerOption("Numéro ou nom du joueur"),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "Action",
				Required:    true,
				Choices:     actionChoices(),
			},
			{Type: discordgo.ApplicationCommandOptionBoolean, Name: "undo", Description: "Mode correction (retire l'action)", Required: false},
		},
	}
}

func (b *Bot) newOpponentCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "opponent",
		Description: "Score adverse (Admins)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "op",
				Description: "Ajouter ou retirer un point",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "+1", Value: "inc"},
					{Name: "-1", Value: "dec"},
				},
			},
		},
	}
}

func (b *Bot) newQuarterCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "quarter",
		Description: "Passer au quart-temps suivant (Admins)",
	}
}

func (b *Bot) newScoreCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "score",
		Description: "Tableau de marque",
	}
}

func (b *Bot) newBoxCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "box",
		Description: "Feuille de stats complète",
	}
}

func (b *Bot) newExportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "export",
		Description: "Exporter le match (texte partageable)",
	}
}

func (b *Bot) newImportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "import",
		Description: "Importer un match exporté (Admins)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "data", Description: "Texte exporté ou JSON", Required: true},
		},
	}
}

func (b *Bot) newResetStatsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "reset_stats",
		Description: "Remettre les stats à zéro, garder l'effectif (Admins)",
	}
}

func (b *Bot) newFullResetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "full_reset",
		Description: "Tout effacer et revenir à la configuration (Admins)",
	}
}

func (b *Bot) newReportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "report",
		Description: "Analyse du match par l'assistant coach",
	}
}

func (b *Bot) newExcelCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "excel",
		Description: "Feuille de match Excel",
	}
}

func (b *Bot) newSyncSheetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "sync_sheet",
		Description: "Synchronisation avec Google Sheet (Admins)",
	}
}
