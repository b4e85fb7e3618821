package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"prefbot/internal/ports/output"
	pkgdiscord "prefbot/pkg/discord"
)

const settingsCommandName = "settings"

// discordLocales maps catalog codes onto Discord client locales.
var discordLocales = map[string]discordgo.Locale{
	"en":    discordgo.EnglishUS,
	"ko":    discordgo.Korean,
	"ja":    discordgo.Japanese,
	"zh-CN": discordgo.ChineseCN,
	"zh-TW": discordgo.ChineseTW,
	"fr":    discordgo.French,
	"de":    discordgo.German,
}

// settingsCommand builds /settings with its description translated into
// every supported locale Discord knows about.
func settingsCommand(catalog output.Catalog) *discordgo.ApplicationCommand {
	l := catalog.NewLocalizer()
	description := l.T("command.settings.description", nil)

	localized := map[discordgo.Locale]string{}
	for _, loc := range catalog.SupportedLocales() {
		dl, ok := discordLocales[loc.Code]
		if !ok || !catalog.Has(loc.Code) {
			continue
		}
		l.SetLocale(loc.Code)
		localized[dl] = l.T("command.settings.description", nil)
	}

	return &discordgo.ApplicationCommand{
		Name:                     settingsCommandName,
		Description:              description,
		DescriptionLocalizations: &localized,
	}
}

func (h *Handler) HandleSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i.Interaction)

	l := h.preferences.Localizer(ctx, userID, localeSourceOf(i.Interaction))
	current := h.preferences.Theme(ctx, userID)

	data := pkgdiscord.BuildSettingsResponse(l, h.preferences.SupportedLocales(), current, "")
	if err := respondPanel(s, i.Interaction, data); err != nil {
		h.logger.Error("discord: settings reply failed", "user", userID, "error", err)
	}
}
