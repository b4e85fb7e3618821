package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "prefbot/pkg/discord"
)

func selectedValue(i *discordgo.InteractionCreate) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (h *Handler) HandleLocaleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i.Interaction)
	code := selectedValue(i)

	l, err := h.preferences.SetLocale(ctx, userID, code)
	if err != nil {
		h.logger.Warn("discord: locale not saved", "user", userID, "locale", code, "error", err)
		current := h.preferences.Localizer(ctx, userID, localeSourceOf(i.Interaction))
		h.replyError(s, i.Interaction, userID, pkgdiscord.ErrorMessage(current, err))
		return
	}

	locales := h.preferences.SupportedLocales()
	notice := "✅ " + l.T("settings.locale_saved", map[string]any{"language": pkgdiscord.LocaleName(locales, l.Locale())})
	data := pkgdiscord.BuildSettingsResponse(l, locales, h.preferences.Theme(ctx, userID), notice)
	if err := updatePanel(s, i.Interaction, data); err != nil {
		h.logger.Error("discord: settings update failed", "user", userID, "error", err)
	}
}

func (h *Handler) HandleThemeSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i.Interaction)
	raw := selectedValue(i)

	l := h.preferences.Localizer(ctx, userID, localeSourceOf(i.Interaction))
	id, err := h.preferences.SetTheme(ctx, userID, raw)
	if err != nil {
		h.logger.Warn("discord: theme not saved", "user", userID, "theme", raw, "error", err)
		h.replyError(s, i.Interaction, userID, pkgdiscord.ErrorMessage(l, err))
		return
	}

	notice := "✅ " + l.T("settings.theme_saved", map[string]any{"theme": pkgdiscord.ThemeLabel(l, id)})
	data := pkgdiscord.BuildSettingsResponse(l, h.preferences.SupportedLocales(), id, notice)
	if err := updatePanel(s, i.Interaction, data); err != nil {
		h.logger.Error("discord: settings update failed", "user", userID, "error", err)
	}
}

func (h *Handler) replyError(s *discordgo.Session, i *discordgo.Interaction, userID, message string) {
	if err := respondEphemeral(s, i, "❌ "+message); err != nil {
		h.logger.Error("discord: error reply failed", "user", userID, "error", err)
	}
}
