package discord

import (
	"strings"

	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/output"

	"github.com/bwmarrin/discordgo"
)

// Custom IDs of the settings panel components.
const (
	SelectLocaleID = "select_locale"
	SelectThemeID  = "select_theme"
)

// LocaleName returns the display name of code, or code itself.
func LocaleName(locales []entities.Locale, code string) string {
	for _, l := range locales {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

func BuildLocaleSelect(t output.T, locales []entities.Locale, current string) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(locales))
	for _, l := range locales {
		options = append(options, discordgo.SelectMenuOption{
			Label:   l.Name,
			Value:   l.Code,
			Default: l.Code == current,
		})
	}
	return discordgo.SelectMenu{
		CustomID:    SelectLocaleID,
		Placeholder: t.T("settings.language.placeholder", nil),
		Options:     options,
	}
}

func BuildThemeSelect(t output.T, current theme.ID) discordgo.SelectMenu {
	list := theme.List()
	options := make([]discordgo.SelectMenuOption, 0, len(list))
	for _, o := range list {
		options = append(options, discordgo.SelectMenuOption{
			Label:       t.T(o.LabelKey, nil),
			Value:       string(o.ID),
			Description: theme.Palette(o.ID).Primary,
			Default:     o.ID == current,
		})
	}
	return discordgo.SelectMenu{
		CustomID:    SelectThemeID,
		Placeholder: t.T("settings.theme.placeholder", nil),
		Options:     options,
	}
}

// BuildSettingsResponse renders the whole settings panel in l's locale.
// notice, when set, is shown under the title (confirmation of the last change).
func BuildSettingsResponse(l output.Localizer, locales []entities.Locale, current theme.ID, notice string) *discordgo.InteractionResponseData {
	var b strings.Builder
	b.WriteString("⚙️ **" + l.T("settings.title", nil) + "**")
	if notice != "" {
		b.WriteString("\n" + notice)
	}
	b.WriteString("\n\n**" + l.T("settings.language", nil) + " :** " + LocaleName(locales, l.Locale()))
	b.WriteString("\n**" + l.T("settings.theme", nil) + " :** " + ThemeLabel(l, current))

	return &discordgo.InteractionResponseData{
		Content: b.String(),
		Embeds:  []*discordgo.MessageEmbed{BuildThemePreviewEmbed(l, current)},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{BuildLocaleSelect(l, locales, l.Locale())}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{BuildThemeSelect(l, current)}},
		},
	}
}
