package discord

import (
	"fmt"
	"strconv"
	"strings"

	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/output"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x5865F2

// HexColor converts "#rrggbb" into the integer colour used by embeds.
func HexColor(hex string) (int, error) {
	digits, ok := strings.CutPrefix(hex, "#")
	if !ok || len(digits) != 6 {
		return 0, fmt.Errorf("hex colour %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex colour %q: %w", hex, err)
	}
	return int(v), nil
}

// ThemeLabel resolves the picker label of id through t.
func ThemeLabel(t output.T, id theme.ID) string {
	for _, o := range theme.List() {
		if o.ID == id {
			return t.T(o.LabelKey, nil)
		}
	}
	return string(id)
}

// BuildThemePreviewEmbed shows the four colours of id, tinted with its primary colour.
func BuildThemePreviewEmbed(l output.Localizer, id theme.ID) *discordgo.MessageEmbed {
	c := theme.Palette(id)
	color, err := HexColor(c.Primary)
	if err != nil {
		color = embedColor
	}

	field := func(key, value string) *discordgo.MessageEmbedField {
		return &discordgo.MessageEmbedField{Name: l.T(key, nil), Value: "`" + value + "`", Inline: true}
	}
	return &discordgo.MessageEmbed{
		Title: "🎨 " + l.T("theme.preview", map[string]any{"theme": ThemeLabel(l, id)}),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			field("theme.color.primary", c.Primary),
			field("theme.color.bg", c.Background),
			field("theme.color.surface", c.Surface),
			field("theme.color.highlight", c.Highlight),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: l.T("settings.date_format", map[string]any{"dateLocale": l.DateLocale()}),
		},
	}
}
