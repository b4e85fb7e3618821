package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"prefbot/internal/domain"
	"prefbot/internal/ports/output"
)

var _ output.LocaleSource = interactionLocale{}

// interactionLocale stands in for the system locale of a Discord user: the
// client language, then the guild language.
type interactionLocale struct {
	user  string
	guild string
}

func localeSourceOf(i *discordgo.Interaction) interactionLocale {
	src := interactionLocale{user: string(i.Locale)}
	if i.GuildLocale != nil {
		src.guild = string(*i.GuildLocale)
	}
	return src
}

func (l interactionLocale) SystemLocale(context.Context) (string, error) {
	switch {
	case l.user != "":
		return l.user, nil
	case l.guild != "":
		return l.guild, nil
	default:
		return "", domain.ErrLocaleUnavailable
	}
}
