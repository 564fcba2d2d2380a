package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
)

func (h *Handler) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sides := intValue(optionMap(i), "sides", 6)
	if sides < 2 {
		respondError(s, i, botErr.InvalidAmountf("a die needs at least 2 sides, got %d", sides))
		return nil
	}

	result, err := h.roller.Roll(int(sides))
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("\U0001F3B2 You rolled a **%d** on a d%d!", result, sides))
}

func (h *Handler) handlePick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	prompt := stringValue(opts, "prompt")

	var options []string
	for n := 1; n <= 10; n++ {
		if v := stringValue(opts, fmt.Sprintf("option%d", n)); v != "" {
			options = append(options, v)
		}
	}
	if len(options) < 2 {
		respondError(s, i, botErr.InvalidArgument("at least two options are required"))
		return nil
	}

	idx, err := h.roller.Pick(len(options))
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("**%s**\nThe pick is: **%s**", prompt, options[idx]))
}

func (h *Handler) handleGuide(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guide := strings.Join([]string{
		"**Getting started**",
		"Upload characters with `/upload`, browse them with `/view` and `/list`.",
		"Admins can point me at channels with `/setgraveyard`, `/setcharacterlist`, and `/sethuntingground`.",
		"Characters appear in the hunting ground periodically. React with ✨ to claim one before anyone else!",
		"Trade with `/givechar` and `/sell`, settle scores with `/duel`, and track your gold with `/balance`.",
	}, "\n")
	return respondEphemeral(s, i, guide)
}

func (h *Handler) handleListCommands(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var names []string
	for _, cmd := range commandDefinitions() {
		names = append(names, "`/"+cmd.Name+"`")
	}
	return respondEphemeral(s, i, "Available commands: "+strings.Join(names, ", "))
}

func (h *Handler) handleWikipedia(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	topic := stringValue(optionMap(i), "name")
	if h.wikipedia == nil {
		respondError(s, i, botErr.Internal("wikipedia lookups are not available"))
		return nil
	}

	// The lookup can take a while; acknowledge first
	if err := deferResponse(s, i); err != nil {
		return err
	}

	summary, err := h.wikipedia.Summary(ctx, topic)
	if err != nil {
		if botErr.IsNotFound(err) {
			return followUp(s, i, fmt.Sprintf("Could not find a description for '%s' on Wikipedia.", topic))
		}
		followUpError(s, i, err)
		return nil
	}
	return followUp(s, i, fmt.Sprintf("**Wikipedia Summary for %s:**\n%s", topic, summary))
}

func (h *Handler) handleAddPic(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	name := stringValue(opts, "character")
	query := stringValue(opts, "query")
	number := intValue(opts, "number", 1)

	if h.images == nil {
		respondError(s, i, botErr.Internal("image search is not available"))
		return nil
	}
	if number < 1 || number > 10 {
		respondError(s, i, botErr.InvalidAmountf("image count must be between 1 and 10, got %d", number))
		return nil
	}

	if err := deferResponse(s, i); err != nil {
		return err
	}

	urls, err := h.images.Search(ctx, query, int(number))
	if err != nil {
		followUpError(s, i, err)
		return nil
	}

	char, err := h.ServiceProvider.CharacterService.AddImages(ctx, name, urls)
	if err != nil {
		followUpError(s, i, err)
		return nil
	}
	return followUp(s, i, fmt.Sprintf("Added %d image(s) to '%s' from query '%s'.", len(urls), char.Name, query))
}

func (h *Handler) handleAutoAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	name := stringValue(opts, "name")
	imageQuery := stringValue(opts, "imagequery")
	sideNote := stringValue(opts, "sidenote")
	number := intValue(opts, "number", 1)

	if h.wikipedia == nil || h.images == nil {
		respondError(s, i, botErr.Internal("auto-add is not available"))
		return nil
	}
	if number < 1 || number > 10 {
		respondError(s, i, botErr.InvalidAmountf("image count must be between 1 and 10, got %d", number))
		return nil
	}
	if sideNote == "" {
		sideNote = "No side note provided."
	}

	if err := deferResponse(s, i); err != nil {
		return err
	}

	description, err := h.wikipedia.Summary(ctx, name)
	if err != nil {
		if botErr.IsNotFound(err) {
			return followUp(s, i, fmt.Sprintf("Could not find a description for '%s' on Wikipedia.", name))
		}
		followUpError(s, i, err)
		return nil
	}

	urls, err := h.images.Search(ctx, imageQuery, int(number))
	if err != nil {
		followUpError(s, i, err)
		return nil
	}

	char, err := h.ServiceProvider.CharacterService.Upload(ctx, &charSvc.UploadInput{
		Name:        name,
		Description: description,
		SideNote:    sideNote,
		Images:      urls,
	})
	if err != nil {
		followUpError(s, i, err)
		return nil
	}
	return followUp(s, i, fmt.Sprintf("Character '%s' has been created with %d image(s). ✨", char.Name, len(urls)))
}
