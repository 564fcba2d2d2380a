package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Kekatrice/DiscordBotty/internal/display"
	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/pagination"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
)

const maxAutocompleteChoices = 25

func (h *Handler) handleUpload(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)

	var images []string
	if url := stringValue(opts, "image_url"); url != "" {
		if !strings.HasPrefix(url, "http") {
			respondError(s, i, botErr.InvalidArgument("image URL must start with http"))
			return nil
		}
		images = append(images, url)
	}
	if opt, ok := opts["image"]; ok {
		attachmentID, isString := opt.Value.(string)
		if isString && i.ApplicationCommandData().Resolved != nil {
			if att, found := i.ApplicationCommandData().Resolved.Attachments[attachmentID]; found {
				images = append(images, att.URL)
			}
		}
	}

	char, err := h.ServiceProvider.CharacterService.Upload(ctx, &charSvc.UploadInput{
		Name:        stringValue(opts, "name"),
		Description: stringValue(opts, "description"),
		SideNote:    stringValue(opts, "side_note"),
		Images:      images,
	})
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	return respond(s, i, fmt.Sprintf("Character '%s' has been uploaded!", char.Name))
}

func (h *Handler) handleView(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := stringValue(optionMap(i), "name")

	char, err := h.ServiceProvider.CharacterService.Get(ctx, name)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	embed := pagination.BuildCharacterEmbed(char, 0, false)
	if err := respondEmbed(s, i, toDiscordEmbed(embed)); err != nil {
		return err
	}

	// The embed message backs an interactive session for browsing the
	// character's images
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return botErr.Wrap(err, "failed to fetch interaction response")
	}

	return h.sessions.Open(ctx, &pagination.SessionConfig{
		Character:   char,
		Message:     &platform.Message{ChannelID: msg.ChannelID, MessageID: msg.ID},
		Claimable:   false,
		IdleTimeout: h.viewTimeout(),
	})
}

func (h *Handler) handleViewAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var current string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "name" && opt.Focused {
			current, _ = opt.Value.(string)
		}
	}

	all, err := h.ServiceProvider.CharacterService.ListAll(ctx)
	if err != nil {
		return err
	}

	prefix := character.CanonicalName(current)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, char := range all {
		if prefix != "" && !strings.Contains(character.CanonicalName(char.Name), prefix) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  char.Name,
			Value: char.Name,
		})
		if len(choices) == maxAutocompleteChoices {
			break
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}

func (h *Handler) handleChangeInfo(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)

	input := &charSvc.UpdateInfoInput{Name: stringValue(opts, "name")}
	if v, ok := opts["new_name"]; ok {
		name, _ := v.Value.(string)
		input.NewName = &name
	}
	if v, ok := opts["new_description"]; ok {
		desc, _ := v.Value.(string)
		input.Description = &desc
	}
	if v, ok := opts["new_side_note"]; ok {
		note, _ := v.Value.(string)
		input.SideNote = &note
	}
	if raw := stringValue(opts, "new_images"); raw != "" {
		var images []string
		for _, url := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(url); trimmed != "" {
				images = append(images, trimmed)
			}
		}
		input.Images = images
	}

	char, err := h.ServiceProvider.CharacterService.UpdateInfo(ctx, input)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	return respond(s, i, fmt.Sprintf("Character '%s' has been updated!", char.Name))
}

func (h *Handler) handleDelete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := stringValue(optionMap(i), "name")

	if err := h.ServiceProvider.CharacterService.Delete(ctx, name); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("Character '%s' has been deleted.", name))
}

func (h *Handler) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	all, err := h.ServiceProvider.CharacterService.ListAll(ctx)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	pages := display.BuildRosterPages(all, h.pageSize())
	if err := respond(s, i, pages[0]); err != nil {
		return err
	}
	for _, page := range pages[1:] {
		if err := followUp(s, i, page); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleOwnList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := interactionUserID(i)

	owned, err := h.ServiceProvider.CharacterService.ListOwnedBy(ctx, userID)
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	if len(owned) == 0 {
		return respondEphemeral(s, i, "You do not own any characters yet.")
	}

	names := make([]string, 0, len(owned))
	for _, char := range owned {
		names = append(names, fmt.Sprintf("**%s**", char.Name))
	}
	return respond(s, i, fmt.Sprintf("You own: %s", strings.Join(names, ", ")))
}

func (h *Handler) handleRelease(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := stringValue(optionMap(i), "name")
	userID := interactionUserID(i)

	if err := h.ServiceProvider.CharacterService.Release(ctx, name, userID); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("You have released '%s'. They roam free once more.", name))
}

func (h *Handler) pageSize() int {
	if h.timers.PageSize > 0 {
		return h.timers.PageSize
	}
	return 50
}

func (h *Handler) viewTimeout() time.Duration {
	if h.timers.ViewIdleTimeout > 0 {
		return h.timers.ViewIdleTimeout
	}
	return time.Minute
}

func (h *Handler) replyTimeout() time.Duration {
	if h.timers.ReplyTimeout > 0 {
		return h.timers.ReplyTimeout
	}
	return 30 * time.Second
}

// optionMap indexes top-level command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func stringValue(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		if v, isString := opt.Value.(string); isString {
			return v
		}
	}
	return ""
}

func intValue(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int64) int64 {
	if opt, ok := opts[name]; ok {
		if v, isFloat := opt.Value.(float64); isFloat {
			return int64(v)
		}
	}
	return fallback
}

// toDiscordEmbed converts the platform embed payload for interaction
// responses, which bypass the messenger
func toDiscordEmbed(embed *platform.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
	}
	if embed.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: embed.ImageURL}
	}
	if embed.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}
	for _, field := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return out
}
