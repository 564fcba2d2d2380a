package discord

import "github.com/bwmarrin/discordgo"

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "upload",
			Description: "Upload a new character",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
				stringOption("description", "Character description", true),
				stringOption("side_note", "A side note for the character", false),
				stringOption("image_url", "Direct image URL (http)", false),
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "image",
					Description: "Image attachment",
					Required:    false,
				},
			},
		},
		{
			Name:        "view",
			Description: "View a character's details and images",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "name",
					Description:  "Character name",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "changeinfo",
			Description: "Change info for an existing character",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
				stringOption("new_name", "New character name", false),
				stringOption("new_description", "New description", false),
				stringOption("new_side_note", "New side note", false),
				stringOption("new_images", "Comma-separated image URLs replacing all images", false),
			},
		},
		{
			Name:        "delete",
			Description: "Delete a character",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
			},
		},
		{
			Name:        "list",
			Description: "List all uploaded characters with their statuses",
		},
		{
			Name:        "ownlist",
			Description: "List all characters you own",
		},
		{
			Name:        "release",
			Description: "Release ownership of a claimed character",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
			},
		},
		{
			Name:        "kill",
			Description: "Change a character's status to deceased",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
				stringOption("how", "Cause of death", true),
			},
		},
		{
			Name:        "revive",
			Description: "Change a character's status to alive",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
			},
		},
		{
			Name:        "spawn",
			Description: "Spawn a random unclaimed character in the hunting ground",
		},
		{
			Name:        "addgold",
			Description: "Add gold to a user's balance",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("user", "Recipient", true),
				intOption("amount", "Amount of gold", true),
			},
		},
		{
			Name:        "deletegold",
			Description: "Remove gold from a user's balance",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("user", "Target user", true),
				intOption("amount", "Amount of gold", true),
			},
		},
		{
			Name:        "balance",
			Description: "Check a gold balance",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("user", "User to check (defaults to you)", false),
			},
		},
		{
			Name:        "givegold",
			Description: "Give gold to another user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("recipient", "Recipient", true),
				intOption("amount", "Amount of gold", true),
			},
		},
		{
			Name:        "givechar",
			Description: "Transfer ownership of a character to another user",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
			},
		},
		{
			Name:        "sell",
			Description: "Put a character up for sale",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name", true),
				intOption("amount", "Sale price in gold", true),
			},
		},
		{
			Name:        "duel",
			Description: "Challenge another user to a character duel",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("opponent", "User to challenge", true),
			},
		},
		{
			Name:        "setgraveyard",
			Description: "Set a channel to display deceased characters",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Graveyard channel", true),
			},
		},
		{
			Name:        "setcharacterlist",
			Description: "Set a channel to display all characters with their statuses",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Roster channel", true),
			},
		},
		{
			Name:        "sethuntingground",
			Description: "Set a channel for periodic character spawns",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Spawn channel", true),
				intOption("interval", "Spawn interval in seconds", true),
			},
		},
		{
			Name:        "adminlock",
			Description: "Lock a command for admins only",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("command", "Command name", true),
			},
		},
		{
			Name:        "adminunlock",
			Description: "Unlock a command for everyone",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("command", "Command name", true),
			},
		},
		{
			Name:        "adminlist",
			Description: "View bot admins and command lock statuses",
		},
		{
			Name:        "roll",
			Description: "Roll a die with a specified number of sides",
			Options: []*discordgo.ApplicationCommandOption{
				intOption("sides", "Number of sides (default 6)", false),
			},
		},
		{
			Name:        "pick",
			Description: "Pick a random option from a list",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("prompt", "What is being decided", true),
				stringOption("option1", "First option", true),
				stringOption("option2", "Second option", true),
				stringOption("option3", "Third option", false),
				stringOption("option4", "Fourth option", false),
				stringOption("option5", "Fifth option", false),
				stringOption("option6", "Sixth option", false),
				stringOption("option7", "Seventh option", false),
				stringOption("option8", "Eighth option", false),
				stringOption("option9", "Ninth option", false),
				stringOption("option10", "Tenth option", false),
			},
		},
		{
			Name:        "guide",
			Description: "Get a guide on how to use the bot",
		},
		{
			Name:        "list_commands",
			Description: "List all commands",
		},
		{
			Name:        "wikipedia",
			Description: "Fetch a brief description from Wikipedia",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Topic to search for", true),
			},
		},
		{
			Name:        "addpic",
			Description: "Add images to a character using a search query",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("character", "Character name", true),
				stringOption("query", "Image search query", true),
				intOption("number", "Number of images to add (1-10)", false),
			},
		},
		{
			Name:        "autoadd",
			Description: "Automatically add a character with wiki info and images",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Character name and Wikipedia topic", true),
				stringOption("imagequery", "Image search query", true),
				stringOption("sidenote", "A side note for the character", false),
				intOption("number", "Number of images to add (1-10)", false),
			},
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func userOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func channelOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionChannel,
		Name:        name,
		Description: description,
		Required:    required,
		ChannelTypes: []discordgo.ChannelType{
			discordgo.ChannelTypeGuildText,
		},
	}
}
