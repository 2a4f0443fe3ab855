package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo    = 0x2e86de
	colorSuccess = 0x00ff00
	colorWarning = 0xf39c12
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a slash command interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error

	// HandleComponent processes a button press on a message the command posted
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// messageResponse posts plain text to the channel
func messageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

// ephemeralResponse answers only the user who acted
func ephemeralResponse(content string) *discordgo.InteractionResponse {
	resp := messageResponse(content)
	resp.Data.Flags = discordgo.MessageFlagsEphemeral
	return resp
}

// embedResponse posts an embed with optional buttons
func embedResponse(embed *discordgo.MessageEmbed, buttons ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if len(buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// ephemeralEmbedResponse is an embed only the acting user sees
func ephemeralEmbedResponse(embed *discordgo.MessageEmbed, buttons ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	resp := embedResponse(embed, buttons...)
	resp.Data.Flags = discordgo.MessageFlagsEphemeral
	return resp
}

// errorResponse tells the acting user why their action failed
func errorResponse(title, message string) *discordgo.InteractionResponse {
	return ephemeralEmbedResponse(&discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	})
}

// interactionUser returns who triggered the interaction. Guild interactions
// carry a member, direct messages only a user.
func interactionUser(i *discordgo.InteractionCreate) (id, name string) {
	if i.Member != nil && i.Member.User != nil {
		name = i.Member.User.Username
		if i.Member.User.GlobalName != "" {
			name = i.Member.User.GlobalName
		}
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}

	if i.User != nil {
		name = i.User.Username
		if i.User.GlobalName != "" {
			name = i.User.GlobalName
		}
		return i.User.ID, name
	}

	return "", ""
}
