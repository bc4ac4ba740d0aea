package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

const (
	optionAddress = "address"
	optionPod     = "pod"
)

func addressOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionAddress,
		Description: "Your ledger account address",
		Required:    true,
		MaxLength:   64,
	}
}

// PodsCommand shows an account's pods
func PodsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pods",
		Description: "Show the pods of a GrowPod account",
		Options:     []*discordgo.ApplicationCommandOption{addressOption()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		address := getOptions(i)[optionAddress].StringValue()
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			a, err := client.GetAccount(ctx, address)
			if err != nil {
				return nil, err
			}
			return accountEmbed("🌿 Your Pods", a), nil
		})
	}

	return cmd, handler
}

// OptInCommand opts an account into the game
func OptInCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "optin",
		Description: "Start growing with a GrowPod account",
		Options:     []*discordgo.ApplicationCommandOption{addressOption()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		address := getOptions(i)[optionAddress].StringValue()
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			a, err := client.OptIn(ctx, address)
			if err != nil {
				return nil, err
			}
			embed := accountEmbed("🎉 Welcome to GrowPod!", a)
			embed.Color = ColorSuccess
			return embed, nil
		})
	}

	return cmd, handler
}

// WorldCommand shows the application-wide counters
func WorldCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "world",
		Description: "Show GrowPod world totals",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			g, err := client.GetGlobal(ctx)
			if err != nil {
				return nil, err
			}
			return globalEmbed(g), nil
		})
	}

	return cmd, handler
}
