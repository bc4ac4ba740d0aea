package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growth"
)

// podActionConfig describes a command that runs one pod-scoped action
type podActionConfig struct {
	Name        string
	Action      string
	Description string
	Title       string
	Color       int
}

var podActions = []podActionConfig{
	{Name: "water", Action: domain.ActionWater, Description: "Water a pod", Title: "💧 Watered", Color: ColorInfo},
	{Name: "nutrients", Action: domain.ActionNutrients, Description: "Feed nutrients to a pod", Title: "🧪 Fed", Color: ColorInfo},
	{Name: "harvest", Action: domain.ActionHarvest, Description: "Harvest a ready pod", Title: "✨ Harvested", Color: ColorHarvest},
}

// WaterCommand waters a pod
func WaterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return podActionCommand(podActions[0])
}

// NutrientsCommand feeds a pod
func NutrientsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return podActionCommand(podActions[1])
}

// HarvestCommand harvests a pod
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return podActionCommand(podActions[2])
}

func podActionCommand(cfg podActionConfig) (*discordgo.ApplicationCommand, CommandHandler) {
	minPod := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        cfg.Name,
		Description: cfg.Description,
		Options: []*discordgo.ApplicationCommandOption{
			addressOption(),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionPod,
				Description: "Pod number (default: 1)",
				MinValue:    &minPod,
				MaxValue:    domain.PodSlotLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := getOptions(i)
		address := opts[optionAddress].StringValue()
		pod := 1
		if o, ok := opts[optionPod]; ok {
			pod = int(o.IntValue())
		}
		tag := growth.Action{Name: cfg.Action, Pod: pod - 1}.Tag()

		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			res, err := client.Invoke(ctx, address, tag)
			if err != nil {
				return nil, err
			}
			embed := createEmbed(fmt.Sprintf("%s · Pod %d", cfg.Title, pod), summarizeEvents(res.Events), cfg.Color, "")
			if res.Account != nil && pod-1 < len(res.Account.Pods) {
				embed.Fields = podFields(res.Account)[pod-1 : pod]
			}
			return embed, nil
		})
	}

	return cmd, handler
}
