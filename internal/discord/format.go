package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

var printer = message.NewPrinter(language.English)

// title upper-cases the first letter of each word. Casers hold state, so
// each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

var stageEmoji = map[domain.Stage]string{
	domain.StageEmpty:           "🪴",
	domain.StageGrowing1:        "🌱",
	domain.StageGrowing2:        "🌿",
	domain.StageGrowing3:        "🌾",
	domain.StageGrowing4:        "🌸",
	domain.StageReadyToHarvest:  "✨",
	domain.StageAwaitingCleanup: "🧹",
}

// formatAmount renders an integer with thousands separators
func formatAmount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// formatStage renders a stage as a title-cased label with its emoji
func formatStage(s domain.Stage) string {
	label := title(strings.ReplaceAll(s.String(), "_", " "))
	if e, ok := stageEmoji[s]; ok {
		return e + " " + label
	}
	return label
}

// formatTimestamp renders a unix time as a Discord relative timestamp
func formatTimestamp(ts uint64) string {
	if ts == 0 {
		return "never"
	}
	return fmt.Sprintf("<t:%d:R>", ts)
}

// podFields renders one embed field per pod
func podFields(a *domain.AccountState) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(a.Pods))
	for i, p := range a.Pods {
		var b strings.Builder
		b.WriteString(formatStage(p.Stage))
		if !p.IsEmpty() {
			fmt.Fprintf(&b, "\n💧 %s (last %s)", formatAmount(p.WaterCount), formatTimestamp(p.LastWatered))
			fmt.Fprintf(&b, "\n🧪 %s (last %s)", formatAmount(p.NutrientCount), formatTimestamp(p.LastNutrients))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Pod %d", i+1),
			Value:  b.String(),
			Inline: true,
		})
	}
	return fields
}

// accountEmbed summarises an account's pods and progress
func accountEmbed(title string, a *domain.AccountState) *discordgo.MessageEmbed {
	embed := createEmbed(title, fmt.Sprintf("`%s`\nHarvests: **%s** · Pod slots: **%s**",
		a.Address, formatAmount(a.Progress.HarvestCount), formatAmount(a.Progress.PodSlotCount)), ColorInfo, "")
	embed.Fields = podFields(a)
	return embed
}

// globalEmbed summarises the application-wide counters
func globalEmbed(g *domain.GlobalConfig) *discordgo.MessageEmbed {
	embed := createEmbed("🌍 GrowPod World", "", ColorInfo, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Seeds minted", Value: formatAmount(g.SeedCounter), Inline: true},
		{Name: "Biomass harvested", Value: formatAmount(g.BiomassCounter), Inline: true},
		{Name: "Total biomass", Value: formatAmount(g.TotalBiomass), Inline: true},
		{Name: "Cure vault", Value: formatAmount(g.CureVaultBal), Inline: true},
		{Name: "Terp registry", Value: formatAmount(g.TerpRegistry), Inline: true},
		{Name: "Version", Value: formatAmount(g.Version), Inline: true},
	}
	return embed
}

// summarizeEvents lists the events an action produced, one per line
func summarizeEvents(events []domain.ActionEvent) string {
	if len(events) == 0 {
		return "Done."
	}
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		name := ev.Type[strings.LastIndexByte(ev.Type, '.')+1:]
		lines = append(lines, "• "+title(strings.ReplaceAll(name, "_", " ")))
	}
	return strings.Join(lines, "\n")
}
