package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spetersoncode/visualizer/model"
)

const modelsShortDesc string = "List the known image models"

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: modelsShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderModels(model.All()))
			return nil
		},
	}
}

func renderModels(models []model.ImageModel) string {
	rows := lo.Map(models, func(m model.ImageModel, _ int) []string {
		name := m.String()
		if m == model.Default {
			name += " (default)"
		}
		return []string{name, string(m.Provider()), m.Label(), formatPrice(m.Pricing())}
	})

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODEL", "PROVIDER", "NAME", "PRICE / IMAGE").
		Rows(rows...).
		String()
}

func formatPrice(p model.ImagePricing) string {
	switch {
	case p.HasFlatPricing():
		return fmt.Sprintf("$%.3f", p.PerImage)
	case p.HasQualityTiers():
		return fmt.Sprintf("$%.3f - $%.3f", p.LowQuality, p.HighQuality)
	default:
		return "-"
	}
}
