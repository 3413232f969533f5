package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show a restaurant's menu and customization options",
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurantID, _ := cmd.Flags().GetString("restaurant")

		source, closeSource, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSource()

		menu, err := catalog.NewService(source, cfg.Catalog, logger).Menu(cmd.Context(), restaurantID)
		if err != nil {
			return err
		}
		printMenu(cmd.OutOrStdout(), menu)
		return nil
	},
}

func init() {
	menuCmd.Flags().String("restaurant", "", "restaurant id")
	rootCmd.AddCommand(menuCmd)
}

func printMenu(w io.Writer, menu *models.RestaurantMenu) {
	r := menu.Restaurant
	fmt.Fprintf(w, "%s (%.1f, %d reviews)\n", r.Name, r.Rating, menu.ReviewsCount)
	fmt.Fprintf(w, "%s | %s | %s\n", menu.Cuisine, menu.Address, menu.OpeningHours)
	if menu.Description != "" {
		fmt.Fprintln(w, menu.Description)
	}

	for _, category := range menu.Categories {
		fmt.Fprintf(w, "\n%s\n", category.Name)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, item := range category.Items {
			fmt.Fprintf(tw, "  %s\t%s\t$%s\t\n", item.ID, item.Name, item.Price.StringFixed(2))
		}
		tw.Flush()
		for _, item := range category.Items {
			for _, group := range item.Customizations {
				fmt.Fprintf(w, "    %s / %s\n", item.ID, describeGroup(group))
			}
		}
	}
}

func describeGroup(group models.CustomizationGroup) string {
	kind := "choose one"
	if group.Mode == models.SelectionMulti {
		kind = "choose any"
	}
	if group.Required {
		kind += ", required"
	}
	options := make([]string, 0, len(group.Options))
	for _, opt := range group.Options {
		label := opt.ID
		if !opt.PriceModifier.IsZero() {
			label += fmt.Sprintf(" (%s)", signed(opt.PriceModifier.StringFixed(2)))
		}
		options = append(options, label)
	}
	return fmt.Sprintf("%s [%s] (%s): %s", group.Title, group.ID, kind, strings.Join(options, ", "))
}

func signed(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return "-$" + amount[1:]
	}
	return "+$" + amount
}
