package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/session"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search, sort and page through restaurants",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		sortFlag, _ := cmd.Flags().GetString("sort")
		cuisine, _ := cmd.Flags().GetString("cuisine")
		page, _ := cmd.Flags().GetInt("page")

		sortKey, ok := models.ParseSortKey(sortFlag)
		if !ok {
			return fmt.Errorf("unknown sort key %q", sortFlag)
		}

		source, closeSource, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSource()

		svc := catalog.NewService(source, cfg.Catalog, logger)
		store := session.NewStore(newEngine(), session.WithFavorites(catalog.SeedFavorites...), session.WithLogger(logger))
		store.SetCuisine(cuisine)
		store.SetSearch(search)
		store.SetSort(sortKey)
		store.SetPage(page)

		result, err := store.Browse(cmd.Context(), svc)
		if err != nil {
			return err
		}
		printPage(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("search", "", "match restaurant names and cuisines")
	catalogCmd.Flags().String("sort", string(models.DefaultSortKey), "rating, delivery-time or name")
	catalogCmd.Flags().String("cuisine", "", "only restaurants tagged with this cuisine")
	catalogCmd.Flags().Int("page", 1, "page number")
	rootCmd.AddCommand(catalogCmd)
}

func printPage(w io.Writer, page catalog.Page) {
	if page.Empty() {
		fmt.Fprintln(w, "No restaurants found matching your criteria.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINES\tRATING\tDELIVERY\t")
	for _, r := range page.Items {
		name := r.Name
		if r.Favorite {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t\n", r.ID, name, strings.Join(r.Cuisines, ", "), r.Rating, r.DeliveryTimeEstimate)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPage %d of %d (%d restaurants)  %s\n", page.Page, page.TotalPages, page.TotalItems, renderPageWindow(page))
}

func renderPageWindow(page catalog.Page) string {
	var parts []string
	if page.HasPrev() {
		parts = append(parts, "<")
	}
	for _, m := range catalog.PageWindow(page.Page, page.TotalPages) {
		switch {
		case m.Ellipsis:
			parts = append(parts, "...")
		case m.Current:
			parts = append(parts, fmt.Sprintf("[%d]", m.Number))
		default:
			parts = append(parts, fmt.Sprintf("%d", m.Number))
		}
	}
	if page.HasNext() {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}
