package cmd

import (
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/factories"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/repositories/memory"
	pgrepo "github.com/chrisdamba/foodfleet/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const seedBatchSize = 100

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic catalog and load it into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		reset, _ := cmd.Flags().GetBool("reset")
		placeholder, _ := cmd.Flags().GetBool("placeholder")
		ctx := cmd.Context()

		var menus []models.RestaurantMenu
		if placeholder {
			source := memory.NewSeedCatalog()
			logger.Info("loading placeholder catalog", zap.Int("restaurants", source.Count()))
			var err error
			if menus, err = source.Menus(); err != nil {
				return err
			}
		} else {
			if cfg.Seed.MenuDishesFile != "" {
				if err := cfg.LoadMenuDishData(cfg.Seed.MenuDishesFile); err != nil {
					return fmt.Errorf("error loading menu dishes: %w", err)
				}
			}
			menus = generateMenus(cfg.Seed, cfg.MenuDishes)
		}

		pool, err := pgrepo.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pgrepo.Migrate(ctx, pool); err != nil {
			return err
		}
		store := pgrepo.NewCatalog(pool)
		if reset {
			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("error resetting catalog: %w", err)
			}
			logger.Info("catalog reset")
		}

		bar := progressbar.Default(int64(len(menus)), "seeding restaurants")
		for start := 0; start < len(menus); start += seedBatchSize {
			end := min(start+seedBatchSize, len(menus))
			if err := store.Save(ctx, menus[start:end]); err != nil {
				return fmt.Errorf("error saving restaurants %d-%d: %w", start, end, err)
			}
			bar.Add(end - start)
		}

		restaurants, items, err := store.Counts(ctx)
		if err != nil {
			return err
		}
		logger.Info("catalog seeded",
			zap.Int("restaurants", restaurants),
			zap.Int("menu_items", items),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("restaurants", 0, "number of restaurants to generate")
	seedCmd.Flags().Int64("seed", 0, "random seed")
	seedCmd.Flags().Bool("reset", false, "delete the existing catalog first")
	seedCmd.Flags().Bool("placeholder", false, "load the built-in placeholder catalog instead of generating one")
	viper.BindPFlag("seed.restaurants", seedCmd.Flags().Lookup("restaurants"))
	viper.BindPFlag("seed.seed", seedCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(seedCmd)
}

// generateMenus builds the synthetic catalog. A seed fixes names, cuisines
// and prices; ids are always fresh.
func generateMenus(seed models.SeedConfig, dishes []models.MenuDish) []models.RestaurantMenu {
	restaurants := factories.NewRestaurantFactory(seed.Seed).CreateRestaurants(seed.Restaurants)
	menuFactory := factories.NewMenuItemFactory(seed.Seed, dishes)

	menus := make([]models.RestaurantMenu, 0, len(restaurants))
	for _, r := range restaurants {
		menus = append(menus, menuFactory.CreateMenu(r, seed.MinItems, seed.MaxItems))
	}
	return menus
}
