package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/output"
	"github.com/chrisdamba/foodfleet/internal/pricing"
	"github.com/chrisdamba/foodfleet/internal/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cartRequest is the YAML or JSON file read by the cart command.
type cartRequest struct {
	Restaurant   string            `mapstructure:"restaurant"`
	PromoCode    string            `mapstructure:"promo_code"`
	Instructions string            `mapstructure:"instructions"`
	Lines        []cartRequestLine `mapstructure:"lines"`
}

type cartRequestLine struct {
	Item       string              `mapstructure:"item"`
	Quantity   *int                `mapstructure:"quantity"`
	Selections map[string][]string `mapstructure:"selections"`
}

type rejection struct {
	Item   string
	Reason string
}

type cartResult struct {
	Rejections []rejection
	Promotion  *pricing.PromotionResult
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Price a cart described in a request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		checkout, _ := cmd.Flags().GetBool("checkout")

		req, err := loadCartRequest(file)
		if err != nil {
			return err
		}

		source, closeSource, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSource()

		svc := catalog.NewService(source, cfg.Catalog, logger)
		store := session.NewStore(newEngine(), session.WithLogger(logger))

		result, err := buildCart(cmd.Context(), svc, store, req)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printCart(out, store, result)

		if !checkout {
			return nil
		}
		order, err := store.Checkout(req.Restaurant)
		if err != nil {
			return err
		}
		if err := exportOrder(cmd.Context(), order); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nOrder %s placed.\n", order.ID)
		return printProgress(out, order.Stage)
	},
}

func init() {
	cartCmd.Flags().String("file", "cart.yaml", "cart request file (yaml or json)")
	cartCmd.Flags().Bool("checkout", false, "place the order and export it")
	rootCmd.AddCommand(cartCmd)
}

func loadCartRequest(path string) (cartRequest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cartRequest{}, fmt.Errorf("error reading cart request: %w", err)
	}
	var req cartRequest
	if err := v.Unmarshal(&req, models.DecoderOptions()); err != nil {
		return cartRequest{}, fmt.Errorf("unable to decode cart request, %w", err)
	}
	if req.Restaurant == "" {
		return cartRequest{}, catalog.ErrMissingRestaurant
	}
	return req, nil
}

// buildCart fills the session cart from req. Unknown items and rejected lines
// are collected rather than aborting the cart.
func buildCart(ctx context.Context, svc *catalog.Service, store *session.Store, req cartRequest) (cartResult, error) {
	var result cartResult
	for _, line := range req.Lines {
		item, err := svc.MenuItem(ctx, req.Restaurant, line.Item)
		if errors.Is(err, catalog.ErrMenuItemNotFound) {
			result.Rejections = append(result.Rejections, rejection{Item: line.Item, Reason: "not on the menu"})
			continue
		}
		if err != nil {
			return cartResult{}, err
		}

		selections := models.DefaultSelections(item)
		if line.Selections != nil {
			selections = models.SelectionsFromIDs(item, line.Selections)
		}
		quantity := 1
		if line.Quantity != nil {
			quantity = *line.Quantity
		}

		if _, err := store.AddItem(item, quantity, selections); err != nil {
			result.Rejections = append(result.Rejections, rejection{Item: item.Name, Reason: err.Error()})
		}
	}

	store.Engine().SetInstructions(store.Cart, req.Instructions)
	if req.PromoCode != "" {
		res := store.ApplyPromotion(req.PromoCode)
		result.Promotion = &res
	}
	return result, nil
}

func printCart(w io.Writer, store *session.Store, result cartResult) {
	for _, r := range result.Rejections {
		fmt.Fprintf(w, "rejected %s: %s\n", r.Item, r.Reason)
	}
	if len(result.Rejections) > 0 {
		fmt.Fprintln(w)
	}

	engine := store.Engine()
	if store.Cart.IsEmpty() {
		fmt.Fprintln(w, "Your cart is empty.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "QTY\tITEM\tOPTIONS\tUNIT\tTOTAL\t")
		for _, line := range store.Cart.Lines {
			unit := engine.ComputeLineUnitPrice(line.Item, line.Selections)
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
				line.Quantity, line.Item.Name, describeSelections(line.Selections),
				money(unit), money(engine.LineTotal(line)))
		}
		tw.Flush()
	}

	if result.Promotion != nil {
		fmt.Fprintf(w, "\n%s\n", result.Promotion.Message)
	}
	if store.Cart.Instructions != "" {
		fmt.Fprintf(w, "Instructions: %s\n", store.Cart.Instructions)
	}

	totals := store.Totals().Rounded()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w)
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", money(totals.Subtotal))
	if !totals.Discount.IsZero() {
		fmt.Fprintf(tw, "Discount\t-%s\t\n", money(totals.Discount))
	}
	fmt.Fprintf(tw, "Delivery Fee\t%s\t\n", money(totals.DeliveryFee))
	fmt.Fprintf(tw, "Tax\t%s\t\n", money(totals.Tax))
	fmt.Fprintf(tw, "Total\t%s\t\n", money(totals.Total))
	tw.Flush()
}

func describeSelections(selections models.Selections) string {
	groups := make([]string, 0, len(selections))
	for groupID, sel := range selections {
		if sel == nil || sel.Empty() {
			continue
		}
		groups = append(groups, groupID+"="+strings.Join(sel.OptionIDs(), "+"))
	}
	if len(groups) == 0 {
		return "-"
	}
	sort.Strings(groups)
	return strings.Join(groups, " ")
}

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func exportOrder(ctx context.Context, order models.Order) error {
	dest, err := output.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return exportTo(ctx, dest, cfg.Kafka.Topic, order)
}

// exportTo publishes order and closes dest. A failed close is reported even
// when the export itself failed.
func exportTo(ctx context.Context, dest output.Destination, topic string, order models.Order) error {
	exporter := output.NewExporter(dest, topic, logger)
	if err := exporter.Export(ctx, order); err != nil {
		return errors.Join(err, exporter.Close())
	}
	return exporter.Close()
}
