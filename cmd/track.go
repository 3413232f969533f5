package cmd

import (
	"fmt"
	"io"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/tracking"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Show the delivery progress of an order stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		stageFlag, _ := cmd.Flags().GetString("stage")
		next, _ := cmd.Flags().GetBool("next")

		stage := models.OrderStage(stageFlag)
		if next {
			var err error
			if stage, err = tracking.Next(stage); err != nil {
				return err
			}
		}
		return printProgress(cmd.OutOrStdout(), stage)
	},
}

func init() {
	trackCmd.Flags().String("stage", string(models.OrderStagePlaced), "current stage: placed, preparing, out-for-delivery or delivered")
	trackCmd.Flags().Bool("next", false, "advance one stage before printing")
	rootCmd.AddCommand(trackCmd)
}

func printProgress(w io.Writer, stage models.OrderStage) error {
	steps, err := tracking.Progress(stage)
	if err != nil {
		return err
	}
	percent, err := tracking.Percent(stage)
	if err != nil {
		return err
	}

	for _, step := range steps {
		mark := "[ ]"
		switch step.State {
		case tracking.StepCompleted:
			mark = "[x]"
		case tracking.StepCurrent:
			mark = "[>]"
		}
		fmt.Fprintf(w, "%s %s\n", mark, step.Name)
		if step.State == tracking.StepCurrent {
			fmt.Fprintf(w, "    %s\n", step.Description)
		}
	}
	fmt.Fprintf(w, "%d%% complete\n", percent)
	return nil
}
