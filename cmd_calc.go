package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"nrt-dosing/domain"
	"nrt-dosing/repository"
	"nrt-dosing/service"
)

// noResultPlaceholder is printed when an intake has no derived value.
const noResultPlaceholder = "—"

func (a *app) dosingService() *service.DosingService {
	return service.NewDosingService(repository.NewMemoryCache(), a.logger)
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		amount       float64
		unit         string
		periodAmount float64
		periodUnit   string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an intake to cigarettes/day and suggest a dosing",
		Example: `  nrt-dosing convert --amount 1.5 --unit packs_per_day
  nrt-dosing convert --amount 1 --unit cartons_per_custom --period-amount 10 --period-unit days`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.IntakeInput{
				Amount: amount,
				Unit:   domain.UnitKind(unit),
			}
			if input.Unit == domain.UnitCartonsPerCustom {
				input.CustomPeriod = &domain.CustomPeriod{
					Amount: periodAmount,
					Unit:   domain.PeriodUnit(periodUnit),
				}
			}

			result, err := a.dosingService().CalculateFromIntake(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			if !result.HasResult() {
				fmt.Fprintf(out, "Cigarettes/day: %s\n", noResultPlaceholder)
				return nil
			}
			printRecommendation(out, *result.Recommendation)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount smoked in the chosen unit")
	cmd.Flags().StringVar(&unit, "unit", string(domain.UnitCigarettesPerDay),
		"Unit: cigs_per_day, packs_per_day, cartons_per_{1,2,3,4}_week(s), cartons_per_custom")
	cmd.Flags().Float64Var(&periodAmount, "period-amount", 0, "Custom period length (cartons_per_custom)")
	cmd.Flags().StringVar(&periodUnit, "period-unit", string(domain.PeriodDays), "Custom period unit: days, weeks, months")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON format")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <cigarettes-per-day>",
		Short: "Suggest a dosing for a cigarettes/day value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cigarettes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid cigarettes per day %q: %w", args[0], err)
			}

			rec, err := a.dosingService().Recommend(cmd.Context(), cigarettes)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			printRecommendation(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON format")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	var (
		heavy  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the dosing reference table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			svc := a.dosingService()

			if heavy {
				rows := svc.HeavySmokerTable()
				if asJSON {
					return writeJSON(out, rows)
				}
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "LEVEL\tNEED\tPATCHES\tTOTAL\tSUPPORT\tSUPERVISION")
				for _, row := range rows {
					fmt.Fprintf(tw, "%s\t%d mg\t%s\t%s mg\t%s\t%s\n",
						row.Level, row.NicotineNeedMg, row.Patches, row.TotalNicotineMg, row.Support, row.Supervision)
				}
				return tw.Flush()
			}

			buckets := svc.DosingTable()
			if asJSON {
				return writeJSON(out, buckets)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CIGS/DAY\tNEED\tPATCHES\tSHORT-ACTING")
			for _, b := range buckets {
				fmt.Fprintf(tw, "%d\t%d mg\t%s\t%s\n",
					b.ThresholdCigarettesPerDay, b.NicotineNeedMg, b.PatchRecommendation, b.ShortActingRecommendation)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&heavy, "heavy", false, "Print the heavy-smoker table instead")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON format")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := service.CurrentVersion(time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "nrt-dosing %s\nLast update: %s\n", info.Version, info.LastUpdated)
			return nil
		},
	}
}

func printRecommendation(w io.Writer, rec domain.DosingRecommendation) {
	fmt.Fprintf(w, "Cigarettes/day: %d\n", rec.CigarettesPerDay)
	fmt.Fprintf(w, "Estimated nicotine need: %d mg\n", rec.EstimatedNicotineNeedMg)
	fmt.Fprintf(w, "Patches: %s\n", rec.PatchRecommendation)
	fmt.Fprintf(w, "Short-acting: %s\n", rec.ShortActingRecommendation)
	if rec.SupervisionRequired {
		fmt.Fprintln(w, "Supervision: clinical supervision is advised at this intake level")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
