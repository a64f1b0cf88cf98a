// Package main is a small terminal calculator that prices a policy with the
// same estimator the landing page uses.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/avtostrahovanie/landing/internal/estimator"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	premiumStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type options struct {
	form   estimator.Form
	asJSON bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate a yearly OSAGO premium",
		Long: `Estimate a yearly OSAGO premium from engine power, vehicle age,
driver experience and region, exactly as the landing page calculator does.`,
		Example:      "  quote --power 151 --age 11 --exp 2 --region moscow",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.form.Power, "power", "", "engine power, hp")
	flags.StringVar(&opts.form.Age, "age", "", "vehicle age, years")
	flags.StringVar(&opts.form.Experience, "exp", "", "driving experience, years")
	flags.StringVar(&opts.form.Region, "region", "", "moscow, saint-petersburg (spb) or other (regions)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func run(w io.Writer, opts options) error {
	in, err := opts.form.Input()
	if errors.Is(err, estimator.ErrIncomplete) {
		return fmt.Errorf("--power, --age, --exp and --region are all required")
	}
	if err != nil {
		return err
	}

	res := estimator.Estimate(in)

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonResult{
			Premium:    res.Premium,
			Currency:   "RUB",
			Region:     string(in.Region),
			Base:       res.Breakdown.Base.IntPart(),
			Power:      res.Breakdown.Power.String(),
			Age:        res.Breakdown.Age.String(),
			Experience: res.Breakdown.Experience.String(),
			RegionCoef: res.Breakdown.Region.String(),
		})
	}

	rows := []string{
		row("Мощность двигателя", fmt.Sprintf("%s л.с. × %s", opts.form.Power, res.Breakdown.Power.StringFixed(1))),
		row("Возраст автомобиля", fmt.Sprintf("%d × %s", in.VehicleAge, res.Breakdown.Age.StringFixed(1))),
		row("Стаж вождения", fmt.Sprintf("%d × %s", in.DriverExperience, res.Breakdown.Experience.StringFixed(1))),
		row("Регион", fmt.Sprintf("%s × %s", in.Region.Label(), res.Breakdown.Region.StringFixed(1))),
		"",
		labelStyle.Render("Стоимость полиса ОСАГО") + premiumStyle.Render(estimator.FormatPremium(res.Premium)+" ₽ в год"),
	}

	_, err = fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return err
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

type jsonResult struct {
	Premium    int64  `json:"premium"`
	Currency   string `json:"currency"`
	Region     string `json:"region"`
	Base       int64  `json:"base"`
	Power      string `json:"power"`
	Age        string `json:"age"`
	Experience string `json:"experience"`
	RegionCoef string `json:"region_coefficient"`
}
