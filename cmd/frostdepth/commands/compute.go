package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"frost-depth/internal/frost"
	"frost-depth/internal/types"
)

func computeCmd() *cobra.Command {
	var (
		dryDensity      float64
		waterContentPct float64
		soilState       string
		conductivity    float64
		seasonDays      float64
		freezingIndex   float64
		meanAnnualTemp  float64
		latitude        float64
		longitude       float64
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the frost penetration depth for a soil and climate",
		Long: `Compute the frost penetration depth via the modified Berggren equation.

The mean annual temperature is taken from --mat when given; otherwise it is
fetched from the SNAP climate projection for --lat/--lon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			soil := types.NewSoilProperties(
				conductivity,
				dryDensity,
				waterContentPct,
				types.ParseSoilState(soilState),
			)
			climate := types.NewClimateProperties(meanAnnualTemp, freezingIndex, seasonDays)
			climate.FreezingTemp = types.NewTemperatureFromFahrenheit(cfg.ModBerg.FreezingTemp)

			var (
				estimate *frost.FrostEstimate
				err      error
			)
			if cmd.Flags().Changed("mat") {
				estimate, err = frostSvc.Estimate(soil, climate)
			} else {
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return fmt.Errorf("either --mat or both --lat and --lon are required")
				}
				estimate, err = frostSvc.EstimateAt(types.NewCoords(latitude, longitude), soil, climate)
			}
			if err != nil {
				return err
			}

			printEstimate(estimate)
			return nil
		},
	}

	cmd.Flags().Float64Var(&dryDensity, "dry-density", 100, "soil dry density (lb/ft³)")
	cmd.Flags().Float64Var(&waterContentPct, "water-content", 15, "soil water content (percent)")
	cmd.Flags().StringVar(&soilState, "soil-state", "average", "soil state: frozen, unfrozen, or average")
	cmd.Flags().Float64Var(&conductivity, "conductivity", 0.75, "soil thermal conductivity, frozen/unfrozen average (BTU/(hr·ft·°F))")
	cmd.Flags().Float64Var(&seasonDays, "season-days", 100, "length of the freezing season (days)")
	cmd.Flags().Float64Var(&freezingIndex, "freezing-index", 750, "surface freezing index (°F·days)")
	cmd.Flags().Float64Var(&meanAnnualTemp, "mat", 0, "mean annual ground temperature (°F); skips the SNAP lookup")
	cmd.Flags().Float64Var(&latitude, "lat", 65.0, "latitude for the SNAP mean annual temperature lookup")
	cmd.Flags().Float64Var(&longitude, "lon", -147.0, "longitude for the SNAP mean annual temperature lookup")

	return cmd
}

func printEstimate(estimate *frost.FrostEstimate) {
	if estimate.Coordinates != nil {
		fmt.Printf("Location:                     %.4f, %.4f\n",
			estimate.Coordinates.Latitude, estimate.Coordinates.Longitude)
	}
	fmt.Printf("Mean annual temperature:      %.1f °F (%.1f °C)\n",
		estimate.Climate.MeanAnnualTemp.Fahrenheit, estimate.Climate.MeanAnnualTemp.Celsius)
	fmt.Printf("Volumetric latent heat (L):   %.1f BTU/ft³\n", estimate.Result.VolumetricLatentHeat)
	fmt.Printf("Volumetric specific heat (c): %.2f BTU/(ft³·°F)\n", estimate.Result.VolumetricSpecificHeat)
	fmt.Printf("Thermal ratio (α):            %.2f\n", estimate.Result.ThermalRatio)
	fmt.Printf("Fusion parameter (μ):         %.2f\n", estimate.Result.FusionParameter)
	fmt.Printf("Correction coefficient (λ):   %.2f\n", estimate.Result.CorrectionCoefficient)
	fmt.Printf("Frost depth:                  %.2f ft (%.2f m)\n",
		estimate.Result.Depth.Feet, estimate.Result.Depth.Meters)
}
