package main

import (
	"fmt"

	"github.com/pdx-civic/zonelookup/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// defaultAddress is the example address looked up when none is given.
const defaultAddress = "935 NE 33RD AVE, Portland, OR"

var showTaxlot bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [address]",
	Short: "Look up zoning and building info for a street address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := defaultAddress
		if len(args) > 0 {
			address = args[0]
		}

		svc, err := newService(prometheus.NewRegistry())
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		// A zoning-path failure aborts before any building query; the error
		// surfaces as cobra's single "Error: <message>" line.
		rep, err := svc.Lookup(ctx, address)
		if err != nil {
			return err
		}

		fmt.Println(report.FormatZoningReport(rep))
		fmt.Println()

		building := svc.LookupBuilding(ctx, rep.Location.Latitude, rep.Location.Longitude)
		fmt.Println(report.FormatBuildingReport(building))

		if showTaxlot {
			fmt.Println()
			taxlot := svc.LookupTaxlot(ctx, rep.Location.Latitude, rep.Location.Longitude)
			fmt.Println(report.FormatTaxlotReport(taxlot))
		}

		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&showTaxlot, "taxlot", false, "also print taxlot information")
	rootCmd.AddCommand(lookupCmd)
}
