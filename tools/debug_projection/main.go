package main

import (
	"context"
	"fmt"
	"os"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_projection <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	res, err := calculation.NewSimulationEngine().Run(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Providers) < 1 {
		fmt.Println("no providers")
		return
	}

	header := "Year,Months,Contribution"
	for i := range res.Providers {
		header += fmt.Sprintf(",P%d_Balance", i+1)
	}
	fmt.Println(header)

	years := res.Providers[0].Years
	for idx := range years {
		row := fmt.Sprintf("%d,%d,%s", years[idx].Year, years[idx].MonthsContributed, years[idx].CumulativeContribution.StringFixed(2))
		for _, pr := range res.Providers {
			row += "," + pr.Years[idx].EndingBalance.StringFixed(2)
		}
		fmt.Println(row)
	}

	// Gap between the first two providers and the year the first one pulls ahead.
	if len(res.Providers) >= 2 {
		a := res.Providers[0]
		b := res.Providers[1]
		ahead := -1
		for i := range a.Years {
			diff := a.Years[i].EndingBalance.Sub(b.Years[i].EndingBalance)
			fmt.Printf("Year %d: %s - %s = %s\n", a.Years[i].Year, a.Name, b.Name, diff.StringFixed(2))
			if ahead < 0 && diff.IsPositive() {
				ahead = a.Years[i].Year
			}
		}
		fmt.Printf("\n%s ahead from year %d (-1 = never)\n", a.Name, ahead)
		fmt.Printf("Monthly after tax: %s=%s %s=%s\n", a.Name, a.Withdrawal.AfterTax.StringFixed(2), b.Name, b.Withdrawal.AfterTax.StringFixed(2))
	}
}
