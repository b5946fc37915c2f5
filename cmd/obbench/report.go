package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func init() {
	// fatih/color already checks this, but an explicit check keeps the
	// harness correct when stdout is piped into a file or another tool.
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// reporter accumulates per-run counters and prints a short summary.
type reporter struct {
	ordersSubmitted int
	trades          int
	rejected        int
}

func (r *reporter) recordAdd(trades int) {
	r.ordersSubmitted++
	r.trades += trades
}

func (r *reporter) recordReject() {
	r.ordersSubmitted++
	r.rejected++
}

func (r *reporter) dump(label string, bestBid, bestAsk uint32) {
	fmt.Printf("%s: %s orders submitted, %s trades, %s rejected\n",
		cyan(label), green(r.ordersSubmitted), green(r.trades), yellow(r.rejected))
	fmt.Printf("  best bid: %d  best ask: %d\n", bestBid, bestAsk)
}
