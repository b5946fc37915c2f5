package main

import (
	"github.com/spf13/cobra"

	"code.obcore.io/book/config"
	"code.obcore.io/book/logging"
	"code.obcore.io/book/orderbook"
)

var (
	runOrders int
	runSeed   int64
	runMid    uint32
	runSpread uint32
	runMaxQty uint32
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Submit a stream of randomly generated orders against a fresh book",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.NewDevLogger()
		defer log.AtExit()

		cfg, err := config.ParseFlags()
		if err != nil {
			return err
		}

		book := orderbook.NewBook(log, cfg.Orderbook)
		gen := newGenerator(runSeed, runMid, runSpread, runMaxQty)
		rep := &reporter{}

		for i := 0; i < runOrders; i++ {
			o := gen.next()
			book.AddOrder(o.ID, o.Side, o.Price, o.Quantity)
			if o.Price >= book.MaxPrice() {
				rep.recordReject()
				continue
			}
			rep.recordAdd(len(book.LastTrades()))
		}

		quote := book.GetQuote()
		rep.dump("run", quote.BidPrice, quote.AskPrice)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runOrders, "orders", 10000, "number of synthetic orders to submit")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "random seed for the order generator")
	runCmd.Flags().Uint32Var(&runMid, "mid", 50000, "center price the generator spreads orders around")
	runCmd.Flags().Uint32Var(&runSpread, "spread", 200, "width of the price range orders are drawn from")
	runCmd.Flags().Uint32Var(&runMaxQty, "max-qty", 100, "upper bound on generated order quantity")
}
