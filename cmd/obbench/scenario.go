package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.obcore.io/book/logging"
	"code.obcore.io/book/orderbook"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Replay a short fixed script of orders and print the resulting trades and quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.NewDevLogger()
		defer log.AtExit()

		book := orderbook.NewBook(log, orderbook.NewDefaultConfig())

		book.AddOrder(1, orderbook.Buy, 100, 10)
		printTrades(book, "add buy 1 @100x10")

		book.AddOrder(2, orderbook.Sell, 100, 4)
		printTrades(book, "add sell 2 @100x4")

		book.CancelOrder(1)
		printTrades(book, "cancel 1")

		q := book.GetQuote()
		fmt.Printf("final quote: bid %d@%d ask %d@%d\n", q.BidPrice, q.BidQuantity, q.AskPrice, q.AskQuantity)
		return nil
	},
}

func printTrades(book *orderbook.Book, label string) {
	trades := book.LastTrades()
	fmt.Printf("%s -> %d trade(s)\n", label, len(trades))
	for _, t := range trades {
		fmt.Printf("  trade: buy=%d sell=%d price=%d qty=%d\n", t.BuyOrderID, t.SellOrderID, t.Price, t.Quantity)
	}
}
