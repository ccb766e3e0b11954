package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func ordersCmd() *cobra.Command {
	var pageNum, size int
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			page, err := a.client.OrderHistory(cmd.Context(), pageNum, size)
			if err != nil {
				return err
			}
			if len(page.Content) == 0 {
				fmt.Println("No orders yet")
				return nil
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "ORDER\tDATE\tITEMS\tTOTAL\tDISCOUNT\tPAID\tSTATUS")
			for _, o := range page.Content {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					o.OrderNumber, o.CreatedAt.Format("2006-01-02"), len(o.Items),
					moneyf(o.TotalAmount), moneyf(o.DiscountAmount), moneyf(o.FinalAmount), o.Status)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("page %d of %d (%d orders)\n", page.Number+1, page.TotalPages, page.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&pageNum, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&size, "size", 10, "page size")
	return cmd
}
