package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/safar/go-catalog-store/internal/store"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02 15:04"

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func pageFooter(w io.Writer, page, totalPages, total int) {
	fmt.Fprintf(w, "page %d of %d (%d total)\n", page, totalPages, total)
}

func renderUsers(w io.Writer, page *store.OffsetPage[models.User]) error {
	tw := newTable(w, "ID", "Username", "Email")
	for _, u := range page.Items {
		row(tw, u.ID, u.Username, u.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(w, page.Page, page.TotalPages, page.Total)
	return nil
}

func renderProducts(w io.Writer, page *store.OffsetPage[models.Product]) error {
	tw := newTable(w, "ID", "Name", "Price", "Stock")
	for _, p := range page.Items {
		row(tw, p.ID, p.Name, money(p.Price), strconv.Itoa(p.Stock))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(w, page.Page, page.TotalPages, page.Total)
	return nil
}

func renderOrders(w io.Writer, orders []models.Order) error {
	tw := newTable(w, "ID", "User", "Total Price", "Date", "Status")
	for _, o := range orders {
		row(tw, o.ID, username(o.User), money(o.TotalPrice), o.CreatedAt.Format(dateLayout), string(o.Status))
	}
	return tw.Flush()
}

func renderOrderDetails(w io.Writer, o *models.Order) {
	fmt.Fprintf(w, "Order ID: %s\n", o.ID)
	fmt.Fprintf(w, "User: %s\n", username(o.User))
	fmt.Fprintf(w, "Status: %s\n", o.Status)
	fmt.Fprintf(w, "Total: %s\n\n", money(o.TotalPrice))
	fmt.Fprintln(w, "Items:")
	for _, item := range o.Items {
		if item.Product == nil {
			continue
		}
		fmt.Fprintf(w, "- %s (Qty: %d) @ %s ea.\n", item.Product.Name, item.Quantity, money(item.Product.Price))
	}
}

func renderDashboard(w io.Writer, s *store.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Users\t%d\n", s.TotalUsers)
	fmt.Fprintf(tw, "Total Products\t%d\n", s.TotalProducts)
	fmt.Fprintf(tw, "Pending Orders\t%d\n", s.PendingOrders)
	fmt.Fprintf(tw, "Total Sales\t%s\n", money(s.TotalSales))
	tw.Flush()
}

func summaryLine(s *store.Stats) string {
	return fmt.Sprintf("users: %d | products: %d | pending: %d | sales: %s",
		s.TotalUsers, s.TotalProducts, s.PendingOrders, money(s.TotalSales))
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, database.NewValidationError(database.EntityProduct, "price", "must be a number")
	}
	return price, nil
}

func parseCount(entity, field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, database.NewValidationError(entity, field, "must be an integer")
	}
	return n, nil
}
