// winectl cliente de línea de comandos del punto de venta.
//
//	winectl [-addr URL] <acción> [flags]
//
// Acciones: add-wine, view-inventory, purchase-wine, sales-report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/client"
	"github.com/jhoicas/wine-mart/internal/domain/menu"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	root := flag.NewFlagSet("winectl", flag.ContinueOnError)
	addr := root.String("addr", envOr("WINEMART_ADDR", "http://localhost:8080"), "URL base de la API")
	root.Usage = func() { usage(root) }
	if err := root.Parse(args); err != nil {
		return err
	}
	if root.NArg() == 0 {
		usage(root)
		return errors.New("falta la acción")
	}

	action, err := menu.Parse(root.Arg(0))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*addr)
	rest := root.Args()[1:]

	switch action {
	case menu.AddWine:
		return addWine(ctx, c, rest, out)
	case menu.ViewInventory:
		return viewInventory(ctx, c, out)
	case menu.PurchaseWine:
		return purchaseWine(ctx, c, rest, out)
	case menu.SalesReport:
		return salesReport(ctx, c, rest, out)
	}
	return fmt.Errorf("%w: %s", menu.ErrUnknownAction, action)
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "uso: winectl [-addr URL] <acción> [flags]")
	fmt.Fprintln(w, "acciones:")
	for _, a := range menu.All() {
		fmt.Fprintf(w, "  %-15s %s\n", a, a.Label())
	}
	fs.PrintDefaults()
}

func addWine(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(menu.AddWine.String(), flag.ContinueOnError)
	name := fs.String("name", "", "nombre del vino")
	wineType := fs.String("type", "Red", "tipo: Red, White o Rose")
	price := fs.String("price", "0", "precio unitario")
	stock := fs.Int("stock", 0, "unidades en stock")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("precio inválido %q: %w", *price, err)
	}
	res, err := c.AddWine(ctx, dto.AddWineRequest{Name: *name, Type: *wineType, Price: p, Stock: *stock})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Message)
	fmt.Fprintln(out, res.Wine.Label)
	return nil
}

func viewInventory(ctx context.Context, c *client.Client, out io.Writer) error {
	res, err := c.ListWines(ctx)
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(out, res.Message)
		return nil
	}
	for _, w := range res.Items {
		fmt.Fprintf(out, "%-4d %-30s %-6s %10s %6d\n", w.ID, w.Name, w.Type, w.Price.StringFixed(2), w.Stock)
	}
	return nil
}

func purchaseWine(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(menu.PurchaseWine.String(), flag.ContinueOnError)
	wineID := fs.Int64("wine", 0, "id del vino")
	qty := fs.Int("qty", 1, "cantidad")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := c.Purchase(ctx, dto.PurchaseRequest{WineID: *wineID, Quantity: *qty})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Message)
	fmt.Fprintf(out, "Stock restante: %d\n", res.RemainingStock)
	return nil
}

func salesReport(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(menu.SalesReport.String(), flag.ContinueOnError)
	format := fs.String("format", "json", "json, pdf o xml")
	dest := fs.String("out", "", "archivo destino para pdf/xml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *format == "json" {
		res, err := c.SalesReport(ctx)
		if err != nil {
			return err
		}
		if len(res.Items) == 0 {
			fmt.Fprintln(out, res.Message)
			return nil
		}
		for _, s := range res.Items {
			fmt.Fprintf(out, "%s  %-30s %4d %12s\n", s.Date, s.WineName, s.Quantity, s.TotalPrice.StringFixed(2))
		}
		fmt.Fprintf(out, "Ventas: %d  Unidades: %d  Total: %s\n", res.Count, res.UnitsSold, res.Revenue.StringFixed(2))
		return nil
	}

	doc, err := c.DownloadReport(ctx, *format)
	if err != nil {
		return err
	}
	if *dest == "" {
		*dest = "reporte-ventas." + *format
	}
	if err := os.WriteFile(*dest, doc, 0o644); err != nil {
		return fmt.Errorf("guardar %s: %w", *dest, err)
	}
	fmt.Fprintf(out, "Reporte guardado en %s (%d bytes)\n", *dest, len(doc))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
