package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/session"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const helpText = `commands:
  list                 show products matching the current search
  search <term>        filter products by name or category
  clear                reset the search
  show <id>            product details, reviews and related products
  add <id>             add one item to the cart
  qty <id> <n>         set the quantity of a cart item, 0 removes it
  remove <id>          remove an item from the cart
  cart                 show the cart and totals
  help                 this text
  quit                 leave the store`

// Driver plays the presentation layer: it turns input lines into session
// events, one at a time and in order, and renders the derived state.
type Driver struct {
	session *session.Session
	out     io.Writer
	printer *message.Printer
	log     Log
}

func NewDriver(s *session.Session, out io.Writer, log Log) *Driver {
	return &Driver{
		session: s,
		out:     out,
		printer: message.NewPrinter(language.English),
		log:     log,
	}
}

// Run processes commands from in until quit, EOF or ctx is cancelled.
// On cancellation Run returns without waiting for the pending read; the
// reading goroutine exits once in yields a line or is closed.
func (d *Driver) Run(ctx context.Context, in io.Reader) error {
	d.printf("%d products in store, type 'help' for commands\n", len(d.session.Products()))

	done := make(chan struct{})
	defer close(done)

	lines, readErr := readLines(in, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("scanner.Err: %w", err)
				}
				return nil
			}

			// a line and the cancellation may arrive together
			if err := ctx.Err(); err != nil {
				return err
			}

			if quit := d.Handle(line); quit {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine so that a blocked read does not
// hold up cancellation. readErr receives the scanner error before lines is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Handle executes one command line and reports whether the user asked to quit.
func (d *Driver) Handle(line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	d.log.Debug("command", zap.String("cmd", cmd), zap.String("args", rest))

	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		d.printf("bye\n")
		return true
	case "help":
		d.printf("%s\n", helpText)
	case "list":
		d.list()
	case "search":
		d.session.SetSearchTerm(rest)
		d.list()
	case "clear":
		d.session.SetSearchTerm("")
		d.list()
	case "show":
		d.withID("show", rest, d.show)
	case "add":
		d.withID("add", rest, d.add)
	case "remove":
		d.withID("remove", rest, func(id int64) {
			d.session.RemoveFromCart(id)
			d.cart()
		})
	case "qty":
		d.qty(rest)
	case "cart":
		d.cart()
	default:
		d.printf("unknown command %q, type 'help'\n", cmd)
	}

	return false
}

func (d *Driver) list() {
	products := d.session.Products()
	if len(products) == 0 {
		d.printf("no products match %q\n", d.session.SearchTerm())
		return
	}

	for _, p := range products {
		d.printf("[%d] %s | %s | %s | %.1f stars (%d reviews)\n",
			p.ID, p.Name, p.Category, d.price(p.Price), p.Rating, p.Reviews)
	}
}

func (d *Driver) show(id int64) {
	detail, err := d.session.Detail(id)
	if err != nil {
		d.failed(id, err)
		return
	}

	p := detail.Product
	d.printf("%s\n%s\n%s\n%s | %.1f stars (%d reviews)\n",
		p.Name, p.Category, p.Description, d.price(p.Price), p.Rating, p.Reviews)

	if len(detail.Reviews) > 0 {
		d.printf("customer reviews:\n")
		for _, r := range detail.Reviews {
			d.printf("  %s, %d/5, %s: %s\n", r.Author, r.Rating, r.Date.Format("January 2, 2006"), r.Text)
		}
	}

	d.related(detail)
}

func (d *Driver) related(detail catalog.Detail) {
	if len(detail.Related) == 0 {
		return
	}

	d.printf("customers who viewed this item also viewed:\n")
	for _, p := range detail.Related {
		d.printf("  [%d] %s | %s\n", p.ID, p.Name, d.price(p.Price))
	}
}

func (d *Driver) add(id int64) {
	if err := d.session.AddToCart(id); err != nil {
		d.failed(id, err)
		return
	}

	d.printf("added to cart, %d items\n", d.session.TotalItems())
}

func (d *Driver) qty(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		d.printf("usage: qty <id> <n>\n")
		return
	}

	id, errID := strconv.ParseInt(fields[0], 10, 64)
	n, errQty := strconv.Atoi(fields[1])
	if errID != nil || errQty != nil {
		d.log.Warn("malformed quantity update ignored", zap.String("args", args))
		d.printf("usage: qty <id> <n>\n")
		return
	}

	d.session.UpdateQuantity(id, n)
	d.cart()
}

func (d *Driver) cart() {
	c := d.session.Cart()
	if len(c.Items) == 0 {
		d.printf("cart is empty\n")
		return
	}

	for _, item := range c.Items {
		d.printf("[%d] %s x%d = %s\n", item.Product.ID, item.Product.Name, item.Quantity, d.price(item.Subtotal()))
	}
	d.printf("total items: %d\n", d.session.TotalItems())
	d.printf("total: %s\n", d.price(d.session.TotalPrice()))
}

func (d *Driver) failed(id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		d.printf("product not found, type 'list' to go back to the products\n")
		return
	}

	d.log.Warn("request failed", zap.Int64("product", id), zap.Error(err))
	d.printf("product %d is unavailable\n", id)
}

func (d *Driver) withID(cmd, arg string, fn func(id int64)) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		d.printf("usage: %s <id>\n", cmd)
		return
	}

	fn(id)
}

// price rounds to cents for display only.
func (d *Driver) price(m domain.Money) string {
	amount := m.Amount.Round(2).InexactFloat64()
	return d.printer.Sprint(currency.Symbol(m.Currency.Amount(amount)))
}

func (d *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(d.out, format, args...); err != nil {
		d.log.Warn("write failed", zap.Error(err))
	}
}
