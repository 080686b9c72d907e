package shop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MarcGrol/storecli/lib/mylog"
	"github.com/MarcGrol/storecli/payment"
)

const (
	menuViewProducts = 1
	menuViewCart     = 2
	menuViewOrders   = 3
	menuExit         = 4
)

// Terminal is the interactive menu on top of the shop service. Input is read
// word by word, so answers may be given on one line or on many.
type Terminal struct {
	service *Service
	scanner *bufio.Scanner
	out     io.Writer
	logger  mylog.Logger
}

func NewTerminal(service *Service, in io.Reader, out io.Writer, logger mylog.Logger) *Terminal {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Terminal{
		service: service,
		scanner: scanner,
		out:     out,
		logger:  logger,
	}
}

// Run keeps showing the menu until the user exits or the input ends.
func (t *Terminal) Run(c context.Context) error {
	for {
		t.printf("\n==== Online Store Menu ====\n")
		t.printf("1. View Products\n")
		t.printf("2. View Shopping Cart\n")
		t.printf("3. View Orders\n")
		t.printf("4. Exit\n")

		answer, ok := t.ask("Enter choice: ")
		if !ok {
			t.printf("\nExiting...\n")
			return t.scanner.Err()
		}

		choice, err := strconv.Atoi(answer)
		if err != nil {
			t.printError(c, fmt.Errorf("invalid input! Please enter a number"))
			continue
		}

		switch choice {
		case menuViewProducts:
			t.viewProducts()
			if !t.addToCart(c) {
				return t.scanner.Err()
			}
		case menuViewCart:
			if !t.viewCart(c) {
				return t.scanner.Err()
			}
		case menuViewOrders:
			t.viewOrders(c)
		case menuExit:
			t.printf("Exiting...\n")
			return nil
		default:
			t.printError(c, fmt.Errorf("invalid menu option %d", choice))
		}
	}
}

func (t *Terminal) viewProducts() {
	t.printf("\n--- Products ---\n")
	t.printf("Product ID\tName\tPrice\n")
	for _, p := range t.service.ListProducts() {
		t.printf("%s\t\t%s\t%d\n", p.ID, p.Name, p.Price)
	}
}

func (t *Terminal) addToCart(c context.Context) bool {
	for {
		productID, ok := t.ask("Enter Product ID to add to cart: ")
		if !ok {
			return false
		}

		_, found := t.service.FindProduct(productID)
		if !found {
			t.printError(c, fmt.Errorf("invalid product id %q", productID))
		} else {
			answer, ok := t.ask("Enter quantity: ")
			if !ok {
				return false
			}

			quantity, err := strconv.Atoi(answer)
			if err != nil || quantity <= 0 {
				t.printError(c, fmt.Errorf("invalid quantity %q", answer))
			} else {
				_, err = t.service.AddToCart(c, productID, quantity)
				if err != nil {
					t.printError(c, err)
				} else {
					t.printf("Product added successfully!\n")
				}
			}
		}

		again, ok := t.ask("Do you want to add another product? (y/n): ")
		if !ok {
			return false
		}
		if !isYes(again) {
			return true
		}
	}
}

func (t *Terminal) viewCart(c context.Context) bool {
	lines := t.service.ViewCart()
	if len(lines) == 0 {
		t.printf("Cart is empty.\n")
		return true
	}

	t.printf("\n--- Shopping Cart ---\n")
	t.printf("Product ID\tName\tPrice\tQuantity\n")
	for _, l := range lines {
		t.printf("%s\t\t%s\t%d\t%d\n", l.Product.ID, l.Product.Name, l.Product.Price, l.Quantity)
	}
	t.printf("Total: %d\n", t.service.CartTotal())

	answer, ok := t.ask("Do you want to checkout the products? (Y/N): ")
	if !ok {
		return false
	}
	if !isYes(answer) {
		return true
	}

	t.printf("Select payment method:\n")
	for idx, m := range payment.All() {
		t.printf("%d. %s\n", idx+1, m.Label())
	}
	answer, ok = t.ask("Enter choice: ")
	if !ok {
		return false
	}

	method, err := payment.ParseChoice(answer)
	if err != nil {
		t.printError(c, err)
		return true
	}

	confirmation, err := t.service.Checkout(c, method)
	if err != nil {
		t.printError(c, err)
		return true
	}

	t.printf("%s\n", method.Receipt(confirmation.Total))
	for _, w := range confirmation.Warnings {
		t.printf("Warning: %s\n", w)
	}
	t.printf("You have successfully checked out the products!\n")
	t.printf("Order %d saved successfully!\n", confirmation.OrderID)

	return true
}

func (t *Terminal) viewOrders(c context.Context) {
	blocks, err := t.service.ViewOrders(c)
	if err != nil {
		t.printError(c, err)
		return
	}
	if len(blocks) == 0 {
		t.printf("No orders found.\n")
		return
	}

	t.printf("\n--- Orders ---\n")
	for _, b := range blocks {
		t.printf("%s", b)
	}
}

func (t *Terminal) ask(prompt string) (string, bool) {
	t.printf("%s", prompt)
	if !t.scanner.Scan() {
		return "", false
	}
	return t.scanner.Text(), true
}

func (t *Terminal) printError(c context.Context, err error) {
	t.logger.Log(c, "", mylog.SeverityWarn, "User error: %s", err)
	t.printf("Error: %s\n", err)
}

func (t *Terminal) printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

func isYes(answer string) bool {
	return strings.EqualFold(answer, "y")
}
