package order

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	orderIDPrefix       = "Order ID:"
	totalAmountPrefix   = "Total Amount:"
	paymentMethodPrefix = "Payment Method:"
	detailsHeader       = "Order Details:"
)

var separator = strings.Repeat("-", 27)

// Format renders an order as one block of the orders file, including the trailing separator line.
func Format(o Order) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%s %d\n", orderIDPrefix, o.OrderID)
	fmt.Fprintf(&sb, "%s %d\n", totalAmountPrefix, o.TotalAmount)
	fmt.Fprintf(&sb, "%s %s\n", paymentMethodPrefix, o.PaymentMethod)
	fmt.Fprintf(&sb, "%s\n", detailsHeader)
	for _, l := range o.Lines {
		fmt.Fprintf(&sb, "%s %s %d %d\n", l.ProductID, l.ProductName, l.Price, l.Quantity)
	}
	fmt.Fprintf(&sb, "%s\n", separator)
	return sb.String()
}

// CheckDetail returns an error when a product cannot be written as a detail line
// and read back unchanged, or when its detail line would be mistaken for the
// start or end of an order block.
func CheckDetail(productID string, productName string) error {
	if strings.ContainsFunc(productID, unicode.IsSpace) {
		return fmt.Errorf("product id %q contains whitespace", productID)
	}
	if strings.ContainsAny(productName, "\r\n") {
		return fmt.Errorf("product name %q spans multiple lines", productName)
	}
	detail := fmt.Sprintf("%s %s", productID, productName)
	if strings.HasPrefix(detail, orderIDPrefix) || detail == separator {
		return fmt.Errorf("product %q %q would be read as an order boundary", productID, productName)
	}
	return nil
}

// Parse reads back a single block as written by Format.
func Parse(block string) (Order, error) {
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	if len(lines) < 5 {
		return Order{}, fmt.Errorf("order block too short: %d lines", len(lines))
	}

	o := Order{
		Lines: []Line{},
	}
	var err error

	o.OrderID, err = parseIntField(lines[0], orderIDPrefix)
	if err != nil {
		return Order{}, err
	}
	o.TotalAmount, err = parseIntField(lines[1], totalAmountPrefix)
	if err != nil {
		return Order{}, err
	}
	if !strings.HasPrefix(lines[2], paymentMethodPrefix+" ") {
		return Order{}, fmt.Errorf("expected %q, got %q", paymentMethodPrefix, lines[2])
	}
	o.PaymentMethod = strings.TrimPrefix(lines[2], paymentMethodPrefix+" ")
	if lines[3] != detailsHeader {
		return Order{}, fmt.Errorf("expected %q, got %q", detailsHeader, lines[3])
	}
	if lines[len(lines)-1] != separator {
		return Order{}, fmt.Errorf("order %d is not terminated by a separator", o.OrderID)
	}

	for _, detail := range lines[4 : len(lines)-1] {
		line, err := parseDetail(detail)
		if err != nil {
			return Order{}, fmt.Errorf("order %d: %w", o.OrderID, err)
		}
		o.Lines = append(o.Lines, line)
	}

	return o, nil
}

// splitBlocks groups the lines of the orders file per order. A trailing block without
// separator (a torn write) is returned as well.
func splitBlocks(lines []string) []string {
	blocks := []string{}
	current := strings.Builder{}
	for _, line := range lines {
		current.WriteString(line)
		current.WriteString("\n")
		if line == separator {
			blocks = append(blocks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}
	return blocks
}

func parseOrderIDLine(line string) (int, bool, error) {
	if !strings.HasPrefix(line, orderIDPrefix) {
		return 0, false, nil
	}
	id, err := parseIntField(line, orderIDPrefix)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}

func parseIntField(line string, prefix string) (int, error) {
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %q, got %q", prefix, line)
	}
	value, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
	if err != nil {
		return 0, fmt.Errorf("invalid number in %q: %w", line, err)
	}
	return value, nil
}

func parseDetail(detail string) (Line, error) {
	fields := strings.Split(detail, " ")
	if len(fields) < 4 {
		return Line{}, fmt.Errorf("invalid detail line %q", detail)
	}
	price, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return Line{}, fmt.Errorf("invalid price in %q: %w", detail, err)
	}
	quantity, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Line{}, fmt.Errorf("invalid quantity in %q: %w", detail, err)
	}
	return Line{
		ProductID:   fields[0],
		ProductName: strings.Join(fields[1:len(fields)-2], " "),
		Price:       price,
		Quantity:    quantity,
	}, nil
}
