// Package databaseplugin exposes lookups over an in-memory sample
// dataset as native functions under the DatabasePlugin namespace. A
// real deployment would query an actual database.
package databaseplugin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/functions"
)

// Plugin is the namespace the functions register under.
const Plugin = "DatabasePlugin"

type user struct {
	ID     int
	Name   string
	Email  string
	Role   string
	Active bool
}

type product struct {
	ID       int
	Name     string
	Price    float64
	Stock    int
	Category string
}

type order struct {
	ID        int
	UserID    int
	ProductID int
	Quantity  int
	Status    string
}

var users = []user{
	{1, "Alice Johnson", "alice@example.com", "Admin", true},
	{2, "Bob Smith", "bob@example.com", "User", true},
	{3, "Charlie Brown", "charlie@example.com", "User", false},
	{4, "Diana Prince", "diana@example.com", "Manager", true},
	{5, "Eve Davis", "eve@example.com", "User", true},
}

var products = []product{
	{101, "Laptop", 999.99, 15, "Electronics"},
	{102, "Mouse", 29.99, 50, "Electronics"},
	{103, "Keyboard", 79.99, 30, "Electronics"},
	{104, "Monitor", 299.99, 8, "Electronics"},
	{105, "Desk Chair", 199.99, 12, "Furniture"},
	{106, "Desk", 399.99, 5, "Furniture"},
}

var orders = []order{
	{1001, 1, 101, 1, "Delivered"},
	{1002, 2, 102, 2, "Shipped"},
	{1003, 1, 104, 1, "Processing"},
	{1004, 4, 105, 3, "Delivered"},
}

// Register adds all DatabasePlugin functions to the global registry.
func Register() error {
	intParam := func(name string) map[string]any {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{name: map[string]any{"type": "integer"}},
			"required":   []string{name},
		}
	}
	stringParam := func(name string) map[string]any {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{name: map[string]any{"type": "string"}},
			"required":   []string{name},
		}
	}

	specs := []struct {
		tool    protocol.Tool
		handler functions.Handler
	}{
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_user_by_id"),
			Description: "Retrieves user information by user ID.",
			Parameters:  intParam("user_id"),
		}, handleGetUserByID},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_user_by_name"),
			Description: "Searches for a user by name (partial match supported).",
			Parameters:  stringParam("name"),
		}, handleGetUserByName},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_product_by_id"),
			Description: "Retrieves product information by product ID.",
			Parameters:  intParam("product_id"),
		}, handleGetProductByID},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "search_products"),
			Description: "Searches for products by name or category.",
			Parameters:  stringParam("query"),
		}, handleSearchProducts},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_user_orders"),
			Description: "Gets all orders for a specific user by user ID.",
			Parameters:  intParam("user_id"),
		}, handleGetUserOrders},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "check_stock"),
			Description: "Checks if a product has sufficient stock available.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{"type": "integer"},
					"quantity":   map[string]any{"type": "integer"},
				},
				"required": []string{"product_id", "quantity"},
			},
		}, handleCheckStock},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_total_inventory_value"),
			Description: "Calculates the total value of all products in inventory.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		}, handleInventoryValue},
	}

	for _, s := range specs {
		if err := functions.Register(s.tool, s.handler); err != nil {
			return fmt.Errorf("register %s: %w", s.tool.Name, err)
		}
	}
	return nil
}

func findUser(id int) *user {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func findProduct(id int) *product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func handleGetUserByID(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		UserID int `json:"user_id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}

	u := findUser(args.UserID)
	if u == nil {
		return functions.Result{Content: fmt.Sprintf("User with ID %d not found.", args.UserID), IsError: true}, nil
	}
	content := fmt.Sprintf("User ID: %d\nName: %s\nEmail: %s\nRole: %s\nActive: %t",
		u.ID, u.Name, u.Email, u.Role, u.Active)
	return functions.Result{Content: content}, nil
}

func handleGetUserByName(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.Name == "" {
		return functions.Result{Content: "name is required", IsError: true}, nil
	}

	needle := strings.ToLower(args.Name)
	var matches []user
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			matches = append(matches, u)
		}
	}
	if len(matches) == 0 {
		return functions.Result{Content: fmt.Sprintf("No users found matching %q.", args.Name)}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d user(s):\n\n", len(matches))
	for _, u := range matches {
		fmt.Fprintf(&b, "ID: %d, Name: %s, Email: %s, Role: %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return functions.Result{Content: b.String()}, nil
}

func handleGetProductByID(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		ProductID int `json:"product_id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}

	p := findProduct(args.ProductID)
	if p == nil {
		return functions.Result{Content: fmt.Sprintf("Product with ID %d not found.", args.ProductID), IsError: true}, nil
	}
	content := fmt.Sprintf("Product ID: %d\nName: %s\nPrice: $%.2f\nStock: %d units\nCategory: %s",
		p.ID, p.Name, p.Price, p.Stock, p.Category)
	return functions.Result{Content: content}, nil
}

func handleSearchProducts(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.Query == "" {
		return functions.Result{Content: "query is required", IsError: true}, nil
	}

	needle := strings.ToLower(args.Query)
	var matches []product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return functions.Result{Content: fmt.Sprintf("No products found matching %q.", args.Query)}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d product(s):\n\n", len(matches))
	for _, p := range matches {
		fmt.Fprintf(&b, "ID: %d, Name: %s, Price: $%.2f, Stock: %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	return functions.Result{Content: b.String()}, nil
}

func handleGetUserOrders(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		UserID int `json:"user_id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}

	var matches []order
	for _, o := range orders {
		if o.UserID == args.UserID {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return functions.Result{Content: fmt.Sprintf("No orders found for user ID %d.", args.UserID)}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Orders for User ID %d:\n\n", args.UserID)
	for _, o := range matches {
		productName := "Unknown"
		if p := findProduct(o.ProductID); p != nil {
			productName = p.Name
		}
		fmt.Fprintf(&b, "Order ID: %d, Product: %s, Quantity: %d, Status: %s\n",
			o.ID, productName, o.Quantity, o.Status)
	}
	return functions.Result{Content: b.String()}, nil
}

func handleCheckStock(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}

	p := findProduct(args.ProductID)
	if p == nil {
		return functions.Result{Content: fmt.Sprintf("Product with ID %d not found.", args.ProductID), IsError: true}, nil
	}

	if p.Stock >= args.Quantity {
		content := fmt.Sprintf("%s has %d units in stock. %d units available.", p.Name, p.Stock, args.Quantity)
		return functions.Result{Content: content}, nil
	}
	content := fmt.Sprintf("%s only has %d units in stock. Cannot fulfill order for %d units.",
		p.Name, p.Stock, args.Quantity)
	return functions.Result{Content: content}, nil
}

func handleInventoryValue(_ context.Context, _ json.RawMessage) (functions.Result, error) {
	var b strings.Builder
	b.WriteString("Inventory Summary:\n\n")

	var total float64
	for _, p := range products {
		value := p.Price * float64(p.Stock)
		total += value
		fmt.Fprintf(&b, "%s: %d units x $%.2f = $%.2f\n", p.Name, p.Stock, p.Price, value)
	}
	fmt.Fprintf(&b, "\nTotal Inventory Value: $%.2f", total)
	return functions.Result{Content: b.String()}, nil
}
