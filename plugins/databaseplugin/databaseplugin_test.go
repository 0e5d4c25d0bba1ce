package databaseplugin

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stepwise-ai/semkernel/functions"
)

var registerOnce sync.Once

func setup(t *testing.T) {
	t.Helper()
	registerOnce.Do(func() {
		if err := Register(); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	})
}

func call(t *testing.T, name, args string) functions.Result {
	t.Helper()
	result, err := functions.Execute(context.Background(), functions.Qualify(Plugin, name), json.RawMessage(args))
	if err != nil {
		t.Fatalf("Execute(%s) error = %v", name, err)
	}
	return result
}

func TestGetUserByID(t *testing.T) {
	setup(t)

	result := call(t, "get_user_by_id", `{"user_id": 1}`)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", result.Content)
	}
	if !strings.Contains(result.Content, "Name: Alice Johnson") {
		t.Errorf("got %q", result.Content)
	}
	if !strings.Contains(result.Content, "Role: Admin") {
		t.Errorf("got %q", result.Content)
	}

	missing := call(t, "get_user_by_id", `{"user_id": 99}`)
	if !missing.IsError {
		t.Errorf("got success %q, want error result for unknown user", missing.Content)
	}
}

func TestGetUserByName_PartialMatch(t *testing.T) {
	setup(t)

	result := call(t, "get_user_by_name", `{"name": "ali"}`)
	if !strings.Contains(result.Content, "Alice Johnson") {
		t.Errorf("partial match failed: %q", result.Content)
	}

	none := call(t, "get_user_by_name", `{"name": "zz"}`)
	if !strings.Contains(none.Content, "No users found") {
		t.Errorf("got %q", none.Content)
	}
}

func TestSearchProducts(t *testing.T) {
	setup(t)

	// Category search matches everything filed under Furniture.
	result := call(t, "search_products", `{"query": "furniture"}`)
	if !strings.Contains(result.Content, "Found 2 product(s)") {
		t.Errorf("got %q", result.Content)
	}
	if !strings.Contains(result.Content, "Desk Chair") || !strings.Contains(result.Content, "Desk") {
		t.Errorf("got %q", result.Content)
	}

	byName := call(t, "search_products", `{"query": "laptop"}`)
	if !strings.Contains(byName.Content, "Laptop") {
		t.Errorf("got %q", byName.Content)
	}
}

func TestGetUserOrders(t *testing.T) {
	setup(t)

	result := call(t, "get_user_orders", `{"user_id": 1}`)
	if !strings.Contains(result.Content, "Order ID: 1001") || !strings.Contains(result.Content, "Order ID: 1003") {
		t.Errorf("got %q", result.Content)
	}
	// Orders resolve product names through the products table.
	if !strings.Contains(result.Content, "Product: Laptop") {
		t.Errorf("got %q", result.Content)
	}

	none := call(t, "get_user_orders", `{"user_id": 3}`)
	if !strings.Contains(none.Content, "No orders found") {
		t.Errorf("got %q", none.Content)
	}
}

func TestCheckStock(t *testing.T) {
	setup(t)

	ok := call(t, "check_stock", `{"product_id": 102, "quantity": 10}`)
	if !strings.Contains(ok.Content, "50 units in stock") {
		t.Errorf("got %q", ok.Content)
	}

	short := call(t, "check_stock", `{"product_id": 106, "quantity": 10}`)
	if !strings.Contains(short.Content, "Cannot fulfill order for 10 units") {
		t.Errorf("got %q", short.Content)
	}
}

func TestInventoryValue(t *testing.T) {
	setup(t)

	result := call(t, "get_total_inventory_value", `{}`)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", result.Content)
	}
	// 15*999.99 + 50*29.99 + 30*79.99 + 8*299.99 + 12*199.99 + 5*399.99
	if !strings.Contains(result.Content, "Total Inventory Value: $25698.80") {
		t.Errorf("got %q", result.Content)
	}
}
