package mathplugin

import (
	"context"
	"encoding/json"
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

func TestArithmetic(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		fn   string
		args string
		want string
	}{
		{"add", "add", `{"number1": 2, "number2": 3}`, "5"},
		{"add floats", "add", `{"number1": 1.5, "number2": 2.25}`, "3.75"},
		{"subtract", "subtract", `{"number1": 10, "number2": 4}`, "6"},
		{"multiply", "multiply", `{"number1": 6, "number2": 7}`, "42"},
		{"divide", "divide", `{"number1": 9, "number2": 2}`, "4.5"},
		{"power", "power", `{"base": 2, "exponent": 10}`, "1024"},
		{"square root", "square_root", `{"number": 144}`, "12"},
		{"percentage", "percentage", `{"part": 25, "whole": 200}`, "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, tt.fn, tt.args)
			if result.IsError {
				t.Fatalf("unexpected error result: %s", result.Content)
			}
			if result.Content != tt.want {
				t.Errorf("got %q, want %q", result.Content, tt.want)
			}
		})
	}
}

func TestDomainErrors(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		fn   string
		args string
	}{
		{"divide by zero", "divide", `{"number1": 1, "number2": 0}`},
		{"negative square root", "square_root", `{"number": -4}`},
		{"percentage of zero whole", "percentage", `{"part": 5, "whole": 0}`},
		{"malformed arguments", "add", `{"number1": "two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, tt.fn, tt.args)
			// Domain errors flow back to the model, not up the stack.
			if !result.IsError {
				t.Errorf("got success %q, want error result", result.Content)
			}
		})
	}
}

func TestMetadataListed(t *testing.T) {
	setup(t)

	tool, ok := functions.Describe(functions.Qualify(Plugin, "add"))
	if !ok {
		t.Fatal("MathPlugin-add not registered")
	}
	if tool.Description == "" {
		t.Error("description missing")
	}

	params, ok := tool.Parameters["properties"].(map[string]any)
	if !ok {
		t.Fatal("parameters missing properties")
	}
	if _, ok := params["number1"]; !ok {
		t.Error("number1 parameter missing")
	}
}
