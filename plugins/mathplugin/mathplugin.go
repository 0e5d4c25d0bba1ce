// Package mathplugin exposes arithmetic operations as native functions
// under the MathPlugin namespace.
package mathplugin

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/functions"
)

// Plugin is the namespace the functions register under.
const Plugin = "MathPlugin"

func numberParams(names ...string) map[string]any {
	props := make(map[string]any, len(names))
	for _, name := range names {
		props[name] = map[string]any{"type": "number"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   names,
	}
}

// Register adds all MathPlugin functions to the global registry.
func Register() error {
	specs := []struct {
		tool    protocol.Tool
		handler functions.Handler
	}{
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "add"),
			Description: "Adds two numbers together and returns the result.",
			Parameters:  numberParams("number1", "number2"),
		}, handleAdd},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "subtract"),
			Description: "Subtracts the second number from the first number.",
			Parameters:  numberParams("number1", "number2"),
		}, handleSubtract},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "multiply"),
			Description: "Multiplies two numbers together.",
			Parameters:  numberParams("number1", "number2"),
		}, handleMultiply},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "divide"),
			Description: "Divides the first number by the second number.",
			Parameters:  numberParams("number1", "number2"),
		}, handleDivide},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "power"),
			Description: "Raises a number to a power (base^exponent).",
			Parameters:  numberParams("base", "exponent"),
		}, handlePower},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "square_root"),
			Description: "Calculates the square root of a number.",
			Parameters:  numberParams("number"),
		}, handleSquareRoot},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "percentage"),
			Description: "Calculates what percentage one number is of another.",
			Parameters:  numberParams("part", "whole"),
		}, handlePercentage},
	}

	for _, s := range specs {
		if err := functions.Register(s.tool, s.handler); err != nil {
			return fmt.Errorf("register %s: %w", s.tool.Name, err)
		}
	}
	return nil
}

type pairArgs struct {
	Number1 float64 `json:"number1"`
	Number2 float64 `json:"number2"`
}

func decodePair(raw json.RawMessage) (pairArgs, *functions.Result) {
	var args pairArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, &functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}
	}
	return args, nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func handleAdd(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	args, errResult := decodePair(raw)
	if errResult != nil {
		return *errResult, nil
	}
	return functions.Result{Content: format(args.Number1 + args.Number2)}, nil
}

func handleSubtract(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	args, errResult := decodePair(raw)
	if errResult != nil {
		return *errResult, nil
	}
	return functions.Result{Content: format(args.Number1 - args.Number2)}, nil
}

func handleMultiply(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	args, errResult := decodePair(raw)
	if errResult != nil {
		return *errResult, nil
	}
	return functions.Result{Content: format(args.Number1 * args.Number2)}, nil
}

func handleDivide(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	args, errResult := decodePair(raw)
	if errResult != nil {
		return *errResult, nil
	}
	if args.Number2 == 0 {
		return functions.Result{Content: "Error: Cannot divide by zero", IsError: true}, nil
	}
	return functions.Result{Content: format(args.Number1 / args.Number2)}, nil
}

func handlePower(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		Base     float64 `json:"base"`
		Exponent float64 `json:"exponent"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	return functions.Result{Content: format(math.Pow(args.Base, args.Exponent))}, nil
}

func handleSquareRoot(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		Number float64 `json:"number"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.Number < 0 {
		return functions.Result{Content: "Error: Cannot calculate square root of negative number", IsError: true}, nil
	}
	return functions.Result{Content: format(math.Sqrt(args.Number))}, nil
}

func handlePercentage(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		Part  float64 `json:"part"`
		Whole float64 `json:"whole"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.Whole == 0 {
		return functions.Result{Content: "Error: Cannot calculate percentage with zero as whole", IsError: true}, nil
	}
	return functions.Result{Content: format(args.Part / args.Whole * 100)}, nil
}
