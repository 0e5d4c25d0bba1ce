// Package weatherplugin exposes simulated weather lookups as native
// functions under the WeatherPlugin namespace. A real deployment would
// call a weather API here.
package weatherplugin

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/functions"
)

// Plugin is the namespace the functions register under.
const Plugin = "WeatherPlugin"

type conditions struct {
	Temp      int
	Condition string
	Humidity  int
}

// Fixed data for well-known cities; unknown cities get deterministic
// synthetic conditions so repeated calls agree.
var weatherData = map[string]conditions{
	"new york": {Temp: 72, Condition: "Partly Cloudy", Humidity: 65},
	"london":   {Temp: 59, Condition: "Rainy", Humidity: 80},
	"tokyo":    {Temp: 68, Condition: "Sunny", Humidity: 55},
	"paris":    {Temp: 64, Condition: "Cloudy", Humidity: 70},
	"sydney":   {Temp: 77, Condition: "Sunny", Humidity: 60},
	"mumbai":   {Temp: 86, Condition: "Humid", Humidity: 85},
	"dubai":    {Temp: 95, Condition: "Hot and Sunny", Humidity: 45},
}

var syntheticConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy"}

func cityParams(names ...string) map[string]any {
	props := make(map[string]any, len(names))
	for _, name := range names {
		props[name] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   names,
	}
}

// Register adds all WeatherPlugin functions to the global registry.
func Register() error {
	specs := []struct {
		tool    protocol.Tool
		handler functions.Handler
	}{
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_current_weather"),
			Description: "Gets the current weather for a specified city. Returns temperature, condition, and humidity.",
			Parameters:  cityParams("city"),
		}, handleCurrentWeather},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "get_forecast"),
			Description: "Gets a 3-day weather forecast for a specified city.",
			Parameters:  cityParams("city"),
		}, handleForecast},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "compare_weather"),
			Description: "Compares the weather between two cities.",
			Parameters:  cityParams("city1", "city2"),
		}, handleCompare},
		{protocol.Tool{
			Name:        functions.Qualify(Plugin, "should_bring_umbrella"),
			Description: "Determines if you should bring an umbrella based on the weather in a city.",
			Parameters:  cityParams("city"),
		}, handleUmbrella},
	}

	for _, s := range specs {
		if err := functions.Register(s.tool, s.handler); err != nil {
			return fmt.Errorf("register %s: %w", s.tool.Name, err)
		}
	}
	return nil
}

func lookup(city string) conditions {
	if w, ok := weatherData[strings.ToLower(city)]; ok {
		return w
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(city)))
	seed := h.Sum32()
	return conditions{
		Temp:      50 + int(seed%41),
		Condition: syntheticConditions[seed%uint32(len(syntheticConditions))],
		Humidity:  40 + int(seed/7%51),
	}
}

// title capitalizes each word of an ASCII city name.
func title(city string) string {
	words := strings.Fields(strings.ToLower(city))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func report(city string) string {
	w := lookup(city)
	return fmt.Sprintf("Weather in %s:\nTemperature: %d°F\nCondition: %s\nHumidity: %d%%",
		title(city), w.Temp, w.Condition, w.Humidity)
}

func handleCurrentWeather(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.City == "" {
		return functions.Result{Content: "city is required", IsError: true}, nil
	}
	return functions.Result{Content: report(args.City)}, nil
}

func handleForecast(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.City == "" {
		return functions.Result{Content: "city is required", IsError: true}, nil
	}

	base := lookup(args.City)
	var b strings.Builder
	fmt.Fprintf(&b, "3-Day Forecast for %s:\n", title(args.City))
	for day := 1; day <= 3; day++ {
		// Derive each day from the base conditions so the forecast is
		// stable across calls.
		high := base.Temp + day*2
		low := base.Temp - 10 - day
		condition := syntheticConditions[(base.Humidity+day)%len(syntheticConditions)]
		fmt.Fprintf(&b, "Day %d: High %d°F, Low %d°F - %s\n", day, high, low, condition)
	}
	return functions.Result{Content: b.String()}, nil
}

func handleCompare(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		City1 string `json:"city1"`
		City2 string `json:"city2"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.City1 == "" || args.City2 == "" {
		return functions.Result{Content: "city1 and city2 are required", IsError: true}, nil
	}

	content := fmt.Sprintf("Weather Comparison:\n\n%s\n\nvs\n\n%s", report(args.City1), report(args.City2))
	return functions.Result{Content: content}, nil
}

func handleUmbrella(_ context.Context, raw json.RawMessage) (functions.Result, error) {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return functions.Result{Content: "invalid arguments: " + err.Error(), IsError: true}, nil
	}
	if args.City == "" {
		return functions.Result{Content: "city is required", IsError: true}, nil
	}

	w, known := weatherData[strings.ToLower(args.City)]
	if !known {
		return functions.Result{
			Content: fmt.Sprintf("Weather data not available for %s, but it's always good to be prepared!", args.City),
		}, nil
	}

	condition := strings.ToLower(w.Condition)
	if strings.Contains(condition, "rain") || strings.Contains(condition, "storm") {
		return functions.Result{
			Content: fmt.Sprintf("Yes, bring an umbrella! It's %s in %s.", w.Condition, title(args.City)),
		}, nil
	}
	return functions.Result{
		Content: fmt.Sprintf("No umbrella needed. It's %s in %s.", w.Condition, title(args.City)),
	}, nil
}
