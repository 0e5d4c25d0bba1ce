package protocol

import (
	"encoding/json"
	"testing"
)

func TestToolCall_MarshalNested(t *testing.T) {
	tc := ToolCall{ID: "call_1", Name: "Math-add", Arguments: `{"number1":2,"number2":3}`}

	data, err := json.Marshal(tc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if raw["type"] != "function" {
		t.Errorf("got type %v, want function", raw["type"])
	}

	fn, ok := raw["function"].(map[string]any)
	if !ok {
		t.Fatal("function is not an object")
	}
	if fn["name"] != "Math-add" {
		t.Errorf("got name %v, want Math-add", fn["name"])
	}
}

func TestToolCall_RoundTrip(t *testing.T) {
	original := ToolCall{ID: "call_9", Name: "Weather.get_current_weather", Arguments: `{"city":"London"}`}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded ToolCall
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip changed value: got %+v, want %+v", decoded, original)
	}
}

func TestToolCall_UnmarshalFlat(t *testing.T) {
	data := []byte(`{"id":"call_2","name":"Database.get_user_by_id","arguments":"{\"user_id\":1}"}`)

	var tc ToolCall
	if err := json.Unmarshal(data, &tc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if tc.Name != "Database.get_user_by_id" {
		t.Errorf("got name %q, want Database.get_user_by_id", tc.Name)
	}
	if tc.ID != "call_2" {
		t.Errorf("got id %q, want call_2", tc.ID)
	}
}

func TestToolCall_UnmarshalProviderFormat(t *testing.T) {
	data := []byte(`{"id":"call_3","type":"function","function":{"name":"Math.divide","arguments":"{\"number1\":10,\"number2\":5}"}}`)

	var tc ToolCall
	if err := json.Unmarshal(data, &tc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if tc.Name != "Math.divide" {
		t.Errorf("got name %q, want Math.divide", tc.Name)
	}
	if tc.Arguments != `{"number1":10,"number2":5}` {
		t.Errorf("got arguments %q", tc.Arguments)
	}
}

func TestMessage_ToolResultFields(t *testing.T) {
	msg := Message{Role: RoleTool, Content: "42", ToolCallID: "call_7"}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if raw["role"] != "tool" {
		t.Errorf("got role %v, want tool", raw["role"])
	}
	if raw["tool_call_id"] != "call_7" {
		t.Errorf("got tool_call_id %v, want call_7", raw["tool_call_id"])
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(RoleUser, "Hello")

	if msg.Role != RoleUser {
		t.Errorf("got role %q, want user", msg.Role)
	}
	if msg.Content != "Hello" {
		t.Errorf("got content %q, want Hello", msg.Content)
	}
	if msg.ToolCalls != nil {
		t.Error("expected no tool calls on a fresh message")
	}
}
