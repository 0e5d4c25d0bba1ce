package response

import "testing"

func TestParseChat(t *testing.T) {
	body := []byte(`{
		"id": "chatcmpl-1",
		"model": "gpt-4o",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "Hello there."},
			"finish_reason": "stop"
		}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
	}`)

	resp, err := ParseChat(body)
	if err != nil {
		t.Fatalf("ParseChat failed: %v", err)
	}

	if resp.Text() != "Hello there." {
		t.Errorf("got text %q, want Hello there.", resp.Text())
	}
	if resp.Choices[0].FinishReason != "stop" {
		t.Errorf("got finish reason %q, want stop", resp.Choices[0].FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 16 {
		t.Errorf("got usage %+v, want total 16", resp.Usage)
	}
}

func TestParseChat_ToolCalls(t *testing.T) {
	body := []byte(`{
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"content": "",
				"tool_calls": [{
					"id": "call_1",
					"type": "function",
					"function": {"name": "Math-add", "arguments": "{\"number1\":15,\"number2\":25}"}
				}]
			},
			"finish_reason": "tool_calls"
		}]
	}`)

	resp, err := ParseChat(body)
	if err != nil {
		t.Fatalf("ParseChat failed: %v", err)
	}

	calls := resp.ToolCalls()
	if len(calls) != 1 {
		t.Fatalf("got %d tool calls, want 1", len(calls))
	}
	if calls[0].Name != "Math-add" {
		t.Errorf("got name %q, want Math-add", calls[0].Name)
	}
	if calls[0].Arguments != `{"number1":15,"number2":25}` {
		t.Errorf("got arguments %q", calls[0].Arguments)
	}
}

func TestParseChat_Invalid(t *testing.T) {
	if _, err := ParseChat([]byte(`{"choices": [`)); err == nil {
		t.Fatal("expected error for truncated body")
	}
}

func TestParseChat_EmptyChoices(t *testing.T) {
	resp, err := ParseChat([]byte(`{"choices": []}`))
	if err != nil {
		t.Fatalf("ParseChat failed: %v", err)
	}
	if resp.Text() != "" {
		t.Errorf("got text %q, want empty", resp.Text())
	}
	if resp.ToolCalls() != nil {
		t.Error("expected nil tool calls")
	}
}

func TestParseChunk(t *testing.T) {
	data := []byte(`{"choices":[{"index":0,"delta":{"content":"Hel"}}]}`)

	chunk, err := ParseChunk(data)
	if err != nil {
		t.Fatalf("ParseChunk failed: %v", err)
	}
	if len(chunk.Choices) != 1 {
		t.Fatalf("got %d choices, want 1", len(chunk.Choices))
	}
	if chunk.Choices[0].Delta.Content != "Hel" {
		t.Errorf("got delta %q, want Hel", chunk.Choices[0].Delta.Content)
	}
}

func TestParseChunk_ToolCallFragment(t *testing.T) {
	data := []byte(`{"choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"Math-add","arguments":"{\"num"}}]}}]}`)

	chunk, err := ParseChunk(data)
	if err != nil {
		t.Fatalf("ParseChunk failed: %v", err)
	}

	tcs := chunk.Choices[0].Delta.ToolCalls
	if len(tcs) != 1 {
		t.Fatalf("got %d tool call deltas, want 1", len(tcs))
	}
	if tcs[0].Function.Name != "Math-add" {
		t.Errorf("got name %q, want Math-add", tcs[0].Function.Name)
	}
	if tcs[0].Function.Arguments != `{"num` {
		t.Errorf("got arguments fragment %q", tcs[0].Function.Arguments)
	}
}

func TestParseChunk_FinishReason(t *testing.T) {
	data := []byte(`{"choices":[{"index":0,"delta":{},"finish_reason":"stop"}],"usage":{"prompt_tokens":5,"completion_tokens":7,"total_tokens":12}}`)

	chunk, err := ParseChunk(data)
	if err != nil {
		t.Fatalf("ParseChunk failed: %v", err)
	}
	if chunk.Choices[0].FinishReason != "stop" {
		t.Errorf("got finish reason %q, want stop", chunk.Choices[0].FinishReason)
	}
	if chunk.Usage == nil || chunk.Usage.TotalTokens != 12 {
		t.Errorf("got usage %+v, want total 12", chunk.Usage)
	}
}
