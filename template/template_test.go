package template

import (
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args map[string]string
		want string
	}{
		{
			name: "translate scenario",
			tmpl: "Translate to {{$lang}}: {{$text}}",
			args: map[string]string{"lang": "French", "text": "hello"},
			want: "Translate to French: hello",
		},
		{
			name: "unknown placeholder unchanged",
			tmpl: "Hello {{$name}}, today is {{$day}}.",
			args: map[string]string{"name": "Alice"},
			want: "Hello Alice, today is {{$day}}.",
		},
		{
			name: "whitespace inside braces",
			tmpl: "Topic: {{ $topic }}",
			args: map[string]string{"topic": "neural networks"},
			want: "Topic: neural networks",
		},
		{
			name: "repeated placeholder",
			tmpl: "{{$x}} and {{$x}}",
			args: map[string]string{"x": "twice"},
			want: "twice and twice",
		},
		{
			name: "empty argument value",
			tmpl: "[{{$v}}]",
			args: map[string]string{"v": ""},
			want: "[]",
		},
		{
			name: "no placeholders",
			tmpl: "What is AI/ML? Answer in 2 to 4 sentences.",
			args: map[string]string{"unused": "x"},
			want: "What is AI/ML? Answer in 2 to 4 sentences.",
		},
		{
			name: "braces without dollar are literal",
			tmpl: "a {{code}} block",
			args: map[string]string{"code": "x"},
			want: "a {{code}} block",
		},
		{
			name: "unterminated placeholder is literal",
			tmpl: "broken {{$tail",
			args: map[string]string{"tail": "x"},
			want: "broken {{$tail",
		},
		{
			name: "nil args leave placeholders",
			tmpl: "{{$a}}-{{$b}}",
			args: nil,
			want: "{{$a}}-{{$b}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.tmpl, tt.args)
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want []string
	}{
		{
			name: "ordered by first appearance",
			tmpl: "You are a {{$role}}. Topic: {{$topic}} for {{$audience}}.",
			want: []string{"role", "topic", "audience"},
		},
		{
			name: "duplicates collapsed",
			tmpl: "{{$x}} {{$y}} {{$x}}",
			want: []string{"x", "y"},
		},
		{
			name: "none",
			tmpl: "plain text",
			want: nil,
		},
		{
			name: "malformed skipped",
			tmpl: "{{notvar}} {{$ok}}",
			want: []string{"ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variables(tt.tmpl)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Variables(%q) = %v, want %v", tt.tmpl, got, tt.want)
			}
		})
	}
}
