package table

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"empty", "", KindEmpty},
		{"whitespace", "   ", KindEmpty},
		{"integer", "42", KindNumber},
		{"float", "3.14", KindNumber},
		{"negative", "-7", KindNumber},
		{"scientific", "1e3", KindNumber},
		{"padded number", " 42 ", KindNumber},
		{"true upper", "TRUE", KindBool},
		{"false lower", "false", KindBool},
		{"text", "hello", KindText},
		{"mixed", "42abc", KindText},
		{"nan literal", "NaN", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in).Kind(); got != tt.kind {
				t.Errorf("Parse(%q).Kind() = %v, want %v", tt.in, got, tt.kind)
			}
		})
	}
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
		ok   bool
	}{
		{"number", Number(2.5), 2.5, true},
		{"numeric text", Text("10"), 10, true},
		{"padded text", Text(" 10 "), 10, true},
		{"bool true", Bool(true), 1, true},
		{"bool false", Bool(false), 0, true},
		{"plain text", Text("abc"), 0, false},
		{"empty", Empty(), 0, false},
		{"infinity text", Text("Inf"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Float()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Float() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer renders without decimals", Number(42), "42"},
		{"float keeps precision", Number(2.5), "2.5"},
		{"text verbatim", Text(" spaced "), " spaced "},
		{"bool upper", Bool(true), "TRUE"},
		{"empty", Empty(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	in := []Value{Number(1), Text("a"), Bool(true), Empty()}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `[1,"a",true,null]` {
		t.Errorf("Marshal = %s", data)
	}

	var out []Value
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for i := range in {
		if out[i].Kind() != in[i].Kind() || out[i].Any() != in[i].Any() {
			t.Errorf("round trip [%d] = %v (%v), want %v (%v)", i, out[i], out[i].Kind(), in[i], in[i].Kind())
		}
	}
}

func TestValueUnmarshalRejectsComposite(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`[1,2]`), &v); err == nil {
		t.Error("expected error for array cell value")
	}
	if err := json.Unmarshal([]byte(`{"a":1}`), &v); err == nil {
		t.Error("expected error for object cell value")
	}
}

func TestValueIsEmpty(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Error("Empty().IsEmpty() = false")
	}
	if !Text("  ").IsEmpty() {
		t.Error("whitespace text should be empty")
	}
	if Number(0).IsEmpty() {
		t.Error("zero is not empty")
	}
	if Bool(false).IsEmpty() {
		t.Error("false is not empty")
	}
}
