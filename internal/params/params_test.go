package params

import (
	"reflect"
	"testing"
)

func TestString(t *testing.T) {
	p := map[string]interface{}{"text": "mod4", "num": 5, "nil": nil}
	if got := String(p, "text", ""); got != "mod4" {
		t.Errorf("String(text) = %q", got)
	}
	if got := String(p, "num", ""); got != "5" {
		t.Errorf("String(num) = %q", got)
	}
	if got := String(p, "nil", "dflt"); got != "dflt" {
		t.Errorf("String(nil) = %q", got)
	}
	if got := String(p, "missing", "dflt"); got != "dflt" {
		t.Errorf("String(missing) = %q", got)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		val  interface{}
		want int
	}{
		{100, 100},
		{float64(42), 42},
		{int64(7), 7},
		{uint64(9), 9},
		{"12", -1},
	}
	for _, tt := range tests {
		if got := Int(map[string]interface{}{"pid": tt.val}, "pid", -1); got != tt.want {
			t.Errorf("Int(%#v) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestBool(t *testing.T) {
	p := map[string]interface{}{"yes": true, "str": "true"}
	if !Bool(p, "yes", false) {
		t.Error("Bool(yes) should be true")
	}
	if Bool(p, "str", false) {
		t.Error("a string is not a bool")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		val  interface{}
		want []string
	}{
		{[]interface{}{"Alacritty", "Alacritty"}, []string{"Alacritty", "Alacritty"}},
		{"mpv, mpv", []string{"mpv", "mpv"}},
		{"mpv", []string{"mpv"}},
		{[]string{"a"}, []string{"a"}},
		{3, []string{"3"}},
	}
	for _, tt := range tests {
		got := Strings(map[string]interface{}{"class": tt.val}, "class")
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Strings(%#v) = %#v, want %#v", tt.val, got, tt.want)
		}
	}
	if got := Strings(map[string]interface{}{}, "class"); got != nil {
		t.Errorf("missing key should be nil, got %#v", got)
	}
}
