package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{raw: "trace", want: zerolog.TraceLevel, ok: true},
		{raw: "debug", want: zerolog.DebugLevel, ok: true},
		{raw: "INFO", want: zerolog.InfoLevel, ok: true},
		{raw: " warn ", want: zerolog.WarnLevel, ok: true},
		{raw: "warning", want: zerolog.WarnLevel, ok: true},
		{raw: "error", want: zerolog.ErrorLevel, ok: true},
		{raw: "off", want: zerolog.Disabled, ok: true},
		{raw: "", ok: false},
		{raw: "loud", ok: false},
	}
	for _, tc := range tests {
		got, ok := parseLevel(tc.raw)
		if ok != tc.ok {
			t.Fatalf("parseLevel(%q): ok=%v want %v", tc.raw, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("parseLevel(%q): got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !ok || !v {
		t.Fatalf("parseBool(true) = %v, %v", v, ok)
	}
	if v, ok := parseBool("0"); !ok || v {
		t.Fatalf("parseBool(0) = %v, %v", v, ok)
	}
	if _, ok := parseBool(""); ok {
		t.Fatalf("empty input must not parse")
	}
	if _, ok := parseBool("sometimes"); ok {
		t.Fatalf("junk input must not parse")
	}
}

func TestDefaultConfigPerProfile(t *testing.T) {
	runtime := defaultConfig(ProfileRuntime)
	if runtime.Level != zerolog.WarnLevel || !runtime.Timestamp {
		t.Fatalf("unexpected runtime defaults: %+v", runtime)
	}
	test := defaultConfig(ProfileTest)
	if test.Level != zerolog.DebugLevel || test.Timestamp {
		t.Fatalf("unexpected test defaults: %+v", test)
	}
}
