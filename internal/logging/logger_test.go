package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("unsupported input")
	tests := []struct {
		name    string
		field   Field
		wantKey string
		wantVal any
	}{
		{"String", String("input", "11"), "input", "11"},
		{"Int", Int("index", 11), "index", 11},
		{"Uint64", Uint64("n", 12345678901234567890), "n", uint64(12345678901234567890)},
		{"Float64", Float64("seconds", 0.25), "seconds", 0.25},
		{"Bool", Bool("strict", true), "strict", true},
		{"Duration", Duration("elapsed", time.Millisecond), "elapsed", time.Millisecond},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantVal)
			}
		})
	}
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("resolved")
	if !strings.Contains(buf.String(), "resolved") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewLogger tests that the component field is attached.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "resolver")

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, `"component":"resolver"`) {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewLevelLogger verifies entries below the minimum level are dropped.
func TestNewLevelLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLevelLogger(&buf, "app", zerolog.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got: %s", buf.String())
	}

	logger.Error("visible", errors.New("boom"))
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("error entry missing, got: %s", buf.String())
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "resolution failed",
			err:      errors.New("unsupported input"),
			contains: []string{"resolution failed", "unsupported input", "error"},
		},
		{
			name:     "with nil error",
			msg:      "warning",
			contains: []string{"warning", "error"},
		},
		{
			name:     "with error and fields",
			msg:      "calculation failed",
			err:      errors.New("index out of range"),
			fields:   []Field{String("algorithm", "recursive"), Int("index", -1)},
			contains: []string{"calculation failed", "index out of range", "recursive", "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Debug tests the Debug method.
func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("dispatch", String("kind", "string"))

	output := buf.String()
	if !strings.Contains(output, "dispatch") || !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("Debug output should contain message and level, got: %s", output)
	}
}

// TestZerologAdapter_PrintfPrintln tests the formatting helpers.
func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("F(%d) = %d", 11, 144)
	logger.Println("hello", "world")

	output := buf.String()
	if !strings.Contains(output, "F(11) = 144") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "hello world") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, `"str":"hello"`},
		{"int field", Field{Key: "num", Value: 42}, `"num":42`},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"bool field", Field{Key: "flag", Value: true}, `"flag":true`},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, `"X":1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestStdLoggerAdapter tests the standard library adapter.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("resolved", Int("index", 11)) },
			contains: []string{"[INFO]", "resolved", "index=11"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace", String("kind", "integer")) },
			contains: []string{"[DEBUG]", "trace", "kind=integer"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("failed", errors.New("boom"), String("input", "abc")) },
			contains: []string{"[ERROR]", "failed: boom", "input=abc"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestNewTextLogger verifies the text logger honors its minimum level.
func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, zerolog.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Printf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got: %s", buf.String())
	}

	logger.Error("calculation failed", errors.New("boom"), String("algorithm", "recursive"))
	want := "[ERROR] calculation failed: boom algorithm=recursive\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	NewTextLogger(&buf, zerolog.DebugLevel).Debug("input resolved", Int("index", 11))
	if buf.String() != "[DEBUG] input resolved index=11\n" {
		t.Errorf("debug output = %q", buf.String())
	}
}

// TestLoggerInterface verifies the adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	var _ Logger = NewTextLogger(&buf, zerolog.InfoLevel)
	var _ Logger = Nop()
}
