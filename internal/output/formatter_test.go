package output

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Major uint8  `json:"major" yaml:"major"`
}

func TestTableFormatter(t *testing.T) {
	got := NewFormatter("table").Format(&sample{Name: "BOLOS", Major: 2})
	if !strings.Contains(got, "Name:") || !strings.Contains(got, "BOLOS") {
		t.Fatalf("table output mismatch:\n%s", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	got := NewFormatter("json").Format(&sample{Name: "BOLOS", Major: 2})
	if !strings.Contains(got, "\"name\": \"BOLOS\"") {
		t.Fatalf("json output mismatch:\n%s", got)
	}
}

func TestYAMLFormatter(t *testing.T) {
	got := NewFormatter("yaml").Format(&sample{Name: "BOLOS", Major: 2})
	if !strings.Contains(got, "name: BOLOS") {
		t.Fatalf("yaml output mismatch:\n%s", got)
	}
}

func TestUnknownFormatFallsBackToTable(t *testing.T) {
	if _, ok := NewFormatter("csv").(*TableFormatter); !ok {
		t.Fatalf("expected table fallback")
	}
}
