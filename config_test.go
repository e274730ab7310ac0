package parsea

import (
	"testing"

	"github.com/npillmayer/parsea/internal/tracing"
)

func TestConfigValues(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	c := Config{"name": "x", "on": true, "n": 3, "nothing": nil}
	if !c.IsSet("nothing") || c.IsSet("missing") {
		t.Errorf("expected IsSet to report presence of keys")
	}
	if c.String("name") != "x" || c.String("n") != "3" || c.String("missing") != "" {
		t.Errorf("unexpected string values")
	}
	if !c.Bool("on") || c.Bool("name") || c.Bool("missing") {
		t.Errorf("unexpected bool values")
	}
	if c.Int("n") != 3 || c.Int("name") != 0 {
		t.Errorf("unexpected int values")
	}
	var empty Config
	if empty.IsSet("name") {
		t.Errorf("expected nil configuration to be empty")
	}
}
