package config

import "testing"

const validPolicyJSON = `{
  "thresholds": [
    {"factor": 2, "triggerEuPerThe": 3.0},
    {"factor": 3, "triggerEuPerThe": 7.0},
    {"factor": 5, "triggerEuPerThe": 15.0}
  ],
  "minBlocksBetweenSplits": 10080,
  "enableSplitShadowMode": true
}`

func TestParseValidPolicy(t *testing.T) {
	cfg, err := Parse([]byte(validPolicyJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Flags.EnableSplitShadowMode {
		t.Error("expected shadow mode enabled")
	}
	if len(cfg.Policy.Thresholds) != 3 {
		t.Errorf("expected 3 thresholds, got %d", len(cfg.Policy.Thresholds))
	}
	if cfg.MaxEvents != 64 {
		t.Errorf("expected default maxEvents=64, got %d", cfg.MaxEvents)
	}
}

func TestParseAcceptsSplitShadowAlias(t *testing.T) {
	data := `{"thresholds":[{"factor":2,"triggerEuPerThe":3.0}],"minBlocksBetweenSplits":0,"splitShadow":true}`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Flags.EnableSplitShadowMode {
		t.Error("expected splitShadow alias to enable shadow mode")
	}
}

func TestParseRejectsNonMonotonicThresholds(t *testing.T) {
	data := `{"thresholds":[{"factor":3,"triggerEuPerThe":3.0},{"factor":2,"triggerEuPerThe":7.0}],"minBlocksBetweenSplits":0}`
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error for non-monotonic thresholds")
	}
}

func TestParseRejectsInvalidFactor(t *testing.T) {
	data := `{"thresholds":[{"factor":4,"triggerEuPerThe":3.0}],"minBlocksBetweenSplits":0}`
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error for invalid factor")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/policy.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
