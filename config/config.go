// Package config loads the typed configuration surface — split
// policy thresholds, minimum split interval, feature flags and event
// log bounds — from a JSON file on disk, the same way the teacher
// codebase's params.ReadConfigFile loads paramsConfig.json, but
// returning wrapped errors instead of calling log.Fatalf since this
// is a library, not a program entrypoint.
package config

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"splitchain/core"
)

// ThresholdFile is the on-disk shape of one SplitThreshold.
type ThresholdFile struct {
	Factor          int     `json:"factor"`
	TriggerEuPerThe float64 `json:"triggerEuPerThe"`
}

// PolicyFile is the on-disk JSON shape this package loads. Both
// "enableSplitShadowMode" and its historical alias "splitShadow" are
// accepted; whichever is present (or both) is normalized into a
// single FeatureFlags.EnableSplitShadowMode.
type PolicyFile struct {
	Thresholds             []ThresholdFile `json:"thresholds"`
	MinBlocksBetweenSplits int             `json:"minBlocksBetweenSplits"`
	EnableSplitShadowMode  *bool           `json:"enableSplitShadowMode,omitempty"`
	SplitShadow            *bool           `json:"splitShadow,omitempty"`
	MaxEvents              int             `json:"maxEvents,omitempty"`
}

// Config is the validated, typed result of loading a PolicyFile.
type Config struct {
	Policy    core.SplitPolicyParams
	Flags     core.FeatureFlags
	MaxEvents int
}

// Load reads and validates the policy file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading policy file %q", path)
	}
	return Parse(data)
}

// Parse validates JSON-encoded policy file contents directly, for
// callers that already have the bytes (e.g. embedded defaults or
// tests) rather than a path on disk.
func Parse(data []byte) (*Config, error) {
	var pf PolicyFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(err, "config: parsing policy JSON")
	}

	thresholds := make([]core.SplitThreshold, len(pf.Thresholds))
	for i, t := range pf.Thresholds {
		factor, err := core.NewSplitFactor(t.Factor)
		if err != nil {
			return nil, errors.Wrapf(err, "config: threshold %d", i)
		}
		thresholds[i] = core.SplitThreshold{Factor: factor, TriggerEuPerThe: t.TriggerEuPerThe}
	}

	policy, err := core.NewSplitPolicyParams(thresholds, pf.MinBlocksBetweenSplits)
	if err != nil {
		return nil, errors.Wrap(err, "config: validating split policy params")
	}

	enabled := false
	if pf.EnableSplitShadowMode != nil {
		enabled = *pf.EnableSplitShadowMode
	} else if pf.SplitShadow != nil {
		enabled = *pf.SplitShadow
	}

	maxEvents := pf.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 64
	}

	return &Config{
		Policy:    policy,
		Flags:     core.FeatureFlags{EnableSplitShadowMode: enabled},
		MaxEvents: maxEvents,
	}, nil
}
