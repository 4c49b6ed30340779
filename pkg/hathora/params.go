package hathora

import (
	"sort"
	"strings"
)

// Param is one model-specific parameter override. Construct values with the
// typed helpers below, or ParamValue for parameters added server-side before
// this package learns about them.
type Param struct {
	name  string
	value any
}

// ParamValue builds a parameter override by name. The name and value are
// still validated against the target model's schema at call time.
func ParamValue(name string, value any) Param {
	return Param{name: name, value: value}
}

// Voice selects the synthesis voice (kokoro).
func Voice(voice string) Param { return Param{"voice", voice} }

// Speed sets the speech speed multiplier (kokoro).
func Speed(multiplier float64) Param { return Param{"speed", multiplier} }

// AudioPrompt supplies reference audio for voice cloning (resemble).
func AudioPrompt(in AudioInput) Param { return Param{"audio_prompt", in} }

// Exaggeration sets the emotional intensity, 0.0-1.0 (resemble).
func Exaggeration(level float64) Param { return Param{"exaggeration", level} }

// CFGWeight sets adherence to the reference voice, 0.0-1.0 (resemble).
func CFGWeight(weight float64) Param { return Param{"cfg_weight", weight} }

// StartTime bounds the transcription window start, in seconds (parakeet).
func StartTime(seconds float64) Param { return Param{"start_time", seconds} }

// EndTime bounds the transcription window end, in seconds (parakeet).
func EndTime(seconds float64) Param { return Param{"end_time", seconds} }

// MaxTokens caps the number of generated tokens (chat).
func MaxTokens(n int) Param { return Param{"max_tokens", n} }

// Temperature sets the sampling temperature, 0.0-1.0 (chat).
func Temperature(t float64) Param { return Param{"temperature", t} }

// TopP sets the nucleus sampling parameter (chat).
func TopP(p float64) Param { return Param{"top_p", p} }

// Stream requests a streamed response (chat).
func Stream(enabled bool) Param { return Param{"stream", enabled} }

// resolveParams validates overrides against the model's schema and merges in
// defaults for everything left unset. Unknown names fail as a batch so the
// error can list every offender alongside the model's valid parameters.
func resolveParams(spec *modelSpec, overrides []Param) (map[string]any, error) {
	vals := make(map[string]any, len(spec.params))

	var unknown []string
	for _, p := range overrides {
		ps, ok := spec.params[p.name]
		if !ok {
			unknown = append(unknown, p.name)
			continue
		}
		v, err := coerceParam(spec.name, p.name, ps.Type, p.value)
		if err != nil {
			return nil, err
		}
		vals[p.name] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, validationErrorf("unknown parameters for model %q: %s (valid parameters: %s)",
			spec.name, strings.Join(unknown, ", "), strings.Join(spec.paramNames(), ", "))
	}

	for name, ps := range spec.params {
		if _, ok := vals[name]; !ok && ps.Default != nil {
			vals[name] = ps.Default
		}
	}
	return vals, nil
}

// coerceParam checks an override value against the declared type tag.
// Integral values are accepted for float parameters.
func coerceParam(model, name string, t ParamType, v any) (any, error) {
	switch t {
	case ParamString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case ParamFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
	case ParamInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		}
	case ParamBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case ParamAudio:
		if in, ok := v.(AudioInput); ok && in != nil {
			return in, nil
		}
	}
	return nil, validationErrorf("parameter %q of model %q must be of type %s, got %T",
		name, model, t, v)
}
