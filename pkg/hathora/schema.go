package hathora

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Capability identifies a category of remote model service.
type Capability string

const (
	// CapabilitySynthesis is text-to-speech synthesis.
	CapabilitySynthesis Capability = "synthesis"

	// CapabilityTranscription is speech-to-text transcription.
	CapabilityTranscription Capability = "transcription"

	// CapabilityChat is LLM chat completion.
	CapabilityChat Capability = "chat"
)

// Synthesis models
const (
	// ModelKokoro is the Kokoro-82M voice synthesis model.
	ModelKokoro = "kokoro"

	// ModelResemble is the ResembleAI Chatterbox model with voice cloning.
	ModelResemble = "resemble"
)

// Transcription models
const (
	// ModelParakeet is the NVIDIA Parakeet speech recognition model.
	ModelParakeet = "parakeet"
)

// Chat models
const (
	// ModelQwen is Qwen/Qwen3-30B-A3B, a reasoning LLM with multilingual support.
	ModelQwen = "qwen"
)

// ParamType is the type tag of a model parameter.
type ParamType string

const (
	ParamString ParamType = "string"
	ParamFloat  ParamType = "float"
	ParamInt    ParamType = "int"
	ParamBool   ParamType = "bool"
	ParamAudio  ParamType = "audio"
)

// ParamSpec describes one parameter of a model's contract.
type ParamSpec struct {
	// Type is the parameter's type tag.
	Type ParamType

	// Default is substituted when the caller does not supply the
	// parameter. A nil default marks the parameter optional: it is
	// omitted from the request entirely when unset.
	Default any

	// Description is a human-readable description.
	Description string
}

type paramEncoding int

const (
	encodeJSON paramEncoding = iota
	encodeMultipart
)

// modelSpec is the declarative schema for one model: where it lives,
// how its requests are encoded, and which parameters it accepts.
type modelSpec struct {
	name       string
	fullName   string // upstream model identifier, when distinct
	capability Capability
	baseURL    string
	path       string
	query      []string // parameter names sent as query string instead of body
	encoding   paramEncoding
	params     map[string]ParamSpec
}

const (
	kokoroBaseURL   = "https://app-01312daf-6e53-4b9d-a4ad-13039f35adc4.app.hathora.dev"
	resembleBaseURL = "https://app-efbc8fe2-df55-4f96-bbe3-74f6ea9d986b.app.hathora.dev"
	parakeetBaseURL = "https://app-1c7bebb9-6977-4101-9619-833b251b86d1.app.hathora.dev"
)

// modelTables holds every supported model, keyed by capability then model id.
// Populated at init and never mutated, so concurrent reads need no locking.
var modelTables = map[Capability]map[string]*modelSpec{
	CapabilitySynthesis: {
		ModelKokoro: {
			name:       ModelKokoro,
			capability: CapabilitySynthesis,
			baseURL:    kokoroBaseURL,
			path:       "/synthesize",
			encoding:   encodeJSON,
			params: map[string]ParamSpec{
				"voice": {
					Type:        ParamString,
					Default:     "af_bella",
					Description: "Voice to use for synthesis",
				},
				"speed": {
					Type:        ParamFloat,
					Default:     1.0,
					Description: "Speech speed multiplier (0.5 = half speed, 2.0 = double speed)",
				},
			},
		},
		ModelResemble: {
			name:       ModelResemble,
			capability: CapabilitySynthesis,
			baseURL:    resembleBaseURL,
			path:       "/v1/generate",
			encoding:   encodeMultipart,
			params: map[string]ParamSpec{
				"audio_prompt": {
					Type:        ParamAudio,
					Description: "Reference audio file for voice cloning (optional)",
				},
				"exaggeration": {
					Type:        ParamFloat,
					Default:     0.5,
					Description: "Emotional intensity, range 0.0-1.0",
				},
				"cfg_weight": {
					Type:        ParamFloat,
					Default:     0.5,
					Description: "Adherence to reference voice, range 0.0-1.0",
				},
			},
		},
	},
	CapabilityTranscription: {
		ModelParakeet: {
			name:       ModelParakeet,
			capability: CapabilityTranscription,
			baseURL:    parakeetBaseURL,
			path:       "/v1/transcribe",
			query:      []string{"start_time", "end_time"},
			encoding:   encodeMultipart,
			params: map[string]ParamSpec{
				"start_time": {
					Type:        ParamFloat,
					Description: "Start of the transcription window in seconds (optional)",
				},
				"end_time": {
					Type:        ParamFloat,
					Description: "End of the transcription window in seconds (optional)",
				},
			},
		},
	},
	CapabilityChat: {
		ModelQwen: {
			name:       ModelQwen,
			fullName:   "Qwen/Qwen3-30B-A3B",
			capability: CapabilityChat,
			baseURL:    DefaultChatBaseURL,
			encoding:   encodeJSON,
			params: map[string]ParamSpec{
				"max_tokens": {
					Type:        ParamInt,
					Default:     1000,
					Description: "Maximum number of tokens to generate",
				},
				"temperature": {
					Type:        ParamFloat,
					Default:     0.7,
					Description: "Sampling temperature, range 0.0-1.0",
				},
				"top_p": {
					Type:        ParamFloat,
					Description: "Nucleus sampling parameter (optional)",
				},
				"stream": {
					Type:        ParamBool,
					Description: "Request a streamed response (optional)",
				},
			},
		},
	},
}

// Capabilities returns every supported capability.
func Capabilities() []Capability {
	return []Capability{CapabilitySynthesis, CapabilityTranscription, CapabilityChat}
}

// Models returns the ids of all known models for a capability, sorted.
func Models(c Capability) []string {
	return slices.Sorted(maps.Keys(modelTables[c]))
}

// lookupModel resolves a model id within a capability.
func lookupModel(c Capability, model string) (*modelSpec, error) {
	spec, ok := modelTables[c][model]
	if !ok {
		return nil, validationErrorf("unknown %s model: %q (available models: %s)",
			c, model, strings.Join(Models(c), ", "))
	}
	return spec, nil
}

// paramNames returns the model's parameter names, sorted.
func (m *modelSpec) paramNames() []string {
	return slices.Sorted(maps.Keys(m.params))
}

// isQueryParam reports whether the parameter travels in the query string.
func (m *modelSpec) isQueryParam(name string) bool {
	return slices.Contains(m.query, name)
}

// ModelParameters returns the parameter schema for a model as a fresh copy,
// so callers can introspect valid inputs without being able to mutate the
// registered tables.
func ModelParameters(c Capability, model string) (map[string]ParamSpec, error) {
	spec, err := lookupModel(c, model)
	if err != nil {
		return nil, err
	}
	return maps.Clone(spec.params), nil
}

// ModelHelp returns a formatted description of a model's parameters.
//
// Example output:
//
//	Model: kokoro
//	Parameters:
//	  - speed (float, default=1) Speech speed multiplier (0.5 = half speed, 2.0 = double speed)
//	  - voice (string, default='af_bella') Voice to use for synthesis
func ModelHelp(c Capability, model string) (string, error) {
	spec, err := lookupModel(c, model)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Model: %s\n", spec.name)
	if spec.fullName != "" {
		fmt.Fprintf(&b, "Full name: %s\n", spec.fullName)
	}
	b.WriteString("Parameters:\n")
	for _, name := range spec.paramNames() {
		ps := spec.params[name]
		b.WriteString("  - " + name + " (" + string(ps.Type))
		if ps.Default != nil {
			if s, ok := ps.Default.(string); ok {
				fmt.Fprintf(&b, ", default='%s'", s)
			} else {
				fmt.Fprintf(&b, ", default=%v", ps.Default)
			}
		} else {
			b.WriteString(", optional")
		}
		b.WriteString(") " + ps.Description + "\n")
	}
	return b.String(), nil
}

// ModelJSONSchema renders a model's parameter contract as a JSON Schema
// object. Optional parameters have no default; all others carry theirs.
func ModelJSONSchema(c Capability, model string) (*jsonschema.Schema, error) {
	spec, err := lookupModel(c, model)
	if err != nil {
		return nil, err
	}

	props := make(map[string]*jsonschema.Schema, len(spec.params))
	for name, ps := range spec.params {
		prop := &jsonschema.Schema{
			Type:        jsonSchemaType(ps.Type),
			Description: ps.Description,
		}
		if ps.Default != nil {
			raw, err := json.Marshal(ps.Default)
			if err != nil {
				return nil, fmt.Errorf("marshal default for %s: %w", name, err)
			}
			prop.Default = json.RawMessage(raw)
		}
		props[name] = prop
	}

	return &jsonschema.Schema{
		Title:                spec.name,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}, nil
}

func jsonSchemaType(t ParamType) string {
	switch t {
	case ParamFloat:
		return "number"
	case ParamInt:
		return "integer"
	case ParamBool:
		return "boolean"
	default:
		// Audio inputs are carried as binary parts, described as strings.
		return "string"
	}
}
