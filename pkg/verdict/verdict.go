package verdict

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Field names of the reply object the model is asked to produce.
const (
	FieldIsEven     = "isEven"
	FieldConfidence = "confidence"
	FieldReasoning  = "reasoning"
	FieldVibe       = "vibe"
)

// Schema describes which fields a reply must carry.
type Schema struct {
	// RequireVibe makes the decorative vibe field mandatory
	RequireVibe bool
}

// Reply is a structurally valid model answer. Confidence is reported as the
// model sent it; clamping is left to the caller.
type Reply struct {
	IsEven     bool
	Confidence float64
	Reasoning  string
	Vibe       string
}

// Outcome is the result of decoding a reply. It is one of Ok, SyntaxInvalid or
// StructureInvalid.
type Outcome interface {
	outcome()
}

// Ok carries a reply with the right shape.
type Ok struct {
	Reply Reply
}

func (Ok) outcome() {}

// SyntaxInvalid means the text was not JSON at all.
type SyntaxInvalid struct {
	Raw string
}

func (SyntaxInvalid) outcome() {}

// StructureInvalid means the text was JSON but not the object we asked for.
type StructureInvalid struct {
	Raw    string
	Field  string
	Reason string
}

func (StructureInvalid) outcome() {}

func (s StructureInvalid) Error() string {
	if s.Field == "" {
		return s.Reason
	}
	return fmt.Sprintf("field %q %s", s.Field, s.Reason)
}

// Decode classifies raw model output into exactly one Outcome.
func Decode(raw string, schema Schema) Outcome {
	if !gjson.Valid(raw) {
		return SyntaxInvalid{Raw: raw}
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return StructureInvalid{Raw: raw, Reason: "expected a JSON object, got " + typeName(doc)}
	}

	fields := lastFields(doc)

	isEven := fields[FieldIsEven]
	if !isEven.IsBool() {
		return mismatch(raw, FieldIsEven, "boolean", isEven)
	}

	confidence := fields[FieldConfidence]
	if confidence.Type != gjson.Number {
		return mismatch(raw, FieldConfidence, "number", confidence)
	}

	reasoning := fields[FieldReasoning]
	if reasoning.Type != gjson.String {
		return mismatch(raw, FieldReasoning, "string", reasoning)
	}

	reply := Reply{
		IsEven:     isEven.Bool(),
		Confidence: confidence.Float(),
		Reasoning:  reasoning.String(),
	}

	vibe := fields[FieldVibe]
	switch {
	case vibe.Type == gjson.String:
		reply.Vibe = vibe.String()
	case schema.RequireVibe:
		return mismatch(raw, FieldVibe, "string", vibe)
	}

	return Ok{Reply: reply}
}

// lastFields indexes the top-level members of obj. When a key repeats, the
// last occurrence wins, as with any conforming JSON.parse.
func lastFields(obj gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result, 4)
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})
	return fields
}

func mismatch(raw, field, want string, got gjson.Result) StructureInvalid {
	if !got.Exists() {
		return StructureInvalid{Raw: raw, Field: field, Reason: "is missing"}
	}
	return StructureInvalid{Raw: raw, Field: field, Reason: fmt.Sprintf("must be a %s, got %s", want, typeName(got))}
}

func typeName(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if r.IsArray() {
			return "array"
		}
		return "object"
	}
}
