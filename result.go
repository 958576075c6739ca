package vibecheck

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/sjson"
)

// Source tells which path produced a Result.
type Source string

const (
	// SourceModel means the answer is whatever the model asserted.
	SourceModel Source = "model"
	// SourceFallback means the model reply was not JSON and parity was computed locally.
	SourceFallback Source = "fallback"
)

// Result is the parity verdict for one integer.
//
// When Source is SourceModel, IsEven is not re-verified against arithmetic.
// Confidence is always within [0, 1].
type Result struct {
	Number     int64
	IsEven     bool
	Confidence float64
	Reasoning  string
	// Vibe is only populated when the client was built with Vibes(true)
	Vibe      string
	Source    Source
	CheckedAt strfmt.DateTime
}

// Parity returns "even" or "odd" according to IsEven.
func (r Result) Parity() string {
	return parityWord(r.IsEven)
}

func (r Result) String() string {
	return fmt.Sprintf("%d is %s (confidence %.2f, %s)", r.Number, r.Parity(), r.Confidence, r.Source)
}

// MarshalJSON renders the result with the field names of the model's reply
// plus number, source and checkedAt.
func (r Result) MarshalJSON() ([]byte, error) {
	result := []byte(`{}`)

	var err error
	result, err = sjson.SetBytes(result, "number", r.Number)
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "isEven", r.IsEven)
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "confidence", r.Confidence)
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "reasoning", r.Reasoning)
	if err != nil {
		return nil, err
	}

	if r.Vibe != "" {
		result, err = sjson.SetBytes(result, "vibe", r.Vibe)
		if err != nil {
			return nil, err
		}
	}

	result, err = sjson.SetBytes(result, "source", string(r.Source))
	if err != nil {
		return nil, err
	}

	if !time.Time(r.CheckedAt).IsZero() {
		result, err = sjson.SetBytes(result, "checkedAt", r.CheckedAt.String())
	}
	return result, err
}

func parityWord(even bool) string {
	if even {
		return "even"
	}
	return "odd"
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
