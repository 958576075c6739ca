package vibecheck

import (
	"strings"
	"text/template"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const systemInstructions = "You are a helpful assistant that responds only with valid JSON objects."

// The field list and example in the prompt are derived from these shapes so
// they can never drift from what the decoder checks.
type reply struct {
	IsEven     bool    `json:"isEven" jsonschema:"description=true if even and false if odd"`
	Confidence float64 `json:"confidence" jsonschema:"description=between 0 and 1 for how confident you are,minimum=0,maximum=1"`
	Reasoning  string  `json:"reasoning" jsonschema:"description=your mathematical reasoning"`
}

type vibeReply struct {
	IsEven     bool    `json:"isEven" jsonschema:"description=true if even and false if odd"`
	Confidence float64 `json:"confidence" jsonschema:"description=between 0 and 1 for how confident you are,minimum=0,maximum=1"`
	Reasoning  string  `json:"reasoning" jsonschema:"description=your mathematical reasoning"`
	Vibe       string  `json:"vibe" jsonschema:"description=describe the mystical vibe/energy you get from this number"`
}

var reflector = jsonschema.Reflector{
	AllowAdditionalProperties: false,
	DoNotReference:            true,
	ExpandedStruct:            true,
}

var promptTemplate = template.Must(template.New("prompt").Option("missingkey=error").Parse(
	`You are a mystical number whisperer with deep mathematical intuition.

Your task is to determine if the number {{.Number}} is even or odd using your AI vibes and mathematical wisdom.

Please respond with a JSON object containing:
{{- range .Fields}}
- {{.Name}}: {{.Type}} ({{.Description}})
{{- end}}

Be creative with your reasoning{{if .Vibes}} and vibe description{{end}}, but ensure the mathematical answer is correct.

Example format:
{{.Example}}`))

type promptField struct {
	Name        string
	Type        string
	Description string
}

type promptBuilder struct {
	vibes   bool
	fields  []promptField
	example string
}

func newPromptBuilder(vibes bool) (*promptBuilder, error) {
	var shape, example any
	if vibes {
		shape = &vibeReply{}
		example = vibeReply{
			IsEven:     true,
			Confidence: 0.95,
			Reasoning:  "The number divides evenly by 2 with no remainder",
			Vibe:       "This number radiates balanced, harmonious energy ✨",
		}
	} else {
		shape = &reply{}
		example = reply{
			IsEven:     true,
			Confidence: 0.95,
			Reasoning:  "The number divides evenly by 2 with no remainder",
		}
	}

	b, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return nil, err
	}

	return &promptBuilder{
		vibes:   vibes,
		fields:  schemaFields(reflector.Reflect(shape).Properties),
		example: string(b),
	}, nil
}

func schemaFields(props *orderedmap.OrderedMap[string, *jsonschema.Schema]) []promptField {
	fields := make([]promptField, 0, props.Len())
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, promptField{
			Name:        pair.Key,
			Type:        pair.Value.Type,
			Description: pair.Value.Description,
		})
	}
	return fields
}

func (p *promptBuilder) Render(n int64) (string, error) {
	var buf strings.Builder
	err := promptTemplate.Execute(&buf, map[string]any{
		"Number":  n,
		"Fields":  p.fields,
		"Vibes":   p.vibes,
		"Example": p.example,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
