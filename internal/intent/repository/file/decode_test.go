package file_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/intent/repository/file"
)

const validJSON = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hi", "hello", "good morning"], "responses": ["Hello!", "Hey there!"]},
    {"tag": "bye", "patterns": ["bye", "goodbye"], "responses": ["Goodbye!"]}
  ]
}`

const validYAML = `
intents:
  - tag: greeting
    patterns: [hi, hello, good morning]
    responses:
      - Hello!
      - Hey there!
  - tag: bye
    patterns: [bye, goodbye]
    responses: [Goodbye!]
`

func TestDecodeValid(t *testing.T) {
	for name, src := range map[string]string{"JSON": validJSON, "YAML": validYAML} {
		t.Run(name, func(t *testing.T) {
			catalog, err := file.Decode([]byte(src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if catalog.Len() != 2 {
				t.Fatalf("expected 2 intents, got %d", catalog.Len())
			}
			want := intent.Intent{
				Tag:       "greeting",
				Patterns:  []string{"hi", "hello", "good morning"},
				Responses: []string{"Hello!", "Hey there!"},
			}
			if !reflect.DeepEqual(catalog.Intents[0], want) {
				t.Errorf("expected %+v, got %+v", want, catalog.Intents[0])
			}
			if !reflect.DeepEqual(catalog.Tags(), []string{"greeting", "bye"}) {
				t.Errorf("catalog order not preserved: %v", catalog.Tags())
			}
		})
	}
}

func TestDecodeExtraFieldsIgnored(t *testing.T) {
	src := `{"version": 2, "intents": [{"tag": "t", "patterns": ["p"], "responses": ["r"], "context": []}]}`
	if _, err := file.Decode([]byte(src)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONEscapes(t *testing.T) {
	src := `{"intents": [
  {"tag": "links", "patterns": ["and\/or", "https:\/\/x"], "responses": ["see https:\/\/example.com", "caf\u00e9 \"ok\""]}
]}`

	catalog, err := file.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := intent.Intent{
		Tag:       "links",
		Patterns:  []string{"and/or", "https://x"},
		Responses: []string{"see https://example.com", `café "ok"`},
	}
	if !reflect.DeepEqual(catalog.Intents[0], want) {
		t.Errorf("expected %+v, got %+v", want, catalog.Intents[0])
	}

	if _, err := file.Decode([]byte(src)); err != nil {
		t.Errorf("Decode should detect JSON, got %v", err)
	}
}

func TestDecodeQuotedScalarsAccepted(t *testing.T) {
	src := "intents:\n  - tag: \"123\"\n    patterns: [\"42\", \"true\"]\n    responses: ['7']\n"
	catalog, err := file.DecodeYAML([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := intent.Intent{Tag: "123", Patterns: []string{"42", "true"}, Responses: []string{"7"}}
	if !reflect.DeepEqual(catalog.Intents[0], want) {
		t.Errorf("expected %+v, got %+v", want, catalog.Intents[0])
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantIndex int
		wantField string
		wantIn    string
	}{
		{name: "Malformed JSON", src: `{"intents": [`, wantIndex: -1, wantIn: "malformed document"},
		{name: "Empty document", src: ``, wantIndex: -1, wantField: "intents"},
		{name: "Top level is a list", src: `[1, 2]`, wantIndex: -1, wantField: "intents", wantIn: "mapping"},
		{name: "Missing intents", src: `{"data": []}`, wantIndex: -1, wantField: "intents", wantIn: "missing"},
		{name: "Intents not a sequence", src: `{"intents": {"tag": "x"}}`, wantIndex: -1, wantField: "intents", wantIn: "must be a sequence"},
		{name: "Intents null", src: `{"intents": null}`, wantIndex: -1, wantField: "intents", wantIn: "must be a sequence"},
		{name: "Intents empty", src: `{"intents": []}`, wantIndex: -1, wantField: "intents", wantIn: "at least one"},
		{name: "Entry not a record", src: `{"intents": ["hello"]}`, wantIndex: 0, wantIn: "must be a record"},
		{name: "Missing tag", src: `{"intents": [{"patterns": ["a"], "responses": ["b"]}]}`, wantIndex: 0, wantField: "tag", wantIn: "missing"},
		{name: "Null tag", src: `{"intents": [{"tag": null, "patterns": ["a"], "responses": ["b"]}]}`, wantIndex: 0, wantField: "tag", wantIn: "must be a string"},
		{name: "Empty tag", src: `{"intents": [{"tag": "", "patterns": ["a"], "responses": ["b"]}]}`, wantIndex: 0, wantField: "tag", wantIn: "must not be empty"},
		{name: "Missing patterns", src: `{"intents": [{"tag": "t", "responses": ["b"]}]}`, wantIndex: 0, wantField: "patterns", wantIn: "missing"},
		{name: "Missing responses", src: `{"intents": [{"tag": "t", "patterns": ["a"]}]}`, wantIndex: 0, wantField: "responses", wantIn: "missing"},
		{name: "Patterns not a sequence", src: `{"intents": [{"tag": "t", "patterns": "hi", "responses": ["b"]}]}`, wantIndex: 0, wantField: "patterns", wantIn: "must be a sequence"},
		{name: "Responses not a sequence", src: `{"intents": [{"tag": "t", "patterns": ["a"], "responses": {"x": 1}}]}`, wantIndex: 0, wantField: "responses", wantIn: "must be a sequence"},
		{name: "Empty responses", src: `{"intents": [{"tag": "t", "patterns": ["a"], "responses": []}]}`, wantIndex: 0, wantField: "responses", wantIn: "must not be empty"},
		{name: "Nested pattern", src: `{"intents": [{"tag": "t", "patterns": ["a", ["b"]], "responses": ["c"]}]}`, wantIndex: 0, wantField: "patterns[1]", wantIn: "must be a string"},
		{name: "Malformed JSON keeps message clean", src: `{"intents": [}`, wantIndex: -1, wantIn: "intent catalog: malformed document"},
		{name: "Trailing JSON data", src: `{"intents": []} {}`, wantIndex: -1, wantIn: "malformed document"},
		{name: "Repeated key in record", src: `{"intents": [{"tag": "a", "tag": "b", "patterns": ["p"], "responses": ["r"]}]}`, wantIndex: 0, wantField: "tag", wantIn: "duplicate key"},
		{name: "Repeated top-level key", src: `{"intents": [], "intents": [{"tag": "a", "patterns": ["p"], "responses": ["r"]}]}`, wantIndex: -1, wantField: "intents", wantIn: "duplicate key"},
		{name: "Repeated key in YAML record", src: "intents:\n  - tag: a\n    patterns: [p]\n    patterns: [q]\n    responses: [r]\n", wantIndex: 0, wantField: "patterns", wantIn: "duplicate key"},
		{name: "Numeric JSON tag", src: `{"intents": [{"tag": 123, "patterns": ["p"], "responses": ["r"]}]}`, wantIndex: 0, wantField: "tag", wantIn: "must be a string"},
		{name: "Boolean JSON pattern", src: `{"intents": [{"tag": "t", "patterns": [true], "responses": ["r"]}]}`, wantIndex: 0, wantField: "patterns[0]", wantIn: "must be a string"},
		{name: "Unquoted YAML number tag", src: "intents:\n  - tag: 123\n    patterns: [p]\n    responses: [r]\n", wantIndex: 0, wantField: "tag", wantIn: "must be a string"},
		{name: "Unquoted YAML number response", src: "intents:\n  - tag: t\n    patterns: [p]\n    responses: [42]\n", wantIndex: 0, wantField: "responses[0]", wantIn: "must be a string"},
		{
			name:      "Duplicate tag",
			src:       `{"intents": [{"tag": "t", "patterns": ["a"], "responses": ["b"]}, {"tag": "t", "patterns": ["c"], "responses": ["d"]}]}`,
			wantIndex: 1,
			wantField: "tag",
			wantIn:    "duplicate",
		},
		{
			name:      "Second record broken",
			src:       `{"intents": [{"tag": "ok", "patterns": ["a"], "responses": ["b"]}, {"tag": "bad", "patterns": ["a"]}]}`,
			wantIndex: 1,
			wantField: "responses",
			wantIn:    "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := file.Decode([]byte(tt.src))
			if err == nil {
				t.Fatalf("expected error, got catalog %+v", catalog)
			}
			if catalog.Len() != 0 {
				t.Errorf("expected no partial catalog, got %d intents", catalog.Len())
			}
			if !errors.Is(err, intent.ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}

			var vErr *intent.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *intent.ValidationError, got %T", err)
			}
			if vErr.Index != tt.wantIndex {
				t.Errorf("expected index %d, got %d", tt.wantIndex, vErr.Index)
			}
			if tt.wantField != "" && vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
			if tt.wantIn != "" && !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("expected %q in %q", tt.wantIn, err.Error())
			}
		})
	}
}

func TestDecodeJSONReportsLine(t *testing.T) {
	src := "{\n  \"intents\": [\n    {\"tag\": \"a\", \"patterns\": [\"x\"], \"responses\": [\"y\"]},\n    {\"tag\": \"b\",\n     \"patterns\": \"nope\",\n     \"responses\": [\"y\"]}\n  ]\n}\n"
	_, err := file.DecodeJSON([]byte(src))

	var vErr *intent.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "patterns" || vErr.Line != 5 {
		t.Errorf("expected patterns at line 5, got %q at line %d", vErr.Field, vErr.Line)
	}
}

func TestDecodeReportsLine(t *testing.T) {
	src := "intents:\n  - tag: a\n    patterns: [x]\n    responses: [y]\n  - tag: b\n    patterns: nope\n    responses: [y]\n"
	_, err := file.Decode([]byte(src))

	var vErr *intent.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Line != 6 {
		t.Errorf("expected line 6, got %d", vErr.Line)
	}
}
