package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/C41M50N/llm/core"
	"github.com/C41M50N/llm/schema"
)

var personSchema = schema.Object(map[string]*schema.Schema{
	"name": schema.String("full name"),
	"city": schema.String("home city"),
})

func TestGenerateStructuredOutput(t *testing.T) {
	client, mock, _ := testSetup(t, nil)
	if err := mock.SetObjectResponse(map[string]string{"name": "Alice", "city": "NYC"}); err != nil {
		t.Fatalf("SetObjectResponse failed: %v", err)
	}

	resp, err := client.Generate(context.Background(), GenerateParams{
		Model:  "fast",
		Prompt: "Get info",
		Output: personSchema,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Object == nil {
		t.Fatal("expected structured output")
	}
	var decoded map[string]string
	if err := json.Unmarshal(resp.Object, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded["name"] != "Alice" || decoded["city"] != "NYC" {
		t.Errorf("unexpected object %v", decoded)
	}

	// The schema must reach the provider untouched.
	req := mock.GenerateCalls[0]
	if req.OutputSchema != personSchema {
		t.Error("output schema should pass through by reference")
	}
}

func TestGenerateObjectOmittedWithoutSchema(t *testing.T) {
	client, mock, _ := testSetup(t, nil)
	// A provider may attach structured output unsolicited; the response only
	// carries it when the caller asked for it.
	mock.Response = &core.Result{
		Text:   "plain",
		Object: json.RawMessage(`{"extra":true}`),
		Usage:  &core.Usage{InputTokens: 1, OutputTokens: 1},
	}

	resp, err := client.Generate(context.Background(), GenerateParams{Model: "fast", Prompt: "Hi"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "plain" {
		t.Errorf("expected text 'plain', got %q", resp.Text)
	}
	if resp.Object != nil {
		t.Errorf("Object must be unset without a schema, got %s", resp.Object)
	}
}

func TestGenerateTyped(t *testing.T) {
	client, mock, _ := testSetup(t, nil)
	if err := mock.SetObjectResponse(map[string]string{"name": "Alice", "city": "NYC"}); err != nil {
		t.Fatalf("SetObjectResponse failed: %v", err)
	}

	type person struct {
		Name string `json:"name"`
		City string `json:"city"`
	}

	got, meta, err := GenerateTyped[person](context.Background(), client, GenerateParams{
		Model:  "fast",
		Prompt: "Get info",
		Output: personSchema,
	})
	if err != nil {
		t.Fatalf("GenerateTyped failed: %v", err)
	}
	if got.Name != "Alice" || got.City != "NYC" {
		t.Errorf("unexpected value %+v", got)
	}
	if meta.InputTokens != 10 {
		t.Errorf("expected metadata to carry usage, got %+v", meta)
	}
}

func TestGenerateTypedRequiresSchema(t *testing.T) {
	client, _, _ := testSetup(t, nil)

	type person struct{ Name string }
	_, _, err := GenerateTyped[person](context.Background(), client, GenerateParams{
		Model:  "fast",
		Prompt: "Get info",
	})
	if err == nil {
		t.Fatal("expected error without an output schema")
	}
}

func TestGenerateResponseJSONShape(t *testing.T) {
	client, mock, _ := testSetup(t, nil)
	mock.SetTextResponse("hi")

	resp, err := client.Generate(context.Background(), GenerateParams{Model: "fast", Prompt: "Hi"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	meta, ok := round["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("expected metadata object, got %v", round["metadata"])
	}
	if _, present := meta["cost"]; present {
		t.Error("unpriced models must not serialize a cost field")
	}
}

func TestGenerateIndependentOfLogKey(t *testing.T) {
	var buf bytes.Buffer
	client, mock, _ := testSetup(t, nil, WithLogWriter(&buf))
	mock.SetTextResponse("quiet")

	resp, err := client.Generate(context.Background(), GenerateParams{Model: "fast", Prompt: "Hi"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "quiet" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if buf.Len() != 0 {
		t.Errorf("no log line expected without a log key, got %q", buf.String())
	}
}
