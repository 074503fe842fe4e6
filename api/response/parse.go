package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kardolus/reasoning-cli/internal/jsonptr"
)

const (
	itemTypeMessage      = "message"
	itemTypeFunctionCall = "function_call"
	itemTypeError        = "error"
	contentTypeOutput    = "output_text"
	contentTypeText      = "text"
	contentTypeMarkdown  = "markdown"
	functionPlaceholder  = "[Function: %s]"
)

var (
	reasoningPointers    = []string{"/reasoning", "/meta/reasoning"}
	fallbackTextPointers = []string{"/output/0/content/0/text", "/response/0/content/0/text"}
)

// Parse decodes raw and classifies it with FromDocument. The only error it
// returns is a decoding error for input that is not a single JSON value.
func Parse(raw []byte) (Response, error) {
	doc, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return FromDocument(doc, json.RawMessage(raw)), nil
}

// FromDocument classifies a decoded document. It never fails: missing or
// oddly typed fields fall back to defaults.
func FromDocument(doc any, raw json.RawMessage) Response {
	if errInfo, ok := jsonptr.Field(doc, "error"); ok {
		message, _ := jsonptr.Field(errInfo, "message")
		code, _ := jsonptr.Field(errInfo, "code")

		return Error{
			Message: jsonptr.TextOr(message, DefaultErrorMessage),
			Code:    jsonptr.TextOr(code, DefaultErrorCode),
			Raw:     raw,
		}
	}

	text := ExtractText(doc)
	if text == "" {
		return Partial{AvailableText: "", Reason: ReasonNoText, Raw: raw}
	}

	result := Success{
		Text:            text,
		ReasoningEffort: DefaultEffort,
		Raw:             raw,
	}

	if reasoning, ok := jsonptr.First(doc, reasoningPointers...); ok {
		effort, _ := jsonptr.Field(reasoning, "effort")
		trace, _ := jsonptr.Field(reasoning, "trace")
		result.ReasoningEffort = jsonptr.TextOr(effort, DefaultEffort)
		result.ReasoningTrace = jsonptr.TextOr(trace, "")
	}

	if v, ok := jsonptr.Lookup(doc, "/usage/input_tokens"); ok {
		result.InputTokens, _ = jsonptr.Int(v)
	}
	if v, ok := jsonptr.Lookup(doc, "/usage/output_tokens"); ok {
		result.OutputTokens, _ = jsonptr.Int(v)
	}

	return result
}

// ExtractText finds the answer text in a document. The top level
// "output_text" wins over the "output" array, which wins over the fixed
// fallback pointers. An empty result means no text was found.
func ExtractText(doc any) string {
	if v, ok := jsonptr.Field(doc, "output_text"); ok {
		text, _ := jsonptr.Text(v)
		return text
	}

	if v, ok := jsonptr.Field(doc, "output"); ok {
		if items, ok := v.([]any); ok {
			var sb strings.Builder
			for _, item := range items {
				switch itemType(item) {
				case itemTypeMessage:
					appendMessageContent(&sb, item)
				case itemTypeFunctionCall:
					appendFunctionCall(&sb, item)
				case itemTypeError:
					// errors inside a partial output do not hide the text around them
				}
			}
			if sb.Len() > 0 {
				return sb.String()
			}
		}
	}

	text, _ := jsonptr.FirstText(doc, fallbackTextPointers...)
	return text
}

func appendMessageContent(sb *strings.Builder, item any) {
	v, ok := jsonptr.Field(item, "content")
	if !ok {
		return
	}
	parts, ok := v.([]any)
	if !ok {
		return
	}

	for _, part := range parts {
		var field string
		switch itemType(part) {
		case contentTypeOutput, contentTypeText:
			field = "text"
		case contentTypeMarkdown:
			field = "content"
		default:
			continue
		}

		value, ok := jsonptr.Field(part, field)
		if !ok {
			continue
		}
		if text, _ := jsonptr.Text(value); strings.TrimSpace(text) != "" {
			sb.WriteString(text)
		}
	}
}

func appendFunctionCall(sb *strings.Builder, item any) {
	name, ok := jsonptr.Lookup(item, "/function/name")
	if !ok {
		return
	}
	if text, _ := jsonptr.Text(name); text != "" {
		fmt.Fprintf(sb, functionPlaceholder, text)
	}
}

func itemType(item any) string {
	v, ok := jsonptr.Field(item, "type")
	if !ok {
		return ""
	}
	text, _ := jsonptr.Text(v)
	return text
}

func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return doc, nil
}
