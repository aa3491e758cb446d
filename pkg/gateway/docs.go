package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"tableflip.dev/redline/pkg/auth"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/edit"
)

// DefaultBaseURL is the production document service endpoint.
const DefaultBaseURL = "https://docs.googleapis.com"

// Client talks to the document service over its REST surface.
type Client struct {
	base   string
	http   *http.Client
	tokens auth.Provider
}

// NewClient returns a Client against base, or DefaultBaseURL when base
// is empty.
func NewClient(base string, tokens auth.Provider) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:   strings.TrimSuffix(base, "/"),
		http:   &http.Client{},
		tokens: tokens,
	}
}

func (c *Client) Fetch(ctx context.Context, documentID string) ([]byte, error) {
	return c.get(ctx, documentID, c.base+"/v1/documents/"+documentID)
}

func (c *Client) Revision(ctx context.Context, documentID string) (string, error) {
	body, err := c.get(ctx, documentID, c.base+"/v1/documents/"+documentID+"?fields=revisionId")
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(body, "revisionId").String(), nil
}

func (c *Client) Apply(ctx context.Context, documentID string, ordered []edit.Operation, guard edit.Guard) (*Result, error) {
	if len(ordered) == 0 {
		return &Result{}, nil
	}

	body, err := buildBody(ordered, guard)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/v1/documents/"+documentID+":batchUpdate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classify(resp.StatusCode, payload, documentID, guard)
	}

	res := &Result{Applied: len(ordered)}
	if rev, ok := guard.Required(); ok {
		res.RevisionID = rev
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, documentID, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.classify(resp.StatusCode, payload, documentID, edit.Guard{})
	}
	return payload, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) classify(status int, payload []byte, documentID string, guard edit.Guard) error {
	msg := gjson.GetBytes(payload, "error.message").String()
	st := gjson.GetBytes(payload, "error.status").String()

	switch status {
	case http.StatusNotFound:
		return &NotFoundError{DocumentID: documentID}
	case http.StatusForbidden:
		return &PermissionError{DocumentID: documentID}
	case http.StatusBadRequest:
		if expected, ok := guard.Required(); ok && staleMessage(msg, st) {
			return &StaleDocumentError{DocumentID: documentID, Expected: expected}
		}
	}
	return &RemoteError{Status: status, Message: msg}
}

// buildBody renders a scheduled sequence into one batchUpdate body.
// Each operation becomes its wire request plus any style requests over
// the affected span; the guard becomes writeControl.
func buildBody(ordered []edit.Operation, guard edit.Guard) ([]byte, error) {
	body := "{}"
	var err error

	for _, op := range ordered {
		switch op.Kind {
		case edit.Insert:
			body, err = appendInsert(body, op)
		case edit.Delete:
			body, err = sjson.SetRaw(body, "requests.-1", fmt.Sprintf(
				`{"deleteContentRange":{"range":{"startIndex":%d,"endIndex":%d}}}`,
				op.StartIndex, op.EndIndex))
		default:
			err = fmt.Errorf("operation kind %q cannot be submitted directly", op.Kind)
		}
		if err != nil {
			return nil, err
		}
	}

	if rev, ok := guard.Required(); ok {
		body, err = sjson.Set(body, "writeControl.requiredRevisionId", rev)
		if err != nil {
			return nil, err
		}
	}
	return []byte(body), nil
}

func appendInsert(body string, op edit.Operation) (string, error) {
	req, err := sjson.Set("{}", "insertText.location.index", op.StartIndex)
	if err != nil {
		return "", err
	}
	req, err = sjson.Set(req, "insertText.text", op.Text)
	if err != nil {
		return "", err
	}
	body, err = sjson.SetRaw(body, "requests.-1", req)
	if err != nil {
		return "", err
	}
	if op.Formatting == nil || op.Formatting.IsZero() {
		return body, nil
	}

	start := op.StartIndex
	end := start + doc.Length(op.Text)
	f := *op.Formatting

	if f.NamedStyle != "" {
		body, err = appendParagraphStyle(body, start, end, f.NamedStyle)
		if err != nil {
			return "", err
		}
	}
	if f.BulletPreset != "" {
		body, err = appendBullets(body, start, end, f.BulletPreset)
		if err != nil {
			return "", err
		}
	}
	for _, span := range f.Spans {
		s := start + span.Offset
		e := s + span.Length
		if span.NamedStyle != "" {
			body, err = appendParagraphStyle(body, s, e, span.NamedStyle)
			if err != nil {
				return "", err
			}
		}
		if span.BulletPreset != "" {
			body, err = appendBullets(body, s, e, span.BulletPreset)
			if err != nil {
				return "", err
			}
		}
	}
	return appendTextStyle(body, start, end, f)
}

func appendParagraphStyle(body string, start, end int64, style string) (string, error) {
	return sjson.SetRaw(body, "requests.-1", fmt.Sprintf(
		`{"updateParagraphStyle":{"range":{"startIndex":%d,"endIndex":%d},"paragraphStyle":{"namedStyleType":%q},"fields":"namedStyleType"}}`,
		start, end, style))
}

func appendBullets(body string, start, end int64, preset string) (string, error) {
	return sjson.SetRaw(body, "requests.-1", fmt.Sprintf(
		`{"createParagraphBullets":{"range":{"startIndex":%d,"endIndex":%d},"bulletPreset":%q}}`,
		start, end, preset))
}

func appendTextStyle(body string, start, end int64, f edit.Formatting) (string, error) {
	style := "{}"
	var fields []string
	var err error

	set := func(name string, on bool) {
		if !on || err != nil {
			return
		}
		style, err = sjson.Set(style, name, true)
		fields = append(fields, name)
	}
	set("bold", f.Bold)
	set("italic", f.Italic)
	set("underline", f.Underline)
	set("strikethrough", f.Strikethrough)
	if err != nil {
		return "", err
	}
	if f.Code {
		style, err = sjson.Set(style, "weightedFontFamily.fontFamily", "Courier New")
		if err != nil {
			return "", err
		}
		fields = append(fields, "weightedFontFamily")
	}
	if len(fields) == 0 {
		return body, nil
	}

	req, err := sjson.SetRaw("{}", "updateTextStyle.textStyle", style)
	if err != nil {
		return "", err
	}
	req, err = sjson.Set(req, "updateTextStyle.range.startIndex", start)
	if err != nil {
		return "", err
	}
	req, err = sjson.Set(req, "updateTextStyle.range.endIndex", end)
	if err != nil {
		return "", err
	}
	req, err = sjson.Set(req, "updateTextStyle.fields", strings.Join(fields, ","))
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(body, "requests.-1", req)
}
