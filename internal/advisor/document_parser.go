package advisor

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ParseDocumentTimeout is the timeout for document-parsing API calls.
const ParseDocumentTimeout = 30 * time.Second

// ErrInvalidDataURI indicates the document was not a valid base64 data URI.
// It wraps ErrInvalidInput so callers can treat it as a validation failure.
var ErrInvalidDataURI = fmt.Errorf("%w: document must be a base64 data URI (data:<mimetype>;base64,<data>)", ErrInvalidInput)

// documentPrompt instructs the model to extract information from a financial
// document image or PDF.
const documentPrompt = `You are an expert financial document parser.

You will extract relevant information from the financial document provided.
Summarize amounts, due dates, payee details, and any fee line items you find.`

// ParseDocument extracts information from a financial document supplied as a
// base64 data URI and returns the extracted text.
func (c *Client) ParseDocument(ctx context.Context, dataURI string) (string, error) {
	mimeType, data, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, ParseDocumentTimeout)
	defer cancel()

	extracted, err := c.generateText(timeoutCtx, []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				{Text: documentPrompt},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	return extracted, nil
}

// decodeDataURI splits and decodes a "data:<mimetype>;base64,<data>" URI.
func decodeDataURI(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	mimeType, ok = strings.CutSuffix(header, ";base64")
	if !ok || mimeType == "" {
		return "", nil, ErrInvalidDataURI
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return "", nil, ErrInvalidDataURI
	}

	return mimeType, data, nil
}
