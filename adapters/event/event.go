// Package event answers serverless function events of the form {"min": <uint>, "max": <uint>}.
//
// If either bound is missing or is not a non-negative integer, both default to 0.
// The response is {"palindromes":{"one":<smallest>,"two":<largest>}}, or {"message":"none found"}
// if the range has no palindromic product.
package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/n0rdy/palindromes"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/search"
)

const (
	MessageNoneFound  = "none found"
	MessageOutOfRange = "input out of supported range"
)

var ErrMalformedPayload = errors.New("event: malformed payload")

type Palindromes struct {
	One uint64 `json:"one"`
	Two uint64 `json:"two"`
}

// Response is either the found palindromes or a message, never both.
type Response struct {
	Palindromes *Palindromes `json:"palindromes,omitempty"`
	Message     string       `json:"message,omitempty"`
}

type Handler struct {
	searcher search.Searcher
	logger   logging.Logger
}

func NewHandler(searcher search.Searcher, logger logging.Logger) *Handler {
	return &Handler{
		searcher: searcher,
		logger:   logging.OrNoOps(logger),
	}
}

// Handle decodes the event, runs the search and encodes the response.
// An error is returned only if the payload is not JSON at all or the search itself fails.
func (h *Handler) Handle(ctx context.Context, payload []byte) ([]byte, error) {
	min, max, err := Decode(payload)
	if err != nil {
		return nil, err
	}

	resp, err := h.respond(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

func (h *Handler) respond(ctx context.Context, min, max uint64) (Response, error) {
	res, err := h.searcher.Search(ctx, min, max)
	switch {
	case errors.Is(err, palindromes.ErrOutOfRange):
		h.logger.Debug("event range [" + strconv.FormatUint(min, 10) + ", " + strconv.FormatUint(max, 10) + "] is out of range")
		return Response{Message: MessageOutOfRange}, nil
	case err != nil:
		h.logger.Error("event search failed", err)
		return Response{}, err
	case res == nil:
		return Response{Message: MessageNoneFound}, nil
	default:
		return Response{Palindromes: &Palindromes{One: res.Min.Value(), Two: res.Max.Value()}}, nil
	}
}

// Decode extracts the bounds from the event payload.
// Valid JSON that isn't an object, or an object without usable bounds, yields (0, 0).
func Decode(payload []byte) (uint64, uint64, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var event any
	if err := dec.Decode(&event); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	fields, ok := event.(map[string]any)
	if !ok {
		return 0, 0, nil
	}
	min, minOk := unsigned(fields["min"])
	max, maxOk := unsigned(fields["max"])
	if !minOk || !maxOk {
		return 0, 0, nil
	}
	return min, max, nil
}

func unsigned(v any) (uint64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return u, true
}
