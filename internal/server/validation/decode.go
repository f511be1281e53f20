package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
)

// decodeTarget is a request struct that keeps the type mismatches found while
// decoding it, so its rule set can report them next to its own violations.
type decodeTarget interface {
	messageSource
	setMismatches(Errors)
}

// DecodeJSON reads one JSON object from r into dst. An empty body leaves dst
// zeroed so the rules report the missing fields.
//
// Members are decoded one by one: a value of the wrong JSON type is recorded
// on dst and the remaining members are still filled in. Malformed documents
// and trailing data come back as Errors; a body over the size cap as
// common.ErrorPayloadTooLarge.
func DecodeJSON(r io.Reader, dst decodeTarget) error {
	dec := json.NewDecoder(r)

	var members map[string]json.RawMessage
	err := dec.Decode(&members)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		err = expectEnd(dec)
	}
	if err != nil {
		return bodyError(err)
	}

	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	slices.Sort(names)

	var mismatched Errors
	for _, name := range names {
		one, err := json.Marshal(map[string]json.RawMessage{name: members[name]})
		if err != nil {
			return bodyError(err)
		}

		err = json.Unmarshal(one, dst)
		var te *json.UnmarshalTypeError
		switch {
		case err == nil:
		case errors.As(err, &te) && te.Field != "":
			mismatched = append(mismatched, FieldError{Field: te.Field, Message: dst.message(te.Field, "type"), Location: "body"})
		default:
			return bodyError(err)
		}
	}
	dst.setMismatches(mismatched)
	return nil
}

// expectEnd fails unless the body holds nothing but whitespace after the
// first value.
func expectEnd(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("unexpected %v after JSON body", tok)
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit %d bytes", common.ErrorPayloadTooLarge, tooLarge.Limit)
	}
	return Errors{{Field: "body", Message: "Malformed JSON body", Location: "body"}}
}
