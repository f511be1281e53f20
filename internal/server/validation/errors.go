package validation

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
)

// FieldError is one violated rule. Location is "body" or "params".
type FieldError struct {
	Field    string `json:"field"`
	Message  string `json:"msg"`
	Location string `json:"location"`
}

// Errors lists every violated field of a request.
// It matches common.ErrorValidation with errors.Is.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return common.ErrorValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() error {
	return common.ErrorValidation
}

func (e Errors) has(field string) bool {
	return slices.ContainsFunc(e, func(fe FieldError) bool { return fe.Field == field })
}
