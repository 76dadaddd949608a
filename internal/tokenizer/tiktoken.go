package tokenizer

import (
	"errors"

	"github.com/pkoukk/tiktoken-go"
)

var errMissingEncoding = errors.New("tiktoken encoding not loaded")

// tiktokenCounter counts tokens with a loaded BPE encoding. Special tokens in
// the document are counted as plain text.
type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
	label    string
}

func (counter tiktokenCounter) Name() string {
	return counter.label
}

func (counter tiktokenCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, errMissingEncoding
	}
	return len(counter.encoding.EncodeOrdinary(input)), nil
}
