package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopy(t *testing.T) {
	writeFailure := errors.New("xclip exited")
	testCases := []struct {
		name        string
		enabled     bool
		writeErr    error
		expectedErr error
		expectWrite bool
	}{
		{name: "copies when enabled", enabled: true, expectWrite: true},
		{name: "disabled skips write", enabled: false, expectedErr: ErrCopyDisabled},
		{name: "write failure is wrapped", enabled: true, writeErr: writeFailure, expectedErr: writeFailure, expectWrite: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var written string
			wrote := false
			service := &Service{
				enabled: testCase.enabled,
				write: func(text string) error {
					wrote = true
					written = text
					return testCase.writeErr
				},
			}
			err := service.Copy("payload")
			if testCase.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if testCase.expectedErr != nil && !errors.Is(err, testCase.expectedErr) {
				t.Fatalf("expected %v, got %v", testCase.expectedErr, err)
			}
			if wrote != testCase.expectWrite {
				t.Fatalf("expected write=%t, got %t", testCase.expectWrite, wrote)
			}
			if wrote && written != "payload" {
				t.Fatalf("unexpected clipboard payload %q", written)
			}
		})
	}
}

func TestNewServiceDisabledNeverWrites(t *testing.T) {
	if err := NewService(false).Copy("payload"); !errors.Is(err, ErrCopyDisabled) {
		t.Fatalf("expected disabled copy, got %v", err)
	}
}
