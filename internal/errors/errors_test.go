package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidOrigin", ErrInvalidOrigin, ErrInvalidOrigin},
		{"ErrIllegalDestination", ErrIllegalDestination, ErrIllegalDestination},
		{"ErrCastlingRejected", ErrCastlingRejected, ErrCastlingRejected},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrSelfCheck", ErrSelfCheck, ErrSelfCheck},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidLayout", ErrInvalidLayout, ErrInvalidLayout},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct makes sure the move rejections never compare equal.
func TestSentinelErrors_Distinct(t *testing.T) {
	rejections := []error{ErrInvalidOrigin, ErrIllegalDestination, ErrCastlingRejected, ErrInvalidPromotion, ErrSelfCheck}
	for i, a := range rejections {
		for j, b := range rejections {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrCastlingRejected,
				PlyNum:   12,
				MoveText: "e1g1",
				Detail:   "f1 attacked",
			},
			contains: []string{"ply 12", "e1g1", "castling not allowed", "f1 attacked"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrIllegalDestination,
			},
			contains: []string{"illegal destination"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrInvalidOrigin,
		MoveText: "e3e4",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrInvalidOrigin) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidOrigin)
	}

	if !errors.Is(moveErr, ErrInvalidOrigin) {
		t.Error("errors.Is(moveErr, ErrInvalidOrigin) = false, want true")
	}
	if errors.Is(moveErr, ErrIllegalDestination) {
		t.Error("errors.Is(moveErr, ErrIllegalDestination) = true, want false")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrSelfCheck,
		PlyNum:   24,
		MoveText: "e1e2",
	}

	wrapped := fmt.Errorf("playing game: %w", moveErr)

	var extractedErr *MoveError
	if !As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "e1e2" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e1e2")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		Input:    "e9e4",
		Column:   2,
		Expected: "rank 1-8",
		Got:      "'9'",
	}

	msg := err.Error()

	for _, want := range []string{"e9e4", "column 2", "expected rank 1-8", "parse failure"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:   ErrParseFailure,
		Input: "zz",
	}

	if !Is(parseErr, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestParseError_Empty verifies the fallback message
func TestParseError_Empty(t *testing.T) {
	if got := (&ParseError{}).Error(); got != "parse error" {
		t.Errorf("ParseError{}.Error() = %q, want %q", got, "parse error")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalDestination, "move %d of %s", 15, "list")

	if !errors.Is(wrapped, ErrIllegalDestination) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
