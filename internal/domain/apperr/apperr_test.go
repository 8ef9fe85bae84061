package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Kind
		wantOK bool
	}{
		{"not found", NotFound("missing"), KindNotFound, true},
		{"bad request", BadRequestf("bad %d", 1), KindBadRequest, true},
		{"conflict", Conflict("again"), KindConflict, true},
		{"wrapped", fmt.Errorf("ctx: %w", NotFoundf("loan %d", 7)), KindNotFound, true},
		{"plain", errors.New("boom"), 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KindOf(tt.err)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("KindOf = (%v,%v), want (%v,%v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", BadRequest("nope"))
	if !Is(err, KindBadRequest) {
		t.Fatalf("expected bad request kind")
	}
	if Is(err, KindNotFound) {
		t.Fatalf("did not expect not found kind")
	}
}

func TestMessageIsVerbatim(t *testing.T) {
	e := BadRequestf("Payment amount (%s) exceeds current balance (%s)", "$2,000.00", "$1,000.00")
	if e.Error() != "Payment amount ($2,000.00) exceeds current balance ($1,000.00)" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	if KindConflict.String() != "conflict" || Kind(99).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
}
