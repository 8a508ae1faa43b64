package validation

import (
	"errors"
	"testing"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

func TestNotEmpty(t *testing.T) {
	if err := NotEmpty("manager", "id", "JSON_01"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := NotEmpty("manager", "id", "")
	if err == nil {
		t.Fatal("expected error for empty string")
	}
	if !errors.Is(err, nferrors.ErrInvalidInput) {
		t.Error("error should wrap ErrInvalidInput")
	}
}

func TestNotNil(t *testing.T) {
	if err := NotNil("pipeline", "stage", struct{}{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := NotNil("pipeline", "stage", nil); err == nil {
		t.Fatal("expected error for nil value")
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("stream", "batch size", 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, v := range []int{0, -1} {
		if err := Positive("stream", "batch size", v); err == nil {
			t.Errorf("expected error for %d", v)
		}
	}
}
