package domain

import "testing"

func requirePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	fn()
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	r := Success(42)
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("IsSuccess() = %v, IsFailure() = %v, want true/false", r.IsSuccess(), r.IsFailure())
	}
	if got := r.Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()

	r := Failure[int](TodoNotFound)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("IsSuccess() = %v, IsFailure() = %v, want false/true", r.IsSuccess(), r.IsFailure())
	}
	if !r.Error().Equal(TodoNotFound) {
		t.Errorf("Error() = %v, want %v", r.Error(), TodoNotFound)
	}
}

func TestResult_Empty(t *testing.T) {
	t.Parallel()

	if !SuccessEmpty().IsSuccess() {
		t.Error("SuccessEmpty().IsSuccess() = false")
	}
	if !FailureEmpty(TodoNotFound).IsFailure() {
		t.Error("FailureEmpty().IsFailure() = false")
	}
}

func TestResult_ContractViolationsPanic(t *testing.T) {
	t.Parallel()

	t.Run("value of failure", func(t *testing.T) {
		t.Parallel()
		requirePanic(t, func() { _ = Failure[string](TodoNotFound).Value() })
	})

	t.Run("error of success", func(t *testing.T) {
		t.Parallel()
		requirePanic(t, func() { _ = Success("x").Error() })
	})

	t.Run("failure with None", func(t *testing.T) {
		t.Parallel()
		requirePanic(t, func() { _ = Failure[string](None) })
	})
}
