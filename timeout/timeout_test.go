package timeout_test

import (
	"testing"
	"time"

	"github.com/raire-audit/raire-core/timeout"
)

func TestHandle_NeverTimesOutByDefault(t *testing.T) {
	h := timeout.New()
	for i := 0; i < 10_000; i++ {
		if h.Check() {
			t.Fatalf("disabled Handle reported a timeout at call %d", i)
		}
	}
}

func TestHandle_WorkQuota(t *testing.T) {
	h := timeout.New().WithWorkQuota(5)
	for i := 0; i < 4; i++ {
		if h.Check() {
			t.Fatalf("timed out early at call %d", i)
		}
	}
	if !h.Check() {
		t.Fatalf("expected timeout at the quota boundary")
	}
}

func TestHandle_Deadline(t *testing.T) {
	h := timeout.NewWithDeadline(time.Now().Add(-time.Second)) // already expired
	var fired bool
	for i := 0; i < timeoutCheckWindow; i++ {
		if h.Check() {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatalf("expected the expired deadline to fire within one clock-check window")
	}
}

const timeoutCheckWindow = 100
