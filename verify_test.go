package mockforge

import (
	"errors"
	"strings"
	"testing"

	"github.com/mockforge-project/mockforge/match"
)

func TestTimes(t *testing.T) {
	tt := []struct {
		name  string
		times Times
		count int
		want  bool
	}{
		{name: "Exactly Met", times: Exactly(2), count: 2, want: true},
		{name: "Exactly Under", times: Exactly(2), count: 1, want: false},
		{name: "Exactly Over", times: Exactly(2), count: 3, want: false},
		{name: "Once Met", times: Once(), count: 1, want: true},
		{name: "Once Zero", times: Once(), count: 0, want: false},
		{name: "Never Met", times: Never(), count: 0, want: true},
		{name: "Never Violated", times: Never(), count: 1, want: false},
		{name: "AtLeast Met", times: AtLeast(2), count: 5, want: true},
		{name: "AtLeast Boundary", times: AtLeast(2), count: 2, want: true},
		{name: "AtLeast Under", times: AtLeast(2), count: 1, want: false},
		{name: "AtMost Met", times: AtMost(2), count: 2, want: true},
		{name: "AtMost Over", times: AtMost(2), count: 3, want: false},
		{name: "Between Inside", times: Between(1, 3), count: 2, want: true},
		{name: "Between Low Boundary", times: Between(1, 3), count: 1, want: true},
		{name: "Between High Boundary", times: Between(1, 3), count: 3, want: true},
		{name: "Between Outside", times: Between(1, 3), count: 4, want: false},
		{name: "Zero Value Acts As Never", times: Times{}, count: 0, want: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.times.Satisfied(tc.count); got != tc.want {
				t.Errorf("expected Satisfied(%d) = %v, got %v", tc.count, tc.want, got)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	t.Run("Never Passes With Zero Calls", func(t *testing.T) {
		m, _ := New(Config{})
		if err := m.Verify("Store.Get", Never()); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
	})

	t.Run("Never Fails After One Call", func(t *testing.T) {
		m, _ := New(Config{})
		m.Dispatch("Store.Get", "k")

		err := m.Verify("Store.Get", Never())
		if !errors.Is(err, ErrVerification) {
			t.Fatalf("expected ErrVerification, got %v", err)
		}
		if !strings.Contains(err.Error(), "expected exactly 0 call(s), got 1") {
			t.Errorf("expected counts in the message, got %q", err.Error())
		}
	})

	t.Run("Exactly Counts Matching Arguments", func(t *testing.T) {
		m, _ := New(Config{})
		m.Dispatch("Calc.Add", 1, 1)
		m.Dispatch("Calc.Add", 1, 1)
		m.Dispatch("Calc.Add", 2, 2)

		if err := m.Verify("Calc.Add", Exactly(2), 1, 1); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
		if err := m.Verify("Calc.Add", Exactly(3), 1, 1); !errors.Is(err, ErrVerification) {
			t.Errorf("expected ErrVerification, got %v", err)
		}
	})

	t.Run("No Arguments Counts Every Invocation", func(t *testing.T) {
		m, _ := New(Config{})
		m.Dispatch("Calc.Add", 1, 1)
		m.Dispatch("Calc.Add", 2, 2)

		if err := m.Verify("Calc.Add", Exactly(2)); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
	})

	t.Run("Matchers In Verification", func(t *testing.T) {
		m, _ := New(Config{})
		m.Dispatch("Users.Find", "user-1")
		m.Dispatch("Users.Find", "admin-1")

		if err := m.Verify("Users.Find", Once(), match.Pattern(`^user-`)); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
		if err := m.Verify("Users.Find", Exactly(2), match.NotNil()); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
	})

	t.Run("Strict Miss Is Verifiable", func(t *testing.T) {
		m, _ := New(Config{Mode: Strict})
		m.Dispatch("Ghost.Call")

		if err := m.Verify("Ghost.Call", Once()); err != nil {
			t.Errorf("expected the failed dispatch to count, got %v", err)
		}
	})

	t.Run("Configured Error Is Verifiable", func(t *testing.T) {
		m, _ := New(Config{})
		m.Setup("Store.Get", "ghost").ReturnError(errors.New("boom"))
		m.Dispatch("Store.Get", "ghost")

		if err := m.Verify("Store.Get", Once(), "ghost"); err != nil {
			t.Errorf("expected the failing call to count, got %v", err)
		}
	})

	t.Run("Message Names Declared Signature", func(t *testing.T) {
		m, _ := New(Config{})
		m.Declare("Calc.Add", Member{Signature: "Add(a, b int) int", Params: 2})

		err := m.Verify("Calc.Add", Once())
		if err == nil || !strings.Contains(err.Error(), "Add(a, b int) int") {
			t.Errorf("expected signature in the message, got %v", err)
		}
	})
}

func TestVerifyAccessors(t *testing.T) {
	m, _ := New(Config{})
	m.SetupAllProperties()

	m.Dispatch(Getter("Name"))
	m.Dispatch(Setter("Name"), "alice")
	m.Dispatch(Setter("Name"), "bob")

	t.Run("Get And Set Verify Independently", func(t *testing.T) {
		if err := m.VerifyGet("Name", Once()); err != nil {
			t.Errorf("expected one read, got %v", err)
		}
		if err := m.VerifySet("Name", Once(), "alice"); err != nil {
			t.Errorf("expected one matching write, got %v", err)
		}
		if err := m.VerifySet("Name", Exactly(2), match.Any()); err != nil {
			t.Errorf("expected two writes, got %v", err)
		}
	})

	t.Run("Reads Do Not Count As Writes", func(t *testing.T) {
		if err := m.VerifySet("Other", Never(), match.Any()); err != nil {
			t.Errorf("expected pass, got %v", err)
		}
	})
}

func TestCallCount(t *testing.T) {
	m, _ := New(Config{})
	m.Dispatch("A.Op")
	m.Dispatch("A.Op")
	m.Dispatch("B.Op")

	if got := m.CallCount("A.Op"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := m.CallCount("C.Op"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
