package std

import (
	"errors"
	"math"
	"testing"

	"github.com/ardnew/lithium/lang"
)

func TestInstall(t *testing.T) {
	t.Parallel()

	c := lang.New(nil)

	if err := Install(c); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	for _, name := range []string{MathName, ChronoName} {
		if _, ok := c.GetModule(name); !ok {
			t.Errorf("GetModule(%s) not linked", name)
		}
	}

	if err := Install(c); !errors.Is(err, lang.ErrNameConflict) {
		t.Errorf("Install() twice error = %v, want ErrNameConflict", err)
	}
}

func TestInstallIsolated(t *testing.T) {
	t.Parallel()

	a, b := lang.New(nil), lang.New(nil)

	for _, c := range []*lang.Context{a, b} {
		if err := Install(c); err != nil {
			t.Fatalf("Install() error = %v", err)
		}
	}

	ma, _ := a.GetModule(MathName)
	mb, _ := b.GetModule(MathName)

	if ma == mb {
		t.Fatal("Install() linked the same Math module into both contexts")
	}

	tau := func(_ any, v *lang.Value, mode lang.Mode) bool {
		*v = lang.FromFloating(2 * math.Pi)

		return mode == lang.ModeGet
	}

	if err := ma.AddAccessor("Tau", tau); err != nil {
		t.Fatalf("AddAccessor() error = %v", err)
	}

	if err := a.ExecuteContext(t.Context(), `int turn from Math Tau`); err != nil {
		t.Errorf("Execute() with Tau error = %v", err)
	}

	err := b.ExecuteContext(t.Context(), `int turn from Math Tau`)
	if !errors.Is(err, lang.ErrNameNotFound) {
		t.Errorf("Execute() in other context error = %v, want ErrNameNotFound", err)
	}

	if _, ok := Math().GetAccessor("Tau"); ok {
		t.Error("Math() returned a module with the Tau accessor")
	}
}

func TestMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want float32
	}{
		{"Pi", math.Pi},
		{"E", math.E},
	}

	for _, tt := range tests {
		got := Math().GetProperty(tt.name)
		if !got.Equal(lang.FromFloating(tt.want)) {
			t.Errorf("Math.%s = %v, want %v", tt.name, got, tt.want)
		}

		err := Math().SetProperty(tt.name, lang.FromFloating(3))
		if !errors.Is(err, lang.ErrPropertyRejected) {
			t.Errorf("set Math.%s error = %v, want ErrPropertyRejected", tt.name, err)
		}
	}
}

func TestChrono(t *testing.T) {
	saved := clock
	t.Cleanup(func() { clock = saved })

	now := int64(1_700_000_000_000)
	clock = func() int64 { return now }

	c := lang.New(nil)
	if err := Install(c); err != nil {
		t.Fatal(err)
	}

	err := c.ExecuteContext(t.Context(), `int start from Chrono get Ticks`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	now += 250

	err = c.ExecuteContext(t.Context(), `int elapsed from Chrono Ticks - local start`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := c.GetVariable("elapsed"); !got.Equal(lang.FromInteger(250)) {
		t.Errorf("elapsed = %v, want 250", got)
	}

	err = c.ExecuteContext(t.Context(), `to Chrono Ticks 0`)
	if !errors.Is(err, lang.ErrPropertyRejected) {
		t.Errorf("to Chrono Ticks error = %v, want ErrPropertyRejected", err)
	}
}

func TestScript(t *testing.T) {
	t.Parallel()

	c := lang.New(nil)
	if err := Install(c); err != nil {
		t.Fatal(err)
	}

	err := c.ExecuteContext(t.Context(),
		`int r 2 int area 0 set local area (from Math Pi * local r * local r)`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := lang.FromFloating(float32(math.Pi) * 2 * 2)
	if got := c.GetVariable("area"); !got.Equal(want) {
		t.Errorf("area = %v, want %v", got, want)
	}
}
