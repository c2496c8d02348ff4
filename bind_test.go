package tempo

import (
	"math"
	"testing"
	"time"
)

func TestBindFloatReachesTarget(t *testing.T) {
	m, clock, _ := newTestManager()
	alpha := 1.0
	m.Add(Tween{Duration: time.Second, OnUpdate: BindFloat(&alpha, 0)})

	clock.at(0)
	m.Step()
	clock.at(500)
	m.Step()
	if math.Abs(alpha-0.5) > 1e-9 {
		t.Errorf("alpha = %v at halfway, want 0.5", alpha)
	}

	clock.at(1000)
	m.Step()
	if alpha != 0 {
		t.Errorf("alpha = %v after end, want 0", alpha)
	}
}

func TestBindCapturesStartOnFirstUpdate(t *testing.T) {
	x := 10.0
	update := BindFloat(&x, 20)

	// The field moves before the tween becomes active.
	x = 0
	update(0.5)
	if x != 10 {
		t.Errorf("x = %v, want 10 (interpolated from value at first update)", x)
	}
}

func TestBindVec(t *testing.T) {
	x, y := 10.0, 20.0
	update := BindVec(&x, &y, 100, 200)

	update(0)
	update(1)
	if x != 100 || y != 200 {
		t.Errorf("(x, y) = (%v, %v), want (100, 200)", x, y)
	}
}

func TestBindRGBA(t *testing.T) {
	r, g, b, a := 1.0, 0.0, 0.0, 1.0
	update := BindRGBA(&r, &g, &b, &a, [4]float64{0, 1, 0.5, 0.5})

	update(0)
	update(0.5)
	want := [4]float64{0.5, 0.5, 0.25, 0.75}
	got := [4]float64{r, g, b, a}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBindOvershoot(t *testing.T) {
	x := 0.0
	update := BindFloat(&x, 10)
	update(0)
	update(1.1)
	if math.Abs(x-11) > 1e-9 {
		t.Errorf("x = %v, want 11 for progress 1.1", x)
	}
}

func TestChain(t *testing.T) {
	x, y := 0.0, 0.0
	var seen float64
	update := Chain(BindFloat(&x, 2), nil, BindFloat(&y, 4), func(p float64) { seen = p })

	update(0.5)
	if x != 1 || y != 2 || seen != 0.5 {
		t.Errorf("x=%v y=%v seen=%v, want 1 2 0.5", x, y, seen)
	}
}

func TestBindUpdateZeroAlloc(t *testing.T) {
	x, y := 0.0, 0.0
	update := BindVec(&x, &y, 100, 100)
	update(0.01)

	result := testing.AllocsPerRun(100, func() {
		update(0.5)
	})
	if result > 0 {
		t.Errorf("binding update allocated %f times per run, want 0", result)
	}
}
