package core

import (
	"math/rand"
	"reflect"
	"testing"
)

type recordingControls struct {
	calls []string
	x     float64
	left  bool
	right bool
}

func (r *recordingControls) OnMoveTo(x float64) {
	r.x = x
	r.calls = append(r.calls, "move")
}
func (r *recordingControls) OnHoldLeft(held bool)  { r.left = held }
func (r *recordingControls) OnHoldRight(held bool) { r.right = held }
func (r *recordingControls) OnJumpOrRelease()      { r.calls = append(r.calls, "jump") }
func (r *recordingControls) OnPauseToggle()        { r.calls = append(r.calls, "pause") }
func (r *recordingControls) OnRestart()            { r.calls = append(r.calls, "restart") }
func (r *recordingControls) OnContinue()           { r.calls = append(r.calls, "continue") }

func TestDispatch(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionLeft)
	in.Set(ActionRestart)
	in.Set(ActionJump)
	in.Set(ActionConfirm)
	in.Set(ActionPause)
	in.SetPointer(123)

	rc := &recordingControls{}
	Dispatch(rc, in)

	want := []string{"move", "jump", "continue", "pause", "restart"}
	if !reflect.DeepEqual(rc.calls, want) {
		t.Errorf("calls = %v, expected %v", rc.calls, want)
	}
	if rc.x != 123 || !rc.left || rc.right {
		t.Errorf("unexpected hold/pointer state: %+v", rc)
	}

	in.Clear()
	Dispatch(rc, in)
	if rc.left {
		t.Error("cleared frame should release the held key")
	}
	if in.HasPointer {
		t.Error("Clear should drop the pointer")
	}
}

func TestRandHelpersStayInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		if f := RandRange(r, -2, 3); f < -2 || f >= 3 {
			t.Fatalf("RandRange(-2, 3) = %v", f)
		}
		if n := RandInt(r, 2, 8); n < 2 || n > 8 {
			t.Fatalf("RandInt(2, 8) = %d", n)
		}
	}

	if n := RandInt(r, 5, 4); n != 5 {
		t.Errorf("RandInt(5, 4) = %d, expected lo for an empty range", n)
	}
	if n := RandInt(r, 3, 3); n != 3 {
		t.Errorf("RandInt(3, 3) = %d", n)
	}
}

func TestSeededRandReproduces(t *testing.T) {
	a, b := rand.New(rand.NewSource(42)), rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if RandRange(a, 0, 10) != RandRange(b, 0, 10) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Invariant(false) should panic")
		}
	}()
	Invariant(true, "never")
	Invariant(false, "hits=%d", -1)
}
