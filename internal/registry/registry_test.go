package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickrun/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) OnMoveTo(float64)                     {}
func (s *stubGame) OnHoldLeft(bool)                      {}
func (s *stubGame) OnHoldRight(bool)                     {}
func (s *stubGame) OnJumpOrRelease()                     {}
func (s *stubGame) OnPauseToggle()                       {}
func (s *stubGame) OnRestart()                           {}
func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return strings.ToUpper(s.id) }
func (s *stubGame) ScoreKey() string                     { return s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	last := list[len(list)-1]
	if last.ID != "zz-stub" || last.Title != "ZZ-STUB" {
		t.Errorf("last entry = %+v", last)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}

type tieredStub struct{ stubGame }

func (s *tieredStub) Tiers() []string             { return []string{"calm", "wild"} }
func (s *tieredStub) ScoreKeyFor(t string) string { return s.id + ":" + t }

func TestScoreModesExpandTiers(t *testing.T) {
	Register("zy-tiered", func() Game { return &tieredStub{stubGame{id: "zy-tiered"}} })

	info := List()
	var found bool
	for _, g := range info {
		if g.ID == "zy-tiered" {
			found = true
			if len(g.Tiers) != 2 {
				t.Errorf("tiers = %v", g.Tiers)
			}
		}
	}
	if !found {
		t.Fatal("tiered game not listed")
	}

	keys := make(map[string]string)
	for _, m := range ScoreModes() {
		keys[m.Key] = m.Label
	}
	if keys["zy-tiered:calm"] != "ZY-TIERED (calm)" || keys["zy-tiered:wild"] == "" {
		t.Errorf("tier modes missing: %v", keys)
	}
	if _, ok := keys["zy-tiered"]; ok {
		t.Error("tiered game should not get an untiered mode")
	}
}
