package registry

import (
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// stubOpponent is a minimal Opponent for registry tests.
type stubOpponent struct {
	id   string
	name string
}

func (s *stubOpponent) ID() string                        { return s.id }
func (s *stubOpponent) Name() string                      { return s.name }
func (s *stubOpponent) Reset(Options)                     {}
func (s *stubOpponent) SelectShot() (battle.Coord, error) { return battle.C(0, 0), nil }
func (s *stubOpponent) Observe(battle.ShotResult)         {}
func (s *stubOpponent) ObserveIncoming(battle.ShotResult) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Opponent {
		return &stubOpponent{id: "stub", name: "Stub"}
	})

	if !Exists("stub") {
		t.Error("Exists(stub) = false after Register")
	}

	opp, err := Create("stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if opp.ID() != "stub" {
		t.Errorf("created opponent ID = %q, expected stub", opp.ID())
	}

	// Create returns a fresh instance each time.
	other, err := Create("stub")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if opp == other {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-opponent"); err == nil {
		t.Error("Create of unregistered ID did not fail")
	}
	if Exists("no-such-opponent") {
		t.Error("Exists(no-such-opponent) = true")
	}
}

func TestListSorted(t *testing.T) {
	Register("bbb", func() Opponent { return &stubOpponent{id: "bbb", name: "B"} })
	Register("aaa", func() Opponent { return &stubOpponent{id: "aaa", name: "A"} })

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List returned %d entries, expected at least 2", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	named := map[string]string{}
	for _, info := range infos {
		named[info.ID] = info.Name
	}
	if named["aaa"] != "A" || named["bbb"] != "B" {
		t.Errorf("List lost display names: %v", named)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Opponent { return &stubOpponent{id: "dup", name: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup", func() Opponent { return &stubOpponent{id: "dup", name: "Dup"} })
}
