package game

import (
	"testing"
)

func order4() []PlayerID { return []PlayerID{"p1", "p2", "p3", "p4"} }
func order5() []PlayerID { return []PlayerID{"p1", "p2", "p3", "p4", "p5"} }
func order6() []PlayerID { return []PlayerID{"p1", "p2", "p3", "p4", "p5", "p6"} }

func TestFormationPartners(t *testing.T) {
	t.Parallel()

	f := newTeamFormation(order4())
	if f.Kind != FormationPending {
		t.Fatalf("new formation kind = %s, want pending", f.Kind)
	}
	if f.Captain != "p1" {
		t.Fatalf("captain = %s, want p1", f.Captain)
	}

	f.resolvePartners("p3", order4())
	if f.Kind != FormationPartners {
		t.Errorf("kind = %s, want partners", f.Kind)
	}
	if !f.Resolved() {
		t.Error("partners formation should be resolved")
	}
	if got := f.Sides[0]; len(got) != 2 || got[0] != "p1" || got[1] != "p3" {
		t.Errorf("side 0 = %v, want [p1 p3]", got)
	}
	if got := f.Sides[1]; len(got) != 2 || got[0] != "p2" || got[1] != "p4" {
		t.Errorf("side 1 = %v, want [p2 p4]", got)
	}
	if f.SideOf("p3") != 0 || f.SideOf("p4") != 1 {
		t.Error("SideOf misplaced a player")
	}
}

func TestFormationSolo(t *testing.T) {
	t.Parallel()

	f := newTeamFormation(order4())
	f.resolveSolo(SoloDuncan, order4())
	if f.Kind != FormationSolo {
		t.Fatalf("kind = %s, want solo", f.Kind)
	}
	if f.Variant != SoloDuncan {
		t.Errorf("variant = %s, want duncan", f.Variant)
	}
	if len(f.Sides[0]) != 1 || len(f.Sides[1]) != 3 {
		t.Errorf("sides = %v, want 1 vs 3", f.Sides)
	}
}

func TestFormationAardvarkPending(t *testing.T) {
	t.Parallel()

	f := newTeamFormation(order5())
	if len(f.Unassigned) != 1 || f.Unassigned[0] != "p5" {
		t.Fatalf("unassigned = %v, want [p5]", f.Unassigned)
	}
	if !f.isAardvark("p5", order5()) {
		t.Error("p5 should negotiate as an aardvark")
	}
	if f.isAardvark("p2", order5()) {
		t.Error("p2 should not be an aardvark")
	}

	// The core split resolves but the formation stays open until the
	// aardvark lands on a side.
	f.resolvePartners("p2", order5())
	if f.Kind != FormationAardvarkPending {
		t.Fatalf("kind = %s, want aardvark_pending", f.Kind)
	}
	if f.Resolved() {
		t.Error("formation resolved with an unassigned aardvark")
	}

	f.placeAardvark("p5", 1)
	if f.Kind != FormationPartners {
		t.Errorf("kind = %s, want partners after placement", f.Kind)
	}
	if f.SideOf("p5") != 1 {
		t.Errorf("p5 on side %d, want 1", f.SideOf("p5"))
	}
	if len(f.Unassigned) != 0 {
		t.Errorf("unassigned = %v, want empty", f.Unassigned)
	}
}

func TestFormationTwoAardvarks(t *testing.T) {
	t.Parallel()

	f := newTeamFormation(order6())
	if len(f.Unassigned) != 2 {
		t.Fatalf("unassigned = %v, want two aardvarks", f.Unassigned)
	}
	f.resolveSolo(SoloLoneWolf, order6())
	if f.Kind != FormationAardvarkPending {
		t.Fatalf("kind = %s, want aardvark_pending", f.Kind)
	}
	f.placeAardvark("p5", 0)
	if f.Kind != FormationAardvarkPending {
		t.Errorf("kind = %s, still one aardvark out", f.Kind)
	}
	f.placeAardvark("p6", 1)
	if f.Kind != FormationSolo {
		t.Errorf("kind = %s, want solo after both placed", f.Kind)
	}
	if len(f.Sides[0]) != 2 || len(f.Sides[1]) != 4 {
		t.Errorf("sides = %v, want 2 vs 4", f.Sides)
	}
}

func TestAardvarkCount(t *testing.T) {
	t.Parallel()

	for players, want := range map[int]int{4: 0, 5: 1, 6: 2} {
		if got := aardvarkCount(players); got != want {
			t.Errorf("aardvarkCount(%d) = %d, want %d", players, got, want)
		}
	}
}
