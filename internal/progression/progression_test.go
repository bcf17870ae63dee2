package progression

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRequiredXP(t *testing.T) {
	cases := []struct {
		level int
		curve float64
		want  int64
	}{
		{1, 1.5, 100},
		{2, 1.5, 282},
		{3, 1.5, 519},
		{4, 1.5, 800},
		{1, 2.0, 100},
		{5, 2.0, 2500},
		{0, 1.5, 100},
	}
	for _, c := range cases {
		if got := RequiredXP(c.level, c.curve); got != c.want {
			t.Errorf("RequiredXP(%d, %v) = %d, want %d", c.level, c.curve, got, c.want)
		}
	}
}

func TestAddXP_SingleLevelUpCarriesRemainder(t *testing.T) {
	level, xp, leveled := AddXP(1, 80, 50, 1.5)
	if level != 2 || xp != 30 || !leveled {
		t.Fatalf("got level=%d xp=%d leveled=%v, want 2/30/true", level, xp, leveled)
	}
}

func TestAddXP_MultipleLevelsInOneGrant(t *testing.T) {
	// 100 + 282 = 382 to reach level 3.
	level, xp, leveled := AddXP(1, 0, 400, 1.5)
	if level != 3 || xp != 18 || !leveled {
		t.Fatalf("got level=%d xp=%d leveled=%v, want 3/18/true", level, xp, leveled)
	}
}

func TestAddXP_NoLevelUp(t *testing.T) {
	level, xp, leveled := AddXP(2, 50, 10, 1.5)
	if level != 2 || xp != 60 || leveled {
		t.Fatalf("got level=%d xp=%d leveled=%v, want 2/60/false", level, xp, leveled)
	}
}

func TestAddXP_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 50).Draw(t, "level")
		curve := float64(rapid.IntRange(10, 30).Draw(t, "curve10")) / 10
		xp := rapid.Int64Range(0, RequiredXP(level, curve)-1).Draw(t, "xp")
		gained := rapid.Int64Range(0, 1_000_000).Draw(t, "gained")

		newLevel, newXP, leveled := AddXP(level, xp, gained, curve)

		if newLevel < level {
			t.Fatalf("level regressed: %d -> %d", level, newLevel)
		}
		if newXP < 0 || newXP >= RequiredXP(newLevel, curve) {
			t.Fatalf("xp %d outside [0, %d) at level %d", newXP, RequiredXP(newLevel, curve), newLevel)
		}
		if leveled != (newLevel > level) {
			t.Fatalf("leveledUp=%v but level went %d -> %d", leveled, level, newLevel)
		}
	})
}
