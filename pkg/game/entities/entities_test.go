package entities

import "testing"

var allKinds = []Kind{KindPlayer, KindMob, KindNPC, KindItem, KindChest, KindDecoration}

func TestKindString_CoversEveryKind(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range allKinds {
		name := k.String()
		if name == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share the name %q", prev, k, name)
		}
		seen[name] = k
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestSymbol_CoversEveryKind(t *testing.T) {
	seen := make(map[rune]Kind)
	for _, k := range allKinds {
		sym := Symbol(k)
		if sym == '?' {
			t.Errorf("Symbol(%v) fell through to '?'", k)
		}
		if prev, dup := seen[sym]; dup {
			t.Errorf("kinds %v and %v share the symbol %q", prev, k, sym)
		}
		seen[sym] = k
	}
}

func TestMapIndex(t *testing.T) {
	e := &Entity{Col: 3, Row: 2}
	if got := e.MapIndex(10); got != 23 {
		t.Errorf("MapIndex(10) = %d, want 23", got)
	}
}

func TestDrawable(t *testing.T) {
	e := &Entity{SpriteID: -1}
	if e.Drawable() {
		t.Error("negative sprite id reported drawable")
	}
	e.SpriteID = 0
	if !e.Drawable() {
		t.Error("sprite id 0 reported not drawable")
	}
}
