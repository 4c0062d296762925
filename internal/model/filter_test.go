package model

import "testing"

var filterFixture = []Key{
	{Modifiers: ModMod4, Name: "h", Action: LayoutCmd("left"), Desc: "Move focus to left"},
	{Modifiers: Mods(ModMod4, ModShift), Name: "h", Action: LayoutCmd("shuffle_left"), Desc: "Move window to the left"},
	{Modifiers: ModMod4, Name: "Return", Action: Spawn("kitty"), Desc: "Launch terminal"},
	{Modifiers: ModMod4, Name: "3", Action: GroupToScreen("3"), Desc: "Switch to group 3"},
	{Modifiers: Mods(ModMod4, ModShift), Name: "3", Action: WindowToGroup("3", true), Desc: "Switch to & move focused window to group 3"},
	{Name: "XF86AudioMute", Action: Spawn("pamixer", "-t")},
}

func TestFilterKeys_NoFilter(t *testing.T) {
	got := FilterKeys(filterFixture, "", ModNone)
	if len(got) != len(filterFixture) {
		t.Errorf("expected %d keys, got %d", len(filterFixture), len(got))
	}
}

func TestFilterKeys_Text(t *testing.T) {
	got := FilterKeys(filterFixture, "LEFT", ModNone)
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
}

func TestFilterKeys_MatchesAction(t *testing.T) {
	got := FilterKeys(filterFixture, "pamixer", ModNone)
	if len(got) != 1 || got[0].Name != "XF86AudioMute" {
		t.Errorf("expected XF86AudioMute, got %+v", got)
	}
}

func TestFilterKeys_Modifiers(t *testing.T) {
	got := FilterKeys(filterFixture, "", ModShift)
	if len(got) != 2 {
		t.Fatalf("expected 2 shifted keys, got %d", len(got))
	}
	for _, k := range got {
		if !k.Modifiers.Has(ModShift) {
			t.Errorf("key %s lacks shift", k.Chord())
		}
	}
}

func TestFilterKeys_NoMatchReturnsEmpty(t *testing.T) {
	got := FilterKeys(filterFixture, "nonexistent", ModNone)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestKeysForGroup(t *testing.T) {
	got := KeysForGroup(filterFixture, "3")
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
	if got[0].Action.Kind != ActionGroup || got[1].Action.Kind != ActionToGroup {
		t.Errorf("unexpected action kinds: %s, %s", got[0].Action.Kind, got[1].Action.Kind)
	}
}
