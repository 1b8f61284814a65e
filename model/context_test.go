package model

import "testing"

func TestContext_ZeroValueIsEmpty(t *testing.T) {
	var c Context
	if !c.IsEmpty() {
		t.Fatalf("zero Context should be empty")
	}
	if _, ok := c.Registration(); ok {
		t.Fatalf("registration should be absent")
	}
	if _, ok := c.Instructor(); ok {
		t.Fatalf("instructor should be absent")
	}
}

func TestContext_WithReturnsCopy(t *testing.T) {
	base := Context{}.WithPlatform("Example LMS")
	next := base.WithRevision("r2").WithLanguage("en-US")

	if _, ok := base.Revision(); ok {
		t.Fatalf("base must not observe revision set on a copy")
	}
	if v, _ := next.Platform(); v != "Example LMS" {
		t.Fatalf("platform not carried over: %q", v)
	}
	if v, _ := next.Language(); v != "en-US" {
		t.Fatalf("language: got %q", v)
	}

	cleared := next.WithoutPlatform()
	if _, ok := cleared.Platform(); ok {
		t.Fatalf("platform should be cleared")
	}
	if _, ok := next.Platform(); !ok {
		t.Fatalf("clearing a copy must not touch the original")
	}
}

func TestContext_TeamIsNotAliased(t *testing.T) {
	team := Group{Name: "Team A"}
	c := Context{}.WithTeam(team)
	team.Name = "changed"

	got, ok := c.Team()
	if !ok || got.Name != "Team A" {
		t.Fatalf("team should be stored by value, got %+v", got)
	}
}

func TestContext_NestedSlicesAreNotShared(t *testing.T) {
	members := []Agent{{Name: "Bob", Identifier: Identifier{Account: &Account{HomePage: "http://example.com", Name: "bob"}}}}
	c := Context{}.WithTeam(Group{Name: "Team A", Members: members})
	members[0].Name = "Mallory"
	members[0].Account.Name = "mallory"

	g, _ := c.Team()
	if g.Members[0].Name != "Bob" || g.Members[0].Account.Name != "bob" {
		t.Fatalf("caller mutation leaked into team: %+v", g.Members[0])
	}
	g.Members[0].Name = "Eve"
	g.Members[0].Account.Name = "eve"
	if again, _ := c.Team(); again.Members[0].Name != "Bob" || again.Members[0].Account.Name != "bob" {
		t.Fatalf("getter result aliases the context: %+v", again.Members[0])
	}

	parents := []Activity{{ID: "a"}}
	c = c.WithContextActivities(ContextActivities{Parent: parents})
	parents[0].ID = "z"
	ca, _ := c.ContextActivities()
	if ca.Parent[0].ID != "a" {
		t.Fatalf("caller mutation leaked into context activities: %q", ca.Parent[0].ID)
	}
	ca.Parent[0].ID = "y"
	if again, _ := c.ContextActivities(); again.Parent[0].ID != "a" {
		t.Fatalf("getter result aliases the context: %q", again.Parent[0].ID)
	}

	staff := []Agent{{Name: "Ann"}}
	c = c.WithInstructor(Group{Name: "Staff", Members: staff})
	staff[0].Name = "changed"
	inst, _ := c.Instructor()
	if inst.(Group).Members[0].Name != "Ann" {
		t.Fatalf("caller mutation leaked into instructor")
	}
}

func TestContext_InstructorAcceptsAgentAndGroup(t *testing.T) {
	agent := Agent{Name: "Ann", Identifier: Identifier{Mbox: "mailto:ann@example.com"}}
	c := Context{}.WithInstructor(agent)
	got, _ := c.Instructor()
	if got.ObjectType() != "Agent" || got.EntityKind() != KindActor {
		t.Fatalf("unexpected instructor %#v", got)
	}

	c = c.WithInstructor(Group{Name: "Staff"})
	got, _ = c.Instructor()
	if got.ObjectType() != "Group" || got.EntityKind() != KindGroup {
		t.Fatalf("unexpected instructor %#v", got)
	}
}

func TestExtensions_CopyInCopyOut(t *testing.T) {
	src := map[string]any{"http://example.com/ext/b": 2, "http://example.com/ext/a": "x"}
	ext := NewExtensions(src)
	src["http://example.com/ext/c"] = true

	if ext.Len() != 2 {
		t.Fatalf("source mutation leaked into Extensions: len=%d", ext.Len())
	}
	keys := ext.Keys()
	if len(keys) != 2 || keys[0] != "http://example.com/ext/a" {
		t.Fatalf("keys not sorted: %v", keys)
	}
	out := ext.Map()
	out["http://example.com/ext/a"] = "mutated"
	if v, _ := ext.Get("http://example.com/ext/a"); v != "x" {
		t.Fatalf("Map copy mutation leaked: %v", v)
	}
	if !ext.Equal(NewExtensions(map[string]any{"http://example.com/ext/a": "x", "http://example.com/ext/b": 2})) {
		t.Fatalf("expected equal extensions")
	}
}

func TestKind_String(t *testing.T) {
	if KindStatementReference.String() != "StatementReference" {
		t.Fatalf("got %q", KindStatementReference.String())
	}
	if Kind(200).String() != "Unknown" {
		t.Fatalf("out-of-range kind should render Unknown")
	}
}
