package cell

import (
	"strings"
	"testing"
)

func sampleGroups(env *Env) *GroupCell {
	g := NewGroupCell(env, GroupTypeCode)
	g.SetEditableContent("a/2;")
	g.AppendOutput(NewFracCell(env, variable(env, "a"), number(env, "2")))

	folded := NewGroupCell(env, GroupTypeText)
	folded.SetEditableContent("hidden text")
	section := NewGroupCell(env, GroupTypeSection)
	section.SetEditableContent("Section")
	section.HideTree(folded)

	Append(g, section)
	return g
}

func TestTreeVisitsOwnedCells(t *testing.T) {
	env, _ := newTestEnv()
	head := sampleGroups(env)

	var groups, fracs int
	var values []string
	for c := range Tree(head) {
		switch c := c.(type) {
		case *GroupCell:
			groups++
		case *FracCell:
			fracs++
		case *TextCell:
			values = append(values, c.ToString())
		}
	}
	if groups != 3 {
		t.Errorf("visited %d groups, want 3 including folded one", groups)
	}
	if fracs != 1 {
		t.Errorf("visited %d fractions, want 1", fracs)
	}
	if got := strings.Join(values, ","); !strings.Contains(got, "a") || !strings.Contains(got, "2") {
		t.Errorf("fraction parts not visited: %q", got)
	}
}

func TestTreeStopsEarly(t *testing.T) {
	env, _ := newTestEnv()
	head := sampleGroups(env)

	n := 0
	for range Tree(head) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iteration did not stop, n = %d", n)
	}
}

func TestDumpDescribesTree(t *testing.T) {
	env, _ := newTestEnv()
	dump := Dump(sampleGroups(env))
	for _, want := range []string{"GroupCell", "FracCell", "a/2;", "hidden text"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump has no %q:\n%s", want, dump)
		}
	}
	if Dump(nil) != "" {
		t.Errorf("Dump(nil) = %q", Dump(nil))
	}
}
