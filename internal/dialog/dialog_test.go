package dialog

import "testing"

func fourActions() []Action {
	return []Action{
		{ID: "arrange", Caption: "Arrange"},
		{ID: "edit", Caption: "Edit"},
		{ID: "cancel", Caption: "Cancel"},
		{ID: "delete", Caption: "Delete"},
	}
}

func TestDefaultsToYesNo(t *testing.T) {
	d := New("sure?", nil, nil)
	actions := d.Actions()
	if len(actions) != 2 {
		t.Fatalf("expected 2 default actions, got %d", len(actions))
	}
	if actions[0].ID != "yes" || actions[1].ID != "no" {
		t.Fatalf("expected yes/no defaults, got %q/%q", actions[0].ID, actions[1].ID)
	}
}

func TestMoveLeftClampsAtFirstAction(t *testing.T) {
	d := New("", fourActions(), nil)
	if d.MoveLeft() {
		t.Fatalf("expected left at index 0 to be a no-op")
	}
	if d.Index() != 0 {
		t.Fatalf("expected index 0, got %d", d.Index())
	}
}

func TestMoveRightClampsAtLastAction(t *testing.T) {
	d := New("", fourActions(), nil)
	for i := 0; i < 3; i++ {
		if !d.MoveRight() {
			t.Fatalf("expected move %d to succeed", i)
		}
	}
	if d.MoveRight() {
		t.Fatalf("expected right at last index to be a no-op")
	}
	if d.Index() != 3 {
		t.Fatalf("expected index 3, got %d", d.Index())
	}
}

func TestAcceptResolvesWithHighlightedAction(t *testing.T) {
	var got *Action
	d := New("", fourActions(), func(a *Action) { got = a })
	d.MoveRight()
	if !d.Accept() {
		t.Fatalf("expected accept to succeed")
	}
	if got == nil || got.ID != "edit" {
		t.Fatalf("expected resolution with edit, got %v", got)
	}
}

func TestAcceptResolvesOnlyOnce(t *testing.T) {
	calls := 0
	d := New("", fourActions(), func(*Action) { calls++ })
	if !d.Accept() {
		t.Fatalf("expected first accept to succeed")
	}
	if d.Accept() {
		t.Fatalf("expected second accept to be rejected")
	}
	d.Dismiss()
	if calls != 1 {
		t.Fatalf("expected exactly one resolution, got %d", calls)
	}
}

func TestDismissResolvesWithNoAction(t *testing.T) {
	resolved := false
	var got *Action
	d := New("", fourActions(), func(a *Action) {
		resolved = true
		got = a
	})
	d.Dismiss()
	if !resolved {
		t.Fatalf("expected dismissal to resolve the dialog")
	}
	if got != nil {
		t.Fatalf("expected nil action on dismissal, got %v", got)
	}
	if d.Accept() {
		t.Fatalf("expected accept after dismissal to be rejected")
	}
}

func TestGuardBlocksInputUntilSettled(t *testing.T) {
	calls := 0
	d := New("", fourActions(), func(*Action) { calls++ }, WithGuard())
	if d.MoveRight() || d.MoveLeft() {
		t.Fatalf("expected guarded cycling to be ignored")
	}
	if d.Accept() {
		t.Fatalf("expected guarded accept to be ignored")
	}
	if calls != 0 {
		t.Fatalf("expected no resolution while guarded, got %d", calls)
	}
	d.Settle()
	d.Settle()
	if !d.MoveRight() {
		t.Fatalf("expected cycling to work after settling")
	}
	if !d.Accept() {
		t.Fatalf("expected accept to work after settling")
	}
	if calls != 1 {
		t.Fatalf("expected one resolution after settling, got %d", calls)
	}
}

func TestGuardDoesNotBlockDismissal(t *testing.T) {
	var got *Action = &Action{ID: "sentinel"}
	d := New("", fourActions(), func(a *Action) { got = a }, WithGuard())
	d.Dismiss()
	if got != nil {
		t.Fatalf("expected nil resolution on guarded dismissal, got %v", got)
	}
}
