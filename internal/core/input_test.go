package core

import "testing"

func TestDigit(t *testing.T) {
	if ev := Digit('7'); ev.Kind != EventDigit || ev.Rune != '7' {
		t.Errorf("Digit('7') = %+v", ev)
	}
	for _, r := range []rune{'a', '-', ' ', '٣'} {
		if ev := Digit(r); ev.Kind != EventNone {
			t.Errorf("Digit(%q) should be EventNone, got %v", r, ev)
		}
	}
}

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	q.Push(Digit('1'), Event{}, Event{Kind: EventTick}, Click(3, 4))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (EventNone dropped)", q.Len())
	}
	evs := q.Drain()
	want := []string{"Digit(1)", "Tick", "Click(3,4)"}
	for i, w := range want {
		if evs[i].String() != w {
			t.Errorf("event %d = %s, expected %s", i, evs[i], w)
		}
	}
	if q.Len() != 0 {
		t.Error("Drain should empty the queue")
	}
}

func TestEventKindString(t *testing.T) {
	if EventSubmit.String() != "Submit" || EventKind(99).String() != "Unknown" {
		t.Error("unexpected EventKind names")
	}
}
