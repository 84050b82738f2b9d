package flappy

import "testing"

func TestPipeDerivedGeometry(t *testing.T) {
	p := Pipe{X: 100, GapTop: 200}

	if p.Right(52) != 152 {
		t.Errorf("Right(52) = %g, expected 152", p.Right(52))
	}
	if p.GapBottom(150) != 350 {
		t.Errorf("GapBottom(150) = %g, expected 350", p.GapBottom(150))
	}
}

func TestPipeQueueFIFO(t *testing.T) {
	q := newPipeQueue(4)

	for i := 0; i < 3; i++ {
		q.pushBack(Pipe{X: float64(i)})
	}
	if q.len() != 3 {
		t.Fatalf("len = %d, expected 3", q.len())
	}
	if q.front().X != 0 {
		t.Errorf("front X = %g, expected 0", q.front().X)
	}

	got := q.popFront()
	if got.X != 0 {
		t.Errorf("popFront X = %g, expected 0", got.X)
	}
	if q.front().X != 1 {
		t.Errorf("front after pop X = %g, expected 1", q.front().X)
	}
}

func TestPipeQueueWrapAndGrow(t *testing.T) {
	q := newPipeQueue(4)

	// Interleave pushes and pops so the head wraps, then overflow the
	// backing array to force a grow.
	for i := 0; i < 3; i++ {
		q.pushBack(Pipe{X: float64(i)})
	}
	q.popFront()
	q.popFront()
	for i := 3; i < 9; i++ {
		q.pushBack(Pipe{X: float64(i)})
	}

	if q.len() != 7 {
		t.Fatalf("len = %d, expected 7", q.len())
	}
	for i := 0; i < q.len(); i++ {
		if want := float64(i + 2); q.at(i).X != want {
			t.Errorf("at(%d).X = %g, expected %g", i, q.at(i).X, want)
		}
	}
}

func TestPipeQueueClear(t *testing.T) {
	q := newPipeQueue(4)
	q.pushBack(Pipe{X: 1})
	q.pushBack(Pipe{X: 2})
	q.popFront()

	q.clear()

	if q.len() != 0 {
		t.Errorf("len after clear = %d, expected 0", q.len())
	}
	q.pushBack(Pipe{X: 9})
	if q.front().X != 9 {
		t.Errorf("front after clear+push = %g, expected 9", q.front().X)
	}
}

func TestPipeQueueAtMutates(t *testing.T) {
	q := newPipeQueue(4)
	q.pushBack(Pipe{X: 5})

	q.at(0).X -= 2
	if q.front().X != 3 {
		t.Errorf("at() should expose the stored pipe, front X = %g, expected 3", q.front().X)
	}
}
