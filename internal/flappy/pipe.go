package flappy

// Pipe is a single top/bottom obstacle pair. Pipes spawn at the right world
// edge and drift left at a constant speed, so spawn order is also
// left-to-right position order: the oldest pipe is always the leftmost.
type Pipe struct {
	X      float64 // Left edge, world units
	GapTop int     // Height where the passable gap begins
	Scored bool    // Set once the bird has fully passed; gates the score increment
}

// Right returns the x-coordinate of the pipe's right edge.
func (p Pipe) Right(width float64) float64 {
	return p.X + width
}

// GapBottom returns the height where the bottom pipe starts.
func (p Pipe) GapBottom(gapSize float64) float64 {
	return float64(p.GapTop) + gapSize
}

// pipeQueue is a ring-buffer deque of pipes. New pipes are pushed at the
// back; the oldest (leftmost) pipe is popped from the front when it leaves
// the world. Both operations are O(1).
type pipeQueue struct {
	buf  []Pipe
	head int
	n    int
}

func newPipeQueue(capacity int) *pipeQueue {
	if capacity < 4 {
		capacity = 4
	}
	return &pipeQueue{buf: make([]Pipe, capacity)}
}

func (q *pipeQueue) len() int {
	return q.n
}

// at returns a pointer to the i-th pipe in spawn order, front first.
func (q *pipeQueue) at(i int) *Pipe {
	return &q.buf[(q.head+i)%len(q.buf)]
}

func (q *pipeQueue) front() *Pipe {
	return q.at(0)
}

func (q *pipeQueue) pushBack(p Pipe) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = p
	q.n++
}

func (q *pipeQueue) popFront() Pipe {
	p := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return p
}

func (q *pipeQueue) clear() {
	q.head = 0
	q.n = 0
}

func (q *pipeQueue) grow() {
	next := make([]Pipe, len(q.buf)*2)
	for i := 0; i < q.n; i++ {
		next[i] = *q.at(i)
	}
	q.buf = next
	q.head = 0
}
