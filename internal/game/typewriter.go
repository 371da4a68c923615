package game

import "time"

const caretBlink = 530 * time.Millisecond

// Typewriter reveals Text one rune at a time. It holds no state: everything is
// derived from the time elapsed since typing was scheduled.
type Typewriter struct {
	Text     string
	Delay    time.Duration // before the first rune
	Interval time.Duration // between runes
	Linger   time.Duration // caret stays this long after the last rune
}

// Typed returns the visible prefix at elapsed.
func (t Typewriter) Typed(elapsed time.Duration) string {
	runes := []rune(t.Text)
	return string(runes[:t.count(elapsed, len(runes))])
}

func (t Typewriter) count(elapsed time.Duration, total int) int {
	if elapsed < t.Delay {
		return 0
	}
	if t.Interval <= 0 {
		return total
	}
	n := 1 + int((elapsed-t.Delay)/t.Interval)
	if n > total {
		n = total
	}
	return n
}

// Done reports whether every rune has been typed.
func (t Typewriter) Done(elapsed time.Duration) bool {
	total := len([]rune(t.Text))
	return t.count(elapsed, total) == total && elapsed >= t.Delay
}

// CaretHidden reports whether the caret has been dismissed. The completion
// check runs one interval after the last rune, then the linger starts.
func (t Typewriter) CaretHidden(elapsed time.Duration) bool {
	total := len([]rune(t.Text))
	finish := t.Delay + time.Duration(total)*t.Interval + t.Linger
	return elapsed >= finish
}

// CaretVisible folds the blink into CaretHidden.
func (t Typewriter) CaretVisible(elapsed time.Duration) bool {
	if t.CaretHidden(elapsed) {
		return false
	}
	return (elapsed/caretBlink)%2 == 0
}
