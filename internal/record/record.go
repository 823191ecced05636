package record

// Attempt is one recorded answer event for a question. Attempts are
// append-only: the engine reads snapshots and never edits them.
type Attempt struct {
	QuestionID   int
	Correct      bool
	DurationSecs int   // wall-clock answer time, clamped to >= 1
	Timestamp    int64 // unix seconds
}

// ClampDuration normalizes an answer duration to at least one second.
func ClampDuration(secs int) int {
	if secs < 1 {
		return 1
	}
	return secs
}

// ByQuestion groups attempts by question ID, preserving per-question order.
func ByQuestion(attempts []Attempt) map[int][]Attempt {
	grouped := make(map[int][]Attempt)
	for _, a := range attempts {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}
	return grouped
}

// WrongSet returns the IDs of questions whose most recent attempt was
// incorrect. Answering a question correctly removes it from the set.
func WrongSet(attempts []Attempt) map[int]bool {
	latest := make(map[int]Attempt)
	for _, a := range attempts {
		prev, ok := latest[a.QuestionID]
		if !ok || a.Timestamp >= prev.Timestamp {
			latest[a.QuestionID] = a
		}
	}

	wrong := make(map[int]bool)
	for id, a := range latest {
		if !a.Correct {
			wrong[id] = true
		}
	}
	return wrong
}
