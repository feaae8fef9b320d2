package game

// feedbackDoneMsg is sent when the feedback display period for Round ends.
// A message for a round that is no longer showing feedback is dropped.
type feedbackDoneMsg struct {
	Round int
}
