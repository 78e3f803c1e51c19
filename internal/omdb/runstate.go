package omdb

// RunState is the progress of a run submitted to the service.
type RunState struct {
	ModelName      string
	ModelDigest    string
	RunStamp       string
	SubmitStamp    string
	IsFinal        bool
	UpdateDateTime string
	RunName        string
	TaskRunName    string
}

// RunStateLog is the run progress with a page of the run log:
// Lines starts at line Offset, Size lines long, out of TotalSize lines.
type RunStateLog struct {
	RunState
	Offset    int
	Size      int
	TotalSize int
	Lines     []string
}

// EmptyRunState returns the empty run state.
func EmptyRunState() RunState {
	return RunState{}
}

// EmptyRunStateLog returns the empty run state with an empty log page.
func EmptyRunStateLog() RunStateLog {
	return RunStateLog{Lines: []string{}}
}

// IsNotEmptyRunState reports whether rs refers to a model run submission.
func IsNotEmptyRunState(rs RunState) bool {
	return rs.ModelDigest != "" && (rs.RunStamp != "" || rs.SubmitStamp != "")
}

// RunStateOf returns the run state part of the log page.
func RunStateOf(rsl RunStateLog) RunState {
	return rsl.RunState
}

// Clone returns a deep copy of rsl.
func (rsl RunStateLog) Clone() RunStateLog {
	c := rsl
	if rsl.Lines != nil {
		c.Lines = append(make([]string, 0, len(rsl.Lines)), rsl.Lines...)
	}
	return c
}
