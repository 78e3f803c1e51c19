package omdb

// Run status codes.
const (
	RunSuccess    = "s" // completed successfully
	RunInProgress = "p" // in progress
	RunInitial    = "i" // not started yet
	RunFailed     = "e" // completed with error
	RunExit       = "x" // exit and not completed
)

// RunText is a model run with its parameter values and description.
type RunText struct {
	ModelName      string
	ModelDigest    string
	Name           string
	Digest         string
	SubCount       int
	SubStarted     int
	SubCompleted   int
	CreateDateTime string
	Status         string
	UpdateDateTime string
	Param          []ParamRunSet
	Txt            []DescrNote
}

// EmptyRunText returns the empty run.
func EmptyRunText() RunText {
	return RunText{
		Param: []ParamRunSet{},
		Txt:   []DescrNote{},
	}
}

// IsNotEmptyRunText reports whether model, run name and status are set and the run has sub-values.
func IsNotEmptyRunText(rt RunText) bool {
	return rt.ModelName != "" && rt.ModelDigest != "" &&
		rt.Name != "" && rt.Status != "" && rt.SubCount != 0
}

// RunTextCount returns the number of runs in the list.
func RunTextCount(rl []RunText) int {
	return len(rl)
}

// IsRunTextList reports whether every run in rl belongs to the model with digest modelDigest.
func IsRunTextList(rl []RunText, modelDigest string) bool {
	for k := range rl {
		if rl[k].ModelDigest != modelDigest {
			return false
		}
	}
	return true
}

// SameRun reports whether a and b describe the same run in the same state.
func SameRun(a, b RunText) bool {
	return a.ModelDigest == b.ModelDigest &&
		a.Name == b.Name &&
		a.Digest == b.Digest &&
		a.Status == b.Status &&
		a.SubCount == b.SubCount &&
		a.CreateDateTime == b.CreateDateTime &&
		a.UpdateDateTime == b.UpdateDateTime
}

// IsRunSuccess reports whether the run completed successfully.
func IsRunSuccess(rt RunText) bool {
	return rt.Status == RunSuccess
}

// IsRunCompleted reports whether the run is finished: success, exit or error.
func IsRunCompleted(rt RunText) bool {
	switch rt.Status {
	case RunSuccess, RunExit, RunFailed:
		return true
	}
	return false
}

// StatusText returns the run status description.
func StatusText(rt RunText) string {
	return StatusTextOf(rt.Status)
}

// StatusTextOf returns the description of a run status code, "unknown" for any other code.
func StatusTextOf(status string) string {
	switch status {
	case RunSuccess:
		return "success"
	case RunInProgress:
		return "in progress"
	case RunInitial:
		return "not yet started"
	case RunFailed:
		return "failed"
	case RunExit:
		return "exit (not completed)"
	}
	return "unknown"
}

// Clone returns a deep copy of rt.
func (rt RunText) Clone() RunText {
	c := rt
	c.Param = cloneParamRunSets(rt.Param)
	c.Txt = cloneTxt(rt.Txt)
	return c
}

// CloneRunList returns a deep copy of the run list.
func CloneRunList(rl []RunText) []RunText {
	if rl == nil {
		return nil
	}
	out := make([]RunText, len(rl))
	for k := range rl {
		out[k] = rl[k].Clone()
	}
	return out
}
