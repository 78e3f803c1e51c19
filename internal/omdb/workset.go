package omdb

// WorksetText is a named set of model input parameters, optionally based on a run.
type WorksetText struct {
	ModelName      string
	ModelDigest    string
	Name           string
	BaseRunDigest  string
	IsReadonly     bool
	UpdateDateTime string
	Param          []ParamRunSet
	Txt            []DescrNote
}

// EmptyWorksetText returns the empty workset.
func EmptyWorksetText() WorksetText {
	return WorksetText{
		Param: []ParamRunSet{},
		Txt:   []DescrNote{},
	}
}

// IsNotEmptyWorksetText reports whether model and workset name are set.
func IsNotEmptyWorksetText(wt WorksetText) bool {
	return wt.ModelName != "" && wt.ModelDigest != "" && wt.Name != ""
}

// WorksetTextCount returns the number of worksets in the list.
func WorksetTextCount(wl []WorksetText) int {
	return len(wl)
}

// IsWorksetTextList reports whether every workset in wl belongs to the model with digest modelDigest.
func IsWorksetTextList(wl []WorksetText, modelDigest string) bool {
	for k := range wl {
		if wl[k].ModelDigest != modelDigest {
			return false
		}
	}
	return true
}

// SameWorkset reports whether a and b are the same workset of the same model.
func SameWorkset(a, b WorksetText) bool {
	return a.ModelDigest == b.ModelDigest && a.Name == b.Name
}

// Clone returns a deep copy of wt.
func (wt WorksetText) Clone() WorksetText {
	c := wt
	c.Param = cloneParamRunSets(wt.Param)
	c.Txt = cloneTxt(wt.Txt)
	return c
}

// CloneWorksetList returns a deep copy of the workset list.
func CloneWorksetList(wl []WorksetText) []WorksetText {
	if wl == nil {
		return nil
	}
	out := make([]WorksetText, len(wl))
	for k := range wl {
		out[k] = wl[k].Clone()
	}
	return out
}
