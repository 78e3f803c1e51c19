package omdb

import "math"

// ParamDic is the model parameter header row.
type ParamDic struct {
	ParamID  int `json:"ParamId"`
	Name     string
	Digest   string
	Rank     int
	TypeID   int `json:"TypeId"`
	IsHidden bool
}

// ParamDim is a parameter dimension.
type ParamDim struct {
	DimID  int `json:"DimId"`
	Name   string
	TypeID int `json:"TypeId"`
}

// ParamDimsText is a parameter dimension and its description.
type ParamDimsText struct {
	Dim       *ParamDim  `json:",omitempty"`
	DescrNote *DescrNote `json:",omitempty"`
}

// ParamText is a model parameter with description and dimensions.
type ParamText struct {
	Param        ParamDic
	DescrNote    *DescrNote `json:",omitempty"`
	ParamDimsTxt []ParamDimsText
}

// ParamSize is the shape of parameter values.
type ParamSize struct {
	Rank     int
	DimTotal int
	DimSize  []int
}

// ParamRunSet is a parameter of a run or workset: name, number of sub-values and value notes.
type ParamRunSet struct {
	Name     string
	SubCount int
	Txt      []LangNote
}

// EmptyParamText returns the empty parameter.
func EmptyParamText() ParamText {
	return ParamText{
		DescrNote:    &DescrNote{},
		ParamDimsTxt: []ParamDimsText{},
	}
}

// EmptyParamSize returns the size of a parameter which is not found.
func EmptyParamSize() ParamSize {
	return ParamSize{DimSize: []int{}}
}

// EmptyParamRunSet returns the empty run or workset parameter.
func EmptyParamRunSet() ParamRunSet {
	return ParamRunSet{Txt: []LangNote{}}
}

// IsParam reports whether p has non-empty name and digest.
func IsParam(p ParamDic) bool {
	return p.Name != "" && p.Digest != ""
}

// IsParamRunSet reports whether prs has a name.
func IsParamRunSet(prs ParamRunSet) bool {
	return prs.Name != ""
}

// ParamCount returns the number of model parameters or zero if any of them is not valid.
func ParamCount(md ModelText) int {
	if !IsModel(md) {
		return 0
	}
	for k := range md.ParamTxt {
		if !IsParam(md.ParamTxt[k].Param) {
			return 0
		}
	}
	return len(md.ParamTxt)
}

// ParamTextByName returns a copy of the model parameter by name or the empty parameter if not found.
func ParamTextByName(md ModelText, name string) ParamText {
	if !IsModel(md) || name == "" {
		return EmptyParamText()
	}
	for k := range md.ParamTxt {
		if IsParam(md.ParamTxt[k].Param) && md.ParamTxt[k].Param.Name == name {
			return md.ParamTxt[k].Clone()
		}
	}
	return EmptyParamText()
}

// ParamSizeByName returns parameter rank and dimension sizes. A scalar has DimTotal 1.
// If the parameter is not found, its rank does not match its dimensions, any
// dimension type is unknown or DimTotal overflows int the result is EmptyParamSize.
func ParamSizeByName(md ModelText, name string) ParamSize {
	p := ParamTextByName(md, name)
	if !IsParam(p.Param) || p.Param.Rank != len(p.ParamDimsTxt) {
		return EmptyParamSize()
	}

	ret := ParamSize{Rank: p.Param.Rank, DimTotal: 1, DimSize: make([]int, 0, p.Param.Rank)}
	for _, d := range p.ParamDimsTxt {
		if d.Dim == nil {
			return EmptyParamSize()
		}
		n := TypeEnumSizeByID(md, d.Dim.TypeID)
		if n <= 0 {
			return EmptyParamSize()
		}
		total, ok := mulSize(ret.DimTotal, n)
		if !ok {
			return EmptyParamSize()
		}
		ret.DimSize = append(ret.DimSize, n)
		ret.DimTotal = total
	}
	return ret
}

// mulSize returns a*b for positive sizes, false if the product overflows int.
func mulSize(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ParamRunSetByName returns a copy of the run or workset parameter by name,
// or the empty value if not found.
func ParamRunSetByName(params []ParamRunSet, name string) ParamRunSet {
	if name == "" {
		return EmptyParamRunSet()
	}
	for k := range params {
		if IsParamRunSet(params[k]) && params[k].Name == name {
			return params[k].Clone()
		}
	}
	return EmptyParamRunSet()
}

// Clone returns a deep copy of p.
func (p ParamText) Clone() ParamText {
	c := p
	c.DescrNote = cloneDescrNote(p.DescrNote)
	if p.ParamDimsTxt != nil {
		c.ParamDimsTxt = make([]ParamDimsText, len(p.ParamDimsTxt))
		for k, d := range p.ParamDimsTxt {
			if d.Dim != nil {
				dim := *d.Dim
				d.Dim = &dim
			}
			d.DescrNote = cloneDescrNote(d.DescrNote)
			c.ParamDimsTxt[k] = d
		}
	}
	return c
}

// Clone returns a deep copy of prs.
func (prs ParamRunSet) Clone() ParamRunSet {
	c := prs
	if prs.Txt != nil {
		c.Txt = append(make([]LangNote, 0, len(prs.Txt)), prs.Txt...)
	}
	return c
}

func cloneParamRunSets(params []ParamRunSet) []ParamRunSet {
	if params == nil {
		return nil
	}
	out := make([]ParamRunSet, len(params))
	for k := range params {
		out[k] = params[k].Clone()
	}
	return out
}
