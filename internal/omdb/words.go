package omdb

// CodeLabel is a word code and its label in the word list language.
type CodeLabel struct {
	Code  string
	Label string
}

// WordList is the label dictionary of a model in one language: model-specific
// words and common words of the language.
type WordList struct {
	ModelName   string
	ModelDigest string
	LangCode    string
	LangWords   []CodeLabel
	ModelWords  []CodeLabel
}

// EmptyWordList returns the empty word list.
func EmptyWordList() WordList {
	return WordList{
		LangWords:  []CodeLabel{},
		ModelWords: []CodeLabel{},
	}
}

// IsNotEmptyWordList reports whether wl is bound to a model and language.
func IsNotEmptyWordList(wl WordList) bool {
	return wl.ModelDigest != "" && wl.LangCode != ""
}

// WordByCode returns the label of code, searching model words first and then
// language words. It returns "" for an empty code and the code itself when
// wl is nil or the code is not found.
func WordByCode(wl *WordList, code string) string {
	if code == "" {
		return ""
	}
	if wl == nil {
		return code
	}
	for k := range wl.ModelWords {
		if wl.ModelWords[k].Code == code {
			return wl.ModelWords[k].Label
		}
	}
	for k := range wl.LangWords {
		if wl.LangWords[k].Code == code {
			return wl.LangWords[k].Label
		}
	}
	return code
}

// Clone returns a deep copy of wl.
func (wl WordList) Clone() WordList {
	c := wl
	if wl.LangWords != nil {
		c.LangWords = append(make([]CodeLabel, 0, len(wl.LangWords)), wl.LangWords...)
	}
	if wl.ModelWords != nil {
		c.ModelWords = append(make([]CodeLabel, 0, len(wl.ModelWords)), wl.ModelWords...)
	}
	return c
}
