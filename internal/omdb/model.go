package omdb

// ModelDic is the model header row.
type ModelDic struct {
	ModelID         int `json:"ModelId"`
	Name            string
	Digest          string
	Type            int
	Version         string
	CreateDateTime  string
	DefaultLangCode string
}

// ModelText is the model payload returned by the service: header, description
// and the text of model types, parameters and output tables.
type ModelText struct {
	Model     ModelDic
	DescrNote *DescrNote `json:",omitempty"`
	TypeTxt   []TypeText
	ParamTxt  []ParamText
	TableTxt  []TableText
}

// EmptyModel returns the model with empty name and digest.
func EmptyModel() ModelText {
	return ModelText{
		TypeTxt:  []TypeText{},
		ParamTxt: []ParamText{},
		TableTxt: []TableText{},
	}
}

// IsModel reports whether md has non-empty name and digest.
func IsModel(md ModelText) bool {
	return md.Model.Name != "" && md.Model.Digest != ""
}

// IsEmptyModel reports whether md name or digest is empty.
func IsEmptyModel(md ModelText) bool {
	return !IsModel(md)
}

// IsModelList reports whether every element of ml is a model. An empty list is valid.
func IsModelList(ml []ModelText) bool {
	for k := range ml {
		if !IsModel(ml[k]) {
			return false
		}
	}
	return true
}

// ModelListCount returns the number of models or zero if the list is not valid.
func ModelListCount(ml []ModelText) int {
	if !IsModelList(ml) {
		return 0
	}
	return len(ml)
}

// ModelName returns the model name.
func ModelName(md ModelText) string { return md.Model.Name }

// ModelDigest returns the model digest.
func ModelDigest(md ModelText) string { return md.Model.Digest }

// ModelTitle returns "name: description" or the bare name when there is no description.
func ModelTitle(md ModelText) string {
	if !IsModel(md) {
		return ""
	}
	if descr := DescrOfDescrNote(md.DescrNote); descr != "" {
		return md.Model.Name + ": " + descr
	}
	return md.Model.Name
}

// Clone returns a deep copy of md which shares no memory with it.
func (md ModelText) Clone() ModelText {
	c := md
	c.DescrNote = cloneDescrNote(md.DescrNote)
	if md.TypeTxt != nil {
		c.TypeTxt = make([]TypeText, len(md.TypeTxt))
		for k := range md.TypeTxt {
			c.TypeTxt[k] = md.TypeTxt[k].Clone()
		}
	}
	if md.ParamTxt != nil {
		c.ParamTxt = make([]ParamText, len(md.ParamTxt))
		for k := range md.ParamTxt {
			c.ParamTxt[k] = md.ParamTxt[k].Clone()
		}
	}
	if md.TableTxt != nil {
		c.TableTxt = make([]TableText, len(md.TableTxt))
		for k := range md.TableTxt {
			c.TableTxt[k] = md.TableTxt[k].Clone()
		}
	}
	return c
}

// CloneModelList returns a deep copy of the model list.
func CloneModelList(ml []ModelText) []ModelText {
	if ml == nil {
		return nil
	}
	out := make([]ModelText, len(ml))
	for k := range ml {
		out[k] = ml[k].Clone()
	}
	return out
}
