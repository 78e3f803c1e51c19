package omdb

import "strings"

// OmMaxBuiltinTypeID is the largest type id of a built-in type.
//
//	1 char, 2 schar, 3 short, 4 int, 5 long, 6 llong, 7 bool, 8 uchar,
//	9 ushort, 10 uint, 11 ulong, 12 ullong, 13 float, 14 double, 15 ldouble,
//	16 Time, 17 real, 18 integer, 19 counter, 20 big_counter, 21 file
const OmMaxBuiltinTypeID = 100

// TypeDic is the model type header row.
type TypeDic struct {
	TypeID      int `json:"TypeId"`
	Name        string
	Digest      string
	DicID       int `json:"DicId"`
	TotalEnumID int `json:"TotalEnumId"`
}

// TypeEnum is an enumerator of a model type.
type TypeEnum struct {
	EnumID int `json:"EnumId"`
	Name   string
}

// TypeEnumText is an enumerator and its description. Enum is nil when the
// service sent an element without enumerator.
type TypeEnumText struct {
	Enum      *TypeEnum  `json:",omitempty"`
	DescrNote *DescrNote `json:",omitempty"`
}

// TypeText is a model type with description and enumerators.
type TypeText struct {
	Type        TypeDic
	DescrNote   *DescrNote `json:",omitempty"`
	TypeEnumTxt []TypeEnumText
}

// EmptyTypeText returns the empty type.
func EmptyTypeText() TypeText {
	return TypeText{
		DescrNote:   &DescrNote{},
		TypeEnumTxt: []TypeEnumText{},
	}
}

// IsType reports whether t has non-empty name and digest.
func IsType(t TypeDic) bool {
	return t.Name != "" && t.Digest != ""
}

// TypeCount returns the number of model types or zero if any of them is not valid.
func TypeCount(md ModelText) int {
	if !IsModel(md) {
		return 0
	}
	for k := range md.TypeTxt {
		if !IsType(md.TypeTxt[k].Type) {
			return 0
		}
	}
	return len(md.TypeTxt)
}

// TypeTextByID returns the model type by id or the empty type if not found.
func TypeTextByID(md ModelText, typeID int) TypeText {
	if !IsModel(md) {
		return EmptyTypeText()
	}
	for k := range md.TypeTxt {
		if IsType(md.TypeTxt[k].Type) && md.TypeTxt[k].Type.TypeID == typeID {
			return md.TypeTxt[k]
		}
	}
	return EmptyTypeText()
}

// TypeEnumSizeByID returns the number of enumerators of the model type, zero if type not found.
func TypeEnumSizeByID(md ModelText, typeID int) int {
	t := TypeTextByID(md, typeID)
	if !IsType(t.Type) {
		return 0
	}
	return len(t.TypeEnumTxt)
}

// IsBuiltIn reports whether t is a built-in type.
func IsBuiltIn(t TypeDic) bool {
	return IsType(t) && t.TypeID <= OmMaxBuiltinTypeID
}

// IsBool reports whether t is the built-in logical type.
func IsBool(t TypeDic) bool {
	return IsBuiltIn(t) && strings.ToLower(t.Name) == "bool"
}

// IsString reports whether t is the built-in string type.
func IsString(t TypeDic) bool {
	return IsBuiltIn(t) && strings.ToLower(t.Name) == "file"
}

// IsFloat reports whether t is a built-in floating point type.
func IsFloat(t TypeDic) bool {
	if !IsBuiltIn(t) {
		return false
	}
	switch strings.ToLower(t.Name) {
	case "float", "double", "ldouble", "time", "real":
		return true
	}
	return false
}

// IsInt reports whether t is a built-in integer type.
func IsInt(t TypeDic) bool {
	return IsBuiltIn(t) && !IsBool(t) && !IsString(t) && !IsFloat(t)
}

// IsEnum reports whether the element carries an enumerator.
func IsEnum(e TypeEnumText) bool {
	return e.Enum != nil
}

// EnumCodeByID returns the enumerator code or "" if not found.
func EnumCodeByID(t TypeText, enumID int) string {
	for k := range t.TypeEnumTxt {
		if e := t.TypeEnumTxt[k]; IsEnum(e) && e.Enum.EnumID == enumID {
			return e.Enum.Name
		}
	}
	return ""
}

// EnumDescrOrCodeByID returns the enumerator description, its code if there is
// no description, or "" if not found.
func EnumDescrOrCodeByID(t TypeText, enumID int) string {
	for k := range t.TypeEnumTxt {
		if e := t.TypeEnumTxt[k]; IsEnum(e) && e.Enum.EnumID == enumID {
			return descrOrCode(e)
		}
	}
	return ""
}

// EnumCodeArray returns codes of all enumerators in order, "" for malformed elements.
func EnumCodeArray(t TypeText) []string {
	out := make([]string, len(t.TypeEnumTxt))
	for k, e := range t.TypeEnumTxt {
		if IsEnum(e) {
			out[k] = e.Enum.Name
		}
	}
	return out
}

// EnumDescrOrCodeArray returns description or code of all enumerators in order,
// "" for malformed elements.
func EnumDescrOrCodeArray(t TypeText) []string {
	out := make([]string, len(t.TypeEnumTxt))
	for k, e := range t.TypeEnumTxt {
		if IsEnum(e) {
			out[k] = descrOrCode(e)
		}
	}
	return out
}

func descrOrCode(e TypeEnumText) string {
	if d := DescrOfDescrNote(e.DescrNote); d != "" {
		return d
	}
	return e.Enum.Name
}

// Clone returns a deep copy of t.
func (t TypeText) Clone() TypeText {
	c := t
	c.DescrNote = cloneDescrNote(t.DescrNote)
	if t.TypeEnumTxt != nil {
		c.TypeEnumTxt = make([]TypeEnumText, len(t.TypeEnumTxt))
		for k, e := range t.TypeEnumTxt {
			if e.Enum != nil {
				en := *e.Enum
				e.Enum = &en
			}
			e.DescrNote = cloneDescrNote(e.DescrNote)
			c.TypeEnumTxt[k] = e
		}
	}
	return c
}
