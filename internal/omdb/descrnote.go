package omdb

// DescrNote is a language-specific description and notes of a catalog entity.
type DescrNote struct {
	LangCode string
	Descr    string
	Note     string
}

// LangNote is a language-specific note, used by run and workset parameter values.
type LangNote struct {
	LangCode string
	Note     string
}

// DescrOfDescrNote returns the description or "" when dn is absent.
func DescrOfDescrNote(dn *DescrNote) string {
	if dn == nil {
		return ""
	}
	return dn.Descr
}

// NoteOfDescrNote returns the notes or "" when dn is absent.
func NoteOfDescrNote(dn *DescrNote) string {
	if dn == nil {
		return ""
	}
	return dn.Note
}

// IsNoteOfDescrNote reports whether dn is present and has non-empty notes.
func IsNoteOfDescrNote(dn *DescrNote) bool {
	return NoteOfDescrNote(dn) != ""
}

// DescrOfTxt returns the description of the first text entry.
func DescrOfTxt(txt []DescrNote) string {
	if len(txt) == 0 {
		return ""
	}
	return txt[0].Descr
}

// NoteOfTxt returns the notes of the first text entry.
func NoteOfTxt(txt []DescrNote) string {
	if len(txt) == 0 {
		return ""
	}
	return txt[0].Note
}

// IsNoteOfTxt reports whether the first text entry has non-empty notes.
func IsNoteOfTxt(txt []DescrNote) bool {
	return NoteOfTxt(txt) != ""
}

func cloneDescrNote(dn *DescrNote) *DescrNote {
	if dn == nil {
		return nil
	}
	c := *dn
	return &c
}

func cloneTxt(txt []DescrNote) []DescrNote {
	if txt == nil {
		return nil
	}
	return append(make([]DescrNote, 0, len(txt)), txt...)
}
