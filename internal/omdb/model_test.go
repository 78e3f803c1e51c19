package omdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModelPredicates(t *testing.T) {
	md := ModelText{Model: ModelDic{Name: "modelOne", Digest: "_201208171604590148_"}}
	require.True(t, IsModel(md))
	require.False(t, IsEmptyModel(md))

	require.False(t, IsModel(EmptyModel()))
	require.True(t, IsEmptyModel(EmptyModel()))

	noDigest := ModelText{Model: ModelDic{Name: "modelOne"}}
	require.False(t, IsModel(noDigest))
	require.True(t, IsEmptyModel(noDigest))
}

func TestModelListCount(t *testing.T) {
	a := ModelText{Model: ModelDic{Name: "a", Digest: "d-a"}}
	b := ModelText{Model: ModelDic{Name: "b", Digest: "d-b"}}

	require.Equal(t, 0, ModelListCount(nil))
	require.Equal(t, 0, ModelListCount([]ModelText{}))
	require.Equal(t, 2, ModelListCount([]ModelText{a, b}))
	require.Equal(t, 0, ModelListCount([]ModelText{a, EmptyModel()}))
	require.True(t, IsModelList([]ModelText{}))
}

func TestModelTitle(t *testing.T) {
	md := ModelText{Model: ModelDic{Name: "modelOne", Digest: "d1"}}
	require.Equal(t, "modelOne", ModelTitle(md))

	md.DescrNote = &DescrNote{LangCode: "EN", Descr: "First model"}
	require.Equal(t, "modelOne: First model", ModelTitle(md))
	require.Equal(t, "", ModelTitle(EmptyModel()))
	require.Equal(t, "modelOne", ModelName(md))
	require.Equal(t, "d1", ModelDigest(md))
}

func TestModelCloneIsIndependent(t *testing.T) {
	md := sampleModel()
	c := md.Clone()
	require.Equal(t, md, c)

	c.DescrNote.Descr = "changed"
	c.TypeTxt[0].TypeEnumTxt[0].Enum.Name = "changed"
	c.ParamTxt[0].ParamDimsTxt[0].Dim.TypeID = 999
	c.TableTxt[0].TableAccTxt[0].Acc.IsDerived = true

	require.Equal(t, "Model with types", md.DescrNote.Descr)
	require.Equal(t, "low", md.TypeTxt[0].TypeEnumTxt[0].Enum.Name)
	require.Equal(t, 101, md.ParamTxt[0].ParamDimsTxt[0].Dim.TypeID)
	require.False(t, md.TableTxt[0].TableAccTxt[0].Acc.IsDerived)
}

func TestDescrNoteHelpers(t *testing.T) {
	require.Equal(t, "", DescrOfDescrNote(nil))
	require.Equal(t, "", NoteOfDescrNote(nil))
	require.False(t, IsNoteOfDescrNote(nil))

	dn := &DescrNote{Descr: "descr", Note: "note"}
	require.Equal(t, "descr", DescrOfDescrNote(dn))
	require.Equal(t, "note", NoteOfDescrNote(dn))
	require.True(t, IsNoteOfDescrNote(dn))
	require.False(t, IsNoteOfDescrNote(&DescrNote{Descr: "only"}))

	require.Equal(t, "", DescrOfTxt(nil))
	require.False(t, IsNoteOfTxt([]DescrNote{}))
	txt := []DescrNote{{Descr: "first", Note: "n1"}, {Descr: "second"}}
	require.Equal(t, "first", DescrOfTxt(txt))
	require.Equal(t, "n1", NoteOfTxt(txt))
	require.True(t, IsNoteOfTxt(txt))
}

// sampleModel has a 3-item type "lowMidHigh" (id 101), a 4-item type "age" (id 102),
// parameters of rank 0, 1 and 2 and an output table.
func sampleModel() ModelText {
	return ModelText{
		Model:     ModelDic{ModelID: 1, Name: "typed", Digest: "d-typed"},
		DescrNote: &DescrNote{LangCode: "EN", Descr: "Model with types"},
		TypeTxt: []TypeText{
			{Type: TypeDic{TypeID: 7, Name: "bool", Digest: "d-bool"}},
			{
				Type:      TypeDic{TypeID: 101, Name: "lowMidHigh", Digest: "d-lmh", DicID: 2},
				DescrNote: &DescrNote{Descr: "Low mid high"},
				TypeEnumTxt: []TypeEnumText{
					{Enum: &TypeEnum{EnumID: 0, Name: "low"}, DescrNote: &DescrNote{Descr: "Low"}},
					{Enum: &TypeEnum{EnumID: 1, Name: "mid"}},
					{Enum: &TypeEnum{EnumID: 2, Name: "high"}, DescrNote: &DescrNote{Descr: "High"}},
				},
			},
			{
				Type: TypeDic{TypeID: 102, Name: "age", Digest: "d-age", DicID: 2},
				TypeEnumTxt: []TypeEnumText{
					{Enum: &TypeEnum{EnumID: 10, Name: "10-20"}},
					{Enum: &TypeEnum{EnumID: 20, Name: "20-30"}},
					{Enum: &TypeEnum{EnumID: 30, Name: "30-40"}},
					{Enum: &TypeEnum{EnumID: 40, Name: "40+"}},
				},
			},
		},
		ParamTxt: []ParamText{
			{
				Param:        ParamDic{ParamID: 0, Name: "ratio", Digest: "p-ratio", Rank: 2},
				ParamDimsTxt: []ParamDimsText{{Dim: &ParamDim{DimID: 0, Name: "dim0", TypeID: 101}}, {Dim: &ParamDim{DimID: 1, Name: "dim1", TypeID: 102}}},
			},
			{Param: ParamDic{ParamID: 1, Name: "startSeed", Digest: "p-seed", Rank: 0}},
			{
				Param:        ParamDic{ParamID: 2, Name: "unknownDim", Digest: "p-unk", Rank: 1},
				ParamDimsTxt: []ParamDimsText{{Dim: &ParamDim{DimID: 0, Name: "dim0", TypeID: 555}}},
			},
			{
				Param:        ParamDic{ParamID: 3, Name: "badRank", Digest: "p-bad", Rank: 2},
				ParamDimsTxt: []ParamDimsText{{Dim: &ParamDim{DimID: 0, Name: "dim0", TypeID: 101}}},
			},
		},
		TableTxt: []TableText{
			{
				Table: TableDic{TableID: 0, Name: "ageTable", Digest: "t-age", Rank: 2},
				TableDimsTxt: []TableDimsText{
					{Dim: &TableDim{DimID: 0, Name: "dim0", TypeID: 101, IsTotal: true}},
					{Dim: &TableDim{DimID: 1, Name: "dim1", TypeID: 102, DimSize: 4}},
				},
				TableExprTxt: []TableExprText{
					{Expr: &TableExpr{ExprID: 0, Name: "expr0"}},
					{Expr: &TableExpr{ExprID: 1, Name: "expr1"}},
				},
				TableAccTxt: []TableAccText{
					{Acc: &TableAcc{AccID: 0, Name: "acc0"}},
					{Acc: &TableAcc{AccID: 1, Name: "acc1"}},
					{Acc: &TableAcc{AccID: 2, Name: "acc2", IsDerived: true}},
				},
			},
			{Table: TableDic{TableID: 1, Name: "scalarTable", Digest: "t-scalar"}},
			{
				Table:        TableDic{TableID: 2, Name: "noTypeTable", Digest: "t-notype", Rank: 1},
				TableDimsTxt: []TableDimsText{{Dim: &TableDim{DimID: 0, Name: "dim0", TypeID: 777}}},
			},
		},
	}
}
