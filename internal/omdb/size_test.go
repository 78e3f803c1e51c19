package omdb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamSizeByName(t *testing.T) {
	md := sampleModel()

	cases := []struct {
		name string
		want ParamSize
	}{
		{"startSeed", ParamSize{Rank: 0, DimTotal: 1, DimSize: []int{}}},
		{"ratio", ParamSize{Rank: 2, DimTotal: 12, DimSize: []int{3, 4}}},
		{"unknownDim", EmptyParamSize()},
		{"badRank", EmptyParamSize()},
		{"noSuchParam", EmptyParamSize()},
		{"", EmptyParamSize()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParamSizeByName(md, tc.name))
		})
	}
	require.Equal(t, 0, EmptyParamSize().DimTotal)
	require.Empty(t, EmptyParamSize().DimSize)
}

func TestTableSizeByName(t *testing.T) {
	md := sampleModel()

	sz := TableSizeByName(md, "ageTable")
	require.Equal(t, 2, sz.Rank)
	require.Equal(t, 2, sz.ExprCount)
	require.Equal(t, 3, sz.AllAccCount)
	require.Equal(t, 2, sz.AccCount)
	require.Equal(t, []int{4, 4}, sz.DimSize) // 3 enums + total, declared 4
	require.Equal(t, 16, sz.DimTotal)

	scalar := TableSizeByName(md, "scalarTable")
	require.Equal(t, 1, scalar.DimTotal)
	require.Empty(t, scalar.DimSize)

	require.Equal(t, EmptyTableSize(), TableSizeByName(md, "noTypeTable"))
	require.Equal(t, EmptyTableSize(), TableSizeByName(md, "missing"))
	require.Equal(t, EmptyTableSize(), TableSizeByName(EmptyModel(), "ageTable"))
}

func TestTableRankMismatch(t *testing.T) {
	md := sampleModel()
	md.TableTxt[0].Table.Rank = 3
	require.Equal(t, EmptyTableSize(), TableSizeByName(md, "ageTable"))
}

func TestCounts(t *testing.T) {
	md := sampleModel()
	require.Equal(t, 4, ParamCount(md))
	require.Equal(t, 3, OutTableCount(md))

	md.ParamTxt = append(md.ParamTxt, EmptyParamText())
	require.Equal(t, 0, ParamCount(md))
	require.Equal(t, 0, OutTableCount(EmptyModel()))
}

func TestParamRunSetByName(t *testing.T) {
	params := []ParamRunSet{
		{Name: "ageSex", SubCount: 1, Txt: []LangNote{{LangCode: "EN", Note: "age by sex"}}},
		{Name: "salaryAge", SubCount: 4, Txt: []LangNote{}},
	}
	prs := ParamRunSetByName(params, "ageSex")
	require.Equal(t, params[0], prs)

	prs.Txt[0].Note = "changed"
	require.Equal(t, "age by sex", params[0].Txt[0].Note)

	require.Equal(t, EmptyParamRunSet(), ParamRunSetByName(params, "missing"))
	require.Equal(t, EmptyParamRunSet(), ParamRunSetByName(nil, "ageSex"))
	require.Equal(t, EmptyParamRunSet(), ParamRunSetByName(params, ""))
}

func TestTableSizeOverflowIsEmpty(t *testing.T) {
	md := sampleModel()
	md.TableTxt[0].TableDimsTxt[1].Dim.DimSize = math.MaxInt/2 + 1
	require.Equal(t, EmptyTableSize(), TableSizeByName(md, "ageTable"))
}

func TestMulSize(t *testing.T) {
	got, ok := mulSize(3, 4)
	require.True(t, ok)
	require.Equal(t, 12, got)

	got, ok = mulSize(math.MaxInt, 1)
	require.True(t, ok)
	require.Equal(t, math.MaxInt, got)

	_, ok = mulSize(math.MaxInt/3+1, 3)
	require.False(t, ok)
}

func TestByNameReturnsCopies(t *testing.T) {
	md := sampleModel()

	p := ParamTextByName(md, "ratio")
	p.ParamDimsTxt[0].Dim.Name = "changed"
	p.ParamDimsTxt[1] = ParamDimsText{}
	require.Equal(t, "dim0", md.ParamTxt[0].ParamDimsTxt[0].Dim.Name)
	require.NotNil(t, md.ParamTxt[0].ParamDimsTxt[1].Dim)

	tt := TableTextByName(md, "ageTable")
	tt.TableDimsTxt[0].Dim.IsTotal = false
	tt.TableAccTxt[2].Acc.IsDerived = false
	tt.TableExprTxt[0].Expr.Name = "changed"
	require.True(t, md.TableTxt[0].TableDimsTxt[0].Dim.IsTotal)
	require.True(t, md.TableTxt[0].TableAccTxt[2].Acc.IsDerived)
	require.Equal(t, "expr0", md.TableTxt[0].TableExprTxt[0].Expr.Name)
	require.Equal(t, 2, TableSizeByName(md, "ageTable").AccCount)
}
