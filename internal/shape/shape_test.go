package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/omppui/internal/omdb"
)

const runJSON = `{
	"ModelName": "modelOne", "ModelDigest": "D1", "Name": "r1", "Digest": "g1",
	"SubCount": 1, "Status": "s", "CreateDateTime": "2020-01-01 00:00:00.000",
	"Param": [{"Name": "ageSex", "SubCount": 1, "Txt": []}],
	"Txt": [{"LangCode": "EN", "Descr": "first run", "Note": ""}]
}`

func TestSchemasCompile(t *testing.T) {
	all, err := loadSchemas()
	require.NoError(t, err)
	require.Len(t, all, len(Records))
}

func TestIsModel(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"model", `{"Model": {"Name": "modelOne", "Digest": "D1"}}`, true},
		{"empty model", `{"Model": {"Name": "", "Digest": ""}}`, true},
		{"types ignored", `{"Model": {"Name": 1, "Digest": null}}`, true},
		{"no digest", `{"Model": {"Name": "modelOne"}}`, false},
		{"no model", `{"Name": "modelOne", "Digest": "D1"}`, false},
		{"model not object", `{"Model": "modelOne"}`, false},
		{"null", `null`, false},
		{"array", `[]`, false},
		{"garbage", `{"Model":`, false},
		{"empty", ``, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsModel([]byte(tc.raw)))
		})
	}
}

func TestListValidators(t *testing.T) {
	require.True(t, IsModelList([]byte(`[]`)))
	require.True(t, IsModelList([]byte(`[{"Model": {"Name": "a", "Digest": "1"}}]`)))
	require.False(t, IsModelList([]byte(`[{"Model": {"Name": "a", "Digest": "1"}}, {"Model": {}}]`)))
	require.False(t, IsModelList([]byte(`{}`)))

	require.True(t, IsRunTextList([]byte(`[]`)))
	require.True(t, IsRunTextList([]byte(`[`+runJSON+`]`)))
	require.False(t, IsRunTextList([]byte(`[`+runJSON+`, {"Name": "r2"}]`)))

	require.True(t, IsWorksetTextList([]byte(`[]`)))
	require.False(t, IsWorksetTextList([]byte(`null`)))
}

func TestIsRunText(t *testing.T) {
	require.True(t, IsRunText([]byte(runJSON)))
	require.False(t, IsRunText([]byte(`{"ModelName": "m", "ModelDigest": "d", "Name": "r", "Digest": "g", "SubCount": 1, "Status": "s", "Param": {}, "Txt": []}`)))
	require.False(t, IsRunText([]byte(`{"ModelName": "m", "ModelDigest": "d", "Name": "r", "Digest": "g", "SubCount": 1, "Param": [], "Txt": []}`)))
}

func TestIsWorksetText(t *testing.T) {
	ws := `{"ModelName": "m", "ModelDigest": "d", "Name": "Default", "IsReadonly": true, "BaseRunDigest": "", "Param": [], "Txt": []}`
	require.True(t, IsWorksetText([]byte(ws)))
	require.False(t, IsWorksetText([]byte(`{"ModelName": "m", "ModelDigest": "d", "Name": "Default", "Param": [], "Txt": []}`)))
}

func TestMetadataValidators(t *testing.T) {
	require.True(t, IsTypeText([]byte(`{"Type": {"TypeId": 101, "Name": "sex", "Digest": "x", "DicId": 2}, "TypeEnumTxt": []}`)))
	require.False(t, IsTypeText([]byte(`{"Type": {"TypeId": 101, "Name": "sex", "Digest": "x"}}`)))
	require.True(t, IsParamText([]byte(`{"Param": {"ParamId": 0, "Name": "ageSex", "Digest": "x"}}`)))
	require.False(t, IsParamText([]byte(`{"Param": {"Name": "ageSex", "Digest": "x"}}`)))
	require.True(t, IsTableText([]byte(`{"Table": {"TableId": 0, "Name": "salarySex", "Digest": "x"}}`)))
	require.False(t, IsTableText([]byte(`{"Table": {"TableId": 0, "Name": "salarySex", "Digest": "x"}, "TableAccTxt": {}}`)))
	require.True(t, IsWordList([]byte(`{"ModelName": "m", "ModelDigest": "d", "LangCode": "EN", "LangWords": [], "ModelWords": []}`)))
	require.False(t, IsWordList([]byte(`{"ModelName": "m", "ModelDigest": "d", "LangCode": "EN"}`)))
}

func TestRunStateValidators(t *testing.T) {
	rs := `"ModelName": "m", "ModelDigest": "d", "RunStamp": "s1", "SubmitStamp": "", "IsFinal": false, "UpdateDateTime": ""`
	require.True(t, IsRunState([]byte(`{`+rs+`}`)))
	require.False(t, IsRunStateLog([]byte(`{`+rs+`}`)))
	require.True(t, IsRunStateLog([]byte(`{`+rs+`, "Offset": 0, "Size": 1, "TotalSize": 1, "Lines": ["started"]}`)))

	rsl, err := DecodeRunStateLog([]byte(`{` + rs + `, "Offset": 0, "Size": 1, "TotalSize": 1, "Lines": ["started"]}`))
	require.NoError(t, err)
	require.Equal(t, "s1", omdb.RunStateOf(rsl).RunStamp)
	require.Equal(t, []string{"started"}, rsl.Lines)
}

func TestDecodeRunText(t *testing.T) {
	rt, err := DecodeRunText([]byte(runJSON))
	require.NoError(t, err)
	require.Equal(t, "r1", rt.Name)
	require.Equal(t, 1, rt.SubCount)
	require.True(t, omdb.IsNotEmptyRunText(rt))
	require.Equal(t, "first run", omdb.DescrOfTxt(rt.Txt))
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeModel([]byte(`{"Model": {"Name": "m"}}`))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrShape))
	var se *Error
	require.True(t, errors.As(err, &se))
	require.Equal(t, RecordModel, se.Record)

	// present but of the wrong type: passes the shape check, fails typed decode
	_, err = DecodeModel([]byte(`{"Model": {"Name": 1, "Digest": "D1"}}`))
	require.ErrorIs(t, err, ErrShape)

	_, err = DecodeRunTextList([]byte(`not json`))
	require.ErrorIs(t, err, ErrShape)
}

func TestDecodeModelKeepsMetadata(t *testing.T) {
	raw := `{
		"Model": {"ModelId": 1, "Name": "modelOne", "Digest": "D1"},
		"DescrNote": {"LangCode": "EN", "Descr": "First model", "Note": ""},
		"TypeTxt": [{"Type": {"TypeId": 101, "Name": "sex", "Digest": "t1", "DicId": 2},
			"TypeEnumTxt": [{"Enum": {"EnumId": 0, "Name": "F"}}, {"DescrNote": {"Descr": "broken"}}]}],
		"ParamTxt": [{"Param": {"ParamId": 0, "Name": "bySex", "Digest": "p1", "Rank": 1},
			"ParamDimsTxt": [{"Dim": {"DimId": 0, "Name": "dim0", "TypeId": 101}}]}],
		"TableTxt": []
	}`
	md, err := DecodeModel([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "modelOne: First model", omdb.ModelTitle(md))
	require.Equal(t, []string{"F", ""}, omdb.EnumCodeArray(md.TypeTxt[0]))
	require.Equal(t, omdb.ParamSize{Rank: 1, DimTotal: 2, DimSize: []int{2}}, omdb.ParamSizeByName(md, "bySex"))
}
