package store

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/omppui/internal/omdb"
)

func model(name, digest string) omdb.ModelText {
	md := omdb.EmptyModel()
	md.Model = omdb.ModelDic{ModelID: 1, Name: name, Digest: digest, DefaultLangCode: "EN"}
	return md
}

func run(md omdb.ModelText, name, digest string) omdb.RunText {
	return omdb.RunText{
		ModelName:      md.Model.Name,
		ModelDigest:    md.Model.Digest,
		Name:           name,
		Digest:         digest,
		SubCount:       1,
		SubStarted:     1,
		SubCompleted:   1,
		CreateDateTime: "2021-03-04 10:00:00.000",
		Status:         omdb.RunSuccess,
		UpdateDateTime: "2021-03-04 10:05:00.000",
		Param:          []omdb.ParamRunSet{{Name: "ageSex", SubCount: 1, Txt: []omdb.LangNote{}}},
		Txt:            []omdb.DescrNote{{LangCode: "EN", Descr: name}},
	}
}

func workset(md omdb.ModelText, name string) omdb.WorksetText {
	return omdb.WorksetText{
		ModelName:      md.Model.Name,
		ModelDigest:    md.Model.Digest,
		Name:           name,
		IsReadonly:     true,
		UpdateDateTime: "2021-03-04 11:00:00.000",
		Param:          []omdb.ParamRunSet{{Name: "ageSex", SubCount: 1, Txt: []omdb.LangNote{}}},
		Txt:            []omdb.DescrNote{},
	}
}

func words(md omdb.ModelText) omdb.WordList {
	return omdb.WordList{
		ModelName:   md.Model.Name,
		ModelDigest: md.Model.Digest,
		LangCode:    "EN",
		LangWords:   []omdb.CodeLabel{{Code: "Yes", Label: "Yes"}},
		ModelWords:  []omdb.CodeLabel{{Code: "Sub-value", Label: "Sub-value"}},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

type logEntry struct {
	Message string
	Fields  map[string]any
}

type logCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *logCapture) Entries() []logEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []logEntry
	for _, line := range strings.Split(c.buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		payload := map[string]any{}
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			continue
		}
		msg, _ := payload["message"].(string)
		if msg == "" {
			msg, _ = payload["msg"].(string)
		}
		out = append(out, logEntry{Message: msg, Fields: payload})
	}
	return out
}
