// Package shape checks that a service payload has every field a record needs
// and decodes it into the typed record.
package shape

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"

	"github.com/jask/omppui/internal/omdb"
)

// Record names a payload kind with its own schema.
type Record string

const (
	RecordModel           Record = "model"
	RecordModelList       Record = "model_list"
	RecordRunText         Record = "run_text"
	RecordRunTextList     Record = "run_text_list"
	RecordWorksetText     Record = "workset_text"
	RecordWorksetTextList Record = "workset_text_list"
	RecordTypeText        Record = "type_text"
	RecordParamText       Record = "param_text"
	RecordTableText       Record = "table_text"
	RecordWordList        Record = "word_list"
	RecordRunState        Record = "run_state"
	RecordRunStateLog     Record = "run_state_log"
)

// Records lists all payload kinds.
var Records = []Record{
	RecordModel, RecordModelList,
	RecordRunText, RecordRunTextList,
	RecordWorksetText, RecordWorksetTextList,
	RecordTypeText, RecordParamText, RecordTableText,
	RecordWordList, RecordRunState, RecordRunStateLog,
}

// ErrShape is matched by every error returned for a payload that is not the expected record.
var ErrShape = errors.New("payload shape mismatch")

// Error describes why a payload was rejected.
type Error struct {
	Record Record
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Record, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrShape for every shape error.
func (e *Error) Is(target error) bool { return target == ErrShape }

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	schemas     map[Record]*jsonschema.Schema
	compileErr  error
)

func loadSchemas() (map[Record]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		out := make(map[Record]*jsonschema.Schema, len(Records))
		for _, rec := range Records {
			data, err := schemaFS.ReadFile("schemas/" + string(rec) + ".schema.json")
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", rec, err)
				return
			}
			compiler := jsonschema.NewCompiler()
			schema, err := compiler.Compile(data)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", rec, err)
				return
			}
			out[rec] = schema
		}
		schemas = out
	})
	return schemas, compileErr
}

// Validate checks that raw is JSON with every field required by rec.
// Only presence of fields is checked, not their types.
func Validate(rec Record, raw []byte) error {
	if len(raw) == 0 || !json.Valid(raw) {
		return &Error{Record: rec, Err: errors.New("not a JSON document")}
	}
	all, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[rec]
	if !ok {
		return fmt.Errorf("unknown record %q", rec)
	}
	result := schema.ValidateJSON(raw)
	if result.IsValid() {
		return nil
	}
	return &Error{Record: rec, Err: fmt.Errorf("schema validation failed: %v", result.Errors)}
}

// Decode validates raw against rec and unmarshals it into T.
func Decode[T any](rec Record, raw []byte) (T, error) {
	var v T
	if err := Validate(rec, raw); err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &Error{Record: rec, Err: fmt.Errorf("decode: %w", err)}
	}
	return v, nil
}

func is(rec Record, raw []byte) bool {
	return Validate(rec, raw) == nil
}

// IsModel reports whether raw is a model with name and digest fields.
// The empty model passes: use omdb.IsModel on the decoded value for content.
func IsModel(raw []byte) bool { return is(RecordModel, raw) }

// IsModelList reports whether raw is a list of models; an empty list passes.
func IsModelList(raw []byte) bool { return is(RecordModelList, raw) }

// IsRunText reports whether raw has every run text field.
func IsRunText(raw []byte) bool { return is(RecordRunText, raw) }

// IsRunTextList reports whether raw is a list of run texts; an empty list passes.
func IsRunTextList(raw []byte) bool { return is(RecordRunTextList, raw) }

// IsWorksetText reports whether raw has every workset text field.
func IsWorksetText(raw []byte) bool { return is(RecordWorksetText, raw) }

// IsWorksetTextList reports whether raw is a list of workset texts; an empty list passes.
func IsWorksetTextList(raw []byte) bool { return is(RecordWorksetTextList, raw) }

// IsTypeText reports whether raw is a model type.
func IsTypeText(raw []byte) bool { return is(RecordTypeText, raw) }

// IsParamText reports whether raw is a model parameter.
func IsParamText(raw []byte) bool { return is(RecordParamText, raw) }

// IsTableText reports whether raw is an output table.
func IsTableText(raw []byte) bool { return is(RecordTableText, raw) }

// IsWordList reports whether raw is a word list.
func IsWordList(raw []byte) bool { return is(RecordWordList, raw) }

// IsRunState reports whether raw is a run state.
func IsRunState(raw []byte) bool { return is(RecordRunState, raw) }

// IsRunStateLog reports whether raw is a run state with a log page.
func IsRunStateLog(raw []byte) bool { return is(RecordRunStateLog, raw) }

func DecodeModel(raw []byte) (omdb.ModelText, error) {
	return Decode[omdb.ModelText](RecordModel, raw)
}

func DecodeModelList(raw []byte) ([]omdb.ModelText, error) {
	return Decode[[]omdb.ModelText](RecordModelList, raw)
}

func DecodeRunText(raw []byte) (omdb.RunText, error) {
	return Decode[omdb.RunText](RecordRunText, raw)
}

func DecodeRunTextList(raw []byte) ([]omdb.RunText, error) {
	return Decode[[]omdb.RunText](RecordRunTextList, raw)
}

func DecodeWorksetText(raw []byte) (omdb.WorksetText, error) {
	return Decode[omdb.WorksetText](RecordWorksetText, raw)
}

func DecodeWorksetTextList(raw []byte) ([]omdb.WorksetText, error) {
	return Decode[[]omdb.WorksetText](RecordWorksetTextList, raw)
}

func DecodeTypeText(raw []byte) (omdb.TypeText, error) {
	return Decode[omdb.TypeText](RecordTypeText, raw)
}

func DecodeParamText(raw []byte) (omdb.ParamText, error) {
	return Decode[omdb.ParamText](RecordParamText, raw)
}

func DecodeTableText(raw []byte) (omdb.TableText, error) {
	return Decode[omdb.TableText](RecordTableText, raw)
}

func DecodeWordList(raw []byte) (omdb.WordList, error) {
	return Decode[omdb.WordList](RecordWordList, raw)
}

func DecodeRunState(raw []byte) (omdb.RunState, error) {
	return Decode[omdb.RunState](RecordRunState, raw)
}

func DecodeRunStateLog(raw []byte) (omdb.RunStateLog, error) {
	return Decode[omdb.RunStateLog](RecordRunStateLog, raw)
}
