package debugui

import (
	"fmt"
	"reflect"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/world"
)

// fieldKind selects the widget used to show a field.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldInt
	fieldFloat
	fieldBool
	fieldStruct
	fieldStringer
	fieldFlags
	fieldModel
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	flagsType    = reflect.TypeFor[world.EntityFlags]()
	modelPtrType = reflect.TypeFor[*assets.Model]()
)

type FieldInfo struct {
	Name  string
	Index int
	Kind  fieldKind
}

// ReflectionCache memoizes the exported fields of struct types together with
// the widget kind of each one. It is only used from the UI goroutine.
type ReflectionCache struct {
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{Name: field.Name, Index: i, Kind: kindOf(field.Type)})
		}
	}
	rc.fields[t] = fields
	return fields
}

func kindOf(t reflect.Type) fieldKind {
	switch {
	case t == modelPtrType:
		return fieldModel
	case t == flagsType:
		return fieldFlags
	case t.Implements(stringerType):
		return fieldStringer
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fieldInt
	case reflect.Float32, reflect.Float64:
		return fieldFloat
	case reflect.Bool:
		return fieldBool
	case reflect.Struct:
		return fieldStruct
	}
	return fieldText
}

var globalReflectionCache = NewReflectionCache()
