package sqltemplate

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kisielk/sqlstruct"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindAssoc
	KindOmit
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindAssoc:  "assoc",
	KindOmit:   "omit",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsArray reports whether the kind is a list or an associative array.
func (k Kind) IsArray() bool {
	return k == KindList || k == KindAssoc
}

// TimeLayout is the layout used when a time.Time argument is converted to a
// string value.
const TimeLayout = "2006-01-02 15:04:05"

// Value is a single template argument. The zero Value is NULL.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	elems []Value
	pairs []Pair
}

// Pair is one key/value entry of an associative array. Entries are rendered
// in the order they are given.
type Pair struct {
	Key   string
	Value Value
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Null returns the NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list array holding elems in order.
func List(elems ...Value) Value { return Value{kind: KindList, elems: elems} }

// Assoc returns an associative array holding pairs in order.
func Assoc(pairs ...Pair) Value { return Value{kind: KindAssoc, pairs: pairs} }

// Omit returns the omit sentinel. Binding it to a placeholder removes the
// enclosing conditional block from the rendered query. Every call returns an
// equivalent value.
func Omit() Value { return Value{kind: KindOmit} }

var (
	valueType = reflect.TypeOf(Value{})
	timeType  = reflect.TypeOf(time.Time{})
	uuidType  = reflect.TypeOf(uuid.UUID{})
)

// ValueOf converts a native Go value into a Value.
//
// nil and nil pointers become NULL; booleans, integers, floats, strings and
// byte slices map to their scalar kinds; slices and arrays become lists; maps
// keyed by strings become associative arrays sorted by key, and maps keyed by
// integers become lists when the keys are exactly 0..n-1 and associative
// arrays otherwise. uuid.UUID and time.Time are converted to strings. Any
// other type yields an ErrUndefinedType.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case []byte:
		return String(string(val)), nil
	case int:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case float64:
		return Float(val), nil
	case uuid.UUID:
		return String(val.String()), nil
	case time.Time:
		return String(val.Format(TimeLayout)), nil
	}
	return valueOfReflect(reflect.ValueOf(v))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Type() {
	case valueType:
		return rv.Interface().(Value), nil
	case timeType:
		return String(rv.Interface().(time.Time).Format(TimeLayout)), nil
	case uuidType:
		return String(rv.Interface().(uuid.UUID).String()), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return valueOfReflect(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, NewErrUndefinedType(rv.Type().String() + " overflowing int64")
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(string(rv.Bytes())), nil
		}
		return listOf(rv)
	case reflect.Array:
		return listOf(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return mapOf(rv)
	}
	return Value{}, NewErrUndefinedType(rv.Type().String())
}

func listOf(rv reflect.Value) (Value, error) {
	elems := make([]Value, rv.Len())
	for i := range elems {
		e, err := valueOfReflect(rv.Index(i))
		if err != nil {
			return Value{}, err
		}
		elems[i] = e
	}
	return List(elems...), nil
}

func mapOf(rv reflect.Value) (Value, error) {
	keys := rv.MapKeys()
	switch rv.Type().Key().Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			e, err := valueOfReflect(rv.MapIndex(k))
			if err != nil {
				return Value{}, err
			}
			pairs[i] = Pair{Key: k.String(), Value: e}
		}
		return Assoc(pairs...), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intMapOf(rv, keys, func(k reflect.Value) int64 { return k.Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return intMapOf(rv, keys, func(k reflect.Value) int64 { return int64(k.Uint()) })
	}
	return Value{}, NewErrUndefinedType(rv.Type().String())
}

func intMapOf(rv reflect.Value, keys []reflect.Value, key func(reflect.Value) int64) (Value, error) {
	sort.Slice(keys, func(i, j int) bool { return key(keys[i]) < key(keys[j]) })

	sequential := true
	elems := make([]Value, len(keys))
	for i, k := range keys {
		if key(k) != int64(i) {
			sequential = false
		}
		e, err := valueOfReflect(rv.MapIndex(k))
		if err != nil {
			return Value{}, err
		}
		elems[i] = e
	}
	if sequential {
		return List(elems...), nil
	}

	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: strconv.FormatInt(key(k), 10), Value: elems[i]}
	}
	return Assoc(pairs...), nil
}

// Columns converts a struct into an associative array keyed by column name,
// suitable for a `SET ?a` placeholder.
//
// Fields are mapped to column names using the struct tag named by
// sqlstruct.TagName; if absent, the field name is converted to snake_case.
// Unexported fields and fields tagged "-" are skipped.
func Columns(model any) (Value, error) {
	val := reflect.ValueOf(model)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return Value{}, NewErrUndefinedType(fmt.Sprintf("%T", model))
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return Value{}, NewErrUndefinedType(fmt.Sprintf("%T", model))
	}

	typ := val.Type()
	var pairs []Pair
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		// Skip unexported fields
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get(sqlstruct.TagName)
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sqlstruct.ToSnakeCase(f.Name)
		}
		v, err := valueOfReflect(val.Field(i))
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: tag, Value: v})
	}
	return Assoc(pairs...), nil
}
