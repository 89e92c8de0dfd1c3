// Package introspect derives option descriptors from a callable's signature.
//
// Go reflection exposes a function's parameter count and types but not its
// parameter names or defaults, so those come from explicit Param specs
// supplied at registration time. The introspector cross-checks the specs
// against the reflected signature: the counts must match and every parameter
// type must belong to the supported primitive set.
package introspect

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/serumstudio/hype.cli/pkg/command"
)

// Param names one parameter of a command callable and optionally supplies
// its default value and a short flag alias. A parameter with a nil Default
// is a required option.
type Param struct {
	Name    string
	Default any
	Short   string
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Signature produces one option descriptor per declared parameter of fn, in
// declaration order. It is a pure function of fn's type and the given specs.
func Signature(fn any, params []Param) ([]command.Option, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("introspect: %T is not a function", fn)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("introspect: variadic functions are not supported")
	}
	if err := checkReturns(t); err != nil {
		return nil, err
	}
	if t.NumIn() != len(params) {
		return nil, fmt.Errorf("introspect: function takes %d parameters but %d were named", t.NumIn(), len(params))
	}

	options := make([]command.Option, 0, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		opt, err := paramOption(t.In(i), params[i])
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

func paramOption(t reflect.Type, p Param) (command.Option, error) {
	if p.Name == "" {
		return command.Option{}, fmt.Errorf("introspect: parameter name must not be empty")
	}

	kind, ok := kindOf(t)
	if !ok {
		return command.Option{}, fmt.Errorf("introspect: parameter '%s' has unsupported type %s", p.Name, t)
	}

	if p.Default != nil && !reflect.TypeOf(p.Default).AssignableTo(t) {
		return command.Option{}, fmt.Errorf("introspect: default for parameter '%s' is %T, want %s", p.Name, p.Default, t)
	}

	if p.Short != "" && utf8.RuneCountInString(p.Short) != 1 {
		return command.Option{}, fmt.Errorf("introspect: short alias '%s' for parameter '%s' must be a single character", p.Short, p.Name)
	}

	return command.Option{
		Flag:     FlagName(p.Name),
		Dest:     p.Name,
		Short:    p.Short,
		Required: p.Default == nil,
		Default:  p.Default,
		Kind:     kind,
	}, nil
}

// FlagName converts a parameter name to its flag form: long for multi-rune
// names, short for single-rune ones.
func FlagName(param string) string {
	if utf8.RuneCountInString(param) > 1 {
		return "--" + param
	}
	return "-" + param
}

// kindOf maps a reflected parameter type to the supported primitive set.
func kindOf(t reflect.Type) (command.Kind, bool) {
	switch t.Kind() {
	case reflect.String:
		return command.KindString, true
	case reflect.Int:
		return command.KindInt, true
	case reflect.Float64:
		return command.KindFloat, true
	case reflect.Bool:
		return command.KindBool, true
	default:
		return 0, false
	}
}

// checkReturns allows a callable to return nothing or a single error, which
// the dispatcher propagates. No other return value is captured. The return
// type must be the error interface itself: a concrete type that happens to
// implement error has no nil value for the dispatcher to test against.
func checkReturns(t reflect.Type) error {
	switch t.NumOut() {
	case 0:
		return nil
	case 1:
		if t.Out(0) == errType {
			return nil
		}
		return fmt.Errorf("introspect: return type %s is not error", t.Out(0))
	default:
		return fmt.Errorf("introspect: functions may return at most one error value")
	}
}

// FuncName recovers the bare name of a function, used when a command is
// registered without an explicit name.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Method values carry a "-fm" suffix.
	name = strings.TrimSuffix(name, "-fm")
	// Anonymous functions only have synthetic names like "func2".
	if anonFuncName.MatchString(name) {
		return ""
	}
	return name
}

var anonFuncName = regexp.MustCompile(`^(func)?\d+(\.\d+)*$`)
