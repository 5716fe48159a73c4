package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asString(op string, v runtime.Value) (*runtime.String, error) {
	s, ok := v.(*runtime.String)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "string", runtime.Repr(v))
	}
	return s, nil
}

// registerStrings installs string-length/string-ref/string-append/
// substring/string->list/list->string, the mutable-string operations
// the value model's String type (internal/runtime/strings.go) exists
// to support but the original builtin table never exercised (§4.6).
func registerStrings(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "string-length", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		s, err := asString("string-length", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewIntegerFromInt64(ec.Store, int64(s.Len())), nil
	})

	def(st, envt, "string-ref", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		s, err := asString("string-ref", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("string-ref", args[1])
		if err != nil {
			return nil, err
		}
		r, ok := s.Ref(i)
		if !ok {
			return nil, schemeerrors.NewWrongArgType("string-ref", "index in range", runtime.Repr(args[1]))
		}
		return runtime.NewCharacter(ec.Store, r), nil
	})

	def(st, envt, "string-append", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		out := ""
		for _, a := range args {
			s, err := asString("string-append", a)
			if err != nil {
				return nil, err
			}
			out += s.Text()
		}
		return runtime.NewString(ec.Store, out), nil
	})

	def(st, envt, "substring", 2, 3, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		s, err := asString("substring", args[0])
		if err != nil {
			return nil, err
		}
		start, err := asIndex("substring", args[1])
		if err != nil {
			return nil, err
		}
		end := s.Len()
		if len(args) == 3 {
			end, err = asIndex("substring", args[2])
			if err != nil {
				return nil, err
			}
		}
		if start < 0 || end > s.Len() || start > end {
			return nil, schemeerrors.NewWrongArgType("substring", "indices in range", runtime.Repr(args[1]))
		}
		runes := make([]rune, 0, end-start)
		for i := start; i < end; i++ {
			r, _ := s.Ref(i)
			runes = append(runes, r)
		}
		return runtime.NewString(ec.Store, string(runes)), nil
	})

	def(st, envt, "string->list", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		s, err := asString("string->list", args[0])
		if err != nil {
			return nil, err
		}
		items := make([]runtime.Value, s.Len())
		for i := range items {
			r, _ := s.Ref(i)
			items[i] = runtime.NewCharacter(ec.Store, r)
		}
		return runtime.SliceToList(ec.Store, items), nil
	})

	def(st, envt, "list->string", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		items, ok := runtime.ListToSlice(args[0])
		if !ok {
			return nil, schemeerrors.NewWrongArgType("list->string", "proper list", runtime.Repr(args[0]))
		}
		runes := make([]rune, len(items))
		for i, item := range items {
			c, err := asChar("list->string", item)
			if err != nil {
				return nil, err
			}
			runes[i] = c.Rune()
		}
		return runtime.NewString(ec.Store, string(runes)), nil
	})
}
