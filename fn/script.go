package fn

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Expr evaluates an expr-lang program against the invocation. The program
// sees value (the piped input), target, path, and args.
//
//	name.expr('len(value) > 3 ? value : "n/a"')
func Expr() Function {
	return New("expr", func(inv *Invocation) (any, error) {
		src, ok := inv.Args[0].(string)
		if !ok {
			return nil, fmt.Errorf("expr program must be a string, got %T", inv.Args[0])
		}
		env := map[string]any{
			"value":  inv.Input,
			"target": inv.Target,
			"path":   inv.Path,
			"args":   inv.Args[1:],
		}
		prg, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return nil, err
		}
		return expr.Run(prg, env)
	}).WithAliases("script").WithArity(1, -1)
}
