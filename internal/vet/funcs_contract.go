package vet

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/contract/internal/config"
)

// ContractPath is the import path of the contract package.
const ContractPath = "github.com/sirkon/contract"

type packagedFunc struct {
	pkgPath string
	recv    string
	name    string
}

// checkCall is a recognized call to a check function.
type checkCall struct {
	call *ast.CallExpr
	name string

	// pred is the predicate argument, nil for range checks.
	pred ast.Expr

	// bounds are the value, lower and upper bound arguments of a range check.
	bounds []ast.Expr

	cond ast.Expr
}

// knownChecks recognizes calls to check functions. Every exported function of the
// contract package counts, as does every configured extra function. The signature must
// carry a "cond string" parameter plus either "ok bool" or the "v, lo, hi" range triple.
type knownChecks struct {
	known map[packagedFunc]struct{}
	pass  *analysis.Pass
}

func newKnownChecks(pass *analysis.Pass, custom []config.Reference) *knownChecks {
	known := make(map[packagedFunc]struct{}, len(custom))
	for _, ref := range custom {
		known[packagedFunc{pkgPath: ref.Package, recv: ref.Type, name: ref.Name}] = struct{}{}
	}

	return &knownChecks{known: known, pass: pass}
}

func (c *knownChecks) match(call *ast.CallExpr) (*checkCall, bool) {
	fn, ok := typeutil.Callee(c.pass.TypesInfo, call).(*types.Func)
	if !ok {
		return nil, false
	}
	fn = fn.Origin()

	pkg := fn.Pkg()
	if pkg == nil {
		return nil, false
	}

	sig := fn.Type().(*types.Signature)
	key := packagedFunc{pkgPath: pkg.Path(), name: fn.Name()}
	if recv := sig.Recv(); recv != nil {
		key.recv = recvName(recv.Type())
	}

	if _, ok := c.known[key]; !ok {
		if key.pkgPath != ContractPath || key.recv != "" || !fn.Exported() {
			return nil, false
		}
	}

	return bindArgs(call, fn.Name(), sig)
}

func bindArgs(call *ast.CallExpr, name string, sig *types.Signature) (*checkCall, bool) {
	if sig.Variadic() || len(call.Args) != sig.Params().Len() {
		return nil, false
	}

	res := &checkCall{call: call, name: name}
	var v, lo, hi ast.Expr
	for i := range sig.Params().Len() {
		p := sig.Params().At(i)
		arg := call.Args[i]
		switch p.Name() {
		case "ok":
			if isBasic(p.Type(), types.Bool) {
				res.pred = arg
			}
		case "cond":
			if isBasic(p.Type(), types.String) {
				res.cond = arg
			}
		case "v":
			v = arg
		case "lo":
			lo = arg
		case "hi":
			hi = arg
		}
	}

	if res.cond == nil {
		return nil, false
	}
	if res.pred == nil {
		if v == nil || lo == nil || hi == nil {
			return nil, false
		}
		res.bounds = []ast.Expr{v, lo, hi}
	}

	return res, true
}

// predicate returns the arguments the check condition is computed from.
func (c *checkCall) predicate() []ast.Expr {
	if c.pred != nil {
		return []ast.Expr{c.pred}
	}
	return c.bounds
}

func isBasic(t types.Type, kind types.BasicKind) bool {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	switch kind {
	case types.Bool:
		return b.Info()&types.IsBoolean != 0
	case types.String:
		return b.Info()&types.IsString != 0
	default:
		return b.Kind() == kind
	}
}

func recvName(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	if n, ok := t.(*types.Named); ok {
		return n.Origin().Obj().Name()
	}

	return ""
}

// isEnabledGuard reports whether the expression is the contract.Enabled constant or a
// conjunction starting with it.
func isEnabledGuard(info *types.Info, e ast.Expr) bool {
	switch v := ast.Unparen(e).(type) {
	case *ast.BinaryExpr:
		return v.Op == token.LAND && (isEnabledGuard(info, v.X) || isEnabledGuard(info, v.Y))
	case *ast.SelectorExpr:
		return isEnabledConst(info.Uses[v.Sel])
	case *ast.Ident:
		return isEnabledConst(info.Uses[v])
	default:
		return false
	}
}

func isEnabledConst(obj types.Object) bool {
	c, ok := obj.(*types.Const)
	if !ok || c.Pkg() == nil {
		return false
	}

	return c.Pkg().Path() == ContractPath && c.Name() == "Enabled"
}
