// Package vet implements contractvet, an analyzer keeping the condition text of
// contract checks in sync with their predicates.
//
// Go cannot stringify an expression, so every check takes the text of its predicate as
// an explicit argument:
//
//	contract.Require(n > 0, "n > 0", "buffer size must be positive")
//
// The analyzer reports the cases where the two drift apart (CTR001), where the text is
// not a literal at all (CTR002) and where a predicate calls a function outside of an
// "if contract.Enabled" guard (CTR003). Such calls are evaluated even when checks are
// compiled out.
package vet

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/contract/internal/config"
)

const doc = `contractvet checks that the condition text passed to contract checks spells their predicate`

// Analyzer is the main entry point for the linter. The configuration file is taken
// from the -config flag.
var Analyzer = NewAnalyzer(nil)

// NewAnalyzer creates an analyzer with the given configuration. A nil configuration is
// read from the -config flag, or defaults when the flag is empty.
func NewAnalyzer(cfg *config.Config) *analysis.Analyzer {
	a := &analyzer{cfg: cfg}
	res := &analysis.Analyzer{
		Name:     "contractvet",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      a.run,
	}
	if cfg == nil {
		res.Flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	}

	return res
}

type analyzer struct {
	cfg        *config.Config
	configPath string
}

func (a *analyzer) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	if a.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(a.configPath)
}

func (a *analyzer) run(pass *analysis.Pass) (any, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	disabled := map[Rule]bool{}
	for _, name := range cfg.Vet.Disabled {
		var r Rule
		if err := r.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("disabled rules: %w", err)
		}
		disabled[r] = true
	}

	c := &checker{
		pass:     pass,
		known:    newKnownChecks(pass, cfg.Vet.Functions),
		disabled: disabled,
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}
	pector.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		call, ok := c.known.match(node.(*ast.CallExpr))
		if !ok {
			return true
		}

		c.checkCall(call, stack)
		return true
	})

	return nil, nil
}

type checker struct {
	pass     *analysis.Pass
	known    *knownChecks
	disabled map[Rule]bool
}

func (c *checker) report(rule Rule, node ast.Node, fixes []analysis.SuggestedFix, format string, a ...any) {
	if c.disabled[rule] {
		return
	}

	c.pass.Report(analysis.Diagnostic{
		Pos:            node.Pos(),
		End:            node.End(),
		Category:       rule.Code(),
		Message:        rule.Code() + ": " + fmt.Sprintf(format, a...),
		SuggestedFixes: fixes,
	})
}

func (c *checker) checkCall(call *checkCall, stack []ast.Node) {
	want := c.predicateText(call)

	lit, ok := ast.Unparen(call.cond).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		c.report(CTR002CondNotLiteral, call.cond, nil,
			"condition text of %s must be a string literal, use %s", call.name, quoteCond(want))
	} else {
		c.checkText(call, lit, want)
	}

	if !guarded(c.pass.TypesInfo, stack) {
		c.checkPredicateCalls(call)
	}
}

// predicateText is the expected condition text. Range checks spell their interval as
// "lo <= v && v <= hi".
func (c *checker) predicateText(call *checkCall) string {
	if call.pred != nil {
		return c.print(call.pred)
	}

	v, lo, hi := c.print(call.bounds[0]), c.print(call.bounds[1]), c.print(call.bounds[2])
	return lo + " <= " + v + " && " + v + " <= " + hi
}

func (c *checker) checkText(call *checkCall, lit *ast.BasicLit, want string) {
	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}

	if normalize(text) == normalize(want) {
		return
	}

	fix := analysis.SuggestedFix{
		Message: "Replace condition text with the predicate",
		TextEdits: []analysis.TextEdit{{
			Pos:     lit.Pos(),
			End:     lit.End(),
			NewText: []byte(quoteCond(want)),
		}},
	}
	c.report(CTR001CondTextMismatch, lit, []analysis.SuggestedFix{fix},
		"condition text %s of %s does not match predicate %s", lit.Value, call.name, want)
}

func (c *checker) checkPredicateCalls(call *checkCall) {
	for _, e := range call.predicate() {
		c.checkExprCalls(call, e)
	}
}

func (c *checker) checkExprCalls(call *checkCall, e ast.Expr) {
	ast.Inspect(e, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.CallExpr:
			if c.isPureCall(v) {
				return true
			}
			c.report(CTR003UnguardedCallInPredicate, v, nil,
				"predicate of %s calls %s, wrap the check into an if contract.Enabled block", call.name, c.print(v.Fun))
			return false
		}
		return true
	})
}

// isPureCall reports whether a call in a predicate costs nothing worth guarding: type
// conversions and builtins.
func (c *checker) isPureCall(call *ast.CallExpr) bool {
	if tv, ok := c.pass.TypesInfo.Types[call.Fun]; ok && tv.IsType() {
		return true
	}

	var id *ast.Ident
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun
	case *ast.SelectorExpr:
		id = fun.Sel
	default:
		return false
	}
	_, ok := c.pass.TypesInfo.Uses[id].(*types.Builtin)
	return ok
}

func (c *checker) print(e ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, c.pass.Fset, e); err != nil {
		return types.ExprString(e)
	}
	return buf.String()
}

// guarded reports whether the innermost enclosing statements include the body of an
// "if contract.Enabled" statement.
func guarded(info *types.Info, stack []ast.Node) bool {
	for i := len(stack) - 1; i > 0; i-- {
		ifStmt, ok := stack[i-1].(*ast.IfStmt)
		if !ok || stack[i] != ifStmt.Body {
			continue
		}
		if isEnabledGuard(info, ifStmt.Cond) {
			return true
		}
	}

	return false
}

// normalize brings an expression text to its printed form. Texts that do not parse are
// compared as is, with spaces collapsed.
func normalize(text string) string {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return strings.Join(strings.Fields(text), " ")
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return text
	}
	return buf.String()
}

func quoteCond(text string) string {
	if strings.Contains(text, `"`) && strconv.CanBackquote(text) {
		return "`" + text + "`"
	}

	return strconv.Quote(text)
}
