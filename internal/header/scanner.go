package header

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// Declaration is a Register or IntervalRegister declaration found in a header
type Declaration struct {
	Name string
	Kind Kind
	File string
	Line int
	Args []string
}

// Address returns the first constructor argument, which holds the address.
func (d Declaration) Address() string {
	if len(d.Args) == 0 {
		return ""
	}
	return d.Args[0]
}

// Inventory lists the register declarations of one header
type Inventory struct {
	File         string
	Declarations []Declaration

	// SyntaxErrors is set when the C++ parse tree contains error nodes
	SyntaxErrors bool
}

// Lookup returns the first declaration of name.
func (inv Inventory) Lookup(name string) (Declaration, bool) {
	for _, d := range inv.Declarations {
		if d.Name == name {
			return d, true
		}
	}
	return Declaration{}, false
}

// Mismatch is an assignment whose declaration does not carry the expected address
type Mismatch struct {
	Name     string
	Line     int
	Expected string
	Found    string
}

// Verify checks that every declared register in values carries its new address.
// Names the header does not declare are skipped.
func (inv Inventory) Verify(values []Assignment) []Mismatch {
	var out []Mismatch
	for _, a := range values {
		d, ok := inv.Lookup(a.Name)
		if !ok {
			continue
		}
		if d.Address() != a.Value {
			out = append(out, Mismatch{Name: a.Name, Line: d.Line, Expected: a.Value, Found: d.Address()})
		}
	}
	return out
}

// Scanner uses Tree-sitter's C++ grammar to find register declarations
type Scanner struct {
	parser *sitter.Parser
}

// NewScanner creates a Scanner
func NewScanner() *Scanner {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())
	return &Scanner{parser: parser}
}

// Scan parses content and collects its register declarations in file order.
func (s *Scanner) Scan(ctx context.Context, file string, content []byte) (Inventory, error) {
	inv := Inventory{File: file}

	tree, err := s.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return inv, fmt.Errorf("parsing %s: %w", file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	inv.SyntaxErrors = root.HasError()
	s.walkTree(root, content, &inv)

	return inv, nil
}

func (s *Scanner) walkTree(node *sitter.Node, source []byte, inv *Inventory) {
	if node == nil {
		return
	}

	if node.Type() == "declaration" {
		if decl, ok := s.extractRegister(node, source); ok {
			decl.File = inv.File
			inv.Declarations = append(inv.Declarations, decl)
			return
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		s.walkTree(node.NamedChild(i), source, inv)
	}
}

func (s *Scanner) extractRegister(node *sitter.Node, source []byte) (Declaration, bool) {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return Declaration{}, false
	}

	var kind Kind
	switch unqualified(typeNode.Content(source)) {
	case singleKeyword:
		kind = KindSingle
	case intervalKeyword:
		kind = KindInterval
	default:
		return Declaration{}, false
	}

	declarator := node.ChildByFieldName("declarator")
	if declarator == nil {
		return Declaration{}, false
	}

	// NAME(args) parses as an init_declarator when an argument is a literal
	// and as a function_declarator when every argument looks like a type.
	var nameNode, argsNode *sitter.Node
	switch declarator.Type() {
	case "init_declarator":
		nameNode = declarator.ChildByFieldName("declarator")
		argsNode = declarator.ChildByFieldName("value")
	case "function_declarator":
		nameNode = declarator.ChildByFieldName("declarator")
		argsNode = declarator.ChildByFieldName("parameters")
	default:
		return Declaration{}, false
	}
	if nameNode == nil {
		return Declaration{}, false
	}

	return Declaration{
		Name: nameNode.Content(source),
		Kind: kind,
		Line: int(declarator.StartPoint().Row) + 1,
		Args: arguments(argsNode, source),
	}, true
}

func arguments(node *sitter.Node, source []byte) []string {
	if node == nil {
		return nil
	}
	var args []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		args = append(args, strings.TrimSpace(child.Content(source)))
	}
	return args
}

func unqualified(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}
	return strings.TrimSpace(name)
}
