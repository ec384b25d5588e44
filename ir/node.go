package ir

// Node is one vertex of a parsed template tree. It works as a tagged union:
// which of the remaining fields carry meaning depends on Kind.
//
// Children of Expression, Statement and attribute-value nodes are always
// Tokens or Extension nodes, never other semantic kinds. Token nodes are
// leaves and have no children of their own.
type Node struct {
	Kind     Kind
	Source   *SourceSpan
	Children []*Node

	// Token leaves
	Content string
	Lang    Lang

	// HtmlAttribute and attribute-value nodes
	Name   string
	Prefix string
	Suffix string

	// Checksum nodes
	FileName string
	GUID     string
	Hash     string

	// Extension payload, opaque to this package
	Ext any
}

func Document(children ...*Node) *Node {
	return &Node{Kind: KindDocument, Children: children}
}

func HostToken(content string) *Node {
	return &Node{Kind: KindToken, Lang: LangHost, Content: content}
}

func MarkupToken(content string) *Node {
	return &Node{Kind: KindToken, Lang: LangMarkup, Content: content}
}

func Expression(src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindExpression, Source: src, Children: children}
}

func Statement(src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindStatement, Source: src, Children: children}
}

func HtmlContent(src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindHtmlContent, Source: src, Children: children}
}

func HtmlAttribute(name, prefix, suffix string, src *SourceSpan, children ...*Node) *Node {
	return &Node{
		Kind:     KindHtmlAttribute,
		Name:     name,
		Prefix:   prefix,
		Suffix:   suffix,
		Source:   src,
		Children: children,
	}
}

func HtmlAttributeValue(prefix string, src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindHtmlAttributeValue, Prefix: prefix, Source: src, Children: children}
}

func ExpressionAttributeValue(prefix string, src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindExpressionAttributeValue, Prefix: prefix, Source: src, Children: children}
}

func StatementAttributeValue(prefix string, src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindStatementAttributeValue, Prefix: prefix, Source: src, Children: children}
}

func UsingDirective(content string, src *SourceSpan) *Node {
	return &Node{Kind: KindUsingDirective, Content: content, Source: src}
}

func Checksum(fileName, guid, hash string) *Node {
	return &Node{Kind: KindChecksum, FileName: fileName, GUID: guid, Hash: hash}
}

func Extension(ext any, src *SourceSpan, children ...*Node) *Node {
	return &Node{Kind: KindExtension, Ext: ext, Source: src, Children: children}
}

// Visit walks the tree depth first. f is called twice per node, once before
// descending (isPost false) and once after (isPost true). Returning false
// from the pre call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) IsToken(lang Lang) bool {
	return n.Kind == KindToken && n.Lang == lang
}
