// Package markup builds a small DOM-like tree from HTML markup. It covers
// just enough of the document to locate elements by tag name and read their
// text content; it is not a general-purpose HTML parser.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// DocumentName is the sentinel tag name of the synthetic root node. It can
// never collide with a real tag name.
const DocumentName = "[document]"

// Node is one element or text run in the parsed tree. Children are owned by
// their parent; Parent is a navigation aid only.
type Node struct {
	Type     NodeType
	Data     string // tag name for elements, raw text for text nodes
	Attrs    map[string]string
	Parent   *Node
	Children []*Node
}

func (n *Node) appendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// Build tokenizes markup and assembles the node tree. Malformed input never
// fails: unknown constructs are ignored and a close tag with no matching
// open ancestor resets the insertion point to the document root.
func Build(markup string) *Node {
	root := &Node{Type: ElementNode, Data: DocumentName}
	current := root

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF or an unrecoverable read error; either way the
			// tree built so far is the result.
			return root
		case html.StartTagToken:
			node := elementFromToken(z.Token())
			current.appendChild(node)
			current = node
		case html.SelfClosingTagToken:
			current.appendChild(elementFromToken(z.Token()))
		case html.EndTagToken:
			name, _ := z.TagName()
			current = closeTag(root, current, string(name))
		case html.TextToken:
			if text := string(z.Text()); text != "" {
				current.appendChild(&Node{Type: TextNode, Data: text})
			}
		default:
			// Comments and doctypes carry no queryable content.
		}
	}
}

func elementFromToken(t html.Token) *Node {
	node := &Node{Type: ElementNode, Data: t.Data}
	if len(t.Attr) > 0 {
		node.Attrs = make(map[string]string, len(t.Attr))
		for _, a := range t.Attr {
			node.Attrs[a.Key] = a.Val
		}
	}
	return node
}

// closeTag finds the nearest ancestor (inclusive) named name and returns its
// parent as the new insertion point. An unmatched close tag falls back to
// the root rather than erroring.
func closeTag(root, current *Node, name string) *Node {
	for cursor := current; cursor != nil; cursor = cursor.Parent {
		if cursor.Data == name && cursor.Type == ElementNode {
			if cursor.Parent != nil {
				return cursor.Parent
			}
			return root
		}
	}
	return root
}

// Find returns the first descendant element named name in pre-order, or the
// first descendant element of any name when name is empty. The receiver
// itself is never a match.
func (n *Node) Find(name string) *Node {
	for _, child := range n.Children {
		if child.Type != ElementNode {
			continue
		}
		if name == "" || child.Data == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element named name in document order,
// nested matches included. An empty name matches every element.
func (n *Node) FindAll(name string) []*Node {
	var matches []*Node
	for _, child := range n.Children {
		if child.Type != ElementNode {
			continue
		}
		if name == "" || child.Data == name {
			matches = append(matches, child)
		}
		matches = append(matches, child.FindAll(name)...)
	}
	return matches
}

// Text concatenates the text of all descendants in document order. With
// strip set, each text run is trimmed and so is the final result.
func (n *Node) Text(strip bool) string {
	var b strings.Builder
	n.writeText(&b, strip)
	if strip {
		return strings.TrimSpace(b.String())
	}
	return b.String()
}

func (n *Node) writeText(b *strings.Builder, strip bool) {
	for _, child := range n.Children {
		if child.Type == TextNode {
			if strip {
				b.WriteString(strings.TrimSpace(child.Data))
			} else {
				b.WriteString(child.Data)
			}
			continue
		}
		child.writeText(b, strip)
	}
}
