package sorter

import (
	"golang.org/x/net/html"
)

// HTMLElement adapts a parsed html.Node to the Element interface. Find
// matches on the standard id attribute.
type HTMLElement struct {
	Node *html.Node
}

// NewHTMLElement wraps n. The node is used as-is; the adapter holds no
// state of its own.
func NewHTMLElement(n *html.Node) HTMLElement {
	return HTMLElement{Node: n}
}

// ID returns the element's id attribute, or "".
func (e HTMLElement) ID() string {
	value, _ := e.Attr("id")
	return value
}

func (e HTMLElement) Attr(name string) (string, bool) {
	for _, attr := range e.Node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}

	return "", false
}

func (e HTMLElement) Find(id string) Element {
	var found *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "id" && attr.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.Node)

	if found == nil {
		return nil
	}

	return HTMLElement{Node: found}
}

func (e HTMLElement) Each(visit func(Element)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			visit(HTMLElement{Node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.Node)
}

func (e HTMLElement) Detach() {
	if e.Node.Parent != nil {
		e.Node.Parent.RemoveChild(e.Node)
	}
}

func (e HTMLElement) MoveBefore(dst Element) {
	target, ok := dst.(HTMLElement)
	if !ok || target.Node.Parent == nil {
		return
	}

	e.Detach()
	target.Node.Parent.InsertBefore(e.Node, target.Node)
}
