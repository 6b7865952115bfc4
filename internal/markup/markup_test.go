package markup

import "testing"

func TestBuildBasicTree(t *testing.T) {
	root := Build(`<html><head><title>hi</title></head><body><p id="x">a<b>b</b>c</p></body></html>`)
	if root.Data != DocumentName || root.Parent != nil {
		t.Fatalf("unexpected root: %+v", root)
	}
	p := root.Find("p")
	if p == nil {
		t.Fatalf("p not found")
	}
	if p.Attr("id") != "x" {
		t.Fatalf("p id=%q want x", p.Attr("id"))
	}
	if got := p.Text(false); got != "abc" {
		t.Fatalf("p text=%q want abc", got)
	}
	if b := p.Find("b"); b == nil || b.Parent != p {
		t.Fatalf("b not found under p")
	}
}

func TestFindAllDocumentOrder(t *testing.T) {
	root := Build(`<div><span>1</span><div><span>2</span></div></div><span>3</span>`)
	spans := root.FindAll("span")
	if len(spans) != 3 {
		t.Fatalf("spans=%d want 3", len(spans))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := spans[i].Text(false); got != want {
			t.Fatalf("span[%d]=%q want %q", i, got, want)
		}
	}
	all := root.FindAll("")
	if len(all) != 5 {
		t.Fatalf("all elements=%d want 5", len(all))
	}
}

func TestFindExcludesSelf(t *testing.T) {
	root := Build(`<div><div>inner</div></div>`)
	outer := root.Find("div")
	if outer == nil {
		t.Fatalf("outer div not found")
	}
	inner := outer.Find("div")
	if inner == nil || inner == outer {
		t.Fatalf("expected inner div, got %+v", inner)
	}
	if inner.Text(false) != "inner" {
		t.Fatalf("inner text=%q", inner.Text(false))
	}
}

func TestUnmatchedCloseTagRecovers(t *testing.T) {
	root := Build(`<div>a</span>tail<p>b</p>`)
	if root.Find("div") == nil {
		t.Fatalf("div lost after bad close tag")
	}
	// The stray </span> resets insertion to the root, so "tail" and <p>
	// attach to the document instead of being dropped.
	p := root.Find("p")
	if p == nil || p.Parent != root {
		t.Fatalf("p should attach to root, got parent=%v", p)
	}
	if got := root.Text(false); got != "atailb" {
		t.Fatalf("text=%q want atailb", got)
	}
}

func TestCloseTagSkipsToAncestor(t *testing.T) {
	root := Build(`<div><b>x</div><i>y</i>`)
	// </div> closes past the unclosed <b>; <i> becomes a child of root.
	i := root.Find("i")
	if i == nil || i.Parent != root {
		t.Fatalf("i should attach to root")
	}
}

func TestScriptRawText(t *testing.T) {
	root := Build(`<script>if (a < b) { x = "</div>"; }</script>`)
	scripts := root.FindAll("script")
	if len(scripts) != 1 {
		t.Fatalf("scripts=%d want 1", len(scripts))
	}
	if got := scripts[0].Text(false); got != `if (a < b) { x = "</div>"; }` {
		t.Fatalf("script text=%q", got)
	}
}

func TestTextStrip(t *testing.T) {
	root := Build("<p>  a\n<b> b </b>\n c  </p>")
	if got := root.Text(true); got != "abc" {
		t.Fatalf("stripped text=%q want %q", got, "abc")
	}
	if got := root.Text(false); got != "  a\n b \n c  " {
		t.Fatalf("raw text=%q", got)
	}
}

func TestEmptyAndMalformedInput(t *testing.T) {
	for _, in := range []string{"", "</close>", "<unterminated", "plain text"} {
		root := Build(in)
		if root == nil || root.Data != DocumentName {
			t.Fatalf("Build(%q) unexpected root", in)
		}
	}
	if got := Build("plain text").Text(false); got != "plain text" {
		t.Fatalf("plain text lost: %q", got)
	}
}
