package dom

import (
	"testing"
)

func TestIsElementWithoutContentEmptyDiv(t *testing.T) {
	body := parseFragment(t, `<div><br></div>`)
	div := FindAll(body, "div")[0]
	if !IsElementWithoutContent(div) {
		t.Errorf("expected div with only <br> to be without content")
	}
}

func TestIsElementWithoutContentWithText(t *testing.T) {
	body := parseFragment(t, `<div>hello</div>`)
	div := FindAll(body, "div")[0]
	if IsElementWithoutContent(div) {
		t.Errorf("expected div with text to have content")
	}
}

func TestIsPhrasingContentForAnchorOfText(t *testing.T) {
	body := parseFragment(t, `<a href="/x">hello</a>`)
	a := FindAll(body, "a")[0]
	if !IsPhrasingContent(a) {
		t.Errorf("expected anchor around text to be phrasing content")
	}
}

func TestIsPhrasingContentForAnchorOfBlock(t *testing.T) {
	body := parseFragment(t, `<a href="/x"><div>hello</div></a>`)
	a := FindAll(body, "a")[0]
	if IsPhrasingContent(a) {
		t.Errorf("expected anchor around a div to not be phrasing content")
	}
}

func TestNextNodePreOrder(t *testing.T) {
	body := parseFragment(t, `<div><p>a</p><span>b</span></div>`)
	div := FindAll(body, "div")[0]
	p := FindAll(body, "p")[0]
	next := NextNode(div, false)
	if next != p {
		t.Errorf("NextNode(div) should descend into its first child <p>")
	}
}

func TestRemoveAndGetNextContinuesWalk(t *testing.T) {
	body := parseFragment(t, `<div><p>a</p><span>b</span></div>`)
	p := FindAll(body, "p")[0]
	span := FindAll(body, "span")[0]
	next := RemoveAndGetNext(p)
	if next != span {
		t.Errorf("RemoveAndGetNext(p) should return the following <span>")
	}
	if p.Parent != nil {
		t.Errorf("expected p to be detached")
	}
}

func TestHasAncestorTag(t *testing.T) {
	body := parseFragment(t, `<table><tr><td><div>x</div></td></tr></table>`)
	div := FindAll(body, "div")[0]
	if !HasAncestorTag(div, "table", 0, nil) {
		t.Errorf("expected div to have a table ancestor")
	}
	if HasAncestorTag(div, "section", 0, nil) {
		t.Errorf("did not expect a section ancestor")
	}
}

func TestAllChildrenSnapshotSurvivesReparenting(t *testing.T) {
	body := parseFragment(t, `<div><p>a</p><span>b</span></div>`)
	div := FindAll(body, "div")[0]
	wrapper := NewElement("section")

	children := AllChildren(div)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	for _, c := range children {
		AppendChild(wrapper, c)
	}
	if len(AllChildren(div)) != 0 {
		t.Errorf("expected div to be emptied after reparenting")
	}
	if len(AllChildren(wrapper)) != 2 {
		t.Errorf("expected wrapper to hold both children")
	}
}
