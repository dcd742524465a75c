package card

import (
	"reflect"
	"testing"
)

func TestBuilders_ArePure(t *testing.T) {
	tests := []struct {
		name  string
		build func() Element
	}{
		{name: "header", build: func() Element { return Header("/img/post.png") }},
		{name: "body wrapper", build: BodyWrapper},
		{name: "info", build: func() Element { return Info("Jane Doe", "2024-01-05") }},
		{name: "avatar", build: func() Element { return Avatar("Jane Doe", "/img/jane.png") }},
		{name: "content", build: func() Element { return Content("Title", "Body") }},
		{name: "reactions", build: func() Element { return Reactions(3, 10) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.build(), tc.build()
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("two calls differ:\n%#v\n%#v", a, b)
			}
			if len(a.Children) > 0 {
				a.Children[0].Text = "mutated"
				if b.Children[0].Text == "mutated" {
					t.Fatalf("calls share child storage")
				}
			}
		})
	}
}

func TestHeader_PassesMediaThrough(t *testing.T) {
	for _, src := range []string{"/img/post.png", "", "not a url"} {
		h := Header(src)
		if len(h.Children) != 1 || h.Children[0].Tag != TagImg {
			t.Fatalf("expected one image child: %#v", h)
		}
		if got, _ := h.Children[0].Attr(AttrSrc); got != src {
			t.Fatalf("src changed: got %q want %q", got, src)
		}
	}
}

func TestBodyWrapper_IsEmptyContainer(t *testing.T) {
	w := BodyWrapper()
	if w.Tag != TagDiv || len(w.Children) != 0 || w.Class != ClassBodyWrapper {
		t.Fatalf("unexpected wrapper: %#v", w)
	}
	filled := w.Append(Info("a", "b"))
	if len(w.Children) != 0 || len(filled.Children) != 1 {
		t.Fatalf("append must not touch the original wrapper")
	}
}

func TestInfo_AuthorThenDate(t *testing.T) {
	got := texts(Info("Jane Doe", "2024-01-05"))
	want := []string{"Jane Doe", "2024-01-05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected texts: %#v", got)
	}
}

func TestAvatar_AltText(t *testing.T) {
	tests := []struct {
		author string
		src    string
		alt    string
	}{
		{author: "Jane Doe", src: "/img/jane.png", alt: "Jane Doe's avatar"},
		{author: "", src: "/img/x.png", alt: "'s avatar"},
	}
	for _, tc := range tests {
		img := Avatar(tc.author, tc.src).Children[0]
		if got, _ := img.Attr(AttrAlt); got != tc.alt {
			t.Fatalf("alt mismatch: got %q want %q", got, tc.alt)
		}
		if got, _ := img.Attr(AttrSrc); got != tc.src {
			t.Fatalf("src mismatch: got %q want %q", got, tc.src)
		}
	}
}

func TestContent_HeadingThenParagraphLiteral(t *testing.T) {
	title := "<script>alert(1)</script>"
	body := "a < b && c > d"
	c := Content(title, body)
	if len(c.Children) != 2 {
		t.Fatalf("expected heading and paragraph: %#v", c)
	}
	if c.Children[0].Tag != TagHeading || c.Children[0].Text != title {
		t.Fatalf("unexpected heading: %#v", c.Children[0])
	}
	if c.Children[1].Tag != TagParagraph || c.Children[1].Text != body {
		t.Fatalf("unexpected paragraph: %#v", c.Children[1])
	}
	for _, ch := range c.Children {
		if len(ch.Children) != 0 {
			t.Fatalf("text must not be parsed into child nodes: %#v", ch)
		}
	}
}

func TestReactions_CommentsBeforeLikes(t *testing.T) {
	r := Reactions(3, 10)
	if got := texts(r); !reflect.DeepEqual(got, []string{"3", "10"}) {
		t.Fatalf("unexpected counts: %#v", got)
	}
	if len(r.Children) != 2 || r.Children[0].Class != ClassCommentGroup || r.Children[1].Class != ClassLikeGroup {
		t.Fatalf("unexpected group order: %#v", r.Children)
	}
	if icon := r.Children[0].Children[0]; icon.Tag != TagIcon || icon.Class != ClassCommentIcon {
		t.Fatalf("comment group must lead with its icon: %#v", icon)
	}
}

func TestReactions_TextValuesAsGiven(t *testing.T) {
	got := texts(Reactions("1.2k", "1 like"))
	if !reflect.DeepEqual(got, []string{"1.2k", "1 like"}) {
		t.Fatalf("values must be inserted as given: %#v", got)
	}
}

func TestCard_AssemblesInOrder(t *testing.T) {
	p := samplePost("42")
	c := Card(p, Handlers{})
	if len(c.Children) != 3 {
		t.Fatalf("read-only card should have header, body, content: %d", len(c.Children))
	}
	if len(c.Controls()) != 0 {
		t.Fatalf("read-only card must not have controls")
	}
	want := []string{"Jane Doe", "Jan 05, 2024", "3", "10", "Hello", "World"}
	if got := texts(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected texts: %#v", got)
	}

	withActions := Card(p, Handlers{OnDelete: countingHandler(new(int)), OnEdit: countingHandler(new(int))})
	ctls := withActions.Controls()
	if len(ctls) != 2 || ctls[0].Action() != ActionEdit || ctls[1].Action() != ActionDelete {
		t.Fatalf("unexpected controls: %#v", ctls)
	}
}

func TestElementFind(t *testing.T) {
	c := Card(samplePost("1"), Handlers{})
	if _, ok := find(c, "bold-calibri"); !ok {
		t.Fatalf("expected to find author by single class")
	}
	if _, ok := find(c, "missing"); ok {
		t.Fatalf("unexpected match")
	}
}
