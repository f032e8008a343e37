package content

import (
	"testing"

	"msfmt/content/text"
)

type blockFlags struct {
	heading, breakBefore, first, indent bool
}

func flagsOf(blocks []Block) []blockFlags {
	out := make([]blockFlags, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockFlags{b.IsHeading(), b.BreakBefore, b.FirstAfterHeading, b.Indent})
	}
	return out
}

func annotate(paragraphs []string, opts AnnotateOptions) []Block {
	records := Classify(paragraphs)
	return Annotate(records, BuildChapterIndex(records), opts)
}

func TestAnnotate(t *testing.T) {
	paragraphs := []string{"Opening words.", "Prologue", "Body text.", "Chapter 1", "More text.", "Even more."}

	tests := []struct {
		name string
		opts AnnotateOptions
		want []blockFlags
	}{
		{
			name: "indent with skip first",
			opts: AnnotateOptions{Indent: true, SkipFirstIndent: true},
			want: []blockFlags{
				{indent: true},
				{heading: true},
				{first: true},
				{heading: true, breakBefore: true},
				{first: true},
				{indent: true},
			},
		},
		{
			name: "indent everything",
			opts: AnnotateOptions{Indent: true},
			want: []blockFlags{
				{indent: true},
				{heading: true},
				{first: true, indent: true},
				{heading: true, breakBefore: true},
				{first: true, indent: true},
				{indent: true},
			},
		},
		{
			name: "indent disabled",
			opts: AnnotateOptions{SkipFirstIndent: true},
			want: []blockFlags{
				{},
				{heading: true},
				{first: true},
				{heading: true, breakBefore: true},
				{first: true},
				{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flagsOf(annotate(paragraphs, tt.opts))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d blocks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d (%q) = %+v, want %+v", i, paragraphs[i], got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnnotate_ConsecutiveHeadings(t *testing.T) {
	blocks := annotate([]string{"Dedication", "Chapter 1", "Text."}, AnnotateOptions{Indent: true, SkipFirstIndent: true})

	if blocks[0].BreakBefore {
		t.Error("first heading must not break page")
	}
	if !blocks[1].BreakBefore {
		t.Error("second heading must break page")
	}
	if !blocks[2].FirstAfterHeading || blocks[2].Indent {
		t.Errorf("paragraph after headings: first=%t indent=%t", blocks[2].FirstAfterHeading, blocks[2].Indent)
	}
}

func TestAnnotate_Text(t *testing.T) {
	blocks := annotate([]string{"Chapter One", `He said, "hi--there..."`}, AnnotateOptions{
		Typography: text.Toggles{CurlyQuotes: true, EmDashes: true, Ellipsis: true},
	})

	if blocks[0].Text != "Chapter One" || blocks[0].Chapter == nil || blocks[0].Chapter.DisplayNumber != 1 {
		t.Errorf("heading block = %+v", blocks[0])
	}
	if want := "He said, \u201chi\u2014there\u2026\u201d"; blocks[1].Text != want {
		t.Errorf("body text = %q, want %q", blocks[1].Text, want)
	}
}

func TestAnnotate_HeadingTextNotNormalized(t *testing.T) {
	blocks := annotate([]string{"Chapter 2 -- \"Home\"..."}, AnnotateOptions{
		Typography: text.Toggles{CurlyQuotes: true, EmDashes: true, Ellipsis: true},
	})
	if blocks[0].Text != `Chapter 2 -- "Home"...` {
		t.Errorf("heading text = %q", blocks[0].Text)
	}
}
