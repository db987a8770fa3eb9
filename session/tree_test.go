package session

import (
	"testing"

	"github.com/sonicboom719/comment-umpire/domain"
)

func TestRootsSkipsReplies(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{
		Comments: []domain.Comment{root("A"), root("B"), reply("C", "A")},
	})

	ids := rootIDs(tree)
	if len(ids) != 2 || ids[0] != "A" || ids[1] != "B" {
		t.Fatalf("roots = %v, want [A B]", ids)
	}
	if tree.RootCount() != 2 {
		t.Fatalf("RootCount = %d, want 2", tree.RootCount())
	}
}

func TestRootsIsRestartable(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{
		Comments: []domain.Comment{root("A"), root("B")},
	})

	seq := tree.Roots()
	first := 0
	for range seq {
		first++
		break
	}
	second := 0
	for range seq {
		second++
	}
	if second != 2 {
		t.Fatalf("second iteration saw %d roots, want 2", second)
	}
}

func TestAppendPreservesOrderAndCursor(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{
		Comments:   []domain.Comment{root("A")},
		NextCursor: "page2",
	})

	if cursor, more := tree.Cursor(); !more || cursor != "page2" {
		t.Fatalf("cursor = %q more=%v, want page2 true", cursor, more)
	}

	tree.Append(domain.CommentPage{
		Comments: []domain.Comment{root("B"), root("C")},
	})

	ids := rootIDs(tree)
	if len(ids) != 3 || ids[0] != "A" || ids[1] != "B" || ids[2] != "C" {
		t.Fatalf("roots after append = %v, want [A B C]", ids)
	}
	if _, more := tree.Cursor(); more {
		t.Fatal("cursor should report no further pages after a final page")
	}
}

func TestAppendKeepsDuplicates(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{Comments: []domain.Comment{root("A")}})
	tree.Append(domain.CommentPage{Comments: []domain.Comment{root("A")}})

	if n := tree.RootCount(); n != 2 {
		t.Fatalf("RootCount = %d, want 2 (no de-duplication)", n)
	}
}

func TestLoadReplacesEverything(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{
		Comments:   []domain.Comment{root("A")},
		NextCursor: "page2",
	})
	tree.Load(domain.CommentPage{Comments: []domain.Comment{root("X")}})

	ids := rootIDs(tree)
	if len(ids) != 1 || ids[0] != "X" {
		t.Fatalf("roots after reload = %v, want [X]", ids)
	}
	if _, more := tree.Cursor(); more {
		t.Fatal("reload should have cleared the cursor")
	}
}

func TestFindAndRepliesOf(t *testing.T) {
	tree := NewTree()
	tree.Load(domain.CommentPage{
		Comments: []domain.Comment{root("A"), reply("R1", "A"), reply("R2", "A"), root("B")},
	})

	c, ok := tree.Find("R1")
	if !ok || c.ParentID != "A" {
		t.Fatalf("Find(R1) = %+v ok=%v", c, ok)
	}
	if _, ok := tree.Find("missing"); ok {
		t.Fatal("Find should miss unknown ids")
	}

	replies := tree.RepliesOf("A")
	if len(replies) != 2 || replies[0].ID != "R1" || replies[1].ID != "R2" {
		t.Fatalf("RepliesOf(A) = %v, want [R1 R2] in page order", replies)
	}
	if got := tree.RepliesOf("B"); len(got) != 0 {
		t.Fatalf("RepliesOf(B) = %v, want empty", got)
	}
}
