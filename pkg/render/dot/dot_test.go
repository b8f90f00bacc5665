package dot

import (
	"strings"
	"testing"

	"github.com/rangeviz/rangeviz/pkg/table"
)

func TestToDOT_Basic(t *testing.T) {
	nodes := []table.Node{
		{ID: "root", Size: 1},
		{ID: "child", Parent: "root", Size: 3},
	}

	dot := ToDOT(nodes, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"root"`) {
		t.Error("ToDOT() output missing root node")
	}
	if !strings.Contains(dot, `"root" -> "child"`) {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOT_RootOutline(t *testing.T) {
	dot := ToDOT([]table.Node{{ID: "solo"}}, Options{})

	if !strings.Contains(dot, "peripheries=2") {
		t.Error("ToDOT() root missing doubled outline")
	}
}

func TestToDOT_Sized(t *testing.T) {
	dot := ToDOT([]table.Node{{ID: "n", Size: 2.5}}, Options{Sized: true})

	if !strings.Contains(dot, "size: 2.5") {
		t.Error("ToDOT() sized output missing size label")
	}
}

func TestFmtLabel(t *testing.T) {
	n := table.Node{ID: "node", Size: 4}

	if got := fmtLabel(n, false); got != "node" {
		t.Errorf("fmtLabel() plain mode = %q, want %q", got, "node")
	}
	if got := fmtLabel(n, true); got != "node\nsize: 4" {
		t.Errorf("fmtLabel() sized mode = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">`)
	out := string(normalizeViewBox(svg))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %q", out)
	}
	if !strings.Contains(out, `width="100"`) {
		t.Errorf("normalizeViewBox() missing pixel width: %q", out)
	}
}
