package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized simulation screen of the given size.
func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	return ss
}

// screenRow reads row y of the screen back as a string.
func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

// findRune returns the screen coordinates of the first occurrence of r.
func findRune(s tcell.Screen, r rune) (int, int, bool) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ch, _, _, _ := s.GetContent(x, y); ch == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestDrawFrameCentersSmallMaze(t *testing.T) {
	ss := newSimScreen(t, 80, 24)
	r := NewRenderer(ss)
	m := newMaze(t, 1, 1, 0)

	r.DrawFrame(m, "status here")

	x, y, ok := findRune(ss, '*')
	if !ok {
		t.Fatal("cursor not drawn")
	}
	// 5×3 block centered in an 80×22 view.
	if x != 37+2 || y != 9+1 {
		t.Errorf("cursor at (%d,%d); want (39,10)", x, y)
	}
	if got := strings.TrimSpace(screenRow(ss, 9)); got != "┌───┐" {
		t.Errorf("top border row = %q", got)
	}
	if got := strings.TrimSpace(screenRow(ss, 23)); got != "status here" {
		t.Errorf("status row = %q", got)
	}
}

func TestDrawFrameFollowsCursorInLargeMaze(t *testing.T) {
	ss := newSimScreen(t, 40, 12)
	r := NewRenderer(ss)
	m := newMaze(t, 30, 60, 3)

	r.DrawFrame(m, StatusLine(0, 0))
	x, y, ok := findRune(ss, '*')
	if !ok {
		t.Fatal("cursor should stay visible when the maze exceeds the screen")
	}
	// At (0,0) the camera is clamped to the top-left corner.
	if x != 2 || y != 1 {
		t.Errorf("cursor at (%d,%d); want (2,1)", x, y)
	}
	if ch, _, _, _ := ss.GetContent(0, 0); ch != '┌' {
		t.Errorf("corner = %q; want ┌", ch)
	}
}

func TestDrawMessagesCentered(t *testing.T) {
	ss := newSimScreen(t, 40, 10)
	r := NewRenderer(ss)
	r.DrawMessages("Title", "second line")

	if got := screenRow(ss, 4); strings.TrimSpace(got) != "Title" || !strings.HasPrefix(got, strings.Repeat(" ", 17)) {
		t.Errorf("title row = %q", got)
	}
	if got := strings.TrimSpace(screenRow(ss, 5)); got != "second line" {
		t.Errorf("second row = %q", got)
	}
}

func TestCameraFollow(t *testing.T) {
	cases := []struct {
		name           string
		cx, world      int
		view, wantOffs int
	}{
		{"fits is centered", 2, 5, 11, -3},
		{"start clamps to zero", 1, 100, 20, 0},
		{"middle centers", 50, 100, 20, 40},
		{"end clamps to last page", 99, 100, 20, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(tc.view, tc.view)
			c.Follow(tc.cx, tc.cx, tc.world, tc.world)
			if c.OffsetX != tc.wantOffs || c.OffsetY != tc.wantOffs {
				t.Errorf("offset = (%d,%d); want %d", c.OffsetX, c.OffsetY, tc.wantOffs)
			}
			sx, _, visible := c.WorldToScreen(tc.cx, tc.cx)
			if !visible {
				t.Errorf("followed point not visible (sx=%d)", sx)
			}
			if want := tc.cx - tc.wantOffs; sx != want {
				t.Errorf("sx = %d; want %d", sx, want)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	got := StatusLine(12, 3400*time.Millisecond)
	if !strings.HasPrefix(got, "Steps: 12  Time: 3s") {
		t.Errorf("StatusLine = %q", got)
	}
}
