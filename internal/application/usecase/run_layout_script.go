package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/logging"
)

// ErrInvalidScript is returned for layout script lines that cannot be parsed.
var ErrInvalidScript = errors.New("invalid layout script")

// RunLayoutScriptUseCase replays a layout script against a workspace of
// labelled panes, without terminals. It backs the headless layout command
// and is handy for reproducing layout bugs.
//
// Script syntax, one command per line, '#' starts a comment:
//
//	viewport <w> <h>            set the layout bounds
//	divider <w>                 set the divider width
//	split h|v [label]           split the focused pane
//	close [id]                  close a pane (default: focused)
//	focus next|prev|<id>        move focus
//	move <src> <target> <edge>  move a pane to top|bottom|left|right of target
//	drag <src> <x> <y>          drop a pane at a point, like a mouse drag
//	ratio <path> <r>            set a split ratio; path is '-' or a 0/1 string
//	show                        record a snapshot
type RunLayoutScriptUseCase struct{}

// NewRunLayoutScriptUseCase creates a new layout script runner.
func NewRunLayoutScriptUseCase() *RunLayoutScriptUseCase {
	return &RunLayoutScriptUseCase{}
}

// RunLayoutScriptInput contains the script and the initial geometry.
type RunLayoutScriptInput struct {
	Script       io.Reader
	Width        float64
	Height       float64
	DividerWidth float64
}

// PaneGeometry is a pane rectangle in a snapshot.
type PaneGeometry struct {
	ID    entity.PaneID
	Label string
	Rect  entity.Rect
}

// LayoutSnapshot is the workspace state after a script line.
type LayoutSnapshot struct {
	Line    int
	Tree    string
	Focused entity.PaneID
	Panes   []PaneGeometry
}

// ScriptRejection records a command the workspace refused.
type ScriptRejection struct {
	Line    int
	Command string
	Err     error
}

// RunLayoutScriptOutput contains the recorded snapshots. A final snapshot is
// always present.
type RunLayoutScriptOutput struct {
	Snapshots  []LayoutSnapshot
	Rejections []ScriptRejection
}

type scriptState struct {
	ws      *entity.Workspace[string]
	bounds  entity.Rect
	divider float64
}

// Execute runs the script. Parse errors abort with ErrInvalidScript;
// rejected operations are recorded and the script continues.
func (uc *RunLayoutScriptUseCase) Execute(ctx context.Context, input RunLayoutScriptInput) (*RunLayoutScriptOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Float64("width", input.Width).
		Float64("height", input.Height).
		Msg("running layout script")

	if input.Script == nil {
		return nil, fmt.Errorf("%w: no script", ErrInvalidScript)
	}
	st := &scriptState{
		ws:      entity.NewWorkspace[string]("script", "script", "pane 0"),
		bounds:  entity.Rect{W: input.Width, H: input.Height},
		divider: input.DividerWidth,
	}
	if st.divider <= 0 {
		st.divider = entity.DefaultDividerWidth
	}

	out := &RunLayoutScriptOutput{}
	scanner := bufio.NewScanner(input.Script)
	line, shown := 0, false
	for scanner.Scan() {
		line++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "show" {
			out.Snapshots = append(out.Snapshots, st.snapshot(line))
			shown = true
			continue
		}
		shown = false
		err := st.apply(fields)
		if errors.Is(err, ErrInvalidScript) {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err != nil {
			log.Debug().Err(err).Int("line", line).Msg("layout command rejected")
			out.Rejections = append(out.Rejections, ScriptRejection{
				Line:    line,
				Command: strings.Join(fields, " "),
				Err:     err,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout script: %w", err)
	}
	if !shown {
		out.Snapshots = append(out.Snapshots, st.snapshot(line))
	}

	log.Info().
		Int("lines", line).
		Int("panes", st.ws.PaneCount()).
		Int("rejections", len(out.Rejections)).
		Msg("layout script finished")
	return out, nil
}

func (st *scriptState) apply(f []string) error {
	args := f[1:]
	switch f[0] {
	case "viewport":
		w, h, err := parseTwoFloats(args)
		if err != nil {
			return err
		}
		st.bounds = entity.Rect{W: w, H: h}
	case "divider":
		if len(args) != 1 {
			return fmt.Errorf("%w: divider takes a width", ErrInvalidScript)
		}
		w, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		st.divider = w
	case "split":
		return st.split(args)
	case "close":
		id := st.ws.FocusedPaneID
		if len(args) > 0 {
			var err error
			if id, err = parsePaneID(args[0]); err != nil {
				return err
			}
		}
		_, err := st.ws.ClosePane(id)
		return err
	case "focus":
		return st.focus(args)
	case "move":
		return st.move(args)
	case "drag":
		return st.drag(args)
	case "ratio":
		return st.ratio(args)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrInvalidScript, f[0])
	}
	return nil
}

func (st *scriptState) split(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: split needs h or v", ErrInvalidScript)
	}
	var dir entity.SplitDirection
	switch args[0] {
	case "h":
		dir = entity.SplitHorizontal
	case "v":
		dir = entity.SplitVertical
	default:
		return fmt.Errorf("%w: split direction %q", ErrInvalidScript, args[0])
	}
	label := strings.Join(args[1:], " ")
	if label == "" {
		label = fmt.Sprintf("pane %d", st.ws.NextPaneID)
	}
	_, err := st.ws.SplitFocused(dir, label)
	return err
}

func (st *scriptState) focus(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: focus takes one argument", ErrInvalidScript)
	}
	switch args[0] {
	case "next":
		st.ws.FocusNext()
		return nil
	case "prev":
		st.ws.FocusPrev()
		return nil
	}
	id, err := parsePaneID(args[0])
	if err != nil {
		return err
	}
	return st.ws.Focus(id)
}

func (st *scriptState) move(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: move takes a source, a target and an edge", ErrInvalidScript)
	}
	src, err := parsePaneID(args[0])
	if err != nil {
		return err
	}
	target, err := parsePaneID(args[1])
	if err != nil {
		return err
	}
	edge, err := parseEdge(args[2])
	if err != nil {
		return err
	}
	return st.ws.MovePane(src, entity.DropZone{Target: target, Edge: edge})
}

func (st *scriptState) drag(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: drag takes a source and a point", ErrInvalidScript)
	}
	src, err := parsePaneID(args[0])
	if err != nil {
		return err
	}
	x, y, err := parseTwoFloats(args[1:])
	if err != nil {
		return err
	}
	layout := st.ws.Layout(st.bounds, st.divider)
	zones := entity.ComputeDropZones(layout, src, entity.DefaultDropEdgeRatio, entity.DefaultDropHighlightRatio)
	zone, ok := entity.HitDropZone(zones, entity.Point{X: x, Y: y})
	if !ok {
		return fmt.Errorf("no drop zone at %g,%g", x, y)
	}
	return st.ws.MovePane(src, zone.Zone)
}

func (st *scriptState) ratio(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: ratio takes a path and a value", ErrInvalidScript)
	}
	var path []bool
	if args[0] != "-" {
		for _, c := range args[0] {
			switch c {
			case '0':
				path = append(path, false)
			case '1':
				path = append(path, true)
			default:
				return fmt.Errorf("%w: split path %q", ErrInvalidScript, args[0])
			}
		}
	}
	r, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	_, err = st.ws.SetRatioAt(path, r)
	return err
}

func (st *scriptState) snapshot(line int) LayoutSnapshot {
	layout := st.ws.Layout(st.bounds, st.divider)
	panes := make([]PaneGeometry, 0, len(layout.PaneOrder))
	for _, id := range layout.PaneOrder {
		label, _ := st.ws.ContentOf(id)
		panes = append(panes, PaneGeometry{ID: id, Label: label, Rect: layout.Panes[id]})
	}
	return LayoutSnapshot{
		Line:    line,
		Tree:    st.ws.Root.String(),
		Focused: st.ws.FocusedPaneID,
		Panes:   panes,
	}
}

func parseEdge(s string) (entity.DropEdge, error) {
	for _, e := range []entity.DropEdge{entity.DropTop, entity.DropBottom, entity.DropLeft, entity.DropRight} {
		if e.String() == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: drop edge %q", ErrInvalidScript, s)
}

func parsePaneID(s string) (entity.PaneID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: pane id %q", ErrInvalidScript, s)
	}
	return entity.PaneID(n), nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidScript, s)
	}
	return v, nil
}

func parseTwoFloats(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two numbers", ErrInvalidScript)
	}
	a, err := parseFloat(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseFloat(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
