package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/vibeterm/internal/application/usecase"
	"github.com/bnema/vibeterm/internal/cli/styles"
)

var (
	layoutWidth   float64
	layoutHeight  float64
	layoutDivider float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout [script]",
	Short: "Replay a layout script without starting shells",
	Long: `Replay split, close, focus, move, drag and ratio commands against an
empty workspace and print the resulting pane rectangles.

The script is read from the given file, or from stdin when the argument
is missing or '-'. Commands:

  viewport <w> <h>            set the layout bounds
  divider <w>                 set the divider width
  split h|v [label]           split the focused pane
  close [id]                  close a pane (default: focused)
  focus next|prev|<id>        move focus
  move <src> <target> <edge>  move a pane to top|bottom|left|right of target
  drag <src> <x> <y>          drop a pane at a point, like a mouse drag
  ratio <path> <r>            set a split ratio; path is '-' or a 0/1 string
  show                        print the current layout

Examples:
  vibeterm layout split.txt
  printf 'split h\nsplit v\ndrag 2 10 10\n' | vibeterm layout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().Float64Var(&layoutWidth, "width", 1000, "viewport width")
	layoutCmd.Flags().Float64Var(&layoutHeight, "height", 600, "viewport height")
	layoutCmd.Flags().Float64Var(&layoutDivider, "divider", 4, "divider width")
}

func runLayout(cmd *cobra.Command, args []string) (retErr error) {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var script io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open layout script: %w", err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && retErr == nil {
				retErr = fmt.Errorf("close layout script: %w", closeErr)
			}
		}()
		script = file
	}

	out, err := usecase.NewRunLayoutScriptUseCase().Execute(app.Ctx(), usecase.RunLayoutScriptInput{
		Script:       script,
		Width:        layoutWidth,
		Height:       layoutHeight,
		DividerWidth: layoutDivider,
	})
	if err != nil {
		return err
	}
	writeLayoutReport(cmd.OutOrStdout(), out, app.Theme)
	return nil
}

func writeLayoutReport(w io.Writer, out *usecase.RunLayoutScriptOutput, theme *styles.Theme) {
	for _, r := range out.Rejections {
		_, _ = fmt.Fprintf(w, "%s line %d: %s: %v\n",
			theme.ErrorStyle.Render(styles.IconX), r.Line, r.Command, r.Err)
	}
	for i, snap := range out.Snapshots {
		if i > 0 || len(out.Rejections) > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s %s\n",
			theme.Subtle.Render(fmt.Sprintf("line %d", snap.Line)),
			theme.Highlight.Render(snap.Tree))
		for _, p := range snap.Panes {
			marker := "  "
			if p.ID == snap.Focused {
				marker = "* "
			}
			_, _ = fmt.Fprintf(w, "%s[%d] %-*s x=%g y=%g w=%g h=%g\n",
				marker, p.ID, labelWidth(snap.Panes), p.Label,
				p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
		}
	}
}

func labelWidth(panes []usecase.PaneGeometry) int {
	w := 0
	for _, p := range panes {
		w = max(w, len(p.Label))
	}
	return w
}

