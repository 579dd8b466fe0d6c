package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgedit"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit interactively, one command per line on stdin",
	Long: `Edit interactively, one command per line on stdin.

Commands:
  load PATH      start a new history from an image file
  save PATH      write the current image
  apply OP...    apply one or more transforms (see "imgedit apply --help")
  zoom F         zoom the pre-zoom image by F
  zoom-in        zoom in one step
  zoom-out       zoom out one step
  undo           revert the last step
  redo           reapply the last undone step
  info           print the current image summary
  quit           end the session

Errors are reported and the session continues.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringP("input", "i", "", "Image to load before reading commands")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	s := &session{ed: newEditor(), out: cmd.OutOrStdout()}
	if inputPath != "" {
		s.exec("load " + inputPath)
	}
	return s.run(cmd.InOrStdin())
}

var errQuit = errors.New("quit")

type session struct {
	ed  *imgedit.Editor
	out io.Writer
}

// run executes commands from r until EOF or quit.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if errors.Is(s.exec(sc.Text()), errQuit) {
			return nil
		}
	}
	return sc.Err()
}

// exec runs one command line and prints its outcome. Only errQuit is
// returned; every other failure is printed.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	err := s.dispatch(fields[0], fields[1:])
	switch {
	case errors.Is(err, errQuit):
		return err
	case err != nil:
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return nil
}

func (s *session) dispatch(name string, args []string) error {
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: want %d argument(s), got %d", name, n, len(args))
		}
		return nil
	}

	switch name {
	case "quit", "exit":
		return errQuit
	case "load":
		if err := want(1); err != nil {
			return err
		}
		if err := s.ed.Load(args[0]); err != nil {
			return err
		}
	case "save":
		if err := want(1); err != nil {
			return err
		}
		if err := s.ed.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %s\n", args[0])
		return nil
	case "apply":
		if len(args) == 0 {
			return fmt.Errorf("apply: want at least one op")
		}
		for _, a := range args {
			op, err := imgedit.ParseOp(a)
			if err != nil {
				return err
			}
			if _, err := s.ed.Apply(op); err != nil {
				return err
			}
		}
	case "zoom":
		if err := want(1); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: zoom factor %q", imgedit.ErrInvalidArgument, args[0])
		}
		if _, err := s.ed.Zoom(f); err != nil {
			return err
		}
	case "zoom-in", "zoom-out":
		if err := want(0); err != nil {
			return err
		}
		step := s.ed.ZoomIn
		if name == "zoom-out" {
			step = s.ed.ZoomOut
		}
		if _, err := step(); err != nil {
			return err
		}
	case "undo":
		if !s.ed.Undo() {
			fmt.Fprintln(s.out, "nothing to undo")
			return nil
		}
	case "redo":
		if !s.ed.Redo() {
			fmt.Fprintln(s.out, "nothing to redo")
			return nil
		}
	case "info":
		if !s.ed.Loaded() {
			return imgedit.ErrNotLoaded
		}
		printInfo(s.out, s.ed.Current())
		return nil
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	s.status()
	return nil
}

// status prints the one-line state shown after every edit.
func (s *session) status() {
	w, h := s.ed.Current().Bounds()
	applied, undone := s.ed.Depth()
	fmt.Fprintf(s.out, "%dx%d zoom=%.2f undo=%d redo=%d\n", w, h, s.ed.ZoomLevel(), applied-1, undone)
}
