// Package command parses and renders the text command language a
// replayer or CLI uses to describe a sequence of Controller commands:
// N (null), L<k>/R<k> (horizontal), D (drop), CW/CCW/180 (rotate),
// B<k> (backtrack).
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tetris-engine/core/internal/controller"
	"github.com/tetris-engine/core/internal/piece"
)

// ParseCommand parses a single token in the command language.
func ParseCommand(token string) (controller.Command, error) {
	switch {
	case token == "N":
		return controller.Command{Kind: controller.Null}, nil
	case token == "D":
		return controller.DropCommand, nil
	case token == "CW":
		return controller.RotateCommand(piece.CW), nil
	case token == "CCW":
		return controller.RotateCommand(piece.CCW), nil
	case token == "180":
		return controller.RotateCommand(piece.Rot180), nil
	case strings.HasPrefix(token, "L"):
		n, err := parseMagnitude(token[1:])
		if err != nil {
			return controller.Command{}, fmt.Errorf("command: parsing %q: %w", token, err)
		}
		return controller.MoveHorizontalCommand(-n), nil
	case strings.HasPrefix(token, "R"):
		n, err := parseMagnitude(token[1:])
		if err != nil {
			return controller.Command{}, fmt.Errorf("command: parsing %q: %w", token, err)
		}
		return controller.MoveHorizontalCommand(n), nil
	case strings.HasPrefix(token, "B"):
		n, err := parseMagnitude(token[1:])
		if err != nil {
			return controller.Command{}, fmt.Errorf("command: parsing %q: %w", token, err)
		}
		return controller.BacktrackCommand(n), nil
	default:
		return controller.Command{}, fmt.Errorf("command: unrecognized token %q", token)
	}
}

func parseMagnitude(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected an unsigned decimal integer, got %q", s)
	}
	return int(n), nil
}

// RenderCommand is the inverse of ParseCommand: RenderCommand(c) fed
// back through ParseCommand always reproduces c.
func RenderCommand(c controller.Command) (string, error) {
	switch c.Kind {
	case controller.Null:
		return "N", nil
	case controller.MoveDrop:
		return "D", nil
	case controller.Rotate:
		switch c.Dir {
		case piece.CW:
			return "CW", nil
		case piece.CCW:
			return "CCW", nil
		case piece.Rot180:
			return "180", nil
		default:
			return "", fmt.Errorf("command: unknown rotation direction %d", c.Dir)
		}
	case controller.MoveHorizontal:
		if c.Magnitude < 0 {
			return fmt.Sprintf("L%d", -c.Magnitude), nil
		}
		return fmt.Sprintf("R%d", c.Magnitude), nil
	case controller.Backtrack:
		return fmt.Sprintf("B%d", c.Magnitude), nil
	default:
		return "", fmt.Errorf("command: unknown command kind %d", c.Kind)
	}
}

// ParseSequence splits s on whitespace and parses every token.
func ParseSequence(s string) ([]controller.Command, error) {
	fields := strings.Fields(s)
	out := make([]controller.Command, 0, len(fields))
	for _, tok := range fields {
		c, err := ParseCommand(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// RenderSequence is the inverse of ParseSequence: a single
// space-separated string of rendered tokens.
func RenderSequence(cmds []controller.Command) (string, error) {
	tokens := make([]string, 0, len(cmds))
	for _, c := range cmds {
		tok, err := RenderCommand(c)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, tok)
	}
	return strings.Join(tokens, " "), nil
}
