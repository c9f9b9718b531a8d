package shell

import (
	"errors"
	"strings"
)

// RedirectMode distinguishes overwrite (>) from append (>>) redirection.
type RedirectMode int

const (
	ModeOverwrite RedirectMode = iota
	ModeAppend
)

// Redirection is a parsed output-redirection clause: a file descriptor (1
// for stdout, 2 for stderr), a mode, and a target file path. A Redirection
// with an empty Target means the operator had no file after it, an
// ill-formed clause the executor treats as an I/O failure, never opening a
// file.
type Redirection struct {
	FD     int
	Mode   RedirectMode
	Target string
}

// CommandPlan is one stage of a pipeline after redirection extraction: a
// head token, its argument tokens, and at most one redirection clause.
type CommandPlan struct {
	Head     string
	Args     []string
	Redirect *Redirection
}

// Pipeline is an ordered, non-empty list of command plans connected by `|`.
type Pipeline struct {
	Stages []*CommandPlan
}

// ErrSyntax is returned for a pipeline that is syntactically ill-formed,
// currently only the empty-stage-around-`|` case.
var ErrSyntax = errors.New("syntax error near unexpected token '|'")

// SplitPipeline splits a token sequence on the pipe operator into an
// ordered list of per-stage token sequences. A `|` at the very start, at
// the very end, or doubled up produces an empty stage, which is rejected.
func SplitPipeline(tokens []string) ([][]string, error) {
	var stages [][]string
	var current []string
	sawPipe := false

	for _, tok := range tokens {
		if tok == "|" {
			if len(current) == 0 {
				return nil, ErrSyntax
			}
			stages = append(stages, current)
			current = nil
			sawPipe = true
			continue
		}
		current = append(current, tok)
	}

	if len(current) == 0 {
		if sawPipe {
			return nil, ErrSyntax
		}
		return nil, nil
	}
	stages = append(stages, current)
	return stages, nil
}

// isRedirectOperator reports whether tok, standing alone, is one of the
// single-token redirection operator forms.
func isRedirectOperator(tok string) (fd int, mode RedirectMode, ok bool) {
	switch tok {
	case ">":
		return 1, ModeOverwrite, true
	case ">>":
		return 1, ModeAppend, true
	case "1>":
		return 1, ModeOverwrite, true
	case "1>>":
		return 1, ModeAppend, true
	case "2>":
		return 2, ModeOverwrite, true
	case "2>>":
		return 2, ModeAppend, true
	}
	return 0, 0, false
}

// ExtractRedirection scans a stage's tokens left to right for the first
// redirection operator. Everything before it is the command; everything at
// or after it is consumed by the clause. A later redirection operator, or
// tokens trailing the target file, are ignored silently; only the first
// clause is honored.
func ExtractRedirection(tokens []string) ([]string, *Redirection) {
	for i, tok := range tokens {
		if fd, mode, ok := isRedirectOperator(tok); ok {
			return tokens[:i], &Redirection{FD: fd, Mode: mode, Target: targetAt(tokens, i+1)}
		}
		// Split-fd form: "1" or "2" immediately followed by a separate
		// ">" or ">>" token.
		if (tok == "1" || tok == "2") && i+1 < len(tokens) {
			var mode2 RedirectMode
			matched := true
			switch tokens[i+1] {
			case ">":
				mode2 = ModeOverwrite
			case ">>":
				mode2 = ModeAppend
			default:
				matched = false
			}
			if matched {
				fd := 1
				if tok == "2" {
					fd = 2
				}
				return tokens[:i], &Redirection{FD: fd, Mode: mode2, Target: targetAt(tokens, i+2)}
			}
		}
	}
	return tokens, nil
}

// targetAt returns tokens[i] if present, or "" if the operator had nothing
// following it.
func targetAt(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

// ParseCommandPlan builds a CommandPlan from one stage's raw tokens.
func ParseCommandPlan(tokens []string) *CommandPlan {
	cmdTokens, redir := ExtractRedirection(tokens)
	if len(cmdTokens) == 0 {
		return &CommandPlan{Redirect: redir}
	}
	return &CommandPlan{Head: cmdTokens[0], Args: cmdTokens[1:], Redirect: redir}
}

// ParsePipeline tokenizes and parses a full input line into a Pipeline. It
// returns (nil, nil) for a blank line, and (nil, ErrSyntax) for a line
// whose pipe structure is ill-formed.
func ParsePipeline(line string) (*Pipeline, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}

	rawStages, err := SplitPipeline(tokens)
	if err != nil {
		return nil, err
	}
	if len(rawStages) == 0 {
		return nil, nil
	}

	p := &Pipeline{}
	for _, raw := range rawStages {
		p.Stages = append(p.Stages, ParseCommandPlan(raw))
	}
	return p, nil
}
