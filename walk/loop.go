package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// walkLoopStatement handles the three source-level loop shapes (classic
// for, for-in/for-of, while) per SPEC_FULL.md §4.3's loop row. Bound
// detection is not attempted for these statement forms — BoundKnown only
// ever comes from step.forEach's literal maxIterations option.
func (s *state) walkLoopStatement(stmt *syntax.Node) ir.Node {
	l := ir.NewLoop(s.arena, stmt.Loc)
	switch stmt.Kind {
	case syntax.KindForStatement:
		l.LoopType = ir.LoopFor
		l.Body = s.childListFrom(stmt.Body())
	case syntax.KindForInStatement:
		if op := stmt.Named("operator"); op != nil && op.Text() == "of" {
			l.LoopType = ir.LoopForOf
		} else {
			l.LoopType = ir.LoopForIn
		}
		if right := stmt.Right(); right != nil {
			l.IterSource = right.Text()
		}
		l.Body = s.childListFrom(stmt.Body())
	case syntax.KindWhileStatement:
		l.LoopType = ir.LoopWhile
		l.Body = s.childListFrom(stmt.Body())
	default:
		return nil
	}
	s.link(l.ID(), l.Body)
	s.stats.LoopCount++
	return l
}

// buildStepForEach handles step.forEach(id, iter, { run|item, maxIterations?,
// stepIdPattern?, out?, collect?, errors? }). Per the recorded Open
// Question, a step.item(...) inner body only produces this outer loop
// node; inner step recognition within it is not attempted.
func (s *state) buildStepForEach(call *syntax.Node) ir.Node {
	args := call.Arguments()
	l := ir.NewLoop(s.arena, call.Loc)
	l.LoopType = ir.LoopForEach
	if len(args) == 0 {
		return l
	}
	if len(args) > 1 {
		l.IterSource = args[1].Text()
	}

	var optsArg *syntax.Node
	if len(args) > 2 {
		optsArg = args[2]
	}
	opts := s.parseOptions(optsArg)

	if opts.hasOut {
		l.Out = opts.out
	}
	if opts.hasErrors {
		if opts.errors == nil {
			l.Errors = []string{}
		} else {
			l.Errors = opts.errors
		}
	}
	if opts.hasCollect {
		switch opts.collect {
		case "array":
			l.Collect = ir.CollectArray
		case "last":
			l.Collect = ir.CollectLast
		default:
			l.Collect = ir.CollectNone
		}
	}
	if opts.hasStepIDPattern {
		l.StepIdPattern = opts.stepIDPattern
	}
	if opts.hasMaxIterations {
		if opts.maxIterations.Kind == ir.OptionNumber {
			l.BoundKnown = true
			l.BoundCount = int(opts.maxIterations.Num)
			l.MaxIterations = int(opts.maxIterations.Num)
		}
	}

	if opts.runOrItem != nil {
		body := unwrap(opts.runOrItem)
		if isFunctionLike(body) {
			l.Body = s.flattenBody(body.Body())
		}
	}
	s.link(l.ID(), l.Body)
	s.stats.LoopCount++
	return l
}
