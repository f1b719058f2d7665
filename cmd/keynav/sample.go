package main

import "github.com/dshills/keynav/internal/block"

// sampleWorkspace builds the demo document: a loop with an inline count
// and a nested body, a second stack with a conditional, and a comment.
func sampleWorkspace() *block.Workspace {
	ws := block.NewWorkspace()

	repeat := ws.NewBlock("controls_repeat")
	repeat.SetPrevious(true)
	repeat.SetNext(true)
	repeat.SetInputsInline(true)
	times := repeat.AppendValueInput("TIMES")
	times.AddInputField("LABEL", "times")
	body := repeat.AppendStatementInput("DO")

	count := ws.NewBlock("math_number")
	count.SetOutput(true)
	count.AddField("NUM", "10")
	mustConnect(count.OutputConnection(), times.Connection())

	print1 := ws.NewBlock("text_print")
	print1.SetPrevious(true)
	print1.SetNext(true)
	msg := print1.AppendValueInput("TEXT")

	hello := ws.NewBlock("text")
	hello.SetOutput(true)
	hello.AddField("TEXT", "hello")
	mustConnect(hello.OutputConnection(), msg.Connection())
	mustConnect(print1.PreviousConnection(), body.Connection())

	bump := ws.NewBlock("variables_change")
	bump.SetPrevious(true)
	bump.SetNext(true)
	bump.AddField("VAR", "i")
	mustConnect(bump.PreviousConnection(), print1.NextConnection())

	done := ws.NewBlock("text_print")
	done.SetPrevious(true)
	done.SetNext(true)
	doneMsg := done.AppendValueInput("TEXT")
	doneText := ws.NewBlock("text")
	doneText.SetOutput(true)
	doneText.AddField("TEXT", "done")
	mustConnect(doneText.OutputConnection(), doneMsg.Connection())
	mustConnect(done.PreviousConnection(), repeat.NextConnection())

	check := ws.NewBlock("controls_if")
	check.SetPrevious(true)
	check.SetNext(true)
	cond := check.AppendValueInput("IF0")
	cond.AddInputField("LABEL", "if")
	thenBody := check.AppendStatementInput("DO0")

	flag := ws.NewBlock("logic_boolean")
	flag.SetOutput(true)
	flag.AddField("BOOL", "true")
	mustConnect(flag.OutputConnection(), cond.Connection())

	stop := ws.NewBlock("flow_stop")
	stop.SetPrevious(true)
	mustConnect(stop.PreviousConnection(), thenBody.Connection())

	ws.NewComment("arrows move, Right dives in, Delete removes")

	return ws
}

// mustConnect joins two sample connections, panicking on a shape
// mistake in this file rather than rendering a broken document.
func mustConnect(child, parent *block.Connection) {
	if err := child.Connect(parent); err != nil {
		panic(err)
	}
}
