package output

import (
	"fmt"
	"io"
	"os"
)

type Class int

const (
	Required Class = iota //requested information, shown even in quiet mode
	Error
	Normal
	Verbose
)

// Printer routes formatted output by class: errors to the diagnosis stream,
// everything else to the terminal stream, suppressing classes that were not
// included at construction time.
type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

func NewPrinter(include []Class, allowEscapes bool) (p Printer) {
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   os.Stdout,
		diagnosis:  os.Stderr,
		useEscapes: allowEscapes,
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := &p.terminal
	if class == Error {
		target = &p.diagnosis
	}
	fmt.Fprintf(*target, format, values...)
}

// Dim renders text faintly where escape sequences are allowed.
func (p Printer) Dim(text string) string {
	if !p.useEscapes {
		return text
	}
	return fmt.Sprintf("\x1B[2m%s\x1B[0m", text)
}

// Alert renders text in the error color where escape sequences are allowed.
func (p Printer) Alert(text string) string {
	if !p.useEscapes {
		return text
	}
	return fmt.Sprintf("\x1B[31m%s\x1B[0m", text)
}
