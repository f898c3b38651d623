package fizzbuzz

import (
	"fmt"
	"strings"

	"go.llib.dev/fizzbuzz/port/option"
)

const (
	ansiGray  = "\x1b[90m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

type DescribeOption interface {
	option.Option[DescribeConfig]
}

type DescribeConfig struct {
	// Color toggles the ANSI decoration of the rendered tree.
	// Enabled by default.
	Color bool
}

func (c *DescribeConfig) Init() {
	c.Color = true
}

// PlainText disables the ANSI decoration of the rendering,
// for tests and outputs that are not a terminal.
func PlainText() DescribeOption {
	return option.Func[DescribeConfig](func(c *DescribeConfig) {
		c.Color = false
	})
}

// Describe renders the ordered decision rules of the ruleset as an indented tree.
// Each rule appears in its evaluation order, followed by the fallback branch.
func Describe(rs Ruleset, opts ...DescribeOption) string {
	conf := option.ToConfig[DescribeConfig](opts)
	var sb strings.Builder
	conf.line(&sb, 0, "Ruleset:")
	for _, r := range rs {
		conf.line(&sb, 1, fmt.Sprintf("Rule: %s", r.Name))
		conf.line(&sb, 2, fmt.Sprintf("Word: %s", r.Word))
	}
	conf.line(&sb, 1, "Fallback: decimal")
	return sb.String()
}

func (c DescribeConfig) line(sb *strings.Builder, depth int, text string) {
	for i := 0; i < depth; i++ {
		sb.WriteString(c.decorate(ansiGray, "|  "))
	}
	if label, rest, ok := strings.Cut(text, ":"); ok {
		sb.WriteString(c.decorate(ansiBold, label))
		sb.WriteString(":")
		sb.WriteString(rest)
	} else {
		sb.WriteString(text)
	}
	sb.WriteString("\n")
}

func (c DescribeConfig) decorate(code, text string) string {
	if !c.Color {
		return text
	}
	return code + text + ansiReset
}
