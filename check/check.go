// Package check collects diagnostics produced while reading a file, split
// into failures and warnings. A Check is the sink the read-data error log
// drains into; downstream layers inspect it to decide whether the result is
// usable.
package check

type Check struct {
	fails    []string
	warnings []string
}

func New() *Check {
	return &Check{}
}

func (c *Check) AddFail(msg string) {
	c.fails = append(c.fails, msg)
}

func (c *Check) AddWarning(msg string) {
	c.warnings = append(c.warnings, msg)
}

func (c *Check) HasFailed() bool {
	return len(c.fails) > 0
}

func (c *Check) NbFails() int {
	return len(c.fails)
}

func (c *Check) NbWarnings() int {
	return len(c.warnings)
}

func (c *Check) Fails() []string {
	return c.fails
}

func (c *Check) Warnings() []string {
	return c.warnings
}

func (c *Check) Clear() {
	c.fails = nil
	c.warnings = nil
}
