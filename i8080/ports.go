package i8080

// InputHandler produces the byte an IN instruction reads from a given port.
type InputHandler func() byte

// OutputHandler consumes the byte an OUT instruction writes to a given port.
type OutputHandler func(data byte)

// BindInput registers the handler invoked by IN port. The CPU never
// interprets port numbers; this is how a host (e.g. the arcade package)
// installs machine-specific semantics. Per spec §4.5/§4.3, an unbound slot
// is not an error: IN returns 0 and OUT is a no-op.
func (c *CPU) BindInput(port byte, h InputHandler) { c.input[port] = h }

// BindOutput registers the handler invoked by OUT port.
func (c *CPU) BindOutput(port byte, h OutputHandler) { c.output[port] = h }

func (c *CPU) in(port byte) byte {
	if h := c.input[port]; h != nil {
		return h()
	}
	return 0
}

func (c *CPU) out(port byte, data byte) {
	if h := c.output[port]; h != nil {
		h(data)
	}
}
