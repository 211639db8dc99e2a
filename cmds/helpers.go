package cmds

// Var defines a command that sets a value from its argument, and a command
// with a trailing dot that resets it.
func Var[T any](name string, desc ...string) *T {
	var value T

	command := Func(func(v T) {
		value = v
	})
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	Define(name, command)

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to set a flag and !name to clear it.
func Switch(name string, desc ...string) *bool {
	var value bool

	command := Func(func() {
		value = true
	})
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	Define(name, command)

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
