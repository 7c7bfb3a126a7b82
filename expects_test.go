package main

// @generated from interpreter_test.go

//go:generate go run scripts/gen_expects.go -- interpreter_test.go expects_test.go

import "time"

func withScriptOptions(opts ...Option) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withOptions(opts...)
	}
}

func withScriptProg(stmts ...string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withProg(stmts...)
	}
}

func withScriptVar(name, value string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withVar(name, value)
	}
}

func withScriptArray(name string, values ...string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withArray(name, values...)
	}
}

func withScriptSeed(seed int64) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withSeed(seed)
	}
}

func withScriptInput(input string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withInput(input)
	}
}

func withScriptTimeout(timeout time.Duration) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.withTimeout(timeout)
	}
}

func expectScriptError(err error) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectError(err)
	}
}

func expectScriptVar(name, value string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectVar(name, value)
	}
}

func expectScriptUnset(name string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectUnset(name)
	}
}

func expectScriptVars(names ...string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectVars(names...)
	}
}

func expectScriptOutput(output string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectOutput(output)
	}
}

func expectScriptReports(reports ...string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectReports(reports...)
	}
}

func expectScriptReported(errs ...error) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectReported(errs...)
	}
}

func expectScriptDump(dump ...string) func(scriptTestCase) scriptTestCase {
	return func(st scriptTestCase) scriptTestCase {
		return st.expectDump(dump...)
	}
}
