package errors

import (
	"path/filepath"
	"runtime"
)

// callerSkip runtime.Callers, captureStack, newAppError, 공개 생성 함수(New/Wrap 등)를 건너뜁니다.
const callerSkip = 4

// maxStackFrames 보관할 최대 스택 깊이
const maxStackFrames = 5

// StackFrame 호출 스택의 한 단계입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{
			File:     filepath.Base(f.File),
			Line:     f.Line,
			Function: f.Function,
		})
		if !more {
			break
		}
	}

	return stack
}
